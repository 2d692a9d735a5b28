package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the console's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// WizardTransitionTotal counts step navigation by step, direction
	// (advance or retreat) and result.
	WizardTransitionTotal metric.Int64Counter
	WizardSubmissionTotal metric.Int64Counter
	// CodeCheckTotal counts subdomain availability calls to the directory.
	CodeCheckTotal       metric.Int64Counter
	WizardSessionsActive metric.Int64UpDownCounter
}

// NewMetrics creates every instrument on a meter scoped to scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	b := builder{meter: mp.Meter(scope)}
	m := &Metrics{
		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of console API requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Console API requests", "{request}"),
		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of tenant directory calls"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Tenant directory calls", "{request}"),

		WizardTransitionTotal: b.counter("wizard.transition.total", "Wizard step navigation attempts", "{transition}"),
		WizardSubmissionTotal: b.counter("wizard.submission.total", "Wizard final submissions", "{submission}"),
		CodeCheckTotal:        b.counter("wizard.code_check.total", "Subdomain availability checks", "{check}"),
		WizardSessionsActive:  b.upDown("wizard.sessions.active", "Open wizard sessions", "{session}"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// builder keeps the first instrument error so NewMetrics reads as a list.
type builder struct {
	meter metric.Meter
	err   error
}

func (b *builder) keep(name string, err error) {
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("creating %s: %w", name, err)
	}
}

func (b *builder) histogram(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	b.keep(name, err)
	return h
}

func (b *builder) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.keep(name, err)
	return c
}

func (b *builder) upDown(name, desc, unit string) metric.Int64UpDownCounter {
	c, err := b.meter.Int64UpDownCounter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.keep(name, err)
	return c
}
