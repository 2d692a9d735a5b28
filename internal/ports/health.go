package ports

import "context"

// HealthChecker reports on one dependency of the console, such as the
// tenant directory client.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g.
	// "tenant-directory".
	Name() string

	// HealthCheck returns nil when the dependency is usable.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates HealthCheckers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every check and returns the results keyed by name.
	// A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
