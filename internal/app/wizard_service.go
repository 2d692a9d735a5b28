package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	appctx "github.com/jsamuelsen11/tenant-console/internal/app/context"
	"github.com/jsamuelsen11/tenant-console/internal/app/debounce"
	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
	"github.com/jsamuelsen11/tenant-console/internal/platform/config"
	"github.com/jsamuelsen11/tenant-console/internal/platform/httpclient"
	"github.com/jsamuelsen11/tenant-console/internal/platform/logging"
	"github.com/jsamuelsen11/tenant-console/internal/platform/telemetry"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// Compile-time check that WizardService implements ports.WizardService.
var _ ports.WizardService = (*WizardService)(nil)

var (
	// ErrSessionNotFound is returned for unknown, discarded or expired
	// wizard sessions.
	ErrSessionNotFound = fmt.Errorf("wizard session %w", domain.ErrNotFound)

	// ErrSubmitInProgress is returned when a session is changed or
	// submitted again while its submission is still in flight.
	ErrSubmitInProgress = fmt.Errorf("submission in progress: %w", domain.ErrConflict)
)

// WizardService implements ports.WizardService. Sessions live in memory;
// each owns one wizard.State behind a SafeRef, so requests against the same
// session are serialized while different sessions proceed independently.
type WizardService struct {
	directory ports.TenantDirectory
	logger    *slog.Logger
	metrics   *telemetry.Metrics
	clock     clock.Clock

	ttl           time.Duration
	sweepInterval time.Duration
	debounceWait  time.Duration
	checkTimeout  time.Duration

	mu       sync.Mutex
	sessions map[string]*session

	checks singleflight.Group
}

type session struct {
	id        string
	createdAt time.Time
	ref       *appctx.SafeRef[sessionData]
	checker   *debounce.Debouncer
}

type sessionData struct {
	state      wizard.State
	check      ports.CodeCheck
	updatedAt  time.Time
	submitting bool
}

// WizardOption configures a WizardService.
type WizardOption func(*WizardService)

// WithClock replaces the wall clock used for session expiry and code check
// debouncing.
func WithClock(c clock.Clock) WizardOption {
	return func(s *WizardService) {
		s.clock = c
	}
}

// WithMetrics records wizard transitions, submissions and code checks.
func WithMetrics(m *telemetry.Metrics) WizardOption {
	return func(s *WizardService) {
		s.metrics = m
	}
}

// NewWizardService creates a WizardService that submits through the given
// directory port.
func NewWizardService(directory ports.TenantDirectory, cfg config.WizardConfig, logger *slog.Logger, opts ...WizardOption) *WizardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &WizardService{
		directory:     directory,
		logger:        logger,
		clock:         clock.New(),
		ttl:           cfg.SessionTTL,
		sweepInterval: cfg.SweepInterval,
		debounceWait:  cfg.CodeCheckDebounce,
		checkTimeout:  cfg.CodeCheckTimeout,
		sessions:      make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *WizardService) log(ctx context.Context) *slog.Logger {
	return logging.ForContext(ctx, s.logger)
}

// Start opens a new session at the first step.
func (s *WizardService) Start(ctx context.Context) (*ports.WizardSession, error) {
	now := s.clock.Now()
	sess := &session{
		id:        uuid.NewString(),
		createdAt: now,
		ref: appctx.NewRef(sessionData{
			state:     wizard.New(),
			check:     ports.CodeCheck{Status: ports.CodeCheckIdle},
			updatedAt: now,
		}),
		checker: debounce.New(s.debounceWait, debounce.WithClock(s.clock)),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.WizardSessionsActive.Add(ctx, 1)
	}
	s.log(ctx).InfoContext(ctx, "wizard session started", slog.String("session_id", sess.id))

	snap := sess.snapshot(sess.ref.Get())
	return &snap, nil
}

// Get returns the current snapshot of a session.
func (s *WizardService) Get(_ context.Context, id string) (*ports.WizardSession, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	snap := sess.snapshot(sess.ref.Get())
	return &snap, nil
}

// SetFields applies values atomically.
func (s *WizardService) SetFields(ctx context.Context, id string, values map[string]any) (*ports.WizardSession, error) {
	return s.mutate(ctx, id, "SetFields", func(d *sessionData) error {
		next, err := d.state.SetAll(values)
		if err != nil {
			return err
		}
		d.state = next
		return nil
	})
}

// SelectPackage selects a catalog package.
func (s *WizardService) SelectPackage(ctx context.Context, id string, pkg catalog.PackageID) (*ports.WizardSession, error) {
	return s.mutate(ctx, id, "SelectPackage", func(d *sessionData) error {
		next, err := d.state.SelectPackage(pkg)
		if err != nil {
			return err
		}
		d.state = next
		return nil
	})
}

// Advance validates the current step and moves forward.
func (s *WizardService) Advance(ctx context.Context, id string) (*ports.WizardSession, error) {
	var from wizard.Step
	snap, err := s.mutate(ctx, id, "Advance", func(d *sessionData) error {
		from = d.state.Step
		next, err := d.state.Advance()
		if err != nil {
			return err
		}
		d.state = next
		return nil
	})
	s.recordTransition(ctx, from, "forward", err)
	return snap, err
}

// Retreat moves back one step.
func (s *WizardService) Retreat(ctx context.Context, id string) (*ports.WizardSession, error) {
	var from wizard.Step
	snap, err := s.mutate(ctx, id, "Retreat", func(d *sessionData) error {
		from = d.state.Step
		d.state = d.state.Retreat()
		return nil
	})
	s.recordTransition(ctx, from, "back", err)
	return snap, err
}

// Review returns the summary of the session's values.
func (s *WizardService) Review(_ context.Context, id string) (*wizard.Summary, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sum := sess.ref.Get().state.Review()
	return &sum, nil
}

// Submit creates the tenant from a complete session on the review step.
// The session ID is sent as the idempotency key so a retried submission is
// recognized by the directory. On failure the session is left as it was.
func (s *WizardService) Submit(ctx context.Context, id string) (*tenant.Tenant, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	var req tenant.CreateRequest
	err = sess.ref.Try(func(d *sessionData) error {
		if d.submitting {
			return ErrSubmitInProgress
		}
		if !d.state.IsLast() {
			return domain.NewValidationError("step", "submission is only possible from the review step")
		}
		r, err := d.state.Submission()
		if err != nil {
			return err
		}
		req = r
		d.submitting = true
		d.updatedAt = s.clock.Now()
		return nil
	})
	if err != nil {
		s.log(ctx).WarnContext(ctx, "wizard submission rejected",
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "submitting tenant",
		slog.String("session_id", id),
		slog.String("code", req.Code),
		slog.String("package", req.PackageID.String()),
	)

	created, err := s.directory.CreateTenant(httpclient.WithIdempotencyKey(ctx, id), &req)
	if err != nil {
		sess.ref.Update(func(d *sessionData) {
			d.submitting = false
			d.updatedAt = s.clock.Now()
		})
		s.recordSubmission(ctx, "error")
		s.log(ctx).ErrorContext(ctx, "failed to create tenant",
			slog.String("operation", "Submit"),
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.recordSubmission(ctx, "success")
	s.log(ctx).InfoContext(ctx, "tenant created",
		slog.String("session_id", id),
		slog.String("tenant_id", created.ID),
	)
	s.remove(ctx, id)
	return created, nil
}

// Discard drops a session and cancels its pending code check.
func (s *WizardService) Discard(ctx context.Context, id string) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	s.remove(ctx, id)
	s.log(ctx).InfoContext(ctx, "wizard session discarded", slog.String("session_id", id))
	return nil
}

// CheckCode records code as the session's latest check. Locally invalid
// codes are answered immediately without a directory call; valid ones are
// scheduled after the debounce window, canceling any pending check.
func (s *WizardService) CheckCode(ctx context.Context, id, code string) (*ports.CodeCheck, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	check := ports.CodeCheck{Code: code, Status: ports.CodeCheckPending}
	msg := tenant.CodeProblem(code)
	if msg != "" {
		check = ports.CodeCheck{Code: code, Status: ports.CodeCheckInvalid, Message: msg, CheckedAt: now}
	}

	// The pending state must be visible before the task can complete.
	sess.ref.Update(func(d *sessionData) {
		d.check = check
		d.updatedAt = now
	})

	if msg != "" {
		sess.checker.Stop()
		return &check, nil
	}
	sess.checker.Call(ctx, func(taskCtx context.Context) {
		s.runCodeCheck(taskCtx, sess, code)
	})
	return &check, nil
}

// CodeCheckResult returns the session's latest code check.
func (s *WizardService) CodeCheckResult(_ context.Context, id string) (*ports.CodeCheck, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	check := sess.ref.Get().check
	return &check, nil
}

// Sweep discards sessions idle for longer than the session TTL and returns
// how many were removed.
func (s *WizardService) Sweep(ctx context.Context) int {
	now := s.clock.Now()

	s.mu.Lock()
	var expired []*session
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		s.release(ctx, sess)
	}
	if len(expired) > 0 {
		s.log(ctx).InfoContext(ctx, "expired wizard sessions discarded", slog.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps expired sessions every sweep interval until ctx is done, then
// closes every remaining session.
func (s *WizardService) Run(ctx context.Context) {
	ticker := s.clock.Ticker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Close discards every session and waits for running code checks.
func (s *WizardService) Close() {
	s.mu.Lock()
	all := make([]*session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		all = append(all, sess)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, sess := range all {
		s.release(context.Background(), sess)
	}
}

// mutate runs fn against a copy of the session data and commits it only
// when fn succeeds. Failed attempts still count as activity for expiry.
func (s *WizardService) mutate(ctx context.Context, id, op string, fn func(*sessionData) error) (*ports.WizardSession, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var snap ports.WizardSession
	err = sess.ref.Try(func(d *sessionData) error {
		if d.submitting {
			return ErrSubmitInProgress
		}
		if err := fn(d); err != nil {
			return err
		}
		d.updatedAt = now
		snap = sess.snapshot(*d)
		return nil
	})
	if err != nil {
		sess.ref.Update(func(d *sessionData) { d.updatedAt = now })
		s.log(ctx).DebugContext(ctx, "wizard operation rejected",
			slog.String("operation", op),
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &snap, nil
}

func (s *WizardService) runCodeCheck(ctx context.Context, sess *session, code string) {
	ch := s.checks.DoChan(code, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.checkTimeout)
		defer cancel()
		return s.directory.ValidateTenantCode(callCtx, code)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return
	case res = <-ch:
	}
	if ctx.Err() != nil {
		return
	}

	check := ports.CodeCheck{Code: code, CheckedAt: s.clock.Now()}
	result := "error"
	avail, _ := res.Val.(*tenant.CodeAvailability)
	if res.Err == nil && avail == nil {
		res.Err = errors.New("empty availability response")
	}
	if res.Err != nil {
		check.Status = ports.CodeCheckFailed
		check.Message = "availability could not be checked"
		s.log(ctx).WarnContext(ctx, "code availability check failed",
			slog.String("session_id", sess.id),
			slog.String("code", code),
			slog.Any("error", res.Err),
		)
	} else {
		check.Status = ports.CodeCheckDone
		check.Available = avail.IsAvailable
		check.Message = avail.Message
		result = "taken"
		if avail.IsAvailable {
			result = "available"
		}
	}

	sess.ref.Update(func(d *sessionData) {
		// A newer CheckCode has replaced this one.
		if d.check.Code != code || d.check.Status != ports.CodeCheckPending {
			return
		}
		d.check = check
	})
	if s.metrics != nil {
		s.metrics.CodeCheckTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
	}
}

func (s *WizardService) lookup(id string) (*session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok && s.expired(sess, s.clock.Now()) {
		delete(s.sessions, id)
		s.mu.Unlock()
		s.release(context.Background(), sess)
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

func (s *WizardService) remove(ctx context.Context, id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		s.release(ctx, sess)
	}
}

// release must be called without holding s.mu.
func (s *WizardService) release(ctx context.Context, sess *session) {
	sess.checker.Close()
	if s.metrics != nil {
		s.metrics.WizardSessionsActive.Add(ctx, -1)
	}
}

func (s *WizardService) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.ref.Get().updatedAt) > s.ttl
}

func (s *WizardService) recordTransition(ctx context.Context, from wizard.Step, direction string, err error) {
	if s.metrics == nil || errors.Is(err, domain.ErrNotFound) {
		return
	}
	result := "success"
	if err != nil {
		result = "blocked"
	}
	s.metrics.WizardTransitionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrWizardStep.String(from.String()),
		telemetry.AttrDirection.String(direction),
		telemetry.AttrResult.String(result),
	))
}

func (s *WizardService) recordSubmission(ctx context.Context, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.WizardSubmissionTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

func (sess *session) snapshot(d sessionData) ports.WizardSession {
	return ports.WizardSession{
		ID:        sess.id,
		State:     d.state,
		CodeCheck: d.check,
		CreatedAt: sess.createdAt,
		UpdatedAt: d.updatedAt,
	}
}
