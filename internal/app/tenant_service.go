// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	appctx "github.com/jsamuelsen11/tenant-console/internal/app/context"
	"github.com/jsamuelsen11/tenant-console/internal/app/fanout"
	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/platform/logging"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// Compile-time check that TenantService implements ports.TenantService.
var _ ports.TenantService = (*TenantService)(nil)

const (
	// lastGoodPages bounds how many distinct list queries keep a fallback page.
	lastGoodPages = 128
	// bulkWorkers bounds concurrent directory calls in bulk updates.
	bulkWorkers = 8
	// MaxBulkTenants caps the ids accepted by one bulk request.
	MaxBulkTenants = 100
)

// TenantService implements ports.TenantService on top of the tenant
// directory port. It adds the listing fallback, request-scoped caching of
// tenant reads, and bulk status changes.
type TenantService struct {
	directory ports.TenantDirectory
	logger    *slog.Logger
	lastGood  *lru.Cache[string, tenant.Page]
}

// NewTenantService creates a TenantService. A nil logger discards output.
func NewTenantService(directory ports.TenantDirectory, logger *slog.Logger) *TenantService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, tenant.Page](lastGoodPages)
	return &TenantService{
		directory: directory,
		logger:    logger,
		lastGood:  cache,
	}
}

// log prefers the request-scoped logger so lines carry request ids.
func (s *TenantService) log(ctx context.Context) *slog.Logger {
	return logging.ForContext(ctx, s.logger)
}

// ListTenants returns one page. If the directory is unavailable and the same
// query succeeded before, the remembered page is returned marked Stale.
func (s *TenantService) ListTenants(ctx context.Context, q tenant.Query) (*tenant.Page, error) {
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	key := q.Key()
	s.log(ctx).InfoContext(ctx, "listing tenants", slog.String("query", key))

	page, err := s.directory.ListTenants(ctx, q)
	if err != nil {
		if cached, ok := s.lastGood.Get(key); ok && errors.Is(err, domain.ErrUnavailable) {
			s.log(ctx).WarnContext(ctx, "directory unavailable, serving last known page",
				slog.String("query", key),
				slog.Any("error", err),
			)
			cached.Stale = true
			return &cached, nil
		}
		s.log(ctx).ErrorContext(ctx, "failed to list tenants",
			slog.String("operation", "ListTenants"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.lastGood.Add(key, *page)
	return page, nil
}

// GetTenant returns a tenant, reusing a copy already read or written during
// the same request.
func (s *TenantService) GetTenant(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, err := appctx.Fetch(appctx.FromContext(ctx), tenantKey(id), func(ctx context.Context) (*tenant.Tenant, error) {
		s.log(ctx).InfoContext(ctx, "fetching tenant", slog.String("id", id))
		return s.directory.GetTenant(ctx, id)
	})
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to fetch tenant",
			slog.String("operation", "GetTenant"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// UpdateTenant validates and applies a partial update.
func (s *TenantService) UpdateTenant(ctx context.Context, id string, patch *tenant.Patch) (*tenant.Tenant, error) {
	s.log(ctx).InfoContext(ctx, "updating tenant", slog.String("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.directory.UpdateTenant(ctx, id, patch)
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to update tenant",
			slog.String("operation", "UpdateTenant"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	appctx.Put(appctx.FromContext(ctx), tenantKey(id), updated)
	return updated, nil
}

// DeleteTenant removes a tenant.
func (s *TenantService) DeleteTenant(ctx context.Context, id string) error {
	s.log(ctx).InfoContext(ctx, "deleting tenant", slog.String("id", id))

	if err := s.directory.DeleteTenant(ctx, id); err != nil {
		s.log(ctx).ErrorContext(ctx, "failed to delete tenant",
			slog.String("operation", "DeleteTenant"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	appctx.Forget(appctx.FromContext(ctx), tenantKey(id))
	return nil
}

// BulkUpdateStatus sets status on every id concurrently. Each update
// succeeds or fails on its own; only request-level problems return an error.
func (s *TenantService) BulkUpdateStatus(ctx context.Context, ids []string, status tenant.Status) (*ports.BulkStatusResult, error) {
	if err := validateBulk(ids, status); err != nil {
		return nil, err
	}

	s.log(ctx).InfoContext(ctx, "bulk status update",
		slog.Int("count", len(ids)),
		slog.String("status", status.String()),
	)

	rc := appctx.FromContext(ctx)
	patch := &tenant.Patch{Status: &status}
	results := fanout.Run(ctx, bulkWorkers, ids, func(ctx context.Context, id string) (tenant.Tenant, error) {
		updated, err := s.directory.UpdateTenant(ctx, id, patch)
		if err != nil {
			return tenant.Tenant{}, fmt.Errorf("updating tenant %s: %w", id, err)
		}
		appctx.Put(rc, tenantKey(id), updated)
		return *updated, nil
	})

	updated, failures := fanout.Split(ids, results)
	out := &ports.BulkStatusResult{Updated: updated}
	for _, f := range failures {
		out.Errors = append(out.Errors, ports.BulkStatusError{TenantID: f.Item, Err: f.Err})
	}

	if len(out.Errors) > 0 {
		s.log(ctx).WarnContext(ctx, "bulk status update partially failed",
			slog.Int("updated", len(out.Updated)),
			slog.Int("failed", len(out.Errors)),
		)
	}
	return out, nil
}

func validateBulk(ids []string, status tenant.Status) error {
	fields := make(map[string]string)

	switch {
	case len(ids) == 0:
		fields["ids"] = domain.MsgMustNotEmpty
	case len(ids) > MaxBulkTenants:
		fields["ids"] = fmt.Sprintf("must contain at most %d ids, got %d", MaxBulkTenants, len(ids))
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			fields["ids"] = "must not contain empty ids"
			break
		}
		if _, dup := seen[id]; dup {
			fields["ids"] = fmt.Sprintf("duplicate id %q", id)
			break
		}
		seen[id] = struct{}{}
	}
	if !status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func tenantKey(id string) appctx.Key[*tenant.Tenant] {
	return appctx.NewKey[*tenant.Tenant]("tenant:" + id)
}
