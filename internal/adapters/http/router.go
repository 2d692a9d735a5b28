// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tenant-console/internal/adapters/http/handlers"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Wizard  *handlers.WizardHandler
	Tenant  *handlers.TenantHandler
	Catalog *handlers.CatalogHandler
	Health  *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/packages", h.Catalog.ListPackages)

		r.Post("/wizards", h.Wizard.Start)
		r.Route("/wizards/{id}", func(r chi.Router) {
			r.Get("/", h.Wizard.Get)
			r.Delete("/", h.Wizard.Discard)
			r.Patch("/fields", h.Wizard.SetFields)
			r.Put("/package", h.Wizard.SelectPackage)
			r.Post("/advance", h.Wizard.Advance)
			r.Post("/retreat", h.Wizard.Retreat)
			r.Get("/review", h.Wizard.Review)
			r.Post("/submit", h.Wizard.Submit)
			r.Post("/code-check", h.Wizard.CheckCode)
			r.Get("/code-check", h.Wizard.CodeCheckResult)
		})

		r.Get("/tenants", h.Tenant.ListTenants)
		r.Post("/tenants/bulk-status", h.Tenant.BulkUpdateStatus)
		r.Get("/tenants/{id}", h.Tenant.GetTenant)
		r.Patch("/tenants/{id}", h.Tenant.UpdateTenant)
		r.Delete("/tenants/{id}", h.Tenant.DeleteTenant)
	})

	return r
}
