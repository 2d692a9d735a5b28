// Package main runs the tenant console API: the provisioning wizard, the
// tenant directory views and the package catalog. Dependencies are wired
// with samber/do v2; SIGINT and SIGTERM trigger a graceful shutdown that
// drains HTTP requests before stopping the wizard session sweeper.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/tenant-console/internal/adapters/http"
	"github.com/jsamuelsen11/tenant-console/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/tenant-console/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/tenant-console/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/tenant-console/internal/app"
	"github.com/jsamuelsen11/tenant-console/internal/platform/config"
	"github.com/jsamuelsen11/tenant-console/internal/platform/health"
	"github.com/jsamuelsen11/tenant-console/internal/platform/httpclient"
	"github.com/jsamuelsen11/tenant-console/internal/platform/logging"
	"github.com/jsamuelsen11/tenant-console/internal/platform/telemetry"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

const (
	// directoryService names the tenant directory in traces, metrics and
	// readiness checks.
	directoryService = "tenant-directory"

	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	registerDependencies(injector, cfg, logger)

	// Resolving the server wires the whole graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	wizards := do.MustInvoke[*app.WizardService](injector)

	if err := serve(ctx, server, wizards, logger, serverShutdownTimeout); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, directoryService, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TenantDirectory, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTenantClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.WizardService, error) {
		directory := do.MustInvoke[ports.TenantDirectory](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewWizardService(directory, cfg.Wizard, logger, app.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TenantService, error) {
		directory := do.MustInvoke[ports.TenantDirectory](i)
		return app.NewTenantService(directory, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Wizard:  handlers.NewWizardHandler(do.MustInvoke[*app.WizardService](i), cfg.Wizard.BaseDomain),
			Tenant:  handlers.NewTenantHandler(do.MustInvoke[ports.TenantService](i)),
			Catalog: handlers.NewCatalogHandler(),
			Health:  handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), directoryService),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			middleware.Edge(logger),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
