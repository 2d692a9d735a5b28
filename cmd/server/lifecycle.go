package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

type apiServer interface {
	Start() error
	Shutdown(ctx context.Context) error
}

type sessionSweeper interface {
	Run(ctx context.Context)
}

// serve runs srv and the session sweeper until ctx ends or srv fails. The
// sweeper keeps running until srv has drained, so requests finishing during
// shutdown still find their wizard sessions.
func serve(ctx context.Context, srv apiServer, sweeper sessionSweeper, logger *slog.Logger, drain time.Duration) error {
	sweepCtx, stopSweep := context.WithCancel(context.WithoutCancel(ctx))
	defer stopSweep()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Any("cause", context.Cause(gctx)))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drain)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		stopSweep()
		return nil
	})
	g.Go(func() error {
		sweeper.Run(sweepCtx)
		return nil
	})

	return g.Wait()
}
