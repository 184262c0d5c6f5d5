package app

import (
	"context"
	"fmt"
	"time"

	"github.com/TigerCipher/cpu-scheduler/internal/api"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP API until ctx is cancelled, then shuts it down.
func (a *App) Serve(ctx context.Context) error {
	srv := api.New(a.settings, a.logger)
	addr := fmt.Sprintf(":%d", a.settings.Port)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("API server starting", "address", fmt.Sprintf("http://localhost%s", addr))
		errCh <- srv.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("API server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down API server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		a.logger.Error("API server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("API server shut down gracefully.")
	return nil
}
