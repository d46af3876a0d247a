package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops the application in order:
// 1. Scheduler and worker pool (no new sweeps)
// 2. HTTP server, which also closes event streams and open workspaces
// 3. Draft store (after the last draft write)
//
// Errors are logged but do not stop the sequence.
func (a *App) GracefulShutdown(ctx context.Context) {
	slog.Info(LogMsgShuttingDownServer)

	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Pool != nil {
		a.Pool.Stop()
	}

	if err := a.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if a.Drafts != nil {
		if err := a.Drafts.Close(); err != nil {
			slog.Error(LogMsgDraftStoreCloseFail, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
