package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DragonKeeper_Go/internal/server"
	"github.com/osse101/DragonKeeper_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	MailQueue *worker.Pool
	Storage   *Storage
}

// GracefulShutdown stops accepting requests, lets in-flight ones finish,
// drains queued mail, then closes the database pool. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.MailQueue != nil {
		slog.Info(LogMsgDrainingMailQueue)
		if err := components.MailQueue.Stop(ctx); err != nil {
			slog.Error(LogMsgMailQueueFailed, "error", err)
		}
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingDatabase)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
