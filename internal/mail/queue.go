package mail

import (
	"context"
	"fmt"

	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/worker"
)

// QueuedMailer hands messages to a worker pool so requests never wait on the relay.
// Send only reports whether the message was queued.
type QueuedMailer struct {
	next Mailer
	pool *worker.Pool
}

// NewQueuedMailer delivers through next on pool
func NewQueuedMailer(next Mailer, pool *worker.Pool) *QueuedMailer {
	return &QueuedMailer{next: next, pool: pool}
}

// Send queues the message. The request ID is carried over for log correlation.
func (q *QueuedMailer) Send(ctx context.Context, msg Message) error {
	requestID := logger.GetRequestID(ctx)
	err := q.pool.Enqueue(worker.JobFunc(func(jobCtx context.Context) error {
		if requestID != "" {
			jobCtx = logger.WithRequestID(jobCtx, requestID)
		}
		return q.next.Send(jobCtx, msg)
	}))
	if err != nil {
		return fmt.Errorf("failed to queue mail: %w", err)
	}
	return nil
}
