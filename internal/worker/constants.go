package worker

import "time"

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second
