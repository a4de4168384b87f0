package task

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Common errors returned by the TaskQueue
var (
	ErrQueueClosed = errors.New("task queue is closed")
	ErrQueueFull   = errors.New("task queue is full")
)

// TaskQueue is the bounded in-memory buffer between task submission and the
// runner's workers. Enqueue never blocks: when the buffer is full the caller
// gets ErrQueueFull immediately, so an ingestion burst degrades into a
// retryable error instead of stalling HTTP handlers.
type TaskQueue struct {
	tasks  chan Task
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewTaskQueue creates a queue holding at most size tasks.
func NewTaskQueue(size int, logger *slog.Logger) *TaskQueue {
	return &TaskQueue{
		tasks:  make(chan Task, size),
		logger: logger,
	}
}

// Enqueue adds a task to the queue for processing. Returns ErrQueueClosed
// after Close, or ErrQueueFull when the buffer has no room.
func (q *TaskQueue) Enqueue(task Task) error {
	// Hold the lock across the send so Close cannot close the channel
	// between the check and the send.
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.tasks <- task:
		q.logger.Debug("task enqueued",
			"task_id", task.ID(),
			"task_type", task.Type(),
			"queue_len", len(q.tasks),
			"queue_cap", cap(q.tasks))
		return nil
	default:
		return fmt.Errorf("%w: queue capacity %d reached", ErrQueueFull, cap(q.tasks))
	}
}

// Close stops further submission and closes the task channel so workers
// drain what is already buffered and exit. Safe to call more than once.
func (q *TaskQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.tasks)
	q.logger.Info("task queue closed")
}

// GetChannel returns a read-only channel for consuming tasks.
func (q *TaskQueue) GetChannel() <-chan Task {
	return q.tasks
}
