package common

import (
	"time"

	log "github.com/sirupsen/logrus"
	"k8s.io/client-go/util/workqueue"
)

// TaskQueue feeds reconciliation workers, e.g. the binder's matching
// passes. Tasks are plain strings naming the resource to reconcile.
type TaskQueue struct {
	queue      workqueue.RateLimitingInterface
	logger     *log.Entry
	maxRetries int
}

// NewTaskQueue builds a named queue whose retries back off exponentially
// from 1s up to 1m. A maxRetries of 0 retries forever.
func NewTaskQueue(taskName string, maxRetries int) *TaskQueue {
	return &TaskQueue{
		queue: workqueue.NewNamedRateLimitingQueue(
			workqueue.NewItemExponentialFailureRateLimiter(time.Second, time.Minute),
			taskName,
		),
		maxRetries: maxRetries,
		logger:     log.WithField("TaskQueue", taskName),
	}
}

// Add enqueues a task for immediate processing
func (q *TaskQueue) Add(task string) {
	q.queue.Add(task)
}

// Retry requeues a failed task with backoff. It returns false once the
// task ran out of retries and was dropped instead.
func (q *TaskQueue) Retry(task string) bool {
	if q.maxRetries > 0 && q.queue.NumRequeues(task) > q.maxRetries {
		q.logger.WithFields(log.Fields{"task": task, "maxRetries": q.maxRetries}).Info("Dropped a task out of retries")
		q.queue.Forget(task)
		return false
	}
	q.queue.AddRateLimited(task)
	return true
}

// Attempts reports how many times the task has been requeued so far
func (q *TaskQueue) Attempts(task string) int {
	return q.queue.NumRequeues(task)
}

// Get blocks for the next task. The second return is true once the queue
// has been shut down and drained.
func (q *TaskQueue) Get() (string, bool) {
	item, shutdown := q.queue.Get()
	if item == nil {
		return "", true
	}
	return item.(string), shutdown
}

// Done marks the task as processed so it can be enqueued again
func (q *TaskQueue) Done(task string) {
	q.queue.Done(task)
}

// Forget clears the task's backoff state after a success
func (q *TaskQueue) Forget(task string) {
	q.queue.Forget(task)
}

func (q *TaskQueue) Shutdown() {
	q.queue.ShutDown()
}
