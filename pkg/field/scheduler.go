package field

import "sync"

// Scheduler defers a follow-up action until the current render pass is done.
// Deferred actions always run; they cannot be cancelled.
type Scheduler interface {
	Defer(task func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(task func())

// Defer calls the underlying function.
func (fn SchedulerFunc) Defer(task func()) {
	fn(task)
}

// Immediate runs deferred tasks inline. Useful for front-ends without a paint
// cycle, such as line-based terminal prompts.
var Immediate Scheduler = SchedulerFunc(func(task func()) {
	if task != nil {
		task()
	}
})

// PaintQueue collects deferred tasks until Flush is called after a paint.
// Tasks scheduled while flushing run on the following Flush.
type PaintQueue struct {
	mu    sync.Mutex
	tasks []func()
}

// NewPaintQueue returns an empty queue.
func NewPaintQueue() *PaintQueue {
	return &PaintQueue{}
}

// Defer enqueues task.
func (q *PaintQueue) Defer(task func()) {
	if task == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
}

// Pending reports how many tasks wait for the next flush.
func (q *PaintQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Flush runs queued tasks in FIFO order and returns how many ran.
func (q *PaintQueue) Flush() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}
