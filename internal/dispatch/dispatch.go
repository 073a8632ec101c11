// Package dispatch delivers work onto a single owning execution context.
//
// Widgets are only touched from one goroutine (the UI loop). Producers on any
// goroutine hand work to a Dispatcher, which runs it on that loop in the order
// it was posted. Dispatch never blocks the caller.
package dispatch

import (
	"context"
	"sync"
)

// Dispatcher runs fn on its owning context.
type Dispatcher interface {
	Dispatch(fn func())
}

// Func adapts an ordinary function to a Dispatcher.
type Func func(fn func())

// Dispatch implements Dispatcher.
func (f Func) Dispatch(fn func()) { f(fn) }

// Immediate runs work inline on the calling goroutine. Only suitable when
// every producer already runs on the owning context.
var Immediate Dispatcher = Func(func(fn func()) { fn() })

// PanicHandler receives a value recovered from a panicking task.
type PanicHandler func(recovered any)

// Queue is an unbounded FIFO of pending work. Whoever calls Drain is the
// owning context for the tasks it runs.
type Queue struct {
	mu      sync.Mutex
	tasks   []func()
	wake    chan struct{}
	onPanic PanicHandler
	closed  bool
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithPanicHandler recovers panics from individual tasks and reports them to
// h, so the remaining tasks still run. Without it a panic propagates out of
// Drain.
func WithPanicHandler(h PanicHandler) QueueOption {
	return func(q *Queue) { q.onPanic = h }
}

// NewQueue returns an empty queue.
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{wake: make(chan struct{}, 1)}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Dispatch appends fn. Work posted after Close is dropped.
func (q *Queue) Dispatch(fn func()) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued tasks.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Drain runs queued tasks in order until the queue is empty, including work
// posted by the tasks themselves. It returns the number of tasks run. Tasks
// are taken one at a time, so a panic escaping Drain leaves the rest queued.
func (q *Queue) Drain() int {
	n := 0
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return n
		}
		fn := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		q.run(fn)
		n++
	}
}

// Close drops pending work and rejects further Dispatch calls.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.tasks = nil
	q.mu.Unlock()
}

// Ready is signalled after Dispatch when the queue may hold work.
func (q *Queue) Ready() <-chan struct{} { return q.wake }

func (q *Queue) run(fn func()) {
	if q.onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				q.onPanic(r)
			}
		}()
	}
	fn()
}

// Loop runs a Queue on a dedicated goroutine, which becomes the owning
// context for all dispatched work.
type Loop struct {
	*Queue
}

// NewLoop returns a loop; call Run to start processing.
func NewLoop(opts ...QueueOption) *Loop {
	return &Loop{Queue: NewQueue(opts...)}
}

// Run processes work until ctx is done. It should be called exactly once,
// from the goroutine that owns the widgets.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Drain()
		select {
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case <-l.Ready():
		}
	}
}
