package dispatch

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// FlushMsg tells a bubbletea model that dispatched work is waiting. Models
// pass it to Program.Handle from Update.
type FlushMsg struct{}

// Program dispatches onto a bubbletea event loop. Work is queued and the
// program is woken with a FlushMsg; the model's Update runs the queued work,
// so it executes on the same goroutine that renders the widgets.
//
// tea.Program.Send blocks until the event loop receives the message, and
// Dispatch may be called from inside Update, so the wake-up is sent from its
// own goroutine and at most one is outstanding.
type Program struct {
	queue   *Queue
	send    func(tea.Msg)
	waiting atomic.Bool
}

// NewProgram returns a dispatcher for p. Bind may be used instead when the
// program is created after the dispatcher.
func NewProgram(p *tea.Program, opts ...QueueOption) *Program {
	d := &Program{queue: NewQueue(opts...)}
	if p != nil {
		d.Bind(p.Send)
	}
	return d
}

// Bind sets the function used to wake the event loop.
func (d *Program) Bind(send func(tea.Msg)) {
	d.send = send
	if d.queue.Pending() > 0 {
		d.wake()
	}
}

// Dispatch implements Dispatcher.
func (d *Program) Dispatch(fn func()) {
	d.queue.Dispatch(fn)
	d.wake()
}

func (d *Program) wake() {
	if d.send == nil || !d.waiting.CompareAndSwap(false, true) {
		return
	}
	go d.send(FlushMsg{})
}

// Handle runs queued work if msg is a FlushMsg and reports whether it was.
// Call it first thing in the model's Update.
func (d *Program) Handle(msg tea.Msg) bool {
	if _, ok := msg.(FlushMsg); !ok {
		return false
	}
	d.waiting.Store(false)
	d.queue.Drain()
	return true
}

// Close drops pending work.
func (d *Program) Close() { d.queue.Close() }
