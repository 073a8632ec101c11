// Package stream implements push-based change streams.
//
// A Stream emits zero or more values over time to each subscriber. Every
// Subscribe call is independent and returns its own Subscription; releasing it
// stops delivery for that subscriber only. An error is terminal for the
// subscription that observed it.
package stream

import (
	"sync"
	"sync/atomic"
)

// Stream is a restartable source of values of type T.
type Stream[T any] interface {
	// Subscribe attaches next and onErr to the stream. A nil onErr panics
	// with the error so failures are never swallowed.
	Subscribe(next func(T), onErr func(error)) Subscription
}

// Subscription is the ownership handle for one attachment to one stream.
// Release may be called any number of times; only the first call has effect.
type Subscription interface {
	Release()
	Released() bool
}

// Emitter is handed to a stream's producer for one subscription.
type Emitter[T any] struct {
	sub    *subscription
	next   func(T)
	onErr  func(error)
	failed atomic.Bool
}

// Next delivers v unless the subscription has been released or failed.
func (e *Emitter[T]) Next(v T) {
	if e.sub.Released() || e.failed.Load() {
		return
	}
	e.next(v)
}

// Error terminates the subscription and reports err once.
func (e *Emitter[T]) Error(err error) {
	if e.sub.Released() || !e.failed.CompareAndSwap(false, true) {
		return
	}
	defer e.sub.Release()
	if e.onErr == nil {
		panic(err)
	}
	e.onErr(err)
}

// OnRelease registers fn to run when the subscription is released. If it
// has already been released fn runs immediately.
func (e *Emitter[T]) OnRelease(fn func()) { e.sub.onRelease(fn) }

// Released reports whether the subscriber has gone away.
func (e *Emitter[T]) Released() bool { return e.sub.Released() }

// Subscription returns the handle shared with the subscriber.
func (e *Emitter[T]) Subscription() Subscription { return e.sub }

// Func adapts a producer function to a Stream. The producer runs once per
// Subscribe call.
type Func[T any] func(e *Emitter[T])

// Subscribe implements Stream.
func (f Func[T]) Subscribe(next func(T), onErr func(error)) Subscription {
	if next == nil {
		next = func(T) {}
	}
	sub := &subscription{}
	f(&Emitter[T]{sub: sub, next: next, onErr: onErr})
	return sub
}

// New builds a Stream from a producer.
func New[T any](produce func(e *Emitter[T])) Stream[T] {
	return Func[T](produce)
}

type subscription struct {
	released atomic.Bool
	mu       sync.Mutex
	teardown []func()
}

func (s *subscription) Released() bool { return s.released.Load() }

func (s *subscription) Release() {
	if !s.released.CompareAndSwap(false, true) {
		return
	}
	s.mu.Lock()
	fns := s.teardown
	s.teardown = nil
	s.mu.Unlock()
	// teardown runs in reverse registration order
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

func (s *subscription) onRelease(fn func()) {
	s.mu.Lock()
	if s.released.Load() {
		s.mu.Unlock()
		fn()
		return
	}
	s.teardown = append(s.teardown, fn)
	s.mu.Unlock()
}

// Released returns a Subscription that is already released.
func Released() Subscription {
	s := &subscription{}
	s.Release()
	return s
}

// Group owns a set of subscriptions and releases them together.
// The zero value is ready to use.
type Group struct {
	mu       sync.Mutex
	subs     []Subscription
	released bool
}

// Add stores sub. Adding to a released group releases sub immediately.
func (g *Group) Add(sub Subscription) {
	if sub == nil {
		return
	}
	g.mu.Lock()
	if g.released {
		g.mu.Unlock()
		sub.Release()
		return
	}
	g.subs = append(g.subs, sub)
	g.mu.Unlock()
}

// Len returns the number of stored subscriptions that are still live.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, s := range g.subs {
		if !s.Released() {
			n++
		}
	}
	return n
}

// Release releases every stored subscription. Safe to call repeatedly.
func (g *Group) Release() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.released = true
	g.mu.Unlock()
	for _, s := range subs {
		s.Release()
	}
}

// Released reports whether Release has been called.
func (g *Group) Released() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.released
}
