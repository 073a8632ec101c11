package stream

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// CombinationError reports a combinator whose inputs are structurally invalid
// or whose combiner failed.
type CombinationError struct {
	Op  string
	Err error
}

func (e *CombinationError) Error() string {
	return fmt.Sprintf("combine %s: %v", e.Op, e.Err)
}

func (e *CombinationError) Unwrap() error { return e.Err }

// Just emits v once to each subscriber and then stays open.
func Just[T any](v T) Stream[T] {
	return New(func(e *Emitter[T]) { e.Next(v) })
}

// Fail emits err to each subscriber.
func Fail[T any](err error) Stream[T] {
	return New(func(e *Emitter[T]) { e.Error(err) })
}

// Never emits nothing and stays open.
func Never[T any]() Stream[T] {
	return New(func(*Emitter[T]) {})
}

// forward subscribes to src on behalf of e, tying the upstream subscription
// to e's lifetime.
func forward[T, U any](e *Emitter[U], src Stream[T], next func(T)) {
	up := src.Subscribe(next, e.Error)
	e.OnRelease(up.Release)
}

// Map applies f to every value of s.
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
	return New(func(e *Emitter[U]) {
		forward(e, s, func(v T) { e.Next(f(v)) })
	})
}

// MapErr applies f to every value of s; an error from f terminates the
// subscription.
func MapErr[T, U any](s Stream[T], f func(T) (U, error)) Stream[U] {
	return New(func(e *Emitter[U]) {
		forward(e, s, func(v T) {
			out, err := f(v)
			if err != nil {
				e.Error(err)
				return
			}
			e.Next(out)
		})
	})
}

// CombineLatest2 emits f(a, b) each time either input emits, once both have
// emitted at least once.
func CombineLatest2[A, B, R any](a Stream[A], b Stream[B], f func(A, B) R) Stream[R] {
	return New(func(e *Emitter[R]) {
		var (
			mu         sync.Mutex
			lastA      A
			lastB      B
			hasA, hasB bool
		)
		forward(e, a, func(v A) {
			mu.Lock()
			defer mu.Unlock()
			lastA, hasA = v, true
			if hasB {
				e.Next(f(lastA, lastB))
			}
		})
		forward(e, b, func(v B) {
			mu.Lock()
			defer mu.Unlock()
			lastB, hasB = v, true
			if hasA {
				e.Next(f(lastA, lastB))
			}
		})
	})
}

// CombineLatest is the n-ary form of CombineLatest2 over streams of one type.
// The combiner receives a fresh slice holding the latest value of each input
// in argument order. No inputs, or a combiner error, fails with
// *CombinationError.
func CombineLatest[T, R any](streams []Stream[T], f func([]T) (R, error)) Stream[R] {
	return New(func(e *Emitter[R]) {
		if len(streams) == 0 {
			e.Error(&CombinationError{Op: "latest", Err: fmt.Errorf("no input streams")})
			return
		}
		var (
			mu      sync.Mutex
			latest  = make([]T, len(streams))
			has     = make([]bool, len(streams))
			pending = len(streams)
		)
		for i, s := range streams {
			i := i
			forward(e, s, func(v T) {
				mu.Lock()
				defer mu.Unlock()
				latest[i] = v
				if !has[i] {
					has[i] = true
					pending--
				}
				if pending > 0 {
					return
				}
				snapshot := make([]T, len(latest))
				copy(snapshot, latest)
				out, err := f(snapshot)
				if err != nil {
					e.Error(&CombinationError{Op: "latest", Err: err})
					return
				}
				e.Next(out)
			})
			if e.Released() {
				return
			}
		}
	})
}

// Distinct suppresses a value equal to the last value it let through. The
// first value always passes.
func Distinct[T comparable](s Stream[T]) Stream[T] {
	return DistinctFunc(s, func(a, b T) bool { return a == b })
}

// DistinctFunc is Distinct with a caller-supplied equality.
func DistinctFunc[T any](s Stream[T], equal func(a, b T) bool) Stream[T] {
	return New(func(e *Emitter[T]) {
		var (
			mu   sync.Mutex
			last T
			seen bool
		)
		// mu is held across delivery so last always matches what the
		// subscriber saw most recently
		forward(e, s, func(v T) {
			mu.Lock()
			defer mu.Unlock()
			if seen && equal(last, v) {
				return
			}
			last, seen = v, true
			e.Next(v)
		})
	})
}

// SwitchMap subscribes to f(v) for every value v of s, releasing the
// previous inner subscription first. Releasing the result releases both.
//
// Each inner subscription carries a generation. An inner value is delivered
// only while its generation is current, and a switch waits for an in-flight
// inner delivery to finish, so nothing from a replaced inner stream arrives
// after the switch. The subscriber must not emit on s from its callback.
func SwitchMap[T, U any](s Stream[T], f func(T) Stream[U]) Stream[U] {
	return New(func(e *Emitter[U]) {
		var (
			emitMu sync.Mutex // held while an inner value is delivered
			gen    atomic.Uint64

			mu    sync.Mutex
			inner Subscription
		)
		swap := func(next Subscription) {
			mu.Lock()
			prev := inner
			inner = next
			mu.Unlock()
			if prev != nil {
				prev.Release()
			}
		}
		e.OnRelease(func() {
			gen.Add(1)
			swap(nil)
		})
		forward(e, s, func(v T) {
			emitMu.Lock()
			cur := gen.Add(1)
			emitMu.Unlock()

			swap(nil)
			if e.Released() {
				return
			}
			sub := f(v).Subscribe(func(u U) {
				emitMu.Lock()
				defer emitMu.Unlock()
				if gen.Load() != cur {
					return
				}
				e.Next(u)
			}, func(err error) {
				if gen.Load() == cur {
					e.Error(err)
				}
			})
			if e.Released() || gen.Load() != cur {
				sub.Release()
				return
			}
			swap(sub)
		})
	})
}
