package stream

import "github.com/balkashynov/tinct/internal/dispatch"

// ObserveOn moves delivery of every value and error of s onto d, preserving
// emission order. Each posted delivery re-checks the subscription on the
// dispatcher before calling the subscriber, so nothing is delivered once the
// subscription has been released, even if the delivery was already queued.
func ObserveOn[T any](s Stream[T], d dispatch.Dispatcher) Stream[T] {
	return New(func(e *Emitter[T]) {
		up := s.Subscribe(func(v T) {
			d.Dispatch(func() {
				if e.Released() {
					return
				}
				e.Next(v)
			})
		}, func(err error) {
			d.Dispatch(func() { e.Error(err) })
		})
		e.OnRelease(up.Release)
	})
}

// DistinctAndDispatch drops values equal to the previously delivered one and
// delivers the rest on d in emission order.
func DistinctAndDispatch[T comparable](s Stream[T], d dispatch.Dispatcher) Stream[T] {
	return ObserveOn(Distinct(s), d)
}

// DistinctAndDispatchFunc is DistinctAndDispatch for values that are not
// comparable with ==.
func DistinctAndDispatchFunc[T any](s Stream[T], d dispatch.Dispatcher, equal func(a, b T) bool) Stream[T] {
	return ObserveOn(DistinctFunc(s, equal), d)
}
