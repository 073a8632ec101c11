package stream

import "sync"

// Relay holds the latest value of a shared property and pushes every change
// to its subscribers. A new subscriber receives the current value at once if
// one has been set; before the first Set it receives nothing.
//
// Set calls are serialized, so every subscriber observes values in Set
// order. A subscriber must not call Set on the relay it is observing.
type Relay[T any] struct {
	emitMu sync.Mutex // serializes Set and the replay in Subscribe

	mu     sync.Mutex
	value  T
	has    bool
	nextID uint64
	subs   map[uint64]*Emitter[T]
}

// NewRelay returns a relay with no value.
func NewRelay[T any]() *Relay[T] {
	return &Relay[T]{subs: make(map[uint64]*Emitter[T])}
}

// NewRelayOf returns a relay seeded with v.
func NewRelayOf[T any](v T) *Relay[T] {
	r := NewRelay[T]()
	r.value, r.has = v, true
	return r
}

// Latest returns the current value, or false if nothing was set yet.
// Callers that need updates should subscribe instead of polling.
func (r *Relay[T]) Latest() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, r.has
}

// Set stores v and emits it to every live subscriber. Safe for use from any
// goroutine.
func (r *Relay[T]) Set(v T) {
	r.emitMu.Lock()
	defer r.emitMu.Unlock()

	r.mu.Lock()
	r.value, r.has = v, true
	targets := make([]*Emitter[T], 0, len(r.subs))
	for _, e := range r.subs {
		targets = append(targets, e)
	}
	r.mu.Unlock()

	for _, e := range targets {
		e.Next(v)
	}
}

// Subscribers returns the number of attached subscribers.
func (r *Relay[T]) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Subscribe implements Stream.
func (r *Relay[T]) Subscribe(next func(T), onErr func(error)) Subscription {
	return Func[T](r.attach).Subscribe(next, onErr)
}

func (r *Relay[T]) attach(e *Emitter[T]) {
	r.emitMu.Lock()
	defer r.emitMu.Unlock()

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = e
	v, has := r.value, r.has
	r.mu.Unlock()

	e.OnRelease(func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	})
	if has {
		e.Next(v)
	}
}
