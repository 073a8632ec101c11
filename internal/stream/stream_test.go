package stream

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/balkashynov/tinct/internal/dispatch"
)

type recorder[T any] struct {
	mu     sync.Mutex
	values []T
	errs   []error
}

func (r *recorder[T]) next(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder[T]) onErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recorder[T]) got() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.values...)
}

func TestRelayNoValueBeforeSet(t *testing.T) {
	r := NewRelay[int]()
	rec := &recorder[int]{}
	sub := r.Subscribe(rec.next, rec.onErr)
	defer sub.Release()

	if got := rec.got(); len(got) != 0 {
		t.Fatalf("expected no emission before first Set, got %v", got)
	}
	r.Set(1)
	r.Set(2)
	if got := rec.got(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", got)
	}
}

func TestRelayReplaysLatestOnSubscribe(t *testing.T) {
	r := NewRelayOf("a")
	r.Set("b")

	rec := &recorder[string]{}
	sub := r.Subscribe(rec.next, rec.onErr)
	defer sub.Release()

	if got := rec.got(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("got %v, want [b]", got)
	}
	if v, ok := r.Latest(); !ok || v != "b" {
		t.Fatalf("Latest() = %q, %v", v, ok)
	}
}

func TestRelayReleaseStopsDelivery(t *testing.T) {
	r := NewRelay[int]()
	rec := &recorder[int]{}
	sub := r.Subscribe(rec.next, rec.onErr)
	if r.Subscribers() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", r.Subscribers())
	}

	sub.Release()
	sub.Release()
	if !sub.Released() {
		t.Fatal("expected subscription to report released")
	}
	if r.Subscribers() != 0 {
		t.Fatalf("expected 0 subscribers after release, got %d", r.Subscribers())
	}
	r.Set(5)
	if got := rec.got(); len(got) != 0 {
		t.Fatalf("released subscriber received %v", got)
	}
}

func TestRelayConcurrentSetKeepsOrderPerSubscriber(t *testing.T) {
	r := NewRelay[int]()
	a, b := &recorder[int]{}, &recorder[int]{}
	defer r.Subscribe(a.next, a.onErr).Release()
	defer r.Subscribe(b.next, b.onErr).Release()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			r.Set(v)
		}(i)
	}
	wg.Wait()

	if !reflect.DeepEqual(a.got(), b.got()) {
		t.Fatalf("subscribers observed different orders:\n%v\n%v", a.got(), b.got())
	}
	if len(a.got()) != 50 {
		t.Fatalf("expected 50 values, got %d", len(a.got()))
	}
}

func TestSubscribeWithoutErrorHandlerPanics(t *testing.T) {
	boom := errors.New("boom")
	defer func() {
		if r := recover(); r != boom {
			t.Fatalf("expected panic with %v, got %v", boom, r)
		}
	}()
	Fail[int](boom).Subscribe(func(int) {}, nil)
}

func TestErrorIsTerminal(t *testing.T) {
	boom := errors.New("boom")
	var emitter *Emitter[int]
	s := New(func(e *Emitter[int]) { emitter = e })

	rec := &recorder[int]{}
	sub := s.Subscribe(rec.next, rec.onErr)
	emitter.Next(1)
	emitter.Error(boom)
	emitter.Error(boom)
	emitter.Next(2)

	if got := rec.got(); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("got %v, want [1]", got)
	}
	if len(rec.errs) != 1 || rec.errs[0] != boom {
		t.Fatalf("expected one error, got %v", rec.errs)
	}
	if !sub.Released() {
		t.Fatal("error should release the subscription")
	}
}

func TestMapAndMapErr(t *testing.T) {
	r := NewRelayOf(2)
	doubled := &recorder[int]{}
	defer Map[int, int](r, func(v int) int { return v * 2 }).Subscribe(doubled.next, doubled.onErr).Release()

	bad := errors.New("odd")
	evens := &recorder[int]{}
	sub := MapErr[int, int](r, func(v int) (int, error) {
		if v%2 != 0 {
			return 0, bad
		}
		return v, nil
	}).Subscribe(evens.next, evens.onErr)

	r.Set(3)
	r.Set(4)

	if got := doubled.got(); !reflect.DeepEqual(got, []int{4, 6, 8}) {
		t.Fatalf("Map got %v", got)
	}
	if got := evens.got(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("MapErr got %v", got)
	}
	if len(evens.errs) != 1 || !errors.Is(evens.errs[0], bad) {
		t.Fatalf("MapErr errors %v", evens.errs)
	}
	if !sub.Released() {
		t.Fatal("MapErr error should release the subscription")
	}
	if r.Subscribers() != 1 {
		t.Fatalf("expected only the Map subscriber to remain, got %d", r.Subscribers())
	}
}

func TestCombineLatest2(t *testing.T) {
	a := NewRelay[int]()
	b := NewRelay[string]()
	rec := &recorder[string]{}
	sub := CombineLatest2[int, string, string](a, b, func(n int, s string) string {
		return s + ":" + string(rune('0'+n))
	}).Subscribe(rec.next, rec.onErr)

	a.Set(1)
	if got := rec.got(); len(got) != 0 {
		t.Fatalf("emitted before both inputs: %v", got)
	}
	b.Set("x")
	a.Set(2)
	b.Set("y")

	want := []string{"x:1", "x:2", "y:2"}
	if got := rec.got(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	sub.Release()
	if a.Subscribers() != 0 || b.Subscribers() != 0 {
		t.Fatalf("release leaked upstream subscriptions: %d %d", a.Subscribers(), b.Subscribers())
	}
}

func TestCombineLatest(t *testing.T) {
	sum := func(vs []int) (int, error) {
		total := 0
		for _, v := range vs {
			total += v
		}
		return total, nil
	}

	t.Run("waits for every input", func(t *testing.T) {
		in := []*Relay[int]{NewRelay[int](), NewRelay[int](), NewRelay[int]()}
		streams := []Stream[int]{in[0], in[1], in[2]}
		rec := &recorder[int]{}
		defer CombineLatest(streams, sum).Subscribe(rec.next, rec.onErr).Release()

		in[0].Set(1)
		in[2].Set(3)
		if got := rec.got(); len(got) != 0 {
			t.Fatalf("emitted early: %v", got)
		}
		in[1].Set(2)
		in[1].Set(10)
		if got := rec.got(); !reflect.DeepEqual(got, []int{6, 14}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("no inputs", func(t *testing.T) {
		rec := &recorder[int]{}
		CombineLatest[int, int](nil, sum).Subscribe(rec.next, rec.onErr)
		var cerr *CombinationError
		if len(rec.errs) != 1 || !errors.As(rec.errs[0], &cerr) {
			t.Fatalf("expected CombinationError, got %v", rec.errs)
		}
	})

	t.Run("combiner error", func(t *testing.T) {
		bad := errors.New("mismatch")
		rec := &recorder[int]{}
		CombineLatest([]Stream[int]{Just(1)}, func([]int) (int, error) { return 0, bad }).
			Subscribe(rec.next, rec.onErr)
		var cerr *CombinationError
		if len(rec.errs) != 1 || !errors.As(rec.errs[0], &cerr) || !errors.Is(rec.errs[0], bad) {
			t.Fatalf("expected wrapped combiner error, got %v", rec.errs)
		}
	})
}

func TestDistinct(t *testing.T) {
	r := NewRelay[string]()
	rec := &recorder[string]{}
	defer Distinct[string](r).Subscribe(rec.next, rec.onErr).Release()

	for _, v := range []string{"red", "red", "green", "green", "red"} {
		r.Set(v)
	}
	want := []string{"red", "green", "red"}
	if got := rec.got(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSwitchMapReleasesPreviousInner(t *testing.T) {
	selector := NewRelayOf("a")
	inner := map[string]*Relay[int]{
		"a": NewRelayOf(1),
		"b": NewRelayOf(100),
	}
	rec := &recorder[int]{}
	sub := SwitchMap[string, int](selector, func(k string) Stream[int] { return inner[k] }).
		Subscribe(rec.next, rec.onErr)

	inner["a"].Set(2)
	selector.Set("b")
	inner["a"].Set(3) // no longer followed
	inner["b"].Set(101)

	want := []int{1, 2, 100, 101}
	if got := rec.got(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if inner["a"].Subscribers() != 0 {
		t.Fatal("previous inner subscription was not released")
	}

	sub.Release()
	if selector.Subscribers() != 0 || inner["b"].Subscribers() != 0 {
		t.Fatal("release leaked subscriptions")
	}
}

func TestGroup(t *testing.T) {
	var g Group
	a := NewRelay[int]()
	g.Add(a.Subscribe(func(int) {}, func(error) {}))
	g.Add(a.Subscribe(func(int) {}, func(error) {}))
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}

	g.Release()
	g.Release()
	if g.Len() != 0 || a.Subscribers() != 0 {
		t.Fatalf("group release left %d live, relay has %d", g.Len(), a.Subscribers())
	}

	late := a.Subscribe(func(int) {}, func(error) {})
	g.Add(late)
	if !late.Released() {
		t.Fatal("adding to a released group should release immediately")
	}
}

func TestDistinctAndDispatchDeliversOnDispatcher(t *testing.T) {
	q := dispatch.NewQueue()
	r := NewRelay[string]()
	rec := &recorder[string]{}
	defer DistinctAndDispatch[string](r, q).Subscribe(rec.next, rec.onErr).Release()

	for _, v := range []string{"#FF0000", "#FF0000", "#00FF00"} {
		r.Set(v)
	}
	if got := rec.got(); len(got) != 0 {
		t.Fatalf("delivered before drain: %v", got)
	}
	if n := q.Drain(); n != 2 {
		t.Fatalf("expected 2 queued deliveries, ran %d", n)
	}
	want := []string{"#FF0000", "#00FF00"}
	if got := rec.got(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestObserveOnDropsQueuedDeliveryAfterRelease(t *testing.T) {
	q := dispatch.NewQueue()
	r := NewRelay[int]()
	rec := &recorder[int]{}
	sub := ObserveOn[int](r, q).Subscribe(rec.next, rec.onErr)

	r.Set(1)
	sub.Release()
	q.Drain()

	if got := rec.got(); len(got) != 0 {
		t.Fatalf("delivered after release: %v", got)
	}
	if r.Subscribers() != 0 {
		t.Fatal("upstream not released")
	}
}

func TestObserveOnDeliversErrorsOnDispatcher(t *testing.T) {
	q := dispatch.NewQueue()
	boom := errors.New("boom")
	rec := &recorder[int]{}
	ObserveOn(Fail[int](boom), q).Subscribe(rec.next, rec.onErr)

	if len(rec.errs) != 0 {
		t.Fatal("error delivered off the dispatcher")
	}
	q.Drain()
	if len(rec.errs) != 1 || rec.errs[0] != boom {
		t.Fatalf("got errors %v", rec.errs)
	}
}

// blockingSubscriber records deliveries, fails on overlapping calls and
// parks on the value hold until release is closed.
type blockingSubscriber[T comparable] struct {
	t        *testing.T
	hold     T
	once     sync.Once
	entered  chan struct{}
	release  chan struct{}
	inFlight atomic.Int32
	rec      recorder[T]
}

func newBlockingSubscriber[T comparable](t *testing.T, hold T) *blockingSubscriber[T] {
	return &blockingSubscriber[T]{
		t:       t,
		hold:    hold,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingSubscriber[T]) next(v T) {
	if b.inFlight.Add(1) != 1 {
		b.t.Errorf("overlapping delivery of %v", v)
	}
	defer b.inFlight.Add(-1)
	b.rec.next(v)
	if v == b.hold {
		b.once.Do(func() { close(b.entered) })
		<-b.release
	}
}

func TestSwitchMapDropsReplacedInnerValues(t *testing.T) {
	mode := NewRelayOf(0)
	primary := NewRelayOf("p1")
	accent := NewRelayOf("a1")
	sub := newBlockingSubscriber(t, "p2")

	s := SwitchMap[int, string](mode, func(m int) Stream[string] {
		if m == 1 {
			return accent
		}
		return primary
	})
	defer s.Subscribe(sub.next, sub.rec.onErr).Release()

	go primary.Set("p2")
	select {
	case <-sub.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("p2 was never delivered")
	}

	switched := make(chan struct{})
	go func() {
		mode.Set(1)
		close(switched)
	}()
	// let the switch reach the in-flight delivery before releasing it
	time.Sleep(50 * time.Millisecond)
	close(sub.release)

	select {
	case <-switched:
	case <-time.After(2 * time.Second):
		t.Fatal("mode switch did not complete")
	}

	want := []string{"p1", "p2", "a1"}
	if got := sub.rec.got(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if primary.Subscribers() != 0 {
		t.Fatal("replaced inner subscription still attached")
	}

	primary.Set("p3")
	if got := sub.rec.got(); got[len(got)-1] != "a1" {
		t.Fatalf("replaced inner stream delivered %q", got[len(got)-1])
	}
}

func TestDistinctSerializesConcurrentDeliveries(t *testing.T) {
	var emitter *Emitter[string]
	src := New(func(e *Emitter[string]) { emitter = e })
	sub := newBlockingSubscriber(t, "x")
	defer Distinct(src).Subscribe(sub.next, sub.rec.onErr).Release()

	go emitter.Next("x")
	select {
	case <-sub.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("x was never delivered")
	}

	done := make(chan struct{})
	go func() {
		emitter.Next("y")
		close(done)
	}()
	time.Sleep(50 * time.Millisecond)
	if got := sub.rec.got(); len(got) != 1 {
		t.Fatalf("y delivered while x was in flight: %v", got)
	}
	close(sub.release)
	<-done

	emitter.Next("y")
	emitter.Next("x")
	want := []string{"x", "y", "x"}
	if got := sub.rec.got(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
