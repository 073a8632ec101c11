// Package lifecycle binds stream subscriptions to a widget's visible window.
package lifecycle

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/balkashynov/tinct/internal/stream"
)

// State is the attachment state of a Scope.
type State int

const (
	Detached State = iota
	Attached
)

func (s State) String() string {
	if s == Attached {
		return "attached"
	}
	return "detached"
}

// Violation reports a lifecycle misuse: an attach while already attached.
type Violation struct {
	Owner string
	Op    string
	State State
}

func (e *Violation) Error() string {
	return fmt.Sprintf("%s: %s while %s", e.Owner, e.Op, e.State)
}

// Pipeline is one named subscription a scope starts on every attach.
type Pipeline struct {
	Name  string
	Start func() stream.Subscription
}

// Scope owns the subscriptions of one widget. Attach starts every pipeline
// afresh; Detach releases them. While detached a scope holds nothing.
//
// Attach and Detach are meant to be called from the widget's owning context.
type Scope struct {
	owner     string
	pipelines []Pipeline
	debug     bool
	logger    *slog.Logger

	mu    sync.Mutex
	state State
	subs  []stream.Subscription
	gen   uint64
}

// Option configures a Scope.
type Option func(*Scope)

// WithDebug makes a double attach panic instead of being ignored.
func WithDebug(debug bool) Option {
	return func(s *Scope) { s.debug = debug }
}

// WithLogger sets the logger used for lifecycle warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scope) { s.logger = l }
}

// NewScope returns a detached scope for owner.
func NewScope(owner string, opts ...Option) *Scope {
	s := &Scope{owner: owner, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add declares a pipeline. Pipelines added while attached start on the next
// attach.
func (s *Scope) Add(name string, start func() stream.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pipelines = append(s.pipelines, Pipeline{Name: name, Start: start})
}

// Pipelines returns the number of declared pipelines.
func (s *Scope) Pipelines() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pipelines)
}

// State returns the current state.
func (s *Scope) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Attach starts every declared pipeline. Attaching an attached scope is a
// caller bug: it panics with *Violation in debug mode and is logged
// and ignored otherwise.
//
// Subscriptions are recorded as they start, so if a pipeline panics the ones
// already running are still released by Detach.
func (s *Scope) Attach() {
	s.mu.Lock()
	if s.state == Attached {
		s.mu.Unlock()
		err := &Violation{Owner: s.owner, Op: "attach", State: Attached}
		if s.debug {
			panic(err)
		}
		s.logger.Warn("ignoring attach", "owner", s.owner, "err", err)
		return
	}
	s.state = Attached
	s.gen++
	gen := s.gen
	pipelines := make([]Pipeline, len(s.pipelines))
	copy(pipelines, s.pipelines)
	s.mu.Unlock()

	for _, p := range pipelines {
		sub := p.Start()
		if sub == nil {
			continue
		}
		s.mu.Lock()
		if s.state != Attached || s.gen != gen {
			// detached while this pipeline was starting
			s.mu.Unlock()
			sub.Release()
			continue
		}
		s.subs = append(s.subs, sub)
		s.mu.Unlock()
	}
}

// Detach releases every subscription and returns the scope to Detached.
// Detaching a detached scope, or one whose attach never finished, is a no-op
// for whatever was not started.
func (s *Scope) Detach() {
	s.mu.Lock()
	if s.state == Detached {
		s.mu.Unlock()
		return
	}
	s.state = Detached
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Release()
	}
}

// Active returns the number of live subscriptions held by the scope.
func (s *Scope) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sub := range s.subs {
		if !sub.Released() {
			n++
		}
	}
	return n
}
