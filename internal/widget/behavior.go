// Package widget provides themed widgets. Each widget holds a Behavior and
// delegates its attach/detach hooks to it; the Behavior owns the theme
// pipelines and delivers resolved values to the widget's setters on the UI
// context.
package widget

import (
	"errors"
	"log/slog"

	"github.com/balkashynov/tinct/internal/attr"
	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/dispatch"
	"github.com/balkashynov/tinct/internal/errpolicy"
	"github.com/balkashynov/tinct/internal/lifecycle"
	"github.com/balkashynov/tinct/internal/stream"
	"github.com/balkashynov/tinct/internal/theme"
)

// ErrNoResources is returned when a widget has an explicit override but the
// host supplied no resource resolver.
var ErrNoResources = errors.New("no resource resolver configured")

// ColorResolver turns a resource identifier into a fixed color.
type ColorResolver func(id int) (colors.Color, error)

// Deps is what the host passes to every widget it constructs.
type Deps struct {
	Store      *theme.Store
	Dispatcher dispatch.Dispatcher
	Policy     *errpolicy.Policy
	Resources  ColorResolver
	Logger     *slog.Logger
	Debug      bool
}

// Behavior is the theming half of a widget.
type Behavior struct {
	name  string
	deps  Deps
	scope *lifecycle.Scope
}

// NewBehavior returns a detached behavior for a widget called name.
func NewBehavior(name string, deps Deps) *Behavior {
	if deps.Dispatcher == nil {
		deps.Dispatcher = dispatch.Immediate
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Policy == nil {
		deps.Policy = errpolicy.New(errpolicy.FailFast, deps.Logger)
	}
	if deps.Resources == nil {
		deps.Resources = func(int) (colors.Color, error) { return 0, ErrNoResources }
	}
	return &Behavior{
		name:  name,
		deps:  deps,
		scope: lifecycle.NewScope(name, lifecycle.WithDebug(deps.Debug), lifecycle.WithLogger(deps.Logger)),
	}
}

// Name returns the widget name used in logs.
func (b *Behavior) Name() string { return b.name }

// Store returns the theme store the widget reads from.
func (b *Behavior) Store() *theme.Store { return b.deps.Store }

// Attach starts every pipeline. Call from the host's visible-attach hook.
func (b *Behavior) Attach() { b.scope.Attach() }

// Detach releases every pipeline. Call from the host's visible-detach hook.
func (b *Behavior) Detach() { b.scope.Detach() }

// Attached reports whether the pipelines are running.
func (b *Behavior) Attached() bool { return b.scope.State() == lifecycle.Attached }

// Active returns the number of live subscriptions.
func (b *Behavior) Active() int { return b.scope.Active() }

// Pipelines returns the number of declared pipelines.
func (b *Behavior) Pipelines() int { return b.scope.Pipelines() }

// ResolveColor picks the explicit override o or the live fallback.
func (b *Behavior) ResolveColor(o attr.Override, fallback stream.Stream[colors.Color]) stream.Stream[colors.Color] {
	return attr.Resolve(o, fallback, b.deps.Resources)
}

// Bind declares a pipeline that delivers distinct values of build() to set on
// the UI context. build runs on every attach so each attach gets fresh
// resolvers and combinators.
func Bind[T comparable](b *Behavior, property string, build func() stream.Stream[T], set func(T)) {
	onErr := b.deps.Policy.Handler(b.name, property)
	b.scope.Add(property, func() stream.Subscription {
		return stream.DistinctAndDispatch(build(), b.deps.Dispatcher).Subscribe(set, onErr)
	})
}

// BindFunc is Bind for values compared with equal.
func BindFunc[T any](b *Behavior, property string, build func() stream.Stream[T], equal func(a, b T) bool, set func(T)) {
	onErr := b.deps.Policy.Handler(b.name, property)
	b.scope.Add(property, func() stream.Subscription {
		return stream.DistinctAndDispatchFunc(build(), b.deps.Dispatcher, equal).Subscribe(set, onErr)
	})
}

// Widget is what hosts drive.
type Widget interface {
	Attach()
	Detach()
	View() string
}
