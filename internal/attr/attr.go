// Package attr decides, per widget and per visual property, whether an
// explicit author value or the live theme applies.
package attr

import (
	"fmt"

	"github.com/balkashynov/tinct/internal/stream"
)

// Override is a widget's explicit value request for one property: a resource
// identifier, or unset. The zero value is Unset.
type Override struct {
	id  int
	set bool
}

// Unset means the property tracks the theme.
var Unset = Override{}

// Explicit points a property at resource id.
func Explicit(id int) Override {
	return Override{id: id, set: true}
}

// ID returns the identifier and whether the override is set.
func (o Override) ID() (int, bool) { return o.id, o.set }

// IsSet reports whether an explicit value was requested.
func (o Override) IsSet() bool { return o.set }

func (o Override) String() string {
	if !o.set {
		return "unset"
	}
	return fmt.Sprintf("@%d", o.id)
}

// ResolutionError reports an explicit identifier that could not be resolved
// to a value.
type ResolutionError struct {
	ID  int
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve @%d: %v", e.ID, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolve returns the stream a widget property should follow.
//
// With o set, resolveExplicit runs once per subscription and its value is
// emitted once; the stream then stays open without tracking the theme. With
// o unset, fallback is returned unchanged.
//
// Identifiers must already be classified as fixed values; resolveExplicit
// does not fall back to the theme.
func Resolve[T any](o Override, fallback stream.Stream[T], resolveExplicit func(id int) (T, error)) stream.Stream[T] {
	id, ok := o.ID()
	if !ok {
		return fallback
	}
	return stream.New(func(e *stream.Emitter[T]) {
		v, err := resolveExplicit(id)
		if err != nil {
			e.Error(&ResolutionError{ID: id, Err: err})
			return
		}
		e.Next(v)
	})
}
