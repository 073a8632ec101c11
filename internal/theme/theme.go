// Package theme is the shared source of live theme state. A Store is built
// once by the host, passed to whatever constructs widgets, and lives for the
// rest of the process. Widgets only read from it.
package theme

import (
	"errors"
	"fmt"

	"github.com/balkashynov/tinct/internal/colors"
	"github.com/balkashynov/tinct/internal/stream"
)

// ColorProperty names a themeable color.
type ColorProperty string

const (
	ColorPrimary            ColorProperty = "colorPrimary"
	ColorPrimaryDark        ColorProperty = "colorPrimaryDark"
	ColorAccent             ColorProperty = "colorAccent"
	ColorWindowBackground   ColorProperty = "colorWindowBackground"
	TextColorPrimary        ColorProperty = "textColorPrimary"
	TextColorSecondary      ColorProperty = "textColorSecondary"
	TextColorPrimaryInverse ColorProperty = "textColorPrimaryInverse"
)

var colorProperties = [...]ColorProperty{
	ColorPrimary,
	ColorPrimaryDark,
	ColorAccent,
	ColorWindowBackground,
	TextColorPrimary,
	TextColorSecondary,
	TextColorPrimaryInverse,
}

// TabLayoutMode selects which store color a tab layout element follows.
type TabLayoutMode int

const (
	TabLayoutModePrimary TabLayoutMode = iota
	TabLayoutModeAccent
)

func (m TabLayoutMode) String() string {
	switch m {
	case TabLayoutModePrimary:
		return "primary"
	case TabLayoutModeAccent:
		return "accent"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseTabLayoutMode accepts "primary" or "accent".
func ParseTabLayoutMode(s string) (TabLayoutMode, error) {
	switch s {
	case "primary":
		return TabLayoutModePrimary, nil
	case "accent":
		return TabLayoutModeAccent, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

var (
	// ErrUnknownProperty is returned for a property the store does not hold.
	ErrUnknownProperty = errors.New("unknown theme property")
	// ErrUnknownMode is returned for a mode value with no color mapping.
	ErrUnknownMode = errors.New("unknown mode")
)

// Store holds one relay per themeable property. Streams never emit an absent
// value: a property that was never set simply has not emitted yet.
type Store struct {
	colors          map[ColorProperty]*stream.Relay[colors.Color]
	isDark          *stream.Relay[bool]
	tabBgMode       *stream.Relay[TabLayoutMode]
	tabIndicatorMod *stream.Relay[TabLayoutMode]
}

// NewStore returns an empty store. Nothing is emitted until the first edit.
func NewStore() *Store {
	s := &Store{
		colors:          make(map[ColorProperty]*stream.Relay[colors.Color], len(colorProperties)),
		isDark:          stream.NewRelay[bool](),
		tabBgMode:       stream.NewRelay[TabLayoutMode](),
		tabIndicatorMod: stream.NewRelay[TabLayoutMode](),
	}
	for _, p := range colorProperties {
		s.colors[p] = stream.NewRelay[colors.Color]()
	}
	return s
}

// Color returns the stream for p. An unknown property yields a stream that
// fails with ErrUnknownProperty on subscribe.
func (s *Store) Color(p ColorProperty) stream.Stream[colors.Color] {
	r, ok := s.colors[p]
	if !ok {
		return stream.Fail[colors.Color](fmt.Errorf("%w: %s", ErrUnknownProperty, p))
	}
	return r
}

func (s *Store) ColorPrimary() stream.Stream[colors.Color]       { return s.Color(ColorPrimary) }
func (s *Store) ColorPrimaryDark() stream.Stream[colors.Color]   { return s.Color(ColorPrimaryDark) }
func (s *Store) ColorAccent() stream.Stream[colors.Color]        { return s.Color(ColorAccent) }
func (s *Store) WindowBackground() stream.Stream[colors.Color]   { return s.Color(ColorWindowBackground) }
func (s *Store) TextColorPrimary() stream.Stream[colors.Color]   { return s.Color(TextColorPrimary) }
func (s *Store) TextColorSecondary() stream.Stream[colors.Color] { return s.Color(TextColorSecondary) }

// IsDark emits whether the dark variant is active.
func (s *Store) IsDark() stream.Stream[bool] { return s.isDark }

// TabLayoutBackgroundMode emits which color tab layout backgrounds follow.
func (s *Store) TabLayoutBackgroundMode() stream.Stream[TabLayoutMode] { return s.tabBgMode }

// TabLayoutIndicatorMode emits which color tab indicators follow.
func (s *Store) TabLayoutIndicatorMode() stream.Stream[TabLayoutMode] { return s.tabIndicatorMod }

// LatestColor returns the current value of p without subscribing.
func (s *Store) LatestColor(p ColorProperty) (colors.Color, bool) {
	r, ok := s.colors[p]
	if !ok {
		return 0, false
	}
	return r.Latest()
}

// LatestIsDark returns the current dark flag without subscribing.
func (s *Store) LatestIsDark() (bool, bool) { return s.isDark.Latest() }

// Subscribers returns the number of live subscriptions across every property.
func (s *Store) Subscribers() int {
	n := s.isDark.Subscribers() + s.tabBgMode.Subscribers() + s.tabIndicatorMod.Subscribers()
	for _, r := range s.colors {
		n += r.Subscribers()
	}
	return n
}

// Edit starts a batch of changes that is published by Apply.
func (s *Store) Edit() *Editor {
	return &Editor{store: s}
}

// Apply publishes every value in p.
func (s *Store) Apply(p Preset) error {
	e := s.Edit()
	for _, prop := range colorProperties {
		if c, ok := p.Colors[prop]; ok {
			e.Color(prop, c)
		}
	}
	// unknown keys fail the whole apply
	for prop, c := range p.Colors {
		if _, known := s.colors[prop]; !known {
			e.Color(prop, c)
		}
	}
	return e.IsDark(p.Dark).
		TabLayoutBackgroundMode(p.TabBackground).
		TabLayoutIndicatorMode(p.TabIndicator).
		Apply()
}
