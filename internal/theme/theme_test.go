package theme

import (
	"errors"
	"reflect"
	"testing"

	"github.com/balkashynov/tinct/internal/colors"
)

func TestStoreEmitsNothingBeforeFirstSet(t *testing.T) {
	s := NewStore()
	emitted := 0
	sub := s.ColorAccent().Subscribe(func(colors.Color) { emitted++ }, func(error) {})
	defer sub.Release()
	dark := s.IsDark().Subscribe(func(bool) { emitted++ }, func(error) {})
	defer dark.Release()

	if emitted != 0 {
		t.Fatalf("empty store emitted %d values", emitted)
	}
	if _, ok := s.LatestColor(ColorAccent); ok {
		t.Fatal("LatestColor should report no value")
	}

	if err := s.Edit().ColorAccent(colors.RGB(1, 2, 3)).Apply(); err != nil {
		t.Fatal(err)
	}
	if emitted != 1 {
		t.Fatalf("expected one emission after set, got %d", emitted)
	}
}

func TestEditorPublishOrder(t *testing.T) {
	s := NewStore()
	var events []string
	record := func(name string) func() { return func() { events = append(events, name) } }

	subs := []interface{ Release() }{
		s.ColorPrimary().Subscribe(func(colors.Color) { record("primary")() }, func(error) {}),
		s.ColorAccent().Subscribe(func(colors.Color) { record("accent")() }, func(error) {}),
		s.IsDark().Subscribe(func(bool) { record("dark")() }, func(error) {}),
		s.TabLayoutBackgroundMode().Subscribe(func(TabLayoutMode) { record("tabBg")() }, func(error) {}),
		s.TabLayoutIndicatorMode().Subscribe(func(TabLayoutMode) { record("tabIndicator")() }, func(error) {}),
	}
	defer func() {
		for _, sub := range subs {
			sub.Release()
		}
	}()

	err := s.Edit().
		TabLayoutIndicatorMode(TabLayoutModeAccent).
		IsDark(true).
		ColorAccent(colors.White).
		TabLayoutBackgroundMode(TabLayoutModePrimary).
		ColorPrimary(colors.Black).
		Apply()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"accent", "primary", "dark", "tabBg", "tabIndicator"}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("publish order %v, want %v", events, want)
	}
}

func TestEditorUnknownPropertyPublishesNothing(t *testing.T) {
	s := NewStore()
	err := s.Edit().
		ColorPrimary(colors.Black).
		Color("colorSurface", colors.White).
		Apply()
	if !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("Apply() = %v, want ErrUnknownProperty", err)
	}
	if _, ok := s.LatestColor(ColorPrimary); ok {
		t.Fatal("a failed edit published a value")
	}
}

func TestEditorAppliesOnce(t *testing.T) {
	s := NewStore()
	n := 0
	sub := s.ColorAccent().Subscribe(func(colors.Color) { n++ }, func(error) {})
	defer sub.Release()

	e := s.Edit().ColorAccent(colors.White)
	_ = e.Apply()
	_ = e.Apply()
	if n != 1 {
		t.Fatalf("editor published %d times", n)
	}
}

func TestUnknownPropertyStreamFails(t *testing.T) {
	s := NewStore()
	var got error
	s.Color("colorSurface").Subscribe(func(colors.Color) {}, func(err error) { got = err })
	if !errors.Is(got, ErrUnknownProperty) {
		t.Fatalf("got %v, want ErrUnknownProperty", got)
	}
}

func TestApplyPreset(t *testing.T) {
	s := NewStore()
	if err := s.Apply(Night()); err != nil {
		t.Fatal(err)
	}
	for _, p := range colorProperties {
		want, ok := Night().Colors[p]
		if !ok {
			continue
		}
		if got, _ := s.LatestColor(p); got != want {
			t.Fatalf("%s = %v, want %v", p, got, want)
		}
	}
	if dark, ok := s.LatestIsDark(); !ok || !dark {
		t.Fatal("night preset should be dark")
	}

	bad := Day()
	bad.Colors = map[ColorProperty]colors.Color{"colorSurface": colors.White}
	if err := s.Apply(bad); !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("Apply() = %v, want ErrUnknownProperty", err)
	}
	if dark, _ := s.LatestIsDark(); !dark {
		t.Fatal("failed apply changed the store")
	}
}

func TestPresetWithAccent(t *testing.T) {
	base := Day()
	accent := colors.MustParseHex("#EF4444")
	p := base.WithAccent(accent)
	if p.Colors[ColorAccent] != accent {
		t.Fatalf("accent = %v", p.Colors[ColorAccent])
	}
	if base.Colors[ColorAccent] == accent {
		t.Fatal("WithAccent mutated the base preset")
	}
}

func TestParseTabLayoutMode(t *testing.T) {
	tests := []struct {
		in      string
		want    TabLayoutMode
		wantErr bool
	}{
		{in: "primary", want: TabLayoutModePrimary},
		{in: "accent", want: TabLayoutModeAccent},
		{in: "surface", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTabLayoutMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Fatalf("err = %v, want ErrUnknownMode", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseTabLayoutMode(%q) = %v, %v", tt.in, got, err)
			}
			if got.String() != tt.in {
				t.Fatalf("String() = %q", got.String())
			}
		})
	}
}
