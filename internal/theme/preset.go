package theme

import "github.com/balkashynov/tinct/internal/colors"

// Preset is a complete set of theme values.
type Preset struct {
	Name          string
	Dark          bool
	Colors        map[ColorProperty]colors.Color
	TabBackground TabLayoutMode
	TabIndicator  TabLayoutMode
}

// WithAccent returns a copy of p with a different accent.
func (p Preset) WithAccent(c colors.Color) Preset {
	out := p
	out.Colors = make(map[ColorProperty]colors.Color, len(p.Colors))
	for k, v := range p.Colors {
		out.Colors[k] = v
	}
	out.Colors[ColorAccent] = c
	return out
}

// Night is the purple-on-dark palette.
func Night() Preset {
	return Preset{
		Name: "night",
		Dark: true,
		Colors: map[ColorProperty]colors.Color{
			ColorPrimary:            colors.MustParseHex("#1B1530"), // card background
			ColorPrimaryDark:        colors.MustParseHex("#120E22"),
			ColorAccent:             colors.MustParseHex("#7C3AED"),
			ColorWindowBackground:   colors.MustParseHex("#0F0B1E"),
			TextColorPrimary:        colors.MustParseHex("#E6EAF2"),
			TextColorSecondary:      colors.MustParseHex("#B1B8C7"),
			TextColorPrimaryInverse: colors.MustParseHex("#1B1530"),
		},
		TabBackground: TabLayoutModePrimary,
		TabIndicator:  TabLayoutModeAccent,
	}
}

// Day is the light counterpart of Night.
func Day() Preset {
	return Preset{
		Name: "day",
		Dark: false,
		Colors: map[ColorProperty]colors.Color{
			ColorPrimary:            colors.MustParseHex("#EDE9FE"),
			ColorPrimaryDark:        colors.MustParseHex("#DDD6FE"),
			ColorAccent:             colors.MustParseHex("#6D28D9"),
			ColorWindowBackground:   colors.MustParseHex("#FAFAFC"),
			TextColorPrimary:        colors.MustParseHex("#1E1B2E"),
			TextColorSecondary:      colors.MustParseHex("#6D7383"),
			TextColorPrimaryInverse: colors.MustParseHex("#E6EAF2"),
		},
		TabBackground: TabLayoutModePrimary,
		TabIndicator:  TabLayoutModeAccent,
	}
}

// Accents is the rotation used when cycling the accent color.
var Accents = []colors.Color{
	colors.MustParseHex("#7C3AED"), // violet
	colors.MustParseHex("#A78BFA"),
	colors.MustParseHex("#22C55E"), // success green
	colors.MustParseHex("#F59E0B"), // warning amber
	colors.MustParseHex("#EF4444"),
}

// Presets lists the built-in presets by name.
func Presets() map[string]Preset {
	return map[string]Preset{
		"night": Night(),
		"day":   Day(),
	}
}
