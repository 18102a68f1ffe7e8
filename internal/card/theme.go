package card

import "image/color"

// Theme is a named card color scheme: two vertical gradient stops plus an
// accent and a text color. Entries are immutable after package init.
type Theme struct {
	ID     string
	Label  string
	Top    color.NRGBA
	Bottom color.NRGBA
	Accent color.NRGBA
	Text   color.NRGBA
}

// DefaultThemeID is used whenever a requested theme id is unknown or unset.
const DefaultThemeID = "ocean"

var themes = map[string]Theme{
	"ocean": {
		ID: "ocean", Label: "🌊 Ocean",
		Top:    color.NRGBA{10, 25, 70, 255},
		Bottom: color.NRGBA{20, 60, 130, 255},
		Accent: color.NRGBA{80, 180, 255, 255},
		Text:   color.NRGBA{255, 255, 255, 255},
	},
	"forest": {
		ID: "forest", Label: "🌿 Forest",
		Top:    color.NRGBA{10, 35, 15, 255},
		Bottom: color.NRGBA{25, 85, 40, 255},
		Accent: color.NRGBA{80, 220, 120, 255},
		Text:   color.NRGBA{255, 255, 255, 255},
	},
	"crimson": {
		ID: "crimson", Label: "🔴 Crimson",
		Top:    color.NRGBA{70, 10, 10, 255},
		Bottom: color.NRGBA{160, 25, 25, 255},
		Accent: color.NRGBA{255, 100, 100, 255},
		Text:   color.NRGBA{255, 255, 255, 255},
	},
	"midnight": {
		ID: "midnight", Label: "🌙 Midnight",
		Top:    color.NRGBA{8, 8, 25, 255},
		Bottom: color.NRGBA{20, 20, 55, 255},
		Accent: color.NRGBA{140, 140, 255, 255},
		Text:   color.NRGBA{220, 220, 255, 255},
	},
	"gold": {
		ID: "gold", Label: "✨ Gold",
		Top:    color.NRGBA{50, 35, 5, 255},
		Bottom: color.NRGBA{110, 80, 15, 255},
		Accent: color.NRGBA{255, 210, 50, 255},
		Text:   color.NRGBA{255, 255, 255, 255},
	},
	"rose": {
		ID: "rose", Label: "🌸 Rose",
		Top:    color.NRGBA{70, 15, 35, 255},
		Bottom: color.NRGBA{155, 40, 80, 255},
		Accent: color.NRGBA{255, 140, 170, 255},
		Text:   color.NRGBA{255, 255, 255, 255},
	},
}

var themeOrder = []string{"ocean", "forest", "crimson", "midnight", "gold", "rose"}

// ResolveTheme returns the theme for id, or the default theme when id is
// unknown or empty. It never fails.
func ResolveTheme(id string) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[DefaultThemeID]
}

// Themes returns the catalog entries in display order.
func Themes() []Theme {
	out := make([]Theme, 0, len(themeOrder))
	for _, id := range themeOrder {
		out = append(out, themes[id])
	}
	return out
}
