package pltrs

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// Theme holds figure-wide styling defaults.
type Theme struct {
	// Background is used as the figure clear color.
	Background Color

	// Foreground is the color for axes frames and other chrome.
	Foreground Color

	// Palette is the sequence of colors that CycleColor interpolates over
	// when nodes are colored automatically.
	Palette []Color
}

// DefaultTheme returns a white-background theme with a black foreground.
func DefaultTheme() Theme {
	return Theme{
		Background: White,
		Foreground: Black,
		Palette: []Color{
			Hex("#1f4e9c"),
			Hex("#2a9d8f"),
			Hex("#e9c46a"),
			Hex("#e76f51"),
		},
	}
}

// DarkTheme returns a dark-background theme.
func DarkTheme() Theme {
	return Theme{
		Background: Hex("#0f141a"),
		Foreground: Hex("#e6e6e6"),
		Palette: []Color{
			Hex("#7c3aed"),
			Hex("#22d3ee"),
			Hex("#facc15"),
		},
	}
}

// CycleColor returns the i-th of n evenly spaced colors sampled from a
// gradient over the theme palette. Indices wrap modulo n. An empty palette
// yields the foreground color.
func (t Theme) CycleColor(i, n int) Color {
	if len(t.Palette) == 0 {
		return t.Foreground
	}
	if n <= 1 || len(t.Palette) == 1 {
		return t.Palette[0]
	}
	i %= n
	if i < 0 {
		i += n
	}

	g := palette.RGBGradient{Colors: make([]color.RGBA, len(t.Palette))}
	for k, c := range t.Palette {
		g.Colors[k] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return FromColor(g.Map(float64(i) / float64(n-1)))
}
