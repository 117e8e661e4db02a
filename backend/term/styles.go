package term

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/OliverKKY/pltrs"
)

// Styles
var (
	accentFg  = lipgloss.Color("#7C3AED")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// hexColor formats col as #rrggbb, ignoring alpha.
func hexColor(col pltrs.Color) string {
	c := col.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
