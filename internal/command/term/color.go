package term

import (
	"github.com/fatih/color"
)

var (
	GreenHighlight  = color.New(color.FgGreen).SprintFunc()
	RedHighlight    = color.New(color.FgRed).SprintFunc()
	YellowHighlight = color.New(color.FgYellow).SprintFunc()

	MagentaHighlight = color.New(color.FgMagenta).SprintFunc()

	Underline = color.New(color.Underline).SprintFunc()

	Highlight = MagentaHighlight
)

// ColoredActivation returns "active" in green when active is true,
// otherwise "inactive" in red.
func ColoredActivation(active bool) string {
	if active {
		return GreenHighlight("active")
	}

	return RedHighlight("inactive")
}
