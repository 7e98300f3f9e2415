package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/convertx/internal/domain/units"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// palette holds the escape codes in use, all empty when color is off.
type palette struct {
	reset, bold, cyan, green, gray string
}

func newPalette(color bool) palette {
	if !color {
		return palette{}
	}
	return palette{colorReset, colorBold, colorCyan, colorGreen, colorGray}
}

// formatUnitList renders one line per category, canonical unit first and
// starred:
//
//	length         meters* feet inches kilometers
//	temperature    c* f k
func formatUnitList(categories []units.Category, color bool) string {
	p := newPalette(color)

	width := 0
	for _, c := range categories {
		width = max(width, len(c.String()))
	}

	var sb strings.Builder
	for _, c := range categories {
		tokens := units.Variants(c)
		if len(tokens) == 0 {
			continue
		}
		name := c.String()
		sb.WriteString(fmt.Sprintf("%s%s%s%s%s", p.bold, p.cyan, name, p.reset, strings.Repeat(" ", width-len(name)+2)))
		sb.WriteString(fmt.Sprintf("%s%s*%s", p.green, tokens[0], p.reset))
		for _, tok := range tokens[1:] {
			sb.WriteString(" " + tok)
		}
		if c == units.Luminous {
			sb.WriteString(fmt.Sprintf("  %s(same-unit only)%s", p.gray, p.reset))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("%s* canonical unit%s\n", p.gray, p.reset))
	return sb.String()
}
