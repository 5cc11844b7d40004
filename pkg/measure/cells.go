package measure

import (
	"github.com/mattn/go-runewidth"

	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/observability"
)

// Cells measures labels by display cells, handling wide runes and emoji the
// way a terminal does. Each cell maps to CellWidth user units; zero means
// derive the cell width from the theme's font size.
type Cells struct {
	CellWidth float64
}

// NewCells returns a cell measurer with font-derived cell width.
func NewCells() Cells { return Cells{} }

func (c Cells) cell(theme layout.LabelTheme) float64 {
	if c.CellWidth > 0 {
		return c.CellWidth
	}
	return theme.FontSize * charWidthRatio
}

// Width returns the display-cell count of label scaled to user units.
func (c Cells) Width(label string, theme layout.LabelTheme) float64 {
	w := float64(runewidth.StringWidth(label)) * c.cell(theme)
	observability.Measure().OnMeasure("cells", label, w)
	return w
}

// MaxHeight returns one line height for any non-empty label set; cell
// rendering has uniform line height.
func (c Cells) MaxHeight(labels []string, theme layout.LabelTheme) float64 {
	if len(labels) == 0 {
		return 0
	}
	return theme.FontSize * lineHeightRatio
}

var _ layout.Measurer = Cells{}
