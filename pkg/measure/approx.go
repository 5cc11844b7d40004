package measure

import (
	"unicode/utf8"

	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/observability"
)

// Font geometry ratios for proportional fonts. Average glyph width sits
// around 55% of the point size; a rendered line takes roughly 120%.
const (
	charWidthRatio  = 0.55
	lineHeightRatio = 1.2
)

// Approx estimates text extents from the font size alone, without touching
// any font files. Good enough for layout passes where exact glyph metrics
// do not matter, and the default fallback for [FontFace].
type Approx struct{}

// NewApprox returns the heuristic measurer.
func NewApprox() Approx { return Approx{} }

// Width estimates rune count times the average glyph width.
func (Approx) Width(label string, theme layout.LabelTheme) float64 {
	w := float64(utf8.RuneCountInString(label)) * theme.FontSize * charWidthRatio
	observability.Measure().OnMeasure("approx", label, w)
	return w
}

// MaxHeight returns one line height for any non-empty label set.
func (Approx) MaxHeight(labels []string, theme layout.LabelTheme) float64 {
	if len(labels) == 0 {
		return 0
	}
	return theme.FontSize * lineHeightRatio
}

var _ layout.Measurer = Approx{}
