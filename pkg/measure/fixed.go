package measure

import (
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
)

// Fixed returns preset extents regardless of label content or theme.
// Useful for tests and for callers that size entries uniformly. Widths maps
// specific labels to widths; labels not present fall back to EntryWidth.
type Fixed struct {
	EntryWidth  float64
	EntryHeight float64
	Widths      map[string]float64
}

// Width returns the preset width for label.
func (f Fixed) Width(label string, _ layout.LabelTheme) float64 {
	if w, ok := f.Widths[label]; ok {
		return w
	}
	return f.EntryWidth
}

// MaxHeight returns EntryHeight for any non-empty label set.
func (f Fixed) MaxHeight(labels []string, _ layout.LabelTheme) float64 {
	if len(labels) == 0 {
		return 0
	}
	return f.EntryHeight
}

var _ layout.Measurer = Fixed{}
