package legend

import (
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
)

// =============================================================================
// Alignment
// =============================================================================

// Align positions the legend relative to the plot area.
type Align string

// Legend alignment modes. Top and bottom produce horizontal (wrapped)
// layouts; left and right produce vertical columns. Center and outer are
// pie-specific placements.
const (
	AlignTop    Align = "top"
	AlignBottom Align = "bottom"
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
	AlignOuter  Align = "outer"
)

// DefaultAlign is used when a spec leaves the alignment empty.
const DefaultAlign = AlignRight

// ValidAligns is the set of recognized alignment modes.
var ValidAligns = map[Align]bool{
	AlignTop:    true,
	AlignBottom: true,
	AlignLeft:   true,
	AlignRight:  true,
	AlignCenter: true,
	AlignOuter:  true,
}

// IsHorizontal reports whether the alignment produces a wrapped multi-line
// legend.
func (a Align) IsHorizontal() bool { return a == AlignTop || a == AlignBottom }

// IsPie reports whether the alignment is a pie-specific placement.
func (a Align) IsPie() bool { return a == AlignCenter || a == AlignOuter }

// =============================================================================
// Chart Types
// =============================================================================

// Chart type identifiers recognized by the sizing policies.
const (
	ChartBar     = "bar"
	ChartColumn  = "column"
	ChartLine    = "line"
	ChartArea    = "area"
	ChartBubble  = "bubble"
	ChartScatter = "scatter"
	ChartHeatmap = "heatmap"
	ChartPie     = "pie"
	ChartDonut   = "donut"
)

// pieFamily classifies chart types whose legends may be suppressed for
// pie-specific alignments.
var pieFamily = map[string]bool{
	ChartPie:   true,
	ChartDonut: true,
}

// IsPieFamily reports whether chartType belongs to the pie family.
func IsPieFamily(chartType string) bool { return pieFamily[chartType] }

// =============================================================================
// Spec
// =============================================================================

// LabelTheme is the font context labels are measured with.
type LabelTheme = layout.LabelTheme

// Theme carries the visual theme parts the sizing engine reads.
type Theme struct {
	Label LabelTheme `json:"label" bson:"label" toml:"label"`
}

// DefaultTheme returns the font context used when a spec omits one.
func DefaultTheme() Theme {
	return Theme{Label: LabelTheme{FontFamily: "Helvetica", FontSize: 12}}
}

// Options control legend visibility and placement.
type Options struct {
	// Checkbox reserves space for per-series visibility checkboxes.
	// Absent means enabled.
	Checkbox *bool `json:"checkbox,omitempty" bson:"checkbox,omitempty"`

	// Align positions the legend; empty means [DefaultAlign].
	Align Align `json:"align,omitempty" bson:"align,omitempty"`

	// Hidden suppresses the legend entirely.
	Hidden bool `json:"hidden,omitempty" bson:"hidden,omitempty"`
}

// HasCheckbox resolves the checkbox option with its default.
func (o Options) HasCheckbox() bool { return o.Checkbox == nil || *o.Checkbox }

// Spec is the immutable input of one sizing computation. The engine only
// reads it; Labels is never mutated.
type Spec struct {
	// ChartType is the primary chart type.
	ChartType string `json:"chart_type" bson:"chart_type"`

	// ChartTypes lists every chart type sharing the legend (combo charts).
	// Empty means [ChartType] alone.
	ChartTypes []string `json:"chart_types,omitempty" bson:"chart_types,omitempty"`

	Options Options  `json:"options" bson:"options"`
	Theme   Theme    `json:"theme" bson:"theme"`
	Labels  []string `json:"labels" bson:"labels"`
}

// =============================================================================
// Dimension
// =============================================================================

// Dimension is a computed legend extent.
//
// Height is nil only on the skip path; both layout policies populate it.
// The distinction matters downstream: an absent height means "no legend row
// exists", not "a legend row of height zero".
type Dimension struct {
	Width  float64  `json:"width" bson:"width"`
	Height *float64 `json:"height,omitempty" bson:"height,omitempty"`
}

// HeightOrZero returns the height, treating absent as 0.
func (d Dimension) HeightOrZero() float64 {
	if d.Height == nil {
		return 0
	}
	return *d.Height
}
