package layout

// LabelTheme carries the font context legend labels are measured with.
type LabelTheme struct {
	FontFamily string  `json:"font_family" bson:"font_family" toml:"font_family"`
	FontSize   float64 `json:"font_size" bson:"font_size" toml:"font_size"`
}

// Measurer is the text-measurement capability the layout consumes.
//
// Implementations must be deterministic and side-effect-free for a given
// font context: the same label and theme always yield the same result.
// The pkg/measure package provides several implementations.
type Measurer interface {
	// Width returns the rendered width of a single label.
	Width(label string, theme LabelTheme) float64

	// MaxHeight returns the height of the tallest label in the slice.
	// An empty slice yields 0.
	MaxHeight(labels []string, theme LabelTheme) float64
}
