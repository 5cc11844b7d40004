package layout

// Default layout constants, in user units (pixels in SVG output).
const (
	// DefaultCheckboxWidth is the horizontal space reserved for the
	// series-visibility checkbox when checkboxes are enabled.
	DefaultCheckboxWidth = 16.0

	// DefaultMarkerWidth is the width of the colored series marker.
	DefaultMarkerWidth = 10.0

	// DefaultLabelLeftPadding separates the marker from the label text.
	DefaultLabelLeftPadding = 5.0

	// DefaultAreaPadding pads the legend area on each side.
	DefaultAreaPadding = 10.0
)

// Constants holds the fixed spacing that composes an entry footprint.
// The zero value is not useful; start from [DefaultConstants] and override
// individual fields, or decode them from a TOML theme file.
type Constants struct {
	CheckboxWidth    float64 `json:"checkbox_width" toml:"checkbox_width"`
	MarkerWidth      float64 `json:"marker_width" toml:"marker_width"`
	LabelLeftPadding float64 `json:"label_left_padding" toml:"label_left_padding"`
	AreaPadding      float64 `json:"area_padding" toml:"area_padding"`
}

// DefaultConstants returns the compiled-in spacing constants.
func DefaultConstants() Constants {
	return Constants{
		CheckboxWidth:    DefaultCheckboxWidth,
		MarkerWidth:      DefaultMarkerWidth,
		LabelLeftPadding: DefaultLabelLeftPadding,
		AreaPadding:      DefaultAreaPadding,
	}
}
