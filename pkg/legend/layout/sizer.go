package layout

// Sizer computes entry footprints and legend dimensions for one label theme.
// It holds no mutable state; copies are cheap and safe to share.
type Sizer struct {
	Measure Measurer
	Theme   LabelTheme
	Consts  Constants

	// Checkbox reserves checkbox width in every entry footprint.
	Checkbox bool
}

// Size is a computed width/height pair.
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Footprint returns the total horizontal space one legend entry occupies:
// rendered text width plus marker, padding, and (when enabled) checkbox.
func (s Sizer) Footprint(label string) float64 {
	w := s.Measure.Width(label, s.Theme)
	if s.Checkbox {
		w += s.Consts.CheckboxWidth
	}
	return w + s.Consts.MarkerWidth + s.Consts.LabelLeftPadding + s.Consts.AreaPadding
}

// Widest returns the largest entry footprint across labels, or 0 for none.
func (s Sizer) Widest(labels []string) float64 {
	var widest float64
	for _, label := range labels {
		if fp := s.Footprint(label); fp > widest {
			widest = fp
		}
	}
	return widest
}

// lineWidth sums the footprints of all labels on one line.
func (s Sizer) lineWidth(line LineGroup) float64 {
	var sum float64
	for _, label := range line {
		sum += s.Footprint(label)
	}
	return sum
}
