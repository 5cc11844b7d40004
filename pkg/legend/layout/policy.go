package layout

// Vertical computes the single-column legend dimension: the width is the
// footprint of the widest label, and the height is 0. Vertical legend height
// is derived by the caller from label count and line height (see
// [Sizer.ColumnHeight]), not by this policy.
func (s Sizer) Vertical(labels []string) Size {
	return Size{Width: s.Widest(labels)}
}

// Horizontal computes the wrapped multi-line legend dimension for the given
// available width. The width is the widest line of the returned partition and
// the height is the sum of each line's tallest label height plus top and
// bottom area padding.
func (s Sizer) Horizontal(labels []string, availWidth float64) (Size, Partition) {
	part := s.Fit(labels, availWidth)

	var height float64
	for _, line := range part.Lines {
		height += s.Measure.MaxHeight(line, s.Theme)
	}
	return Size{
		Width:  part.MaxLineWidth,
		Height: height + s.Consts.AreaPadding*2,
	}, part
}

// ColumnHeight estimates the height a vertical legend column occupies:
// one line per label at the tallest label height, padded top and bottom.
// This is a caller-side convenience; [Sizer.Vertical] itself reports height 0.
func (s Sizer) ColumnHeight(labels []string) float64 {
	if len(labels) == 0 {
		return 0
	}
	line := s.Measure.MaxHeight(labels, s.Theme)
	return line*float64(len(labels)) + s.Consts.AreaPadding*2
}
