// Package layout computes the on-screen footprint of a chart legend.
//
// # Overview
//
// A legend entry occupies the width of its rendered text plus a set of fixed
// decorations (series marker, optional checkbox, padding). This package sums
// those footprints into one of two shapes:
//
//   - Vertical: a single column whose width is the widest entry footprint.
//   - Horizontal: entries wrapped across multiple rows constrained by the
//     available chart width.
//
// Horizontal wrapping does not pack entries greedily. Labels are divided into
// contiguous groups of near-equal count, and the division count is raised
// until the widest row fits the available width or raising it stops shrinking
// the widest row. See [Sizer.Fit] for the exact procedure.
//
// # Basic Usage
//
// Construct a [Sizer] with a text measurer and the layout constants, then ask
// it for a dimension:
//
//	s := layout.Sizer{
//		Measure:  measurer,
//		Theme:    layout.LabelTheme{FontFamily: "Arial", FontSize: 12},
//		Consts:   layout.DefaultConstants(),
//		Checkbox: true,
//	}
//	size, part := s.Horizontal(labels, chartWidth)
//
// Text measurement is an injected capability ([Measurer]); the package itself
// performs no font work and no I/O. All functions are pure with respect to
// their inputs, so a Sizer may be shared between goroutines as long as its
// Measurer is reentrant.
package layout
