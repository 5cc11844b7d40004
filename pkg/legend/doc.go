// Package legend sizes chart legend regions.
//
// # Overview
//
// Given the legend's label strings, display options, font theme, and the
// chart type(s) it belongs to, the package computes the width and height the
// legend region must occupy. It is the sizing half of a chart layout pass:
// drawing is a separate concern handled by whatever renders the chart.
//
// Three policies feed the result:
//
//   - Skip: pie-family charts with a pie-specific alignment, and legends
//     marked hidden, take no space at all.
//   - Vertical (left/right alignment): one column as wide as the widest entry.
//   - Horizontal (top/bottom alignment): entries wrapped into rows that fit
//     the available chart width, via the convergence procedure in
//     pkg/legend/layout.
//
// # Basic Usage
//
// Build an [Engine] from a [Spec] and a text measurer, then ask it for a
// dimension at the current chart width:
//
//	eng := legend.New(spec, measure.NewApprox())
//	dim := eng.Dimension(chartWidth)
//
// One-shot callers can use [ComputeDimension] directly. Engines are
// immutable after construction and safe for concurrent use when the injected
// measurer is reentrant.
//
// # Skip Semantics
//
// The skip path reports width 0 with an absent (nil) height, while both
// layout policies always populate the height. Callers that distinguish "no
// legend row" from "zero-height legend row" can rely on that difference; see
// [Dimension].
package legend
