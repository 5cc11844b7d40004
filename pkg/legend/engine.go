package legend

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/observability"
)

// Engine sizes one legend. All spec defaults are resolved at construction,
// so sizing itself never branches on optional fields. An Engine holds no
// mutable state and may be used from multiple goroutines.
type Engine struct {
	labels     []string
	chartTypes []string
	align      Align
	hidden     bool
	sizer      layout.Sizer
	logger     *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithConstants overrides the layout spacing constants.
func WithConstants(c layout.Constants) Option {
	return func(e *Engine) { e.sizer.Consts = c }
}

// WithLogger attaches a logger for debug traces of sizing decisions.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New builds an Engine from a spec and a text measurer.
func New(spec Spec, m layout.Measurer, opts ...Option) *Engine {
	chartTypes := spec.ChartTypes
	if len(chartTypes) == 0 {
		chartTypes = []string{spec.ChartType}
	}
	align := spec.Options.Align
	if align == "" {
		align = DefaultAlign
	}

	e := &Engine{
		labels:     spec.Labels,
		chartTypes: chartTypes,
		align:      align,
		hidden:     spec.Options.Hidden,
		sizer: layout.Sizer{
			Measure:  m,
			Theme:    spec.Theme.Label,
			Consts:   layout.DefaultConstants(),
			Checkbox: spec.Options.HasCheckbox(),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Align returns the resolved alignment.
func (e *Engine) Align() Align { return e.align }

// Labels returns the label strings being sized. Callers must not mutate the
// returned slice.
func (e *Engine) Labels() []string { return e.labels }

// Sizer exposes the resolved footprint calculator, e.g. for previews.
func (e *Engine) Sizer() layout.Sizer { return e.sizer }

// Skip reports whether sizing is bypassed entirely: the legend is hidden, or
// every chart type is pie-family while the alignment is pie-specific. No
// measurement happens on this path.
func (e *Engine) Skip() bool {
	if e.hidden {
		return true
	}
	if !e.align.IsPie() {
		return false
	}
	for _, t := range e.chartTypes {
		if !IsPieFamily(t) {
			return false
		}
	}
	return true
}

// Dimension computes the legend extent for the given chart width. The chart
// width constrains horizontal layouts only; vertical layouts ignore it.
func (e *Engine) Dimension(chartWidth float64) Dimension {
	start := time.Now()
	observability.Layout().OnSizeStart(string(e.align), len(e.labels))

	dim, skipped := e.dimension(chartWidth)

	observability.Layout().OnSizeComplete(string(e.align), dim.Width, dim.HeightOrZero(), skipped, time.Since(start))
	if e.logger != nil {
		e.logger.Debug("legend sized",
			"align", e.align,
			"labels", len(e.labels),
			"width", dim.Width,
			"skipped", skipped)
	}
	return dim
}

func (e *Engine) dimension(chartWidth float64) (Dimension, bool) {
	if e.Skip() {
		return Dimension{Width: 0}, true
	}

	var size layout.Size
	if e.align.IsHorizontal() {
		size, _ = e.sizer.Horizontal(e.labels, chartWidth)
	} else {
		size = e.sizer.Vertical(e.labels)
	}
	height := size.Height
	return Dimension{Width: size.Width, Height: &height}, false
}

// Partition exposes the horizontal line grouping for the given chart width,
// regardless of the engine's alignment. Previews use it to show which labels
// share a row.
func (e *Engine) Partition(chartWidth float64) layout.Partition {
	return e.sizer.Fit(e.labels, chartWidth)
}

// ComputeDimension is the one-shot form of [Engine.Dimension].
func ComputeDimension(spec Spec, m layout.Measurer, chartWidth float64) Dimension {
	return New(spec, m).Dimension(chartWidth)
}
