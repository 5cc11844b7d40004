package legend_test

import (
	"fmt"

	"github.com/dana-c0914/tui.chart/pkg/legend"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/measure"
)

func ExampleComputeDimension() {
	noCheckbox := false
	spec := legend.Spec{
		ChartType: legend.ChartLine,
		Labels:    []string{"CPU", "Memory", "Disk"},
		Options: legend.Options{
			Align:    legend.AlignRight,
			Checkbox: &noCheckbox,
		},
	}

	// A fixed measurer keeps the example deterministic; real callers use
	// one of the adapters in pkg/measure.
	m := measure.Fixed{Widths: map[string]float64{"CPU": 30, "Memory": 60, "Disk": 40}}

	dim := legend.ComputeDimension(spec, m, 640)
	fmt.Printf("width: %.0f\n", dim.Width)
	fmt.Printf("height: %.0f\n", dim.HeightOrZero())
	// Output:
	// width: 85
	// height: 0
}

func ExampleEngine_Partition() {
	spec := legend.Spec{
		ChartType: legend.ChartBar,
		Labels:    []string{"a", "b", "c", "d", "e"},
		Options:   legend.Options{Align: legend.AlignTop},
	}

	eng := legend.New(spec,
		measure.Fixed{EntryWidth: 20, EntryHeight: 12},
		legend.WithConstants(layout.Constants{AreaPadding: 10}))

	for i, line := range eng.Partition(100).Lines {
		fmt.Printf("line %d: %v\n", i, []string(line))
	}
	// Output:
	// line 0: [a b c]
	// line 1: [d e]
}
