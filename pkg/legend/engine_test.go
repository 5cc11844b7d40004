package legend

import (
	"testing"

	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/measure"
)

func TestSkip(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want bool
	}{
		{
			"hidden legend",
			Spec{ChartType: ChartLine, Options: Options{Hidden: true}},
			true,
		},
		{
			"pie chart with center align",
			Spec{ChartType: ChartPie, Options: Options{Align: AlignCenter}},
			true,
		},
		{
			"donut chart with outer align",
			Spec{ChartType: ChartDonut, Options: Options{Align: AlignOuter}},
			true,
		},
		{
			"pie chart with top align",
			Spec{ChartType: ChartPie, Options: Options{Align: AlignTop}},
			false,
		},
		{
			"line chart with center align",
			Spec{ChartType: ChartLine, Options: Options{Align: AlignCenter}},
			false,
		},
		{
			"combo pie and line with center align",
			Spec{ChartType: ChartPie, ChartTypes: []string{ChartPie, ChartLine}, Options: Options{Align: AlignCenter}},
			false,
		},
		{
			"combo pie and donut with outer align",
			Spec{ChartType: ChartPie, ChartTypes: []string{ChartPie, ChartDonut}, Options: Options{Align: AlignOuter}},
			true,
		},
		{
			"default align",
			Spec{ChartType: ChartPie},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := New(tt.spec, measure.Fixed{})
			if got := eng.Skip(); got != tt.want {
				t.Errorf("Skip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDimension_SkippedHasNoHeight(t *testing.T) {
	spec := Spec{
		ChartType: ChartLine,
		Labels:    []string{"a", "b"},
		Options:   Options{Hidden: true},
	}
	dim := New(spec, measure.Fixed{EntryWidth: 100}).Dimension(640)

	if dim.Width != 0 {
		t.Errorf("Width = %v, want 0", dim.Width)
	}
	if dim.Height != nil {
		t.Errorf("Height = %v, want nil", *dim.Height)
	}
	if dim.HeightOrZero() != 0 {
		t.Errorf("HeightOrZero() = %v, want 0", dim.HeightOrZero())
	}
}

func TestDimension_Vertical(t *testing.T) {
	noCheckbox := false
	spec := Spec{
		ChartType: ChartLine,
		Labels:    []string{"a", "b", "c"},
		Options:   Options{Align: AlignRight, Checkbox: &noCheckbox},
	}
	m := measure.Fixed{Widths: map[string]float64{"a": 10, "b": 15, "c": 22}}
	dim := New(spec, m, WithConstants(layout.Constants{})).Dimension(640)

	if dim.Width != 22 {
		t.Errorf("Width = %v, want 22", dim.Width)
	}
	// Vertical layouts report a present height of zero, distinct from the
	// absent height of the skip path.
	if dim.Height == nil {
		t.Fatal("Height = nil, want present")
	}
	if *dim.Height != 0 {
		t.Errorf("Height = %v, want 0", *dim.Height)
	}
}

func TestDimension_Horizontal(t *testing.T) {
	noCheckbox := false
	spec := Spec{
		ChartType: ChartLine,
		Labels:    []string{"a", "b", "c", "d", "e"},
		Options:   Options{Align: AlignTop, Checkbox: &noCheckbox},
	}
	m := measure.Fixed{EntryWidth: 20, EntryHeight: 12}
	eng := New(spec, m, WithConstants(layout.Constants{AreaPadding: 10}))

	// Footprints are 30 each; five in one line overflow 100, three plus
	// two per line fit at 90.
	dim := eng.Dimension(100)
	if dim.Width != 90 {
		t.Errorf("Width = %v, want 90", dim.Width)
	}
	if dim.Height == nil || *dim.Height != 12*2+10*2 {
		t.Errorf("Height = %v, want %v", dim.HeightOrZero(), 12*2+10*2)
	}

	part := eng.Partition(100)
	if len(part.Lines) != 2 {
		t.Fatalf("Partition() lines = %d, want 2", len(part.Lines))
	}
}

func TestDimension_Idempotent(t *testing.T) {
	spec := Spec{
		ChartType: ChartArea,
		Labels:    []string{"north", "south", "east", "west"},
		Options:   Options{Align: AlignBottom},
	}
	eng := New(spec, measure.Fixed{EntryWidth: 40, EntryHeight: 14})

	first := eng.Dimension(200)
	second := eng.Dimension(200)
	if first.Width != second.Width || first.HeightOrZero() != second.HeightOrZero() {
		t.Errorf("repeated Dimension() differs: %+v vs %+v", first, second)
	}
}

func TestNew_Defaults(t *testing.T) {
	eng := New(Spec{ChartType: ChartBar}, measure.Fixed{})

	if eng.Align() != DefaultAlign {
		t.Errorf("Align() = %v, want %v", eng.Align(), DefaultAlign)
	}
	if !eng.Sizer().Checkbox {
		t.Error("Checkbox = false, want enabled by default")
	}
	if eng.Sizer().Consts != layout.DefaultConstants() {
		t.Errorf("Consts = %+v, want defaults", eng.Sizer().Consts)
	}
}

func TestCheckboxWidensFootprint(t *testing.T) {
	m := measure.Fixed{EntryWidth: 100}
	base := Spec{ChartType: ChartLine, Labels: []string{"a"}, Options: Options{Align: AlignRight}}

	with := New(base, m).Dimension(640).Width

	off := false
	base.Options.Checkbox = &off
	without := New(base, m).Dimension(640).Width

	if with-without != layout.DefaultCheckboxWidth {
		t.Errorf("checkbox width delta = %v, want %v", with-without, layout.DefaultCheckboxWidth)
	}
}

func TestComputeDimension(t *testing.T) {
	spec := Spec{
		ChartType: ChartLine,
		Labels:    []string{"a", "b"},
		Options:   Options{Align: AlignLeft},
	}
	m := measure.Fixed{EntryWidth: 50}

	got := ComputeDimension(spec, m, 640)
	want := New(spec, m).Dimension(640)
	if got.Width != want.Width || got.HeightOrZero() != want.HeightOrZero() {
		t.Errorf("ComputeDimension() = %+v, want %+v", got, want)
	}
}

func TestAlignClassification(t *testing.T) {
	tests := []struct {
		align      Align
		horizontal bool
		pie        bool
	}{
		{AlignTop, true, false},
		{AlignBottom, true, false},
		{AlignLeft, false, false},
		{AlignRight, false, false},
		{AlignCenter, false, true},
		{AlignOuter, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.align), func(t *testing.T) {
			if got := tt.align.IsHorizontal(); got != tt.horizontal {
				t.Errorf("IsHorizontal() = %v, want %v", got, tt.horizontal)
			}
			if got := tt.align.IsPie(); got != tt.pie {
				t.Errorf("IsPie() = %v, want %v", got, tt.pie)
			}
		})
	}
}

func TestIsPieFamily(t *testing.T) {
	for _, chartType := range []string{ChartPie, ChartDonut} {
		if !IsPieFamily(chartType) {
			t.Errorf("IsPieFamily(%q) = false, want true", chartType)
		}
	}
	for _, chartType := range []string{ChartLine, ChartBar, ChartHeatmap, "unknown"} {
		if IsPieFamily(chartType) {
			t.Errorf("IsPieFamily(%q) = true, want false", chartType)
		}
	}
}
