package measure

import (
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"

	errs "github.com/dana-c0914/tui.chart/pkg/errors"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/observability"
)

// fallbackFamily is tried when the theme's family cannot be found.
const fallbackFamily = "DejaVuSans"

type faceKey struct {
	family string
	size   float64
}

// FontFace measures labels against real TrueType glyph metrics. Font files
// are discovered on the system by family name and loaded once per
// family/size pair. When no matching font can be loaded the adapter degrades
// to the [Approx] heuristic for that pair, so Width never fails.
type FontFace struct {
	mu       sync.Mutex
	faces    map[faceKey]*gg.Context
	fallback Approx
}

// NewFontFace returns a TrueType measurer with an empty face cache.
func NewFontFace() *FontFace {
	return &FontFace{faces: map[faceKey]*gg.Context{}}
}

// face returns the drawing context for the theme's font, or nil when the
// font could not be loaded. A nil entry is cached so the lookup is not
// retried on every label.
func (f *FontFace) face(theme layout.LabelTheme) *gg.Context {
	key := faceKey{family: theme.FontFamily, size: theme.FontSize}

	f.mu.Lock()
	defer f.mu.Unlock()

	if dc, ok := f.faces[key]; ok {
		return dc
	}

	dc := loadFace(theme.FontFamily, theme.FontSize)
	f.faces[key] = dc
	return dc
}

// fontNotFound codes a failed face load so hook consumers can classify it.
func fontNotFound(family string, err error) error {
	return errs.Wrap(errs.ErrCodeFontNotFound, err, "no usable font for family %q", family)
}

func loadFace(family string, size float64) *gg.Context {
	if size <= 0 {
		return nil
	}
	path, err := findfont.Find(family + ".ttf")
	if err != nil {
		path, err = findfont.Find(fallbackFamily + ".ttf")
	}
	if err != nil {
		observability.Measure().OnFontLoad(family, size, fontNotFound(family, err))
		return nil
	}

	dc := gg.NewContext(1, 1)
	if err := dc.LoadFontFace(path, size); err != nil {
		observability.Measure().OnFontLoad(family, size, fontNotFound(family, err))
		return nil
	}
	observability.Measure().OnFontLoad(family, size, nil)
	return dc
}

// Width returns the rendered pixel width of label in the theme's font.
func (f *FontFace) Width(label string, theme layout.LabelTheme) float64 {
	dc := f.face(theme)
	if dc == nil {
		return f.fallback.Width(label, theme)
	}
	w, _ := dc.MeasureString(label)
	observability.Measure().OnMeasure("fontface", label, w)
	return w
}

// MaxHeight returns the tallest rendered label height in the slice.
func (f *FontFace) MaxHeight(labels []string, theme layout.LabelTheme) float64 {
	dc := f.face(theme)
	if dc == nil {
		return f.fallback.MaxHeight(labels, theme)
	}

	var tallest float64
	for _, label := range labels {
		if _, h := dc.MeasureString(label); h > tallest {
			tallest = h
		}
	}
	return tallest
}

var _ layout.Measurer = (*FontFace)(nil)
