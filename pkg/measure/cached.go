package measure

import (
	"strconv"
	"strings"
	"sync"

	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
)

// Cached memoizes another measurer. Measurement is deterministic per font
// context, so cached results never go stale; the cache only ever grows.
// Wrap [FontFace] with it when the same labels are sized repeatedly, e.g.
// by the interactive preview or the sizing API.
type Cached struct {
	inner layout.Measurer

	mu      sync.RWMutex
	widths  map[string]float64
	heights map[string]float64
}

// NewCached wraps inner with an in-memory memo.
func NewCached(inner layout.Measurer) *Cached {
	return &Cached{
		inner:   inner,
		widths:  map[string]float64{},
		heights: map[string]float64{},
	}
}

func themeKey(theme layout.LabelTheme, text string) string {
	var b strings.Builder
	b.WriteString(theme.FontFamily)
	b.WriteByte('\x1f')
	b.WriteString(strconv.FormatFloat(theme.FontSize, 'g', -1, 64))
	b.WriteByte('\x1f')
	b.WriteString(text)
	return b.String()
}

// Width returns the memoized width of label.
func (c *Cached) Width(label string, theme layout.LabelTheme) float64 {
	key := themeKey(theme, label)

	c.mu.RLock()
	w, ok := c.widths[key]
	c.mu.RUnlock()
	if ok {
		return w
	}

	w = c.inner.Width(label, theme)
	c.mu.Lock()
	c.widths[key] = w
	c.mu.Unlock()
	return w
}

// MaxHeight returns the memoized tallest-label height for the slice.
func (c *Cached) MaxHeight(labels []string, theme layout.LabelTheme) float64 {
	key := themeKey(theme, strings.Join(labels, "\x1f"))

	c.mu.RLock()
	h, ok := c.heights[key]
	c.mu.RUnlock()
	if ok {
		return h
	}

	h = c.inner.MaxHeight(labels, theme)
	c.mu.Lock()
	c.heights[key] = h
	c.mu.Unlock()
	return h
}

var _ layout.Measurer = (*Cached)(nil)
