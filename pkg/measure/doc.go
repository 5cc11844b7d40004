// Package measure provides text-measurement adapters for legend sizing.
//
// The layout engine treats measurement as an injected capability
// (layout.Measurer); this package supplies the implementations:
//
//   - [Cells]: display-cell measurement via go-runewidth, suited to
//     terminal previews and fast approximate sizing.
//   - [Approx]: font-ratio heuristic requiring no font files at all.
//   - [FontFace]: real TrueType metrics via fogleman/gg, discovering a
//     system font with go-findfont. Falls back to [Approx] when no
//     matching font can be loaded.
//   - [Cached]: a memoizing wrapper for any of the above.
//
// All adapters are deterministic for a given font context and safe for
// concurrent use.
package measure
