// Package truncate shortens lazily rendered text to a fixed budget without
// materializing the untruncated output.
//
// # Character Truncation
//
// Chars is the primary combinator: it wraps any render.Renderable and emits
// exactly the first n runes the wrapped value would have produced.
//
//	r := truncate.Chars(render.Text("héllo"), 2)
//	s, _ := render.String(r) // "hé"
//
// Truncation works by interposing a budget-tracking sink, so it composes
// with everything else in fmty and never needs the full output:
//
//	truncate.Chars(combine.Concat(a, b, c), 40)
//
// Running out of budget is not an error. The wrapped renderable keeps
// rendering into a discarding sink and the overall render succeeds, so a
// truncated child never aborts the surrounding tree.
//
// # Counting
//
// Chars counts Unicode code points: a multi-byte rune is one character, but
// a base character followed by combining marks is several. Fragments may
// split a rune's encoding anywhere; the filter carries the partial encoding
// across writes and always cuts on a rune boundary.
//
// # Variants
//
// Graphemes counts grapheme clusters (via rivo/uniseg) and Cells counts
// terminal display columns (via mattn/go-runewidth). Both buffer the inner
// rendering, trading the zero-allocation property for their richer
// segmentation.
//
// # String Conveniences
//
// For plain strings there are direct forms:
//
//	truncate.CharsString("héllo", 2)  // "hé"
//	truncate.CellsString("日本語", 4)  // "日本"
package truncate
