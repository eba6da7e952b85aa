package truncate

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/nvzqz/fmty/render"
)

// Graphemes shortens a renderable to at most n grapheme clusters.
//
// Unlike Chars, a base character plus its combining marks counts as one.
// Cluster boundaries can only be decided once the whole output is known,
// so this variant buffers the inner rendering and allocates.
func Graphemes(r render.Renderable, n int) render.Renderable {
	if n < 0 {
		n = 0
	}
	return render.Func(func(s render.Sink) error {
		out, err := render.String(r)
		if err != nil {
			return err
		}
		_, err = s.WriteString(GraphemesString(out, n))
		return err
	})
}

// Cells shortens a renderable to at most n terminal display columns.
//
// East Asian wide runes count as two columns and are never split: a
// two-column rune that does not fit in the last remaining column is
// dropped. Like Graphemes, this variant buffers and allocates.
func Cells(r render.Renderable, n int) render.Renderable {
	if n < 0 {
		n = 0
	}
	return render.Func(func(s render.Sink) error {
		out, err := render.String(r)
		if err != nil {
			return err
		}
		_, err = s.WriteString(runewidth.Truncate(out, n, ""))
		return err
	})
}

// GraphemesString truncates a string to at most n grapheme clusters.
func GraphemesString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	g := uniseg.NewGraphemes(s)
	end := 0
	for i := 0; i < n && g.Next(); i++ {
		_, end = g.Positions()
	}
	return s[:end]
}

// CellsString truncates a string to at most n display columns.
func CellsString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(s, n, "")
}
