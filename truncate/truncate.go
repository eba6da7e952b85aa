package truncate

import (
	"unicode/utf8"

	"github.com/nvzqz/fmty/render"
)

// Chars shortens a renderable to at most n runes.
//
// The returned renderable emits exactly the first n decoded runes of r's
// output and silently discards the rest. Exhausting the budget is not an
// error: the render still succeeds, and siblings composed after a truncated
// child run normally. A negative n behaves like 0.
//
// Counting is by Unicode code point, not byte and not grapheme cluster, so
// combining marks count individually. Fragments may arrive with arbitrary
// boundaries; a rune whose encoding is split across two writes is carried
// over and never miscounted or cut mid-encoding.
func Chars(r render.Renderable, n int) render.Renderable {
	if n < 0 {
		n = 0
	}
	return chars{r: r, n: n}
}

type chars struct {
	r render.Renderable
	n int
}

func (c chars) Render(s render.Sink) error {
	w := charWriter{dst: s, remaining: c.n}
	return c.r.Render(&w)
}

// charWriter is the budget-tracking sink interposed between the wrapped
// renderable and the real sink. State lives for one render call.
type charWriter struct {
	dst       render.Sink
	remaining int

	// Trailing bytes of a rune whose encoding ended mid-fragment.
	partial  [utf8.UTFMax]byte
	npartial int
}

func (w *charWriter) WriteString(s string) (int, error) {
	total := len(s)
	if total == 0 {
		return 0, nil
	}
	if w.remaining == 0 && w.npartial == 0 {
		return total, nil
	}

	// Finish any rune split across the previous write. Appending one byte
	// either completes the rune, keeps a valid prefix, or invalidates it;
	// utf8.FullRune treats an invalid prefix as a width-1 error rune, so
	// this loop always drains or stalls on a genuine partial encoding.
	for w.npartial > 0 {
		if !utf8.FullRune(w.partial[:w.npartial]) {
			if len(s) == 0 {
				return total, nil
			}
			w.partial[w.npartial] = s[0]
			w.npartial++
			s = s[1:]
			continue
		}
		_, size := utf8.DecodeRune(w.partial[:w.npartial])
		if w.remaining > 0 {
			w.remaining--
			if _, err := w.dst.WriteString(string(w.partial[:size])); err != nil {
				return 0, err
			}
		}
		copy(w.partial[:], w.partial[size:w.npartial])
		w.npartial -= size
	}

	if w.remaining == 0 {
		return total, nil
	}

	// Find the byte index covering the first min(remaining, len) runes so
	// the cut lands on an exact rune boundary.
	i := 0
	for i < len(s) && w.remaining > 0 {
		if !utf8.FullRuneInString(s[i:]) {
			// The fragment ends mid-rune; carry the tail to the next write.
			w.npartial = copy(w.partial[:], s[i:])
			s = s[:i]
			break
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		w.remaining--
	}
	if i > 0 {
		if _, err := w.dst.WriteString(s[:i]); err != nil {
			return 0, err
		}
	}
	return total, nil
}
