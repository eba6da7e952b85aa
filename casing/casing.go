package casing

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nvzqz/fmty/render"
)

// Upper converts a renderable's output to upper case using Unicode simple
// case mapping.
func Upper(r render.Renderable) render.Renderable {
	return mapped{r: r, fn: unicode.ToUpper}
}

// Lower converts a renderable's output to lower case using Unicode simple
// case mapping.
func Lower(r render.Renderable) render.Renderable {
	return mapped{r: r, fn: unicode.ToLower}
}

// UpperASCII upper-cases only the ASCII letters a-z; every other rune
// passes through unchanged, so "Grüße" renders as "GRüßE".
func UpperASCII(r render.Renderable) render.Renderable {
	return mapped{r: r, fn: upperASCII}
}

// LowerASCII lower-cases only the ASCII letters A-Z; every other rune
// passes through unchanged.
func LowerASCII(r render.Renderable) render.Renderable {
	return mapped{r: r, fn: lowerASCII}
}

func upperASCII(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Title capitalizes words per the Unicode casing rules of x/text, with no
// language-specific tailoring. Word boundaries require buffering, so this
// is the one casing combinator that materializes the inner output.
func Title(r render.Renderable) render.Renderable {
	return render.Func(func(s render.Sink) error {
		out, err := render.String(r)
		if err != nil {
			return err
		}
		_, err = s.WriteString(cases.Title(language.Und).String(out))
		return err
	})
}

type mapped struct {
	r  render.Renderable
	fn func(rune) rune
}

func (m mapped) Render(s render.Sink) error {
	w := mapWriter{dst: s, fn: m.fn}
	return m.r.Render(&w)
}

// mapWriter applies a rune mapping to fragments as they stream through.
// All of Go's simple case mappings are one rune to one rune, so mapping
// never changes character counts. Unchanged spans are forwarded as-is;
// like truncate's filter, a rune split across two writes is carried over
// so the mapping always sees whole runes.
type mapWriter struct {
	dst render.Sink
	fn  func(rune) rune

	partial  [utf8.UTFMax]byte
	npartial int
}

func (w *mapWriter) WriteString(s string) (int, error) {
	total := len(s)

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
		r, size := utf8.DecodeRune(w.partial[:w.npartial])
		if err := w.emit(r, string(w.partial[:size])); err != nil {
			return 0, err
		}
		copy(w.partial[:], w.partial[size:w.npartial])
		w.npartial -= size
	}

	// Forward maximal unchanged spans; write mapped runes individually.
	start := 0
	for i := 0; i < len(s); {
		if !utf8.FullRuneInString(s[i:]) {
			if start < i {
				if _, err := w.dst.WriteString(s[start:i]); err != nil {
					return 0, err
				}
			}
			w.npartial = copy(w.partial[:], s[i:])
			return total, nil
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if mr := w.fn(r); mr != r || r == utf8.RuneError {
			if start < i {
				if _, err := w.dst.WriteString(s[start:i]); err != nil {
					return 0, err
				}
			}
			if err := w.emit(r, s[i:i+size]); err != nil {
				return 0, err
			}
			start = i + size
		}
		i += size
	}
	if start < len(s) {
		if _, err := w.dst.WriteString(s[start:]); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// emit writes one decoded character, applying the mapping. Invalid bytes
// (decoded as RuneError with their original encoding in enc) pass through
// untouched.
func (w *mapWriter) emit(r rune, enc string) error {
	if mr := w.fn(r); mr != r && r != utf8.RuneError {
		_, err := w.dst.WriteString(string(mr))
		return err
	}
	_, err := w.dst.WriteString(enc)
	return err
}
