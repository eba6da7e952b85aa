package render

import (
	"fmt"
	"io"
	"strings"
)

// Sink receives text fragments during a render. Any io.StringWriter
// satisfies it, including *strings.Builder and *bufio.Writer.
//
// A sink must tolerate being invoked zero or more times per render, with
// arbitrary fragment boundaries, including boundaries that split a single
// rune's UTF-8 encoding across two calls.
type Sink interface {
	WriteString(s string) (n int, err error)
}

// Renderable is a value that can write its text representation into a sink
// on demand.
//
// Rendering is repeatable: calling Render any number of times, with any
// sinks, produces the same sequence of fragments each time. The once
// package is the single documented exception to this rule.
//
// Render returns the first error reported by the sink, verbatim, and stops
// writing as soon as that error occurs. A failed render makes no guarantee
// about how much output already reached the sink.
type Renderable interface {
	Render(s Sink) error
}

// Func adapts a function to the Renderable interface.
type Func func(Sink) error

// Render calls f(s).
func (f Func) Render(s Sink) error { return f(s) }

// Text is a literal string Renderable.
type Text string

// Render writes the string to s.
func (t Text) Render(s Sink) error {
	_, err := s.WriteString(string(t))
	return err
}

// Rune is a single-rune Renderable.
type Rune rune

// Render writes the rune's UTF-8 encoding to s.
func (r Rune) Render(s Sink) error {
	_, err := s.WriteString(string(rune(r)))
	return err
}

// NoOp returns a Renderable that writes nothing and always succeeds.
func NoOp() Renderable { return noOp{} }

type noOp struct{}

func (noOp) Render(Sink) error { return nil }

// Value wraps an arbitrary value as a Renderable.
//
// Renderable, string, []byte, rune, error, and fmt.Stringer values are
// written directly; everything else goes through fmt.Fprint, which may
// allocate.
func Value(v any) Renderable { return value{v} }

type value struct{ v any }

func (val value) Render(s Sink) error {
	switch v := val.v.(type) {
	case Renderable:
		return v.Render(s)
	case string:
		_, err := s.WriteString(v)
		return err
	case []byte:
		_, err := s.WriteString(string(v))
		return err
	case rune:
		_, err := s.WriteString(string(v))
		return err
	case error:
		_, err := s.WriteString(v.Error())
		return err
	case fmt.Stringer:
		_, err := s.WriteString(v.String())
		return err
	default:
		_, err := fmt.Fprint(sinkWriter{s}, v)
		return err
	}
}

// sinkWriter adapts a Sink to io.Writer for fmt.
type sinkWriter struct{ s Sink }

func (w sinkWriter) Write(p []byte) (int, error) { return w.s.WriteString(string(p)) }

// String renders r into a new string.
func String(r Renderable) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MustString renders r into a new string and panics on error. Useful when
// the render tree contains no fallible sinks of its own.
func MustString(r Renderable) string {
	s, err := String(r)
	if err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}
	return s
}

// Append renders r onto the end of dst and returns the extended slice.
func Append(dst []byte, r Renderable) ([]byte, error) {
	a := appendSink{buf: dst}
	if err := r.Render(&a); err != nil {
		return dst, err
	}
	return a.buf, nil
}

type appendSink struct{ buf []byte }

func (a *appendSink) WriteString(s string) (int, error) {
	a.buf = append(a.buf, s...)
	return len(s), nil
}

// WriteTo renders r into an arbitrary io.Writer. Writers that implement
// io.StringWriter receive fragments without copying.
func WriteTo(w io.Writer, r Renderable) error {
	if sw, ok := w.(io.StringWriter); ok {
		return r.Render(sw)
	}
	return r.Render(writerSink{w})
}

type writerSink struct{ w io.Writer }

func (ws writerSink) WriteString(s string) (int, error) { return io.WriteString(ws.w, s) }
