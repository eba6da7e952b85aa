package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// errSink fails every write with a fixed error.
type errSink struct{ err error }

func (s errSink) WriteString(string) (int, error) { return 0, s.err }

type stringerVal struct{}

func (stringerVal) String() string { return "stringer" }

func TestText(t *testing.T) {
	s, err := String(Text("hola mundo"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if s != "hola mundo" {
		t.Errorf("String() = %q, expected %q", s, "hola mundo")
	}
}

func TestRune(t *testing.T) {
	s, err := String(Rune('é'))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if s != "é" {
		t.Errorf("String() = %q, expected %q", s, "é")
	}
}

func TestNoOp(t *testing.T) {
	s, err := String(NoOp())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if s != "" {
		t.Errorf("String() = %q, expected empty", s)
	}
}

func TestFunc(t *testing.T) {
	r := Func(func(s Sink) error {
		if _, err := s.WriteString("a"); err != nil {
			return err
		}
		_, err := s.WriteString("b")
		return err
	})
	s, err := String(r)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if s != "ab" {
		t.Errorf("String() = %q, expected %q", s, "ab")
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "string", value: "hola", expected: "hola"},
		{name: "bytes", value: []byte("hola"), expected: "hola"},
		{name: "rune", value: 'é', expected: "é"},
		{name: "renderable", value: Text("nested"), expected: "nested"},
		{name: "stringer", value: stringerVal{}, expected: "stringer"},
		{name: "error", value: errors.New("boom"), expected: "boom"},
		{name: "int", value: 123, expected: "123"},
		{name: "float", value: 1.5, expected: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := String(Value(tt.value))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if s != tt.expected {
				t.Errorf("String() = %q, expected %q", s, tt.expected)
			}
		})
	}
}

func TestRenderRepeatable(t *testing.T) {
	r := Func(func(s Sink) error {
		_, err := s.WriteString("same")
		return err
	})

	for i := 0; i < 3; i++ {
		s, err := String(r)
		if err != nil {
			t.Fatalf("render %d: error = %v", i+1, err)
		}
		if s != "same" {
			t.Errorf("render %d: got %q, expected %q", i+1, s, "same")
		}
	}
}

func TestSinkErrorPropagatesVerbatim(t *testing.T) {
	sinkErr := errors.New("sink closed")

	err := Text("hola").Render(errSink{err: sinkErr})
	if err != sinkErr {
		t.Errorf("Render() error = %v, expected the sink's own error", err)
	}
}

func TestFuncStopsOnSinkError(t *testing.T) {
	sinkErr := errors.New("sink closed")
	calls := 0

	r := Func(func(s Sink) error {
		calls++
		if _, err := s.WriteString("a"); err != nil {
			return err
		}
		t.Error("write after sink failure should not be reached")
		return nil
	})

	if err := r.Render(errSink{err: sinkErr}); err != sinkErr {
		t.Errorf("Render() error = %v, expected sink error", err)
	}
	if calls != 1 {
		t.Errorf("render func called %d times, expected 1", calls)
	}
}

func TestAppend(t *testing.T) {
	buf := []byte("prefix:")
	buf, err := Append(buf, Text("hola"))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if string(buf) != "prefix:hola" {
		t.Errorf("Append() = %q, expected %q", buf, "prefix:hola")
	}
}

func TestWriteTo(t *testing.T) {
	t.Run("plain writer", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteTo(&buf, Text("hola")); err != nil {
			t.Fatalf("WriteTo() error = %v", err)
		}
		if buf.String() != "hola" {
			t.Errorf("WriteTo() wrote %q, expected %q", buf.String(), "hola")
		}
	})

	t.Run("string writer", func(t *testing.T) {
		var sb strings.Builder
		if err := WriteTo(&sb, Text("hola")); err != nil {
			t.Fatalf("WriteTo() error = %v", err)
		}
		if sb.String() != "hola" {
			t.Errorf("WriteTo() wrote %q, expected %q", sb.String(), "hola")
		}
	})
}

func TestMustString(t *testing.T) {
	if s := MustString(Text("ok")); s != "ok" {
		t.Errorf("MustString() = %q, expected %q", s, "ok")
	}
}
