package once

import (
	"iter"
	"sync/atomic"

	"github.com/nvzqz/fmty/render"
)

// slot holds a payload that can be extracted at most once.
//
// take swaps the stored pointer to nil, so extraction and the subsequent
// drive-to-completion are a single indivisible step with respect to a
// reentrant render on the same wrapper: by the time the payload runs, the
// slot is already empty, and a recursive take observes that and renders
// nothing.
type slot[T any] struct {
	v atomic.Pointer[T]
}

func newSlot[T any](v T) *slot[T] {
	s := &slot[T]{}
	s.v.Store(&v)
	return s
}

func (s *slot[T]) take() (T, bool) {
	if p := s.v.Swap(nil); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Func wraps a stateful zero-argument function as a single-use renderable.
//
// The first render calls fn once and writes its result; every later render
// writes nothing and succeeds. fn's result is rendered with render.Value
// semantics.
func Func(fn func() any) render.Renderable {
	s := newSlot(fn)
	return render.Func(func(dst render.Sink) error {
		fn, ok := s.take()
		if !ok {
			return nil
		}
		return render.Value(fn()).Render(dst)
	})
}

// Seq wraps a non-restartable sequence as a single-use renderable.
//
// The first render drives seq to completion, writing each item back to
// back; every later render writes nothing and succeeds. seq is never
// ranged twice, so sequences backed by channels, readers, or other
// consume-once state are safe here.
func Seq[T any](seq iter.Seq[T]) render.Renderable {
	return ConcatMap(seq, func(v T) render.Renderable { return render.Value(v) })
}

// Concat is Seq under the name matching the combine package.
func Concat[T any](seq iter.Seq[T]) render.Renderable {
	return Seq(seq)
}

// ConcatMap renders f(item) for each item of seq back to back, driving seq
// at most once.
func ConcatMap[T any](seq iter.Seq[T], f func(T) render.Renderable) render.Renderable {
	s := newSlot(seq)
	return render.Func(func(dst render.Sink) error {
		seq, ok := s.take()
		if !ok {
			return nil
		}
		for v := range seq {
			if err := f(v).Render(dst); err != nil {
				return err
			}
		}
		return nil
	})
}

// Join renders the items of seq separated by sep, driving seq at most
// once. Zero or one item never emits the separator.
func Join[T any](seq iter.Seq[T], sep string) render.Renderable {
	return JoinMap(seq, sep, func(v T) render.Renderable { return render.Value(v) })
}

// JoinMap renders f(item) for each item of seq separated by sep, driving
// seq at most once.
func JoinMap[T any](seq iter.Seq[T], sep string, f func(T) render.Renderable) render.Renderable {
	s := newSlot(seq)
	return render.Func(func(dst render.Sink) error {
		seq, ok := s.take()
		if !ok {
			return nil
		}
		first := true
		for v := range seq {
			if !first {
				if _, err := dst.WriteString(sep); err != nil {
					return err
				}
			}
			first = false
			if err := f(v).Render(dst); err != nil {
				return err
			}
		}
		return nil
	})
}

// CSV joins the items of seq with ", ", driving seq at most once.
func CSV[T any](seq iter.Seq[T]) render.Renderable {
	return Join(seq, ", ")
}

// CSVMap joins f(item) results with ", ", driving seq at most once.
func CSVMap[T any](seq iter.Seq[T], f func(T) render.Renderable) render.Renderable {
	return JoinMap(seq, ", ", f)
}
