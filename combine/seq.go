package combine

import (
	"iter"

	"github.com/nvzqz/fmty/render"
)

// Sequence forms of the combinators. The seq argument must be restartable:
// every render ranges it from the start, so sequences over slices, maps,
// or pure generators are fine, while consume-once sequences belong in the
// once package instead.

// ConcatSeq renders the items of seq back to back.
func ConcatSeq[T any](seq iter.Seq[T]) render.Renderable {
	return ConcatMap(seq, func(v T) render.Renderable { return render.Value(v) })
}

// ConcatMap renders f(item) for each item of seq back to back.
func ConcatMap[T any](seq iter.Seq[T], f func(T) render.Renderable) render.Renderable {
	return render.Func(func(s render.Sink) error {
		for v := range seq {
			if err := f(v).Render(s); err != nil {
				return err
			}
		}
		return nil
	})
}

// JoinSeq renders the items of seq separated by sep.
func JoinSeq[T any](seq iter.Seq[T], sep string) render.Renderable {
	return JoinMap(seq, sep, func(v T) render.Renderable { return render.Value(v) })
}

// JoinMap renders f(item) for each item of seq separated by sep.
func JoinMap[T any](seq iter.Seq[T], sep string, f func(T) render.Renderable) render.Renderable {
	return render.Func(func(s render.Sink) error {
		first := true
		for v := range seq {
			if !first {
				if _, err := s.WriteString(sep); err != nil {
					return err
				}
			}
			first = false
			if err := f(v).Render(s); err != nil {
				return err
			}
		}
		return nil
	})
}

// CSVSeq joins the items of seq with ", ".
func CSVSeq[T any](seq iter.Seq[T]) render.Renderable {
	return JoinSeq(seq, ", ")
}

// CSVMap joins f(item) results with ", ".
func CSVMap[T any](seq iter.Seq[T], f func(T) render.Renderable) render.Renderable {
	return JoinMap(seq, ", ", f)
}

// JoinStrings renders plain strings separated by sep without wrapping each
// in a Renderable first.
func JoinStrings(sep string, items ...string) render.Renderable {
	return render.Func(func(s render.Sink) error {
		for i, item := range items {
			if i > 0 {
				if _, err := s.WriteString(sep); err != nil {
					return err
				}
			}
			if _, err := s.WriteString(item); err != nil {
				return err
			}
		}
		return nil
	})
}
