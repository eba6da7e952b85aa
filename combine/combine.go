package combine

import "github.com/nvzqz/fmty/render"

// Concat renders items back to back, left to right.
//
// Zero items render as empty text; a single item renders exactly as it
// would alone. The first sink error aborts the remaining items and
// propagates unchanged.
func Concat(items ...render.Renderable) render.Renderable {
	return concat(items)
}

type concat []render.Renderable

func (c concat) Render(s render.Sink) error {
	for _, item := range c {
		if err := item.Render(s); err != nil {
			return err
		}
	}
	return nil
}

// Join renders items separated by sep. Zero or one item never emits the
// separator.
func Join(sep string, items ...render.Renderable) render.Renderable {
	return join{sep: sep, items: items}
}

type join struct {
	sep   string
	items []render.Renderable
}

func (j join) Render(s render.Sink) error {
	for i, item := range j.items {
		if i > 0 {
			if _, err := s.WriteString(j.sep); err != nil {
				return err
			}
		}
		if err := item.Render(s); err != nil {
			return err
		}
	}
	return nil
}

// CSV joins items with ", ".
func CSV(items ...render.Renderable) render.Renderable {
	return Join(", ", items...)
}

// Cond renders r when write is true and nothing otherwise.
func Cond(write bool, r render.Renderable) render.Renderable {
	if !write {
		return render.NoOp()
	}
	return r
}

// CondFunc renders fn's result when write is true and nothing otherwise.
// fn runs on every render, so construction of the value stays as lazy as
// the render itself.
func CondFunc(write bool, fn func() render.Renderable) render.Renderable {
	if !write {
		return render.NoOp()
	}
	return render.Func(func(s render.Sink) error {
		return fn().Render(s)
	})
}

// Repeat renders r n times. n <= 0 renders as empty text.
func Repeat(r render.Renderable, n int) render.Renderable {
	return repeat{r: r, n: n}
}

type repeat struct {
	r render.Renderable
	n int
}

func (rp repeat) Render(s render.Sink) error {
	for i := 0; i < rp.n; i++ {
		if err := rp.r.Render(s); err != nil {
			return err
		}
	}
	return nil
}

// Infix renders value between left and right.
func Infix(left, value, right render.Renderable) render.Renderable {
	return Concat(left, value, right)
}
