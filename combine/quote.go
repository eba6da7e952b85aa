package combine

import "github.com/nvzqz/fmty/render"

// Quote helpers built on Infix. Each places the value between a fixed pair
// of quotation marks.

// QuoteSingle renders value between '.
func QuoteSingle(value render.Renderable) render.Renderable {
	return Infix(render.Rune('\''), value, render.Rune('\''))
}

// QuoteDouble renders value between ".
func QuoteDouble(value render.Renderable) render.Renderable {
	return Infix(render.Rune('"'), value, render.Rune('"'))
}

// QuoteBacktick renders value between `.
func QuoteBacktick(value render.Renderable) render.Renderable {
	return Infix(render.Rune('`'), value, render.Rune('`'))
}

// QuoteDirectedSingle renders value between ‘ and ’.
func QuoteDirectedSingle(value render.Renderable) render.Renderable {
	return Infix(render.Rune('‘'), value, render.Rune('’'))
}

// QuoteDirectedDouble renders value between “ and ”.
func QuoteDirectedDouble(value render.Renderable) render.Renderable {
	return Infix(render.Rune('“'), value, render.Rune('”'))
}

// QuoteLowSingle renders value between ‚ and ‘, as in German usage.
func QuoteLowSingle(value render.Renderable) render.Renderable {
	return Infix(render.Rune('‚'), value, render.Rune('‘'))
}

// QuoteLowDouble renders value between „ and “, as in German usage.
func QuoteLowDouble(value render.Renderable) render.Renderable {
	return Infix(render.Rune('„'), value, render.Rune('“'))
}

// QuoteGuillemetSingle renders value between ‹ and ›.
func QuoteGuillemetSingle(value render.Renderable) render.Renderable {
	return Infix(render.Rune('‹'), value, render.Rune('›'))
}

// QuoteGuillemetDouble renders value between « and ».
func QuoteGuillemetDouble(value render.Renderable) render.Renderable {
	return Infix(render.Rune('«'), value, render.Rune('»'))
}
