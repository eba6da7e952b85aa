// Package fmty provides composable, zero-allocation lazy text rendering.
//
// fmty values defer text production until rendered into a caller-supplied
// sink, so human-readable output can be assembled from parts without
// building intermediate strings. Each subpackage can be used independently:
//
//   - render: the Renderable/Sink contract and plumbing all combinators share
//   - combine: concatenation, joining, conditionals, repetition, quoting
//   - truncate: character-exact truncation of streamed output
//   - once: single-use wrappers for non-restartable producers
//   - casing: streaming case conversion
//
// # Quick Start
//
// Compose lazily, render once:
//
//	import (
//		"github.com/nvzqz/fmty/combine"
//		"github.com/nvzqz/fmty/render"
//		"github.com/nvzqz/fmty/truncate"
//	)
//
//	greeting := combine.Join(" ",
//		render.Text("hola"),
//		render.Text("mundo"),
//	)
//	short := truncate.Chars(greeting, 6)
//	render.MustString(short) // "hola m"
//
// # Design Philosophy
//
//   - Rendering streams fragments into the sink; nothing is buffered unless
//     a combinator documents otherwise
//   - Pure combinators are repeatable and freely nestable; the once package
//     is the single sanctioned exception
//   - The first sink error aborts the render and propagates verbatim
//   - Truncation counts decoded runes and always cuts on a rune boundary
package fmty
