// Package casing converts the case of lazily rendered text as it streams
// through, without materializing the inner output.
//
//	r := casing.Upper(render.Text("hola mundo"))
//	render.MustString(r) // "HOLA MUNDO"
//
// Upper and Lower use Unicode simple case mapping (one rune to one rune;
// no locale tailoring, so "ß" stays "ß"). UpperASCII and LowerASCII touch
// only the letters A-Z/a-z and leave everything else alone. Title buffers
// the inner rendering to find word boundaries and is the one combinator
// here that allocates.
package casing
