// Package render defines the core contract shared by every combinator in
// fmty: a Renderable writes itself into a Sink when asked, deferring all
// text production until a caller wants output.
//
// # The Contract
//
// A Renderable may be rendered zero, one, or many times; each render with a
// fresh sink produces identical output. Combinators invoke children strictly
// left to right, and the first sink error aborts the render and propagates
// to the caller unchanged.
//
// # Basic Usage
//
// Build a renderable and materialize it:
//
//	r := render.Text("hola mundo")
//	s, _ := render.String(r)
//
// Stream into any io.Writer without an intermediate string:
//
//	err := render.WriteTo(os.Stdout, r)
//
// Implement ad-hoc renderables with a function:
//
//	r := render.Func(func(s render.Sink) error {
//		_, err := s.WriteString("generated")
//		return err
//	})
package render
