// Package once embeds non-duplicable producers in lazily rendered values.
//
// The render contract normally allows unlimited repeat renders with
// identical output. Some producers cannot honor that: a sequence backed by
// a channel or reader can be driven only once, and a stateful function may
// return a different value each call. This package is the sanctioned
// exception: a wrapper renders its payload's full output on the first
// render, and on every render after it renders nothing and still succeeds.
//
//	seq := slices.Values([]string{"hola", "mundo"})
//	r := once.Seq(seq)
//	render.MustString(r) // "holamundo"
//	render.MustString(r) // ""
//
// # Extraction
//
// The payload lives in a guarded slot. A render first takes the payload
// out of the slot, leaving it permanently empty, and only then drives it.
// This ordering makes reentrancy safe: if driving the payload triggers a
// recursive render of the same wrapper (for example through a back
// reference to a container holding it), the recursive call finds the slot
// already empty and renders nothing. The payload is never extracted twice.
//
// If the sink fails partway through the first render, the payload is still
// consumed; the wrapper does not retry.
//
// # Concurrency
//
// Wrappers are safe for single-goroutine use, including reentrant renders
// on the same call stack. They are not safe for concurrent renders from
// multiple goroutines: extraction itself cannot double-fire, but two
// goroutines sharing one sink would interleave fragments. Do not share a
// wrapper across goroutines, and do not copy a wrapper after creating it;
// a copy would duplicate the slot state the contract depends on.
package once
