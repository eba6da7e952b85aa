// Package combine provides the plain renderable combinators: sequencing,
// joining, conditional inclusion, repetition, and quoting.
//
// Every combinator holds its children by value, invokes them strictly left
// to right, and carries no state between renders, so combined values stay
// freely repeatable and nest arbitrarily with the truncate and once
// packages.
//
//	r := combine.Join(" ",
//		render.Text("hola"),
//		render.Text("mundo"),
//	)
//	render.MustString(r) // "hola mundo"
//
// Sequence forms (ConcatSeq, JoinSeq, and friends) accept an iter.Seq and
// range it afresh on every render; single-use sequences belong in the once
// package.
package combine
