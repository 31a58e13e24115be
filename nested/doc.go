/*
Package nested implements the nested storage philosophy for Cayley–Dickson
hypercomplex numbers: a rank-R value is a pair of rank-R−1 values, down to
a single scalar at rank 0.

The doubling is expressed with recursive generics. Real[T] is the rank-0
base; Pair[T, B] doubles any lower part B; the familiar tower levels are
generic aliases:

	Complex[T]    = Pair[T, Real[T]]
	Quaternion[T] = Pair[T, Complex[T]]
	Octonion[T]   = Pair[T, Quaternion[T]]
	Sedenion[T]   = Pair[T, Octonion[T]]

The rank is part of the type, so mismatched operands do not compile, and
values contain no pointers: Go assignment is a true deep copy. Recursive
identities — Cayley–Dickson multiplication, conjugation, dynamic rank —
run natively on the lower/upper barrage structure, and the barrages are
addressable sub-objects: Lower and Upper on a pair return references
through which the value can be mutated in place.

Nested types satisfy hyper.Value, so equality, mixed-rank arithmetic,
conversion and formatting interoperate with flat values through the
generic functions of package hyper.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package nested

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyper'
func tracer() tracing.Trace {
	return tracing.Select("hyper")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
