/*
Package hyper implements Cayley–Dickson hypercomplex numbers.

The Cayley–Dickson construction doubles a number system: applied to the
reals it yields the complex numbers, then the quaternions, the octonions,
the sedenions, and so on. A value of rank R has 2^R components of one
scalar type; component 0 is the real part, everything else is the unreal
part. Each doubling trades away a little structure — commutativity is lost
at rank 2, associativity at rank 3 — while addition, conjugation and the
multiplicative identity survive at every rank.

Two storage philosophies coexist as distinct types with the same
observable behavior:

▪︎ Flat storage (this package): all 2^R components in one contiguous
slice, the rank fixed at construction. Flat values are the natural fit
for bulk component iteration and for mixed-rank operations.

▪︎ Nested storage (package nested): a rank-R value as a pair of rank-R−1
values, expressed with recursive generics, so that the rank is part of
the type and assignment is a true deep copy.

The hyper.Value interface is the bridge between the two: a read-only,
rank-annotated component view. Equality, dynamic rank, mixed-rank
arithmetic, conversion and formatting are generic functions over Value
and therefore work across ranks and across storage philosophies.

A flat value created by

	hyper.Flat[int]{}

is valid and behaves like the zero of rank 0. Shorter operands of binary
operations are implicitly zero-extended to the longer rank; the result
carries the longer rank. Multiplication follows the Cayley–Dickson
doubling formula

	(aL, aU) * (bL, bU) = (aL·bL − conj(bU)·aU , bU·aL + aU·conj(bL))

with the operand order preserved exactly, since the product is
non-commutative from the quaternions on and non-associative from the
octonions on.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package hyper

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
