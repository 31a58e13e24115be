/*
Package scalar declares the component contract for hypercomplex values.

Every hypercomplex value is built from 2^R components of one scalar type.
The contract a component type has to satisfy is expressed as Go type-set
constraints: an additive group with value-initialized zero, a multiplicative
monoid whose identity is one successor step away from zero, equality, and a
boolean projection which is false exactly for the additive identity.

Capabilities beyond that are opt-in. Division and modulus are only required
by the scalar division operators of the value packages; ordering is only
required by the taxicab and supremum norms. Instantiations lacking a
capability fail at compile time, not at call time: '%' does not compile
under Float, math.Sqrt-backed helpers do not compile under Integer.

Irregular values (NaN, infinities) are viral. The helpers neither detect
nor repair them; whatever a component operation produces is carried along.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package scalar

// Signed is a constraint permitting any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint permitting any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is a constraint permitting any integer type. Integer scalars
// additionally support the modulus operator.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint permitting any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Num is the component contract: any type admissible as the component type
// of a hypercomplex value. The type set covers exactly the types providing
// +, -, *, /, ==, ordering, and a value-initialized additive identity.
type Num interface {
	Integer | Float
}

// Zero returns the additive identity of T.
func Zero[T Num]() T {
	var zero T
	return zero
}

// One returns the multiplicative identity of T, reached by taking the
// successor of the additive identity.
func One[T Num]() T {
	var one T
	one++
	return one
}

// IsZero is the boolean projection of the contract, inverted: it reports
// whether x is the additive identity. NaN compares unequal to everything,
// including zero, so an irregular float counts as nonzero.
func IsZero[T Num](x T) bool {
	var zero T
	return x == zero
}

// Abs returns the absolute value of x. For unsigned types this is the
// identity; the negation branch is never taken.
func Abs[T Num](x T) T {
	var zero T
	if x < zero {
		return -x
	}
	return x
}
