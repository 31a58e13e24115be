package hyper

import (
	"math"

	"github.com/npillmayer/hyper/scalar"
)

// Norm returns the Cayley norm of v: the real component of v·conj(v),
// which is the sum of the squared components. The unreal part of
// v·conj(v) vanishes at every rank.
func Norm[T scalar.Num](v Value[T]) T {
	var sum T
	for i := 0; i < v.Dim(); i++ {
		c := v.At(i)
		sum += c * c
	}
	return sum
}

// Taxi returns the taxicab norm: the sum of the absolute component values.
func Taxi[T scalar.Num](v Value[T]) T {
	var sum T
	for i := 0; i < v.Dim(); i++ {
		sum += scalar.Abs(v.At(i))
	}
	return sum
}

// Sup returns the supremum norm: the largest absolute component value.
func Sup[T scalar.Num](v Value[T]) T {
	var m T
	for i := 0; i < v.Dim(); i++ {
		if a := scalar.Abs(v.At(i)); a > m {
			m = a
		}
	}
	return m
}

// Abs returns the Euclidean absolute value of v: the square root of the
// Cayley norm, computed in float64.
func Abs[T scalar.Num](v Value[T]) float64 {
	return math.Sqrt(float64(Norm(v)))
}

// Sgn returns v/Abs(v) when the absolute value is positive, else the zero
// value of the same rank. Defined for floating scalar types only.
func Sgn[T scalar.Float](v Flat[T]) Flat[T] {
	a := Abs[T](v)
	if a == 0 {
		return New[T](v.Rank())
	}
	return v.Div(T(a))
}

// Norm returns the Cayley norm of v (see the package function Norm).
func (v Flat[T]) Norm() T {
	return Norm[T](v)
}

// Taxi returns the taxicab norm of v.
func (v Flat[T]) Taxi() T {
	return Taxi[T](v)
}

// Sup returns the supremum norm of v.
func (v Flat[T]) Sup() T {
	return Sup[T](v)
}
