package hyper

import (
	"iter"

	"github.com/npillmayer/hyper/scalar"
)

// MaxRank is the largest supported construction rank. 2^MaxRank components
// still index comfortably within int on 32-bit hosts; ranks above it are
// rejected.
const MaxRank = 30

// Dim returns the component count 2^rank of a value with the given rank.
func Dim(rank int) int {
	assert(rank >= 0 && rank <= MaxRank, "hyper.Dim: rank out of range")
	return 1 << uint(rank)
}

// rankValid reports whether rank lies in [0, MaxRank].
func rankValid(rank int) bool {
	return rank >= 0 && rank <= MaxRank
}

// Value is the observable contract shared by both storage philosophies:
// a read-only, rank-annotated view of 2^R scalar components.
//
// Flat values, nested.Real and nested.Pair all satisfy Value. Generic
// operations defined on Value — equality, dynamic rank, mixed-rank
// arithmetic, conversion, formatting — therefore work across ranks and
// across storage philosophies.
//
// At must panic for indices outside [0, Dim()); an out-of-range index is
// a usage bug, not a recoverable condition.
type Value[T scalar.Num] interface {
	// Rank returns the construction rank R.
	Rank() int
	// Dim returns the component count 2^R.
	Dim() int
	// At returns component i, with 0 ≤ i < Dim().
	At(i int) T
}

// Get returns component i of v. It is the tuple-style accessor companion
// to At and panics on an out-of-range index.
func Get[T scalar.Num](v Value[T], i int) T {
	return v.At(i)
}

// atExt reads component i of the infinite zero-extension of v.
func atExt[T scalar.Num](v Value[T], i int) T {
	if i < v.Dim() {
		return v.At(i)
	}
	return scalar.Zero[T]()
}

// IsZero reports whether every component of v is the additive identity.
func IsZero[T scalar.Num](v Value[T]) bool {
	for i := 0; i < v.Dim(); i++ {
		if !scalar.IsZero(v.At(i)) {
			return false
		}
	}
	return true
}

// Equal compares two values of arbitrary ranks and storage philosophies.
// The shorter operand is zero-extended to the longer rank, i.e. two values
// are equal iff their infinite zero-extensions agree component-wise.
func Equal[T scalar.Num](a, b Value[T]) bool {
	n := max(a.Dim(), b.Dim())
	for i := 0; i < n; i++ {
		if atExt(a, i) != atExt(b, i) {
			return false
		}
	}
	return true
}

// EqualScalar compares v against the real injection of s: the real
// component must equal s and every other component must be zero.
func EqualScalar[T scalar.Num](v Value[T], s T) bool {
	if v.At(0) != s {
		return false
	}
	for i := 1; i < v.Dim(); i++ {
		if !scalar.IsZero(v.At(i)) {
			return false
		}
	}
	return true
}

// EqualFunc compares two values with differing scalar types through eq.
// Zero-extension follows the same rule as Equal; excess components are
// compared against the respective scalar zero.
func EqualFunc[T, U scalar.Num](a Value[T], b Value[U], eq func(T, U) bool) bool {
	n := max(a.Dim(), b.Dim())
	for i := 0; i < n; i++ {
		var x T
		var y U
		if i < a.Dim() {
			x = a.At(i)
		}
		if i < b.Dim() {
			y = b.At(i)
		}
		if !eq(x, y) {
			return false
		}
	}
	return true
}

// DynamicRank returns the smallest rank that still captures all nonzero
// components of v: 0 if no component with index ≥ 1 is nonzero, otherwise
// the smallest r with every component of index ≥ 2^r zero.
//
// Dynamic rank drives compact formatted output: components beyond
// 2^DynamicRank(v) are suppressed.
func DynamicRank[T scalar.Num](v Value[T]) int {
	top := -1 // index of the highest nonzero component
	for i := v.Dim() - 1; i >= 1; i-- {
		if !scalar.IsZero(v.At(i)) {
			top = i
			break
		}
	}
	if top < 0 {
		return 0
	}
	r := 1
	for Dim(r) <= top {
		r++
	}
	return r
}

// Components iterates over the components of v in index order.
func Components[T scalar.Num](v Value[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Dim(); i++ {
			if !yield(v.At(i)) {
				return
			}
		}
	}
}

// All iterates over (index, component) pairs of v in index order.
func All[T scalar.Num](v Value[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Dim(); i++ {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}
