package hyper

import (
	"fmt"
	"iter"

	"github.com/npillmayer/hyper/scalar"
)

// Flat is the contiguous storage philosophy: a rank-R hypercomplex value
// holding its 2^R components in one slice, in index order. Component 0 is
// the real part.
//
// A value created by
//
//	Flat[int]{}
//
// is valid and is the zero of rank 0. The rank is fixed at construction;
// values are never resized.
//
// Assignment copies the header only; use Clone for an independent value.
// All non-pointer methods are non-mutating and allocate fresh storage for
// their results, so sharing is observable only through the explicit
// in-place API (SetAt, Mut, the *Assign methods, Inc/Dec).
type Flat[T scalar.Num] struct {
	rank int
	comp []T // nil means the rank-0 zero
}

// New creates the zero value of the given rank: every component is the
// additive identity. The rank must lie in [0, MaxRank].
func New[T scalar.Num](rank int) Flat[T] {
	assert(rankValid(rank), "hyper.New: rank out of range")
	return Flat[T]{rank: rank, comp: make([]T, Dim(rank))}
}

// Real creates the rank-0 value holding s: the canonical real injection.
func Real[T scalar.Num](s T) Flat[T] {
	return Flat[T]{rank: 0, comp: []T{s}}
}

// Of creates a rank-R value from up to 2^R components in index order.
// Missing trailing components become the additive identity. A component
// list longer than 2^R is rejected with ErrTooManyComponents.
func Of[T scalar.Num](rank int, comps ...T) (Flat[T], error) {
	if !rankValid(rank) {
		return Flat[T]{}, fmt.Errorf("%w: %d", ErrRankRange, rank)
	}
	if len(comps) > Dim(rank) {
		tracer().Debugf("hyper.Of: %d components for rank %d", len(comps), rank)
		return Flat[T]{}, ErrTooManyComponents
	}
	v := New[T](rank)
	copy(v.comp, comps)
	return v, nil
}

// Unit creates the rank-R basis value with component i set to one and all
// other components zero. Unit(rank, 0) is the multiplicative identity.
func Unit[T scalar.Num](rank int, i int) Flat[T] {
	v := New[T](rank)
	v.comp[i] = scalar.One[T]()
	return v
}

// FromParts assembles a rank-R value from sub-values of one common rank
// R' < R. Part i fills the component block [i·2^R', (i+1)·2^R'); missing
// trailing blocks become zero. The parts must all have equal rank and the
// blocks must fit, otherwise ErrShapeMismatch or ErrTooManyComponents is
// returned. With a single part of rank R−1 this is the usual "extend with
// zero upper barrage" construction.
func FromParts[T scalar.Num](rank int, parts ...Flat[T]) (Flat[T], error) {
	if !rankValid(rank) {
		return Flat[T]{}, fmt.Errorf("%w: %d", ErrRankRange, rank)
	}
	if len(parts) == 0 {
		return New[T](rank), nil
	}
	sub := parts[0].Rank()
	if sub >= rank {
		return Flat[T]{}, fmt.Errorf("%w: part rank %d not below rank %d", ErrShapeMismatch, sub, rank)
	}
	for _, p := range parts {
		if p.Rank() != sub {
			return Flat[T]{}, fmt.Errorf("%w: parts of unequal rank", ErrShapeMismatch)
		}
	}
	block := Dim(sub)
	if len(parts)*block > Dim(rank) {
		return Flat[T]{}, ErrTooManyComponents
	}
	v := New[T](rank)
	for i, p := range parts {
		for j := 0; j < block; j++ {
			v.comp[i*block+j] = p.At(j)
		}
	}
	return v, nil
}

// FromValue creates a rank-R flat value from any value of any rank and
// either storage philosophy. A longer source is truncated to the
// real-ward prefix (silently, as requested); a shorter source is
// zero-extended.
func FromValue[T scalar.Num](rank int, v Value[T]) Flat[T] {
	assert(rankValid(rank), "hyper.FromValue: rank out of range")
	w := New[T](rank)
	n := min(w.Dim(), v.Dim())
	for i := 0; i < n; i++ {
		w.comp[i] = v.At(i)
	}
	return w
}

// Convert creates a rank-R flat value over scalar type T from a value
// over scalar type U, converting each component. Length adjustment
// follows FromValue: truncate a longer source, zero-fill a shorter one.
func Convert[T, U scalar.Num](rank int, v Value[U]) Flat[T] {
	assert(rankValid(rank), "hyper.Convert: rank out of range")
	w := New[T](rank)
	n := min(w.Dim(), v.Dim())
	for i := 0; i < n; i++ {
		w.comp[i] = T(v.At(i))
	}
	return w
}

// Rank returns the construction rank R.
func (v Flat[T]) Rank() int {
	return v.rank
}

// Dim returns the component count 2^R.
func (v Flat[T]) Dim() int {
	return Dim(v.rank)
}

// At returns component i, with 0 ≤ i < Dim(). An out-of-range index is a
// usage bug and panics.
func (v Flat[T]) At(i int) T {
	if v.comp == nil {
		assert(i == 0, "hyper: component index out of range")
		return scalar.Zero[T]()
	}
	return v.comp[i]
}

// SetAt sets component i to c.
func (v *Flat[T]) SetAt(i int, c T) {
	v.ensure()
	v.comp[i] = c
}

// ensure materializes storage for the rank-0 zero so that it can be
// mutated in place.
func (v *Flat[T]) ensure() {
	if v.comp == nil {
		v.comp = make([]T, Dim(v.rank))
	}
}

// Clone returns an independent copy of v.
func (v Flat[T]) Clone() Flat[T] {
	if v.comp == nil {
		return Flat[T]{rank: v.rank}
	}
	c := make([]T, len(v.comp))
	copy(c, v.comp)
	return Flat[T]{rank: v.rank, comp: c}
}

// IsZero reports whether every component is the additive identity.
func (v Flat[T]) IsZero() bool {
	for _, c := range v.comp {
		if !scalar.IsZero(c) {
			return false
		}
	}
	return true
}

// Equals compares v against any value of any rank or storage philosophy,
// zero-extending the shorter operand.
func (v Flat[T]) Equals(w Value[T]) bool {
	return Equal[T](v, w)
}

// RealPart returns component 0.
func (v Flat[T]) RealPart() T {
	return v.At(0)
}

// Imag returns component 1, or zero at rank 0.
func (v Flat[T]) Imag() T {
	if v.rank == 0 {
		return scalar.Zero[T]()
	}
	return v.At(1)
}

// Unreal returns a copy of v with the real component zeroed.
func (v Flat[T]) Unreal() Flat[T] {
	w := v.Clone()
	w.ensure()
	w.comp[0] = scalar.Zero[T]()
	return w
}

// Lower returns the lower barrage: the rank-R−1 value formed by the first
// half of the components. Flat storage has no sub-object to reference, so
// the barrage is a freshly built copy; mutations of it do not write back.
// At rank 0 the value itself is returned (degenerate barrage).
func (v Flat[T]) Lower() Flat[T] {
	if v.rank == 0 {
		return v.Clone()
	}
	w := New[T](v.rank - 1)
	for i := 0; i < w.Dim(); i++ {
		w.comp[i] = v.At(i)
	}
	return w
}

// Upper returns the upper barrage: the rank-R−1 value formed by the
// second half of the components, as a copy (see Lower). At rank 0 the
// value itself is returned.
func (v Flat[T]) Upper() Flat[T] {
	if v.rank == 0 {
		return v.Clone()
	}
	w := New[T](v.rank - 1)
	h := v.Dim() / 2
	for i := 0; i < w.Dim(); i++ {
		w.comp[i] = v.At(h + i)
	}
	return w
}

// Reshape returns v carried over to the given rank: the real-ward prefix
// is kept, a longer target is zero-filled, a shorter target truncates.
// Truncation silently discards excess components; that is what the caller
// asked for.
func (v Flat[T]) Reshape(rank int) Flat[T] {
	assert(rankValid(rank), "hyper.Reshape: rank out of range")
	if rank == v.rank {
		return v.Clone()
	}
	if rank < v.rank {
		tracer().Debugf("hyper.Reshape: truncating rank %d to %d", v.rank, rank)
	}
	return FromValue[T](rank, v)
}

// Components iterates over the components in index order.
func (v Flat[T]) Components() iter.Seq[T] {
	return Components[T](v)
}

// All iterates over (index, component) pairs in index order.
func (v Flat[T]) All() iter.Seq2[int, T] {
	return All[T](v)
}

// Mut iterates over pointers to the components in index order, for
// mutation in place.
func (v *Flat[T]) Mut() iter.Seq[*T] {
	v.ensure()
	return func(yield func(*T) bool) {
		for i := range v.comp {
			if !yield(&v.comp[i]) {
				return
			}
		}
	}
}
