package nested

import (
	"github.com/npillmayer/hyper/scalar"
)

// Part is the contract tying a doubling level to its lower level: B is
// the barrage type of a Pair[T, B], and every nested value type satisfies
// Part over itself. The methods are exactly the recursive observations
// and operations the doubling needs — component access, functional
// update, the additive group, conjugation, the Cayley–Dickson product and
// the three norms.
//
// Clients do not implement Part; Real and Pair are the only models.
type Part[T scalar.Num, B any] interface {
	// Rank returns the construction rank R.
	Rank() int
	// Dim returns the component count 2^R.
	Dim() int
	// At returns component i, with 0 ≤ i < Dim().
	At(i int) T
	// WithAt returns a copy with component i replaced by c.
	WithAt(i int, c T) B
	// IsZero reports whether every component is the additive identity.
	IsZero() bool
	// DynamicRank returns the smallest rank capturing all nonzero components.
	DynamicRank() int
	// Map returns a copy with f applied to every component.
	Map(f func(T) T) B
	// Add returns the component-wise sum.
	Add(b B) B
	// Sub returns the component-wise difference.
	Sub(b B) B
	// Neg returns the additive inverse.
	Neg() B
	// Conj returns the Cayley–Dickson conjugate.
	Conj() B
	// Mul returns the Cayley–Dickson product.
	Mul(b B) B
	// Norm returns the Cayley norm, the sum of squared components.
	Norm() T
	// Taxi returns the taxicab norm.
	Taxi() T
	// Sup returns the supremum norm.
	Sup() T
}

// --- Rank 0 ----------------------------------------------------------------

// Real is the rank-0 nested value: a single scalar, its own lower and
// upper barrage. The zero value is the additive identity.
type Real[T scalar.Num] struct {
	c T
}

// NewReal creates the rank-0 value holding c.
func NewReal[T scalar.Num](c T) Real[T] {
	return Real[T]{c: c}
}

// Rank returns 0.
func (v Real[T]) Rank() int { return 0 }

// Dim returns 1.
func (v Real[T]) Dim() int { return 1 }

// At returns the scalar for i == 0 and panics otherwise.
func (v Real[T]) At(i int) T {
	assert(i == 0, "nested: component index out of range")
	return v.c
}

// WithAt returns a copy with the scalar replaced by c.
func (v Real[T]) WithAt(i int, c T) Real[T] {
	assert(i == 0, "nested: component index out of range")
	return Real[T]{c: c}
}

// IsZero reports whether the scalar is the additive identity.
func (v Real[T]) IsZero() bool { return scalar.IsZero(v.c) }

// DynamicRank returns 0.
func (v Real[T]) DynamicRank() int { return 0 }

// Map returns a copy with f applied to the scalar.
func (v Real[T]) Map(f func(T) T) Real[T] { return Real[T]{c: f(v.c)} }

// Add returns the scalar sum.
func (v Real[T]) Add(b Real[T]) Real[T] { return Real[T]{c: v.c + b.c} }

// Sub returns the scalar difference.
func (v Real[T]) Sub(b Real[T]) Real[T] { return Real[T]{c: v.c - b.c} }

// Neg returns the additive inverse.
func (v Real[T]) Neg() Real[T] { return Real[T]{c: -v.c} }

// Conj returns the value itself: reals are self-conjugate.
func (v Real[T]) Conj() Real[T] { return v }

// Mul returns the scalar product, the base case of the doubling formula.
func (v Real[T]) Mul(b Real[T]) Real[T] { return Real[T]{c: v.c * b.c} }

// Norm returns the squared scalar.
func (v Real[T]) Norm() T { return v.c * v.c }

// Taxi returns the absolute scalar value.
func (v Real[T]) Taxi() T { return scalar.Abs(v.c) }

// Sup returns the absolute scalar value.
func (v Real[T]) Sup() T { return scalar.Abs(v.c) }

// Scale returns the left scalar product s·v.
func (v Real[T]) Scale(s T) Real[T] { return Real[T]{c: s * v.c} }

// ScaleRight returns the right scalar product v·s.
func (v Real[T]) ScaleRight(s T) Real[T] { return Real[T]{c: v.c * s} }

// Div returns the scalar quotient v/s.
func (v Real[T]) Div(s T) Real[T] { return Real[T]{c: v.c / s} }

// RealPart returns the scalar.
func (v Real[T]) RealPart() T { return v.c }

// Imag returns zero: a rank-0 value has no imaginary component.
func (v Real[T]) Imag() T { return scalar.Zero[T]() }

// Unreal returns the rank-0 zero.
func (v Real[T]) Unreal() Real[T] { return Real[T]{} }

// Set replaces the scalar in place.
func (v *Real[T]) Set(c T) { v.c = c }

// SetAt replaces component i in place; only i == 0 is valid.
func (v *Real[T]) SetAt(i int, c T) {
	assert(i == 0, "nested: component index out of range")
	v.c = c
}

// Lower returns the value itself: the rank-0 barrage is degenerate.
func (v *Real[T]) Lower() *Real[T] { return v }

// Upper returns the value itself: the rank-0 barrage is degenerate.
func (v *Real[T]) Upper() *Real[T] { return v }

// Inc increments the scalar by one.
func (v *Real[T]) Inc() { v.c += scalar.One[T]() }

// Dec decrements the scalar by one.
func (v *Real[T]) Dec() { v.c -= scalar.One[T]() }

// Transform applies f to every (index, component) pair in place.
func (v *Real[T]) Transform(f func(i int, c T) T) { v.c = f(0, v.c) }

// --- Rank R ≥ 1 ------------------------------------------------------------

// Pair is one Cayley–Dickson doubling over the barrage type B: a value of
// rank R stored as lower and upper barrages of rank R−1. The zero value
// is the additive identity of its rank.
//
// Pair contains no pointers, so assignment copies the whole component
// tree. Lower and Upper expose the barrages as references for in-place
// mutation.
type Pair[T scalar.Num, B Part[T, B]] struct {
	lo, hi B
}

// NewPair assembles a value from its lower and upper barrage.
func NewPair[T scalar.Num, B Part[T, B]](lo, hi B) Pair[T, B] {
	return Pair[T, B]{lo: lo, hi: hi}
}

// Rank returns the construction rank, one above the barrage rank.
func (p Pair[T, B]) Rank() int { return p.lo.Rank() + 1 }

// Dim returns the component count 2^R.
func (p Pair[T, B]) Dim() int { return 2 * p.lo.Dim() }

// At returns component i: the lower barrage holds indices below Dim()/2,
// the upper barrage the rest.
func (p Pair[T, B]) At(i int) T {
	h := p.lo.Dim()
	if i >= 0 && i < h {
		return p.lo.At(i)
	}
	return p.hi.At(i - h)
}

// WithAt returns a copy with component i replaced by c.
func (p Pair[T, B]) WithAt(i int, c T) Pair[T, B] {
	h := p.lo.Dim()
	if i >= 0 && i < h {
		p.lo = p.lo.WithAt(i, c)
	} else {
		p.hi = p.hi.WithAt(i-h, c)
	}
	return p
}

// IsZero reports whether every component is the additive identity.
func (p Pair[T, B]) IsZero() bool {
	return p.lo.IsZero() && p.hi.IsZero()
}

// DynamicRank returns the smallest rank capturing all nonzero components:
// with an all-zero upper barrage it is the dynamic rank of the lower
// barrage, otherwise the full rank.
func (p Pair[T, B]) DynamicRank() int {
	if p.hi.IsZero() {
		return p.lo.DynamicRank()
	}
	return p.Rank()
}

// Map returns a copy with f applied to every component.
func (p Pair[T, B]) Map(f func(T) T) Pair[T, B] {
	return Pair[T, B]{lo: p.lo.Map(f), hi: p.hi.Map(f)}
}

// Add returns the component-wise sum.
func (p Pair[T, B]) Add(q Pair[T, B]) Pair[T, B] {
	return Pair[T, B]{lo: p.lo.Add(q.lo), hi: p.hi.Add(q.hi)}
}

// Sub returns the component-wise difference.
func (p Pair[T, B]) Sub(q Pair[T, B]) Pair[T, B] {
	return Pair[T, B]{lo: p.lo.Sub(q.lo), hi: p.hi.Sub(q.hi)}
}

// Neg returns the additive inverse.
func (p Pair[T, B]) Neg() Pair[T, B] {
	return Pair[T, B]{lo: p.lo.Neg(), hi: p.hi.Neg()}
}

// Conj returns the Cayley–Dickson conjugate (conj(lo), −hi).
func (p Pair[T, B]) Conj() Pair[T, B] {
	return Pair[T, B]{lo: p.lo.Conj(), hi: p.hi.Neg()}
}

// Mul returns the Cayley–Dickson product
//
//	(aL, aU) · (bL, bU) = (aL·bL − conj(bU)·aU , bU·aL + aU·conj(bL))
//
// evaluated natively on the barrage structure. The operand order is
// exactly that of the formula; from the quaternions on it matters.
func (p Pair[T, B]) Mul(q Pair[T, B]) Pair[T, B] {
	return Pair[T, B]{
		lo: p.lo.Mul(q.lo).Sub(q.hi.Conj().Mul(p.hi)),
		hi: q.hi.Mul(p.lo).Add(p.hi.Mul(q.lo.Conj())),
	}
}

// Norm returns the Cayley norm, the sum of the barrage norms.
func (p Pair[T, B]) Norm() T {
	return p.lo.Norm() + p.hi.Norm()
}

// Taxi returns the taxicab norm.
func (p Pair[T, B]) Taxi() T {
	return p.lo.Taxi() + p.hi.Taxi()
}

// Sup returns the supremum norm.
func (p Pair[T, B]) Sup() T {
	return max(p.lo.Sup(), p.hi.Sup())
}

// Scale returns the left scalar product s·v, component-wise.
func (p Pair[T, B]) Scale(s T) Pair[T, B] {
	return p.Map(func(c T) T { return s * c })
}

// ScaleRight returns the right scalar product v·s, component-wise.
func (p Pair[T, B]) ScaleRight(s T) Pair[T, B] {
	return p.Map(func(c T) T { return c * s })
}

// Div returns the component-wise scalar quotient v/s.
func (p Pair[T, B]) Div(s T) Pair[T, B] {
	return p.Map(func(c T) T { return c / s })
}

// RealPart returns component 0.
func (p Pair[T, B]) RealPart() T { return p.At(0) }

// Imag returns component 1.
func (p Pair[T, B]) Imag() T { return p.At(1) }

// Unreal returns a copy with the real component zeroed.
func (p Pair[T, B]) Unreal() Pair[T, B] {
	return p.WithAt(0, scalar.Zero[T]())
}

// SetAt replaces component i in place.
func (p *Pair[T, B]) SetAt(i int, c T) {
	*p = p.WithAt(i, c)
}

// Lower returns a reference to the lower barrage; mutations through it
// are visible in p.
func (p *Pair[T, B]) Lower() *B { return &p.lo }

// Upper returns a reference to the upper barrage; mutations through it
// are visible in p.
func (p *Pair[T, B]) Upper() *B { return &p.hi }

// Inc increments the real component by one; all other components are
// untouched.
func (p *Pair[T, B]) Inc() {
	p.SetAt(0, p.At(0)+scalar.One[T]())
}

// Dec decrements the real component by one; all other components are
// untouched.
func (p *Pair[T, B]) Dec() {
	p.SetAt(0, p.At(0)-scalar.One[T]())
}

// AddAssign adds q to p in place.
func (p *Pair[T, B]) AddAssign(q Pair[T, B]) { *p = p.Add(q) }

// SubAssign subtracts q from p in place.
func (p *Pair[T, B]) SubAssign(q Pair[T, B]) { *p = p.Sub(q) }

// MulAssign replaces p by p·q in place.
func (p *Pair[T, B]) MulAssign(q Pair[T, B]) { *p = p.Mul(q) }

// Transform applies f to every (index, component) pair in place, in
// index order.
func (p *Pair[T, B]) Transform(f func(i int, c T) T) {
	for i := 0; i < p.Dim(); i++ {
		p.SetAt(i, f(i, p.At(i)))
	}
}
