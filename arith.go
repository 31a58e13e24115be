package hyper

import (
	"github.com/npillmayer/hyper/scalar"
)

// --- Slice-level Cayley–Dickson algebra -----------------------------------
//
// The recursive identities operate on half-slices; all helpers allocate
// their result and leave the operands untouched. Slice lengths are powers
// of two and equal between operands.

func cdAdd[T scalar.Num](a, b []T) []T {
	r := make([]T, len(a))
	for i := range a {
		r[i] = a[i] + b[i]
	}
	return r
}

func cdSub[T scalar.Num](a, b []T) []T {
	r := make([]T, len(a))
	for i := range a {
		r[i] = a[i] - b[i]
	}
	return r
}

func cdNeg[T scalar.Num](a []T) []T {
	r := make([]T, len(a))
	for i := range a {
		r[i] = -a[i]
	}
	return r
}

// cdConj negates every component except the real one.
func cdConj[T scalar.Num](a []T) []T {
	r := make([]T, len(a))
	r[0] = a[0]
	for i := 1; i < len(a); i++ {
		r[i] = -a[i]
	}
	return r
}

// cdMul is the Cayley–Dickson doubling product
//
//	(aL, aU) · (bL, bU) = (aL·bL − conj(bU)·aU , bU·aL + aU·conj(bL))
//
// The operand order matters: the product is non-commutative from rank 2 on
// and non-associative from rank 3 on.
func cdMul[T scalar.Num](a, b []T) []T {
	assert(len(a) == len(b), "cdMul: operand length mismatch")
	if len(a) == 1 {
		return []T{a[0] * b[0]}
	}
	h := len(a) / 2
	aL, aU := a[:h], a[h:]
	bL, bU := b[:h], b[h:]
	lo := cdSub(cdMul(aL, bL), cdMul(cdConj(bU), aU))
	hi := cdAdd(cdMul(bU, aL), cdMul(aU, cdConj(bL)))
	return append(lo, hi...)
}

// --- Flat operators --------------------------------------------------------

// extend returns the component slice of v zero-extended to length n.
func (v Flat[T]) extend(n int) []T {
	r := make([]T, n)
	copy(r, v.comp)
	return r
}

// Add returns the component-wise sum. Operands of unequal rank are
// zero-extended; the result carries the longer rank.
func (v Flat[T]) Add(w Flat[T]) Flat[T] {
	rank := max(v.rank, w.rank)
	return Flat[T]{rank: rank, comp: cdAdd(v.extend(Dim(rank)), w.extend(Dim(rank)))}
}

// Sub returns the component-wise difference, zero-extending like Add.
func (v Flat[T]) Sub(w Flat[T]) Flat[T] {
	rank := max(v.rank, w.rank)
	return Flat[T]{rank: rank, comp: cdSub(v.extend(Dim(rank)), w.extend(Dim(rank)))}
}

// Neg returns the additive inverse.
func (v Flat[T]) Neg() Flat[T] {
	return Flat[T]{rank: v.rank, comp: cdNeg(v.extend(v.Dim()))}
}

// Conj returns the Cayley–Dickson conjugate: the real component is kept,
// every unreal component is negated. Equivalently, conj((aL, aU)) =
// (conj(aL), −aU).
func (v Flat[T]) Conj() Flat[T] {
	return Flat[T]{rank: v.rank, comp: cdConj(v.extend(v.Dim()))}
}

// Mul returns the Cayley–Dickson product v·w. Operands of unequal rank
// are zero-extended; the result carries the longer rank. At rank 1 this
// is complex multiplication, at rank 2 the Hamilton quaternion product.
func (v Flat[T]) Mul(w Flat[T]) Flat[T] {
	rank := max(v.rank, w.rank)
	return Flat[T]{rank: rank, comp: cdMul(v.extend(Dim(rank)), w.extend(Dim(rank)))}
}

// Scale returns the left scalar product s·v, component-wise s·vᵢ.
func (v Flat[T]) Scale(s T) Flat[T] {
	r := v.extend(v.Dim())
	for i := range r {
		r[i] = s * r[i]
	}
	return Flat[T]{rank: v.rank, comp: r}
}

// ScaleRight returns the right scalar product v·s, component-wise vᵢ·s.
func (v Flat[T]) ScaleRight(s T) Flat[T] {
	r := v.extend(v.Dim())
	for i := range r {
		r[i] = r[i] * s
	}
	return Flat[T]{rank: v.rank, comp: r}
}

// Div returns the component-wise scalar quotient v/s.
func (v Flat[T]) Div(s T) Flat[T] {
	r := v.extend(v.Dim())
	for i := range r {
		r[i] = r[i] / s
	}
	return Flat[T]{rank: v.rank, comp: r}
}

// --- In-place forms --------------------------------------------------------

// AddAssign adds w to v in place. The receiver rank must not be below the
// operand rank; a shorter operand is zero-extended.
func (v *Flat[T]) AddAssign(w Value[T]) error {
	if w.Rank() > v.rank {
		return ErrRankMismatch
	}
	v.ensure()
	for i := 0; i < w.Dim(); i++ {
		v.comp[i] += w.At(i)
	}
	return nil
}

// SubAssign subtracts w from v in place, with the rank rule of AddAssign.
func (v *Flat[T]) SubAssign(w Value[T]) error {
	if w.Rank() > v.rank {
		return ErrRankMismatch
	}
	v.ensure()
	for i := 0; i < w.Dim(); i++ {
		v.comp[i] -= w.At(i)
	}
	return nil
}

// MulAssign replaces v by v·w in place, with the rank rule of AddAssign.
func (v *Flat[T]) MulAssign(w Flat[T]) error {
	if w.Rank() > v.rank {
		return ErrRankMismatch
	}
	v.ensure()
	v.comp = cdMul(v.comp, w.extend(v.Dim()))
	return nil
}

// ScaleAssign replaces v by s·v in place.
func (v *Flat[T]) ScaleAssign(s T) {
	v.ensure()
	for i := range v.comp {
		v.comp[i] = s * v.comp[i]
	}
}

// DivAssign replaces v by v/s in place.
func (v *Flat[T]) DivAssign(s T) {
	v.ensure()
	for i := range v.comp {
		v.comp[i] = v.comp[i] / s
	}
}

// Inc increments the real component by one; all other components are
// untouched. This is the "generalized number" successor, not an
// element-wise increment.
func (v *Flat[T]) Inc() {
	v.ensure()
	v.comp[0] += scalar.One[T]()
}

// Dec decrements the real component by one; all other components are
// untouched.
func (v *Flat[T]) Dec() {
	v.ensure()
	v.comp[0] -= scalar.One[T]()
}

// --- Integer-only operators ------------------------------------------------

// Mod returns the component-wise scalar remainder v%s. Together with Div
// it satisfies Div(v,s)·s + Mod(v,s) == v whenever the scalar law holds.
func Mod[T scalar.Integer](v Flat[T], s T) Flat[T] {
	r := v.extend(v.Dim())
	for i := range r {
		r[i] = r[i] % s
	}
	return Flat[T]{rank: v.rank, comp: r}
}

// ModAssign replaces v by the component-wise remainder v%s in place.
func ModAssign[T scalar.Integer](v *Flat[T], s T) {
	v.ensure()
	for i := range v.comp {
		v.comp[i] = v.comp[i] % s
	}
}

// --- Cross-rank / cross-philosophy operators -------------------------------
//
// The free functions accept any two Values — different ranks, different
// storage — and return a flat value of the longer rank.

func materialize[T scalar.Num](a, b Value[T]) (Flat[T], Flat[T]) {
	rank := max(a.Rank(), b.Rank())
	return FromValue[T](rank, a), FromValue[T](rank, b)
}

// Add returns a+b with the shorter operand zero-extended.
func Add[T scalar.Num](a, b Value[T]) Flat[T] {
	x, y := materialize(a, b)
	return x.Add(y)
}

// Sub returns a−b with the shorter operand zero-extended.
func Sub[T scalar.Num](a, b Value[T]) Flat[T] {
	x, y := materialize(a, b)
	return x.Sub(y)
}

// Mul returns the Cayley–Dickson product a·b with the shorter operand
// zero-extended.
func Mul[T scalar.Num](a, b Value[T]) Flat[T] {
	x, y := materialize(a, b)
	return x.Mul(y)
}

// Neg returns the additive inverse of v as a flat value.
func Neg[T scalar.Num](v Value[T]) Flat[T] {
	return FromValue[T](v.Rank(), v).Neg()
}

// Conj returns the conjugate of v as a flat value.
func Conj[T scalar.Num](v Value[T]) Flat[T] {
	return FromValue[T](v.Rank(), v).Conj()
}

// Commutator returns a·b − b·a. It vanishes identically up to rank 1 and
// measures the non-commutativity of the tower above.
func Commutator[T scalar.Num](a, b Value[T]) Flat[T] {
	x, y := materialize(a, b)
	return x.Mul(y).Sub(y.Mul(x))
}

// Associator returns (a·b)·c − a·(b·c). It vanishes identically up to
// rank 2 and measures the non-associativity of the tower above.
func Associator[T scalar.Num](a, b, c Value[T]) Flat[T] {
	rank := max(a.Rank(), max(b.Rank(), c.Rank()))
	x := FromValue[T](rank, a)
	y := FromValue[T](rank, b)
	z := FromValue[T](rank, c)
	return x.Mul(y).Mul(z).Sub(x.Mul(y.Mul(z)))
}

// Dot returns the symmetric bilinear form Σ aᵢ·bᵢ, the real part of
// a·conj(b). Dot(a, a) equals the Cayley norm.
func Dot[T scalar.Num](a, b Value[T]) T {
	n := max(a.Dim(), b.Dim())
	var sum T
	for i := 0; i < n; i++ {
		sum += atExt(a, i) * atExt(b, i)
	}
	return sum
}
