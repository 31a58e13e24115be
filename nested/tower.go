package nested

import (
	"fmt"

	"github.com/npillmayer/hyper"
	"github.com/npillmayer/hyper/scalar"
)

// The named levels of the Cayley–Dickson tower. Higher ranks are obtained
// by further Pair applications; nothing in the package is specific to
// these four.
type (
	// Complex is the rank-1 nested value: one doubling over the reals.
	Complex[T scalar.Num] = Pair[T, Real[T]]
	// Quaternion is the rank-2 nested value.
	Quaternion[T scalar.Num] = Pair[T, Complex[T]]
	// Octonion is the rank-3 nested value.
	Octonion[T scalar.Num] = Pair[T, Quaternion[T]]
	// Sedenion is the rank-4 nested value.
	Sedenion[T scalar.Num] = Pair[T, Octonion[T]]
)

// Of creates a nested value of type B from up to dim(B) components in
// index order. Missing trailing components become the additive identity;
// a longer component list is rejected with ErrTooManyComponents.
//
//	q, err := nested.Of[float64, nested.Quaternion[float64]](1, 0, 0, 0)
func Of[T scalar.Num, B Part[T, B]](comps ...T) (B, error) {
	var v B
	if len(comps) > v.Dim() {
		tracer().Debugf("nested.Of: %d components for dimension %d", len(comps), v.Dim())
		return v, ErrTooManyComponents
	}
	for i, c := range comps {
		v = v.WithAt(i, c)
	}
	return v, nil
}

// Unit returns the basis value of type B with component i set to one.
// Unit(0) is the multiplicative identity.
func Unit[T scalar.Num, B Part[T, B]](i int) B {
	var v B
	assert(i >= 0 && i < v.Dim(), "nested.Unit: component index out of range")
	return v.WithAt(i, scalar.One[T]())
}

// Extend lifts a value one rank up by attaching an all-zero upper
// barrage. The result compares equal to its argument.
func Extend[T scalar.Num, B Part[T, B]](lo B) Pair[T, B] {
	return Pair[T, B]{lo: lo}
}

// FromValue creates a nested value of type B from any value of any rank
// and either storage philosophy. A longer source is truncated to the
// real-ward prefix; a shorter source is zero-extended.
func FromValue[T scalar.Num, B Part[T, B]](v hyper.Value[T]) B {
	var w B
	if v.Dim() > w.Dim() {
		tracer().Debugf("nested.FromValue: truncating rank %d to %d", v.Rank(), w.Rank())
	}
	n := min(w.Dim(), v.Dim())
	for i := 0; i < n; i++ {
		w = w.WithAt(i, v.At(i))
	}
	return w
}

// Convert creates a nested value of type B over scalar type T from a
// value over scalar type U, converting each component. Length adjustment
// follows FromValue.
func Convert[T scalar.Num, B Part[T, B], U scalar.Num](v hyper.Value[U]) B {
	var w B
	n := min(w.Dim(), v.Dim())
	for i := 0; i < n; i++ {
		w = w.WithAt(i, T(v.At(i)))
	}
	return w
}

// Mod returns the component-wise scalar remainder v%s.
func Mod[T scalar.Integer, B Part[T, B]](v B, s T) B {
	return v.Map(func(c T) T { return c % s })
}

// Sgn returns v scaled to Euclidean absolute value one, or the zero value
// when v is zero. Defined for floating scalar types only.
func Sgn[T scalar.Float, B Part[T, B]](v B) B {
	a := hyper.Abs[T](v)
	if a == 0 {
		var zero B
		return zero
	}
	return v.Map(func(c T) T { return c / T(a) })
}

// Format implements fmt.Formatter with the nested barrage-pair layout.
func (v Real[T]) Format(st fmt.State, verb rune) {
	hyper.FormatValue[T](st, verb, v, hyper.LayoutNested)
}

// String returns the compact textual form of v.
func (v Real[T]) String() string {
	return fmt.Sprintf("%v", v)
}

// Format implements fmt.Formatter with the nested barrage-pair layout,
// e.g. "((1,10),(14,18))" for a rank-2 value with nonzero upper barrage.
func (p Pair[T, B]) Format(st fmt.State, verb rune) {
	hyper.FormatValue[T](st, verb, p, hyper.LayoutNested)
}

// String returns the compact textual form of p.
func (p Pair[T, B]) String() string {
	return fmt.Sprintf("%v", p)
}
