package nested

import (
	"math"
	"testing"

	"github.com/npillmayer/hyper"
)

// Quaternion units on nested storage.
func TestQuaternionUnitProducts(t *testing.T) {
	q, _ := Of[float64, Quaternion[float64]](1, 0, 0, 0)
	r, _ := Of[float64, Quaternion[float64]](0, 1, 0, 0)
	qr := q.Mul(r)
	if want, _ := Of[float64, Quaternion[float64]](0, 1, 0, 0); !hyper.Equal[float64](qr, want) {
		t.Errorf("q*r = %v, want (0,1,0,0)", qr)
	}
	rr := r.Mul(r)
	if want, _ := Of[float64, Quaternion[float64]](-1, 0, 0, 0); !hyper.Equal[float64](rr, want) {
		t.Errorf("r*r = %v, want (-1,0,0,0)", rr)
	}
}

func TestHamiltonLawsNested(t *testing.T) {
	i := Unit[int, Quaternion[int]](1)
	j := Unit[int, Quaternion[int]](2)
	k := Unit[int, Quaternion[int]](3)
	one := Unit[int, Quaternion[int]](0)
	cases := []struct {
		name string
		got  Quaternion[int]
		want Quaternion[int]
	}{
		{"i*j == k", i.Mul(j), k},
		{"j*k == i", j.Mul(k), i},
		{"k*i == j", k.Mul(i), j},
		{"j*i == -k", j.Mul(i), k.Neg()},
		{"i*i == -1", i.Mul(i), one.Neg()},
		{"j*j == -1", j.Mul(j), one.Neg()},
		{"k*k == -1", k.Mul(k), one.Neg()},
	}
	for _, c := range cases {
		if !hyper.Equal[int](c.got, c.want) {
			t.Errorf("%s failed: got %v", c.name, c.got)
		}
	}
}

func TestAdditiveGroupNested(t *testing.T) {
	a, _ := Of[int, Octonion[int]](1, -2, 3, -4, 5, -6, 7, -8)
	var zero Octonion[int]
	if !hyper.Equal[int](a.Add(zero), a) {
		t.Error("a + 0 != a")
	}
	if !a.Add(a.Neg()).IsZero() {
		t.Error("a + (-a) != 0")
	}
	b, _ := Of[int, Octonion[int]](9, 8, 7, 6, 5, 4, 3, 2)
	if !hyper.Equal[int](a.Add(b), b.Add(a)) {
		t.Error("addition must commute")
	}
	if !hyper.Equal[int](a.Sub(b), b.Sub(a).Neg()) {
		t.Error("a-b != -(b-a)")
	}
}

func TestConjugationNested(t *testing.T) {
	q, _ := Of[int, Quaternion[int]](1, 2, 3, 4)
	c := q.Conj()
	want := []int{1, -2, -3, -4}
	for i, x := range want {
		if c.At(i) != x {
			t.Errorf("conj[%d] = %d, want %d", i, c.At(i), x)
		}
	}
	if !hyper.Equal[int](c.Conj(), q) {
		t.Error("conj(conj(q)) != q")
	}
}

func TestNormsNested(t *testing.T) {
	q, _ := Of[int, Quaternion[int]](1, -2, 3, -4)
	if q.Norm() != 30 {
		t.Errorf("norm = %d, want 30", q.Norm())
	}
	if q.Taxi() != 10 {
		t.Errorf("taxi = %d, want 10", q.Taxi())
	}
	if q.Sup() != 4 {
		t.Errorf("sup = %d, want 4", q.Sup())
	}
	p := q.Mul(q.Conj())
	if !hyper.EqualScalar[int](p, q.Norm()) {
		t.Errorf("q*conj(q) = %v, want real %d", p, q.Norm())
	}
	if a := hyper.Abs[int](q); math.Abs(a-math.Sqrt(30)) > 1e-12 {
		t.Errorf("abs = %g", a)
	}
}

func TestScaleAndDivNested(t *testing.T) {
	c, _ := Of[int, Complex[int]](3, -6)
	if s := c.Scale(2); s.At(0) != 6 || s.At(1) != -12 {
		t.Errorf("scale = %v", s)
	}
	if d := c.Div(3); d.At(0) != 1 || d.At(1) != -2 {
		t.Errorf("div = %v", d)
	}
	m := Mod(c, 4)
	if m.At(0) != 3 || m.At(1) != -2 {
		t.Errorf("mod = %v", m)
	}
	// Division law: (v/s)*s + (v%s) == v.
	v, _ := Of[int, Complex[int]](7, -9)
	if got := v.Div(4).ScaleRight(4).Add(Mod(v, 4)); !hyper.Equal[int](got, v) {
		t.Errorf("division law: %v != %v", got, v)
	}
}

func TestSgnNested(t *testing.T) {
	c, _ := Of[float64, Complex[float64]](3, 4)
	s := Sgn(c)
	if math.Abs(s.At(0)-0.6) > 1e-12 || math.Abs(s.At(1)-0.8) > 1e-12 {
		t.Errorf("sgn = %v", s)
	}
	var zero Complex[float64]
	if !Sgn(zero).IsZero() {
		t.Error("sgn(0) must be zero")
	}
}

func TestInPlaceNested(t *testing.T) {
	a, _ := Of[int, Complex[int]](3, 4)
	b, _ := Of[int, Complex[int]](1, 1)
	a.AddAssign(b)
	if a.At(0) != 4 || a.At(1) != 5 {
		t.Errorf("after +=: %v", a)
	}
	a.SubAssign(b)
	a.MulAssign(b)
	// (3,4)*(1,1) = (3-4, 3+4) = (-1, 7)
	if a.At(0) != -1 || a.At(1) != 7 {
		t.Errorf("after *=: %v", a)
	}
}

func TestMixedPhilosophyArithmetic(t *testing.T) {
	q, _ := Of[int, Quaternion[int]](1, 2, 3, 4)
	f, _ := hyper.Of[int](1, 10, 20)
	sum := hyper.Add[int](q, f)
	if want, _ := hyper.Of[int](2, 11, 22, 3, 4); !sum.Equals(want) {
		t.Errorf("nested+flat = %v", sum)
	}
	// Multiplication agrees between philosophies.
	a, _ := Of[int, Quaternion[int]](1, -2, 3, -4)
	b, _ := Of[int, Quaternion[int]](5, 6, -7, 8)
	af := hyper.FromValue[int](2, a)
	bf := hyper.FromValue[int](2, b)
	if !hyper.Equal[int](a.Mul(b), af.Mul(bf)) {
		t.Error("nested and flat products disagree")
	}
}
