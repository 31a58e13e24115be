package scalar

import "testing"

func TestZeroAndOne(t *testing.T) {
	if Zero[int]() != 0 || Zero[float64]() != 0 {
		t.Error("Zero must be the additive identity")
	}
	if One[int]() != 1 {
		t.Errorf("One[int]() = %d", One[int]())
	}
	if One[float64]() != 1.0 {
		t.Errorf("One[float64]() = %g", One[float64]())
	}
	if One[uint8]() != 1 {
		t.Errorf("One[uint8]() = %d", One[uint8]())
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0) || !IsZero(0.0) {
		t.Error("IsZero(0) must hold")
	}
	if IsZero(-3) || IsZero(0.25) {
		t.Error("IsZero must reject nonzero values")
	}
}

func TestAbs(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 {
		t.Error("integer Abs")
	}
	if Abs(-1.5) != 1.5 {
		t.Error("float Abs")
	}
	if Abs(uint(9)) != 9 {
		t.Error("unsigned Abs must be the identity")
	}
}
