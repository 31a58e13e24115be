package hyper

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFormatRealNoParentheses(t *testing.T) {
	v := Real(42)
	if s := fmt.Sprintf("%v", v); s != "42" {
		t.Errorf("fmt of rank-0 value = %q, want \"42\"", s)
	}
}

func TestFormatSuppressesZeroUpperBarrage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyper")
	defer teardown()
	v, _ := Of[int](1, 3, 0)
	if s := fmt.Sprintf("%v", v); s != "3" {
		t.Errorf("fmt of (3,0) = %q, want \"3\"", s)
	}
	w, _ := Of[int](2, 12, 31, 0, 0)
	if s := fmt.Sprintf("%v", w); s != "(12,31)" {
		t.Errorf("fmt of (12,31,0,0) = %q, want \"(12,31)\"", s)
	}
}

func TestFormatFlatList(t *testing.T) {
	v, _ := Of[int](2, 1, 10, 14, 18)
	if s := fmt.Sprintf("%v", v); s != "(1,10,14,18)" {
		t.Errorf("fmt = %q, want \"(1,10,14,18)\"", s)
	}
	if s := v.String(); s != "(1,10,14,18)" {
		t.Errorf("String() = %q", s)
	}
}

func TestFormatAdjustmentFlags(t *testing.T) {
	v, _ := Of[int](2, 1, 10, 14, 18)
	if s := fmt.Sprintf("%+-20v", v); s != "(+1,+10,+14,+18)    " {
		t.Errorf("left adjust = %q", s)
	}
	if s := fmt.Sprintf("%+20v", v); s != "    (+1,+10,+14,+18)" {
		t.Errorf("right adjust = %q", s)
	}
	// Internal adjustment is the only mode propagating width into the
	// components: each receives floor((20-5)/4) = 3 columns, padded
	// between sign and digits.
	if s := fmt.Sprintf("%+020v", v); s != "   (+ 1,+10,+14,+18)" {
		t.Errorf("internal adjust = %q", s)
	}
}

func TestFormatNegativeComponents(t *testing.T) {
	v, _ := Of[int](1, 3, -4)
	if s := fmt.Sprintf("%v", v); s != "(3,-4)" {
		t.Errorf("fmt = %q", s)
	}
	if s := fmt.Sprintf("%+v", v); s != "(+3,-4)" {
		t.Errorf("fmt with sign = %q", s)
	}
}

func TestFormatPrecision(t *testing.T) {
	v, _ := Of[float64](1, 1.25, -0.5)
	if s := fmt.Sprintf("%.1f", v); s != "(1.2,-0.5)" {
		t.Errorf("fmt %%.1f = %q", s)
	}
}

func TestFormatScalarVerbPassThrough(t *testing.T) {
	v, _ := Of[int](1, 10, 11)
	if s := fmt.Sprintf("%d", v); s != "(10,11)" {
		t.Errorf("fmt %%d = %q", s)
	}
	if s := fmt.Sprintf("%s", v); s != "(10,11)" {
		t.Errorf("fmt %%s = %q", s)
	}
}

func TestFormatZeroValue(t *testing.T) {
	if s := fmt.Sprintf("%v", New[int](2)); s != "0" {
		t.Errorf("fmt of zero = %q, want \"0\"", s)
	}
}
