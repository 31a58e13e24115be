package hyper

import "testing"

func TestDynamicRankScenarios(t *testing.T) {
	cases := []struct {
		comps []int
		want  int
	}{
		{[]int{0, 0, 0, 0, 0, 0, 0, 1}, 3},
		{[]int{7, 0, 0, 0, 0, 0, 0, 0}, 0},
		{[]int{0, 0, 1, 0, 0, 0, 0, 0}, 2},
		{[]int{0, 0, 0, 0, 0, 0, 0, 0}, 0},
		{[]int{3, 4, 0, 0, 0, 0, 0, 0}, 1},
	}
	for _, c := range cases {
		v, err := Of[int](3, c.comps...)
		if err != nil {
			t.Fatal(err)
		}
		if got := DynamicRank[int](v); got != c.want {
			t.Errorf("DynamicRank(%v) = %d, want %d", c.comps, got, c.want)
		}
	}
}

func TestDynamicRankBoundedByRank(t *testing.T) {
	for rank := 0; rank <= 4; rank++ {
		v := Unit[int](rank, Dim(rank)-1)
		if got := DynamicRank[int](v); got > rank {
			t.Errorf("rank %d: dynamic rank %d exceeds static rank", rank, got)
		}
		if rank > 0 && DynamicRank[int](v) != rank {
			t.Errorf("top unit of rank %d: dynamic rank = %d", rank, DynamicRank[int](v))
		}
	}
}

func TestDynamicRankZeroIffZeroUnreal(t *testing.T) {
	v, _ := Of[int](3, 9)
	if DynamicRank[int](v) != 0 {
		t.Error("purely real value must have dynamic rank 0")
	}
	if !Equal[int](v, Real(9)) {
		t.Error("dynamic rank 0 must coincide with equality to the real injection")
	}
}
