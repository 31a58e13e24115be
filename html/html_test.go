package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/hyper"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRenderFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyper")
	defer teardown()
	c, _ := hyper.Of[int](1, 3, 4)
	want := `<span class="hyper">3 + 4·<i>e</i><sub>1</sub></span>`
	if s := Render[int](c); s != want {
		t.Errorf("Render = %q, want %q", s, want)
	}
}

func TestRenderNegativeAndZero(t *testing.T) {
	c, _ := hyper.Of[int](1, -3, -4)
	want := `<span class="hyper">−3 − 4·<i>e</i><sub>1</sub></span>`
	if s := Render[int](c); s != want {
		t.Errorf("Render = %q, want %q", s, want)
	}
	var zero hyper.Flat[int]
	if s := Render[int](zero); s != `<span class="hyper">0</span>` {
		t.Errorf("Render of zero = %q", s)
	}
}

func TestRenderSuppressesBeyondDynamicRank(t *testing.T) {
	o, _ := hyper.Of[int](3, 1, 0, 7)
	want := `<span class="hyper">1 + 7·<i>e</i><sub>2</sub></span>`
	if s := Render[int](o); s != want {
		t.Errorf("Render = %q, want %q", s, want)
	}
}

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hyper")
	defer teardown()
	c, _ := hyper.Of[int](1, 3, 4)
	text, err := TextFromHTML(strings.NewReader(Render[int](c)))
	if err != nil {
		t.Fatal(err)
	}
	if text != "3 + 4·e1" {
		t.Errorf("text = %q", text)
	}
}

func TestInnerTextNilNode(t *testing.T) {
	if _, err := InnerText(nil); !errors.Is(err, hyper.ErrIllegalArguments) {
		t.Errorf("err = %v", err)
	}
}
