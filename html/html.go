package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/hyper"
	"github.com/npillmayer/hyper/scalar"
	"golang.org/x/net/html"
)

// WriteValue renders v as an HTML fragment in unit-labeled form, e.g.
//
//	<span class="hyper">3 + 4·<i>e</i><sub>1</sub></span>
//
// Components beyond the dynamic rank and zero components of the unreal
// part are suppressed; the zero value renders as "0". Scalars are
// HTML-escaped through the html package escaper, so the fragment is safe
// to embed verbatim.
func WriteValue[T scalar.Num](w io.Writer, v hyper.Value[T]) error {
	if _, err := io.WriteString(w, `<span class="hyper">`); err != nil {
		return err
	}
	n := hyper.Dim(hyper.DynamicRank[T](v))
	first := true
	for i := 0; i < n; i++ {
		c := v.At(i)
		if i > 0 && scalar.IsZero(c) {
			continue
		}
		if err := writeTerm(w, i, c, first); err != nil {
			return err
		}
		first = false
	}
	_, err := io.WriteString(w, `</span>`)
	return err
}

// Render renders v as an HTML fragment (see WriteValue).
func Render[T scalar.Num](v hyper.Value[T]) string {
	var sb strings.Builder
	_ = WriteValue(&sb, v)
	return sb.String()
}

func writeTerm[T scalar.Num](w io.Writer, i int, c T, first bool) error {
	op := " + "
	var zero T
	if c < zero {
		op = " − "
	}
	if first {
		op = ""
		if c < zero {
			op = "−"
		}
	}
	if _, err := io.WriteString(w, op); err != nil {
		return err
	}
	if _, err := io.WriteString(w, html.EscapeString(fmt.Sprintf("%v", scalar.Abs(c)))); err != nil {
		return err
	}
	if i == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "·<i>e</i><sub>%d</sub>", i)
	return err
}

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", hyper.ErrIllegalArguments
	}
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String(), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// TextFromHTML extracts the pure text of an HTML fragment. It does no
// interpretation of layout and styling.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	return sb.String(), nil
}
