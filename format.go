package hyper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/hyper/scalar"
)

// Layout selects the parenthesization shape of formatted output.
//
// Flat values print all components of one dynamic rank as a single list,
// nested values print recursive barrage pairs:
//
//	LayoutFlat    (1,10,14,18)
//	LayoutNested  ((1,10),(14,18))
//
// Both suppress all-zero upper barrages, so a value of dynamic rank 0
// prints as its bare real component.
type Layout int

const (
	// LayoutFlat prints one component list per value.
	LayoutFlat Layout = iota
	// LayoutNested prints recursive lower/upper barrage pairs.
	LayoutNested
)

// FormatValue writes a textual form of v to st, honoring width, precision
// and the flags '+' (sign prefix), '-' (left adjust) and '0' (internal
// adjust). It backs the fmt.Formatter implementations of both storage
// philosophies.
//
// Width handling follows the internal-adjustment convention: only under
// the '0' flag is the width distributed to the components (each component
// receives an equal share of the width remaining after parentheses and
// separators, with the leftover absorbed by outer padding). Under '-' or
// default adjustment the width pads the outermost string only.
//
// The value is staged into a buffer and handed to st as one atomic write,
// so sink-level padding interacts with the adjustment flags in the
// conventional way.
func FormatValue[T scalar.Num](st fmt.State, verb rune, v Value[T], layout Layout) {
	if verb == 's' {
		verb = 'v'
	}
	width, hasWidth := st.Width()
	internal := st.Flag('0') && !st.Flag('-')
	if !hasWidth {
		width = 0
	}
	var body string
	switch layout {
	case LayoutNested:
		w := 0
		if internal {
			w = width
		}
		body = nestedBody(st, verb, v, 0, v.Dim(), w)
	default:
		body = flatBody(st, verb, v, width, internal)
	}
	if width > len(body) {
		fill := strings.Repeat(" ", width-len(body))
		if st.Flag('-') {
			body += fill
		} else {
			body = fill + body
		}
	}
	_, _ = st.Write([]byte(body))
}

// flatBody renders the component list of v up to its dynamic rank.
func flatBody[T scalar.Num](st fmt.State, verb rune, v Value[T], width int, internal bool) string {
	r := DynamicRank(v)
	if r == 0 {
		cw := 0
		if internal {
			cw = width
		}
		return component(st, verb, v.At(0), cw)
	}
	n := Dim(r)
	cw := 0
	if deco := 2 + (n - 1); internal && width > deco {
		cw = (width - deco) / n
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(component(st, verb, v.At(i), cw))
	}
	sb.WriteByte(')')
	return sb.String()
}

// nestedBody renders the barrage-pair form of the index range
// [base, base+size) of v, halving any width share at each level. An
// all-zero upper barrage is suppressed and the lower barrage takes its
// place, unparenthesized.
func nestedBody[T scalar.Num](st fmt.State, verb rune, v Value[T], base, size, width int) string {
	if size == 1 {
		return component(st, verb, v.At(base), width)
	}
	h := size / 2
	upperZero := true
	for i := base + h; i < base+size; i++ {
		if !scalar.IsZero(v.At(i)) {
			upperZero = false
			break
		}
	}
	if upperZero {
		return nestedBody(st, verb, v, base, h, width)
	}
	inner := 0
	if width > 3 { // '(' ',' ')'
		inner = (width - 3) / 2
	}
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(nestedBody(st, verb, v, base, h, inner))
	sb.WriteByte(',')
	sb.WriteString(nestedBody(st, verb, v, base+h, h, inner))
	sb.WriteByte(')')
	return sb.String()
}

// component formats a single scalar, delegating to the scalar's own fmt
// verb. A positive width share is applied internally: padding goes
// between the sign and the digits, never before the sign.
func component[T scalar.Num](st fmt.State, verb rune, c T, width int) string {
	var spec strings.Builder
	spec.WriteByte('%')
	if st.Flag('+') {
		spec.WriteByte('+')
	}
	if st.Flag(' ') {
		spec.WriteByte(' ')
	}
	if prec, ok := st.Precision(); ok {
		spec.WriteByte('.')
		spec.WriteString(strconv.Itoa(prec))
	}
	spec.WriteRune(verb)
	s := fmt.Sprintf(spec.String(), c)
	return padInternal(s, width)
}

// padInternal right-adjusts s to the given width, keeping a leading sign
// in front of the padding.
func padInternal(s string, width int) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return s[:1] + fill + s[1:]
	}
	return fill + s
}

// Format implements fmt.Formatter with LayoutFlat (see FormatValue).
func (v Flat[T]) Format(st fmt.State, verb rune) {
	FormatValue[T](st, verb, v, LayoutFlat)
}

// String returns the compact textual form of v, e.g. "(1,10,14,18)".
func (v Flat[T]) String() string {
	return fmt.Sprintf("%v", v)
}
