package console

import "strconv"

// subscriptDigits maps ASCII digits to their Unicode subscript forms.
var subscriptDigits = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
}

// UnitLabel returns the default label of basis unit i: the letter 'e'
// with the index in Unicode subscript digits, e.g. "e₁₂" for i = 12.
// Component 0 is the real unit and carries no label.
func UnitLabel(i int) string {
	if i <= 0 {
		return ""
	}
	label := []rune{'e'}
	for _, d := range strconv.Itoa(i) {
		label = append(label, subscriptDigits[d])
	}
	return string(label)
}
