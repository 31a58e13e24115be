/*
Package console renders hypercomplex values for terminals, in the
unit-labeled form mathematicians write by hand:

	3 + 4·e₁ − 2·e₂

Basis units default to 'e' with Unicode subscript indices; custom label
sets (i, j, k, …) may be supplied. Labels are full Unicode strings, so
column alignment and line wrapping measure display width with UAX#29
grapheme segmentation and UAX#11 width classes rather than byte or rune
counts. Output may be colorized; when the target is the terminal, the
line width is taken from the device.

This is a display aid on top of the canonical parenthesized form that the
value types produce via fmt; it adds no new I/O boundary beyond textual
formatting.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyper'
func tracer() tracing.Trace {
	return tracing.Select("hyper")
}
