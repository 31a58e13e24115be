package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/hyper"
	"github.com/npillmayer/hyper/scalar"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	xterm "golang.org/x/term"
)

// Options configures unit-labeled rendering.
type Options struct {
	// Width is the target line width. 0 selects the terminal width when
	// stdout is interactive, else a default of 80.
	Width int
	// Labels overrides the basis unit labels; Labels[i] names unit i.
	// Units beyond the slice fall back to UnitLabel. Entry 0 is unused
	// (the real unit is unlabeled).
	Labels []string
	// NoColor suppresses colorization.
	NoColor bool
	// Context is the UAX#11 width context used to measure labels.
	// nil selects a context from the user environment.
	Context *uax11.Context
}

// Palette for the term parts; aligned with the teacher palette of the
// styled console formatter.
var (
	numberColor = color.New(color.FgBlue)
	unitColor   = color.New(color.FgRed)
)

// Sprint renders v in unit-labeled form and returns it as a string.
// The zero value renders as "0".
func Sprint[T scalar.Num](v hyper.Value[T], opts *Options) string {
	var sb strings.Builder
	_, _ = fprint(&sb, v, opts)
	return sb.String()
}

// Print renders v in unit-labeled form to stdout, wrapped to the
// terminal width if stdout is interactive.
func Print[T scalar.Num](v hyper.Value[T], opts *Options) (int, error) {
	return Fprint(os.Stdout, v, opts)
}

// Fprint renders v in unit-labeled form to w. It returns the number of
// bytes written and any write error.
func Fprint[T scalar.Num](w io.Writer, v hyper.Value[T], opts *Options) (int, error) {
	return fprint(w, v, opts)
}

func fprint[T scalar.Num](w io.Writer, v hyper.Value[T], opts *Options) (int, error) {
	opts = normalized(opts)
	terms := collectTerms(v, opts)
	tracer().Debugf("console: rendering %d terms at width %d", len(terms), opts.Width)
	written := 0
	lineLen := 0
	for i, t := range terms {
		sep := ""
		if i > 0 {
			sep = " " + t.op + " "
		} else if t.op == "-" {
			sep = "-"
		}
		tw := displayWidth(sep+t.number+unitSep(t)+t.unit, opts.Context)
		if i > 0 && lineLen+tw > opts.Width {
			n, err := io.WriteString(w, "\n")
			written += n
			if err != nil {
				return written, err
			}
			lineLen = 0
			sep = strings.TrimLeft(sep, " ")
		}
		n, err := writeTerm(w, sep, t, opts.NoColor)
		written += n
		if err != nil {
			return written, err
		}
		lineLen += tw
	}
	return written, nil
}

// term is one signed summand of the unit-labeled form.
type term struct {
	op     string // "+" or "-"
	number string // unsigned scalar text
	unit   string // basis label, empty for the real unit
}

// collectTerms lists the nonzero components of v up to its dynamic rank.
// An all-zero value yields the single term "0".
func collectTerms[T scalar.Num](v hyper.Value[T], opts *Options) []term {
	n := hyper.Dim(hyper.DynamicRank[T](v))
	var terms []term
	for i := 0; i < n; i++ {
		c := v.At(i)
		if i > 0 && scalar.IsZero(c) {
			continue
		}
		op := "+"
		var zero T
		if c < zero {
			op = "-"
		}
		terms = append(terms, term{
			op:     op,
			number: fmt.Sprintf("%v", scalar.Abs(c)),
			unit:   label(i, opts),
		})
	}
	return terms
}

func writeTerm(w io.Writer, sep string, t term, noColor bool) (int, error) {
	if noColor {
		return io.WriteString(w, sep+t.number+unitSep(t)+t.unit)
	}
	written, err := io.WriteString(w, sep)
	if err != nil {
		return written, err
	}
	n, err := numberColor.Fprint(w, t.number)
	written += n
	if err != nil {
		return written, err
	}
	if t.unit != "" {
		n, err = io.WriteString(w, "·")
		written += n
		if err != nil {
			return written, err
		}
		n, err = unitColor.Fprint(w, t.unit)
		written += n
	}
	return written, err
}

func unitSep(t term) string {
	if t.unit == "" {
		return ""
	}
	return "·"
}

func label(i int, opts *Options) string {
	if i > 0 && i < len(opts.Labels) && opts.Labels[i] != "" {
		return opts.Labels[i]
	}
	return UnitLabel(i)
}

// displayWidth measures s in terminal columns: grapheme segmentation per
// UAX#29, column classes per UAX#11. Labels may contain wide or combining
// characters, so byte and rune counts are both wrong here.
func displayWidth(s string, context *uax11.Context) int {
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}

// normalized fills in defaults, measuring the terminal where appropriate.
func normalized(opts *Options) *Options {
	norm := Options{}
	if opts != nil {
		norm = *opts
	}
	if norm.Width <= 0 {
		norm.Width = 80
		if xterm.IsTerminal(0) {
			if w, _, err := xterm.GetSize(0); err == nil && w > 0 {
				norm.Width = w
			}
		}
	}
	if norm.Context == nil {
		norm.Context = uax11.ContextFromEnvironment()
	}
	return &norm
}
