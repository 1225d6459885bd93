package angle

import "fmt"

// Layout controls sexagesimal rendering: the separator appended after
// each of the three parts, the number of fractional digits on the
// seconds, and whether those digits truncate instead of round.
type Layout struct {
	Sep1      string
	Sep2      string
	Sep3      string
	Precision int
	Truncate  bool
}

// DefaultLayout renders like "+12 22 54.899"
func DefaultLayout() Layout {
	return Layout{Sep1: " ", Sep2: " ", Sep3: "", Precision: 3}
}

// Format renders v as a signed sexagesimal string without normalizing it,
// so a value just under 24 hours can render as "+24 00 00.000"
func (l Layout) Format(v float64) string {
	return l.render(Decompose(v, l.Precision, l.Truncate))
}

// FormatRange normalizes v into rng before rendering. upperTrim folds a
// major part equal to rng.Upper back to rng.Lower.
func (l Layout) FormatRange(v float64, rng Range, upperTrim bool) (string, error) {
	x, err := DecomposeRange(v, l.Precision, l.Truncate, rng, upperTrim)
	if err != nil {
		return "", err
	}
	return l.render(x), nil
}

// render writes the sign, the major and minute parts zero-padded to two
// digits, and the seconds zero-padded to Precision+3 characters with
// Precision fractional digits (plain two digits when Precision <= 0)
func (l Layout) render(x Sexagesimal) string {
	sign := "+"
	if x.Sign < 0 {
		sign = "-"
	}
	pre := l.Precision
	if pre < 0 {
		pre = 0
	}
	width := 2
	if pre > 0 {
		width = pre + 3
	}
	return fmt.Sprintf("%s%02d%s%02d%s%0*.*f%s",
		sign, x.HD, l.Sep1, x.Min, l.Sep2, width, pre, x.Sec, l.Sep3)
}
