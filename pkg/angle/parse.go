package angle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParsedSexa is the structured record the sexagesimal scanner produces:
// the overall sign, the unit the string declared (degrees when unmarked)
// and the magnitudes of the three parts in order
type ParsedSexa struct {
	Sign int
	Unit Unit
	Vals [3]float64
}

// token is one number from the input together with the suffix characters
// that followed it
type token struct {
	val float64
	suf string
}

// scanTokens splits s into number/suffix tokens. A number is an optional
// sign followed by digits with an optional fraction; its suffix runs to
// the next sign or digit. Whitespace around suffixes is not significant.
func scanTokens(s string) ([]token, error) {
	var toks []token
	rs := []rune(s)
	i := 0
	for i < len(rs) {
		if unicode.IsSpace(rs[i]) {
			i++
			continue
		}
		start := i
		if rs[i] == '+' || rs[i] == '-' {
			i++
		}
		digits := false
		for i < len(rs) && (rs[i] == '.' || unicode.IsDigit(rs[i])) {
			if unicode.IsDigit(rs[i]) {
				digits = true
			}
			i++
		}
		if !digits {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSexagesimal, s)
		}
		v, err := strconv.ParseFloat(string(rs[start:i]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSexagesimal, s)
		}
		j := i
		for i < len(rs) && rs[i] != '+' && rs[i] != '-' && !unicode.IsDigit(rs[i]) {
			i++
		}
		toks = append(toks, token{val: v, suf: strings.TrimSpace(string(rs[j:i]))})
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSexagesimal, s)
	}
	return toks, nil
}

// ParseSexagesimal scans a loosely formatted sexagesimal string such as
// "12h13m12.4s", "-11 12 14.56", "12:13:12.4" or `+15d 49' 20.57"`.
// A unit suffix assigns its number to a fixed part; bare and
// colon-delimited numbers fill the parts left to right. The unit comes
// from an 'h' or 'd' suffix, defaulting to degrees. A single part may be
// negative, making the whole value negative; a second negative part fails
// with ErrConflictingSign, and a suffix that mixes ':' with unit letters
// or uses characters outside h, d, m, s, ', ", : fails with
// ErrInvalidSexagesimal.
func ParseSexagesimal(s string) (ParsedSexa, error) {
	toks, err := scanTokens(strings.ToLower(s))
	if err != nil {
		return ParsedSexa{}, err
	}

	var unit Unit
	var parts [3]*float64

	fillRight := func(v float64) error {
		// A bare number lands one slot right of the last filled part.
		switch {
		case parts[2] != nil:
			return fmt.Errorf("%w: %q has more than three parts", ErrInvalidSexagesimal, s)
		case parts[1] != nil:
			parts[2] = &v
		case parts[0] != nil:
			parts[1] = &v
		default:
			parts[0] = &v
		}
		return nil
	}

	for _, t := range toks {
		if t.suf == "" {
			if err := fillRight(t.val); err != nil {
				return ParsedSexa{}, err
			}
			continue
		}
		for _, c := range t.suf {
			switch c {
			case 'h', 'd', 'm', 's', '\'', '"', ':':
			default:
				return ParsedSexa{}, fmt.Errorf("%w: suffix %q in %q", ErrInvalidSexagesimal, string(c), s)
			}
		}
		v := t.val
		matched := false
		if strings.ContainsRune(t.suf, 'h') {
			parts[0], unit, matched = &v, UnitHours, true
		}
		if strings.ContainsRune(t.suf, 'd') {
			parts[0], unit, matched = &v, UnitDegrees, true
		}
		if strings.ContainsRune(t.suf, 'm') {
			parts[1], matched = &v, true
		}
		if strings.ContainsRune(t.suf, 's') {
			parts[2], matched = &v, true
		}
		if strings.ContainsRune(t.suf, '\'') {
			parts[1], matched = &v, true
		}
		if strings.ContainsRune(t.suf, '"') {
			parts[2], matched = &v, true
		}
		if strings.ContainsRune(t.suf, ':') {
			if matched {
				return ParsedSexa{}, fmt.Errorf("%w: %q mixes ':' with unit suffixes", ErrInvalidSexagesimal, s)
			}
			if err := fillRight(t.val); err != nil {
				return ParsedSexa{}, err
			}
		}
	}
	if unit == "" {
		unit = UnitDegrees
	}

	// Only one part may be negative; its sign becomes the sign of the
	// whole value.
	sign := 0
	for _, p := range parts {
		if p != nil && *p < 0 {
			if sign != 0 {
				return ParsedSexa{}, fmt.Errorf("%w: %q", ErrConflictingSign, s)
			}
			sign = -1
		}
	}
	if sign == 0 {
		sign = 1
	}

	res := ParsedSexa{Sign: sign, Unit: unit}
	for i, p := range parts {
		if p != nil {
			res.Vals[i] = math.Abs(*p)
		}
	}
	return res, nil
}

// PairResult is the outcome of parsing an angular position string
type PairResult struct {
	X, Y       float64
	Sexa       bool       // the string held two sexagesimal triples
	RawX, RawY ParsedSexa // scanner records for the halves, when Sexa
}

// ParsePair parses a string holding an angular position as either two
// decimal numbers or two sexagesimal triples. The string splits on any
// run of characters other than digits, signs and dots, so the SIMBAD
// form "12 22 54.899 +15 49 20.57" and "12h22m54.899s +15d49m20.57s"
// both yield six numbers. Interpretation of the units is left to the
// caller.
func ParsePair(s string) (PairResult, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '-' && r != '+' && r != '.'
	})
	switch len(fields) {
	case 2:
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return PairResult{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return PairResult{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
		}
		return PairResult{X: x, Y: y}, nil
	case 6:
		rawX, err := ParseSexagesimal(strings.Join(fields[:3], " "))
		if err != nil {
			return PairResult{}, err
		}
		rawY, err := ParseSexagesimal(strings.Join(fields[3:], " "))
		if err != nil {
			return PairResult{}, err
		}
		x, err := Compose(rawX.Sign, rawX.Vals[0], rawX.Vals[1], rawX.Vals[2], false)
		if err != nil {
			return PairResult{}, err
		}
		y, err := Compose(rawY.Sign, rawY.Vals[0], rawY.Vals[1], rawY.Vals[2], false)
		if err != nil {
			return PairResult{}, err
		}
		return PairResult{X: x, Y: y, Sexa: true, RawX: rawX, RawY: rawY}, nil
	default:
		return PairResult{}, fmt.Errorf("%w: %q has %d", ErrInvalidPosition, s, len(fields))
	}
}
