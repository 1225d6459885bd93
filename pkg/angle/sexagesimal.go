package angle

import (
	"fmt"
	"math"
)

// Sexagesimal is the base-60 breakdown of an angle or time value. Sign
// applies to the value as a whole, never to a single part; HD, Min and
// Sec are magnitudes. Sign is +1 whenever all three parts are zero.
type Sexagesimal struct {
	Sign int     // +1 or -1
	HD   int     // hours or degrees, whichever was decomposed
	Min  int     // minutes, [0, 59]
	Sec  float64 // seconds, at the precision requested from Decompose
}

// Decimal recomposes the parts into a decimal value
func (x Sexagesimal) Decimal() float64 {
	return float64(x.Sign) * (float64(x.HD) + float64(x.Min)/60.0 + x.Sec/3600.0)
}

// Decompose splits deci into sexagesimal parts. The seconds keep pre
// fractional digits; with trunc they truncate toward zero, otherwise they
// round half away from zero. A seconds part that rounds to a whole minute
// carries into the minutes, and a full hour of minutes carries into HD,
// so 23:59:59.9996 at pre 3 comes out as 24:00:00.000. pre may be
// negative, which zeroes the seconds.
func Decompose(deci float64, pre int, trunc bool) Sexagesimal {
	sign := 1
	if deci < 0 {
		deci = math.Abs(deci)
		sign = -1
	}

	hd, f1 := math.Modf(deci)
	mm, f2 := math.Modf(f1 * 60.0)
	sf := f2 * 60.0

	// Scale to an integer count of 10^-pre seconds, then divide back
	// out, so the carry test against a whole minute is exact.
	fp := math.Pow(10, float64(pre))
	var ss float64
	if trunc {
		ss = math.Floor(sf * fp)
	} else {
		ss = math.Round(sf * fp)
	}

	if ss == 60*fp {
		mm++
		ss = 0
	}
	if mm == 60 {
		hd++
		mm = 0
	}

	if hd == 0 && mm == 0 && ss == 0 {
		sign = 1
	}

	return Sexagesimal{Sign: sign, HD: int(hd), Min: int(mm), Sec: ss / fp}
}

// DecomposeRange normalizes deci into rng before splitting it. With
// upperTrim, a major part that reaches rng.Upper after carrying is
// replaced by rng.Lower, so 24h reads as 0h on clock-like dials.
func DecomposeRange(deci float64, pre int, trunc bool, rng Range, upperTrim bool) (Sexagesimal, error) {
	n, err := rng.Normalize(deci)
	if err != nil {
		return Sexagesimal{}, err
	}
	x := Decompose(n, pre, trunc)
	if upperTrim && float64(x.HD) == rng.Upper {
		x.HD = int(rng.Lower)
	}
	return x, nil
}

// Compose builds a decimal value from sexagesimal parts. The parts may
// themselves be fractional; they are summed without validation. sign must
// be +1 or -1, else ErrInvalidSign. With hoursToDeg the composed value is
// converted from hours to degrees.
func Compose(sign int, hd, mm, ss float64, hoursToDeg bool) (float64, error) {
	if sign != 1 && sign != -1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSign, sign)
	}
	d := float64(sign) * (hd + mm/60.0 + ss/3600.0)
	if hoursToDeg {
		d = HourToDeg(d)
	}
	return d, nil
}
