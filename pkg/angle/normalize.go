package angle

import (
	"fmt"
	"math"
)

// Range bounds a normalization target. With Bounce set, values reflect at
// the limits and the interval is closed; otherwise they wrap around and
// the interval is half-open at Upper.
type Range struct {
	Lower  float64
	Upper  float64
	Bounce bool
}

// Normalize maps v into the range
func (rng Range) Normalize(v float64) (float64, error) {
	return Normalize(v, rng.Lower, rng.Upper, rng.Bounce)
}

// Normalize maps num into [lower, upper) by wrapping around, or into the
// closed [lower, upper] by reflecting at the limits when b is set. The
// range must have lower < upper and be either symmetric about zero or
// zero-based; any other range fails with ErrInvalidRange, since the
// modular identities used hold only for such ranges. Arbitrarily large
// excursions reduce in constant time.
func Normalize(num, lower, upper float64, b bool) (float64, error) {
	if lower >= upper {
		return 0, fmt.Errorf("%w: (%v, %v)", ErrInvalidRange, lower, upper)
	}
	if lower != 0 && lower != -upper {
		return 0, fmt.Errorf("%w: (%v, %v) is neither symmetric about zero nor zero-based", ErrInvalidRange, lower, upper)
	}
	if b {
		return bounce(num, lower, upper), nil
	}
	return wrap(num, lower, upper), nil
}

// wrap maps num into [lower, upper). The fold uses |lower|+|upper|, which
// equals the range size for the ranges Normalize admits. A fold that lands
// exactly on upper collapses to lower, keeping the interval half-open;
// this is also what folds a longitude a hair below zero back to zero
// instead of to a full turn.
func wrap(num, lower, upper float64) float64 {
	size := math.Abs(lower) + math.Abs(upper)
	if num > upper || num == lower {
		num = lower + math.Mod(math.Abs(num+upper), size)
	}
	if num < lower || num == upper {
		num = upper - math.Mod(math.Abs(num-lower), size)
	}
	if num == upper {
		return lower
	}
	return num
}

// bounce maps num into the closed [lower, upper] as a triangular wave of
// period 2*(upper-lower). Boundary values stay put: bounce(upper) is
// upper, not lower.
func bounce(num, lower, upper float64) float64 {
	if lower == 0 {
		// Zero-based range: fold into [0, 2*upper) and mirror the
		// upper half back down.
		num = math.Mod(num, 2*upper)
		if num < 0 {
			num += 2 * upper
		}
		if num > upper {
			num = 2*upper - num
		}
		return num
	}

	// Symmetric range. Pre-reduce large excursions toward
	// [-total, total], then reflect once at each limit.
	total := math.Abs(lower) + math.Abs(upper)
	if num < -total {
		num += math.Ceil(num/(-2*total)) * 2 * total
	}
	if num > total {
		num -= math.Floor(num/(2*total)) * 2 * total
	}
	if num > upper {
		num = total - num
	}
	if num < lower {
		num = -total - num
	}
	return num
}
