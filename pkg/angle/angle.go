// Package angle works with angles the way astronomical coordinate code
// needs them: conversions between radians, degrees, hours and
// arcseconds, normalization by wraparound or reflection, sexagesimal
// breakdown with carry-correct rounding, configurable string formatting,
// and a scanner for loosely formatted sexagesimal strings. The Angle
// value type is immutable and carries a display unit plus a
// normalization policy that is reapplied on every operation.
package angle

import (
	"math"
	"strconv"
)

// Unit names the measure an angle is expressed or displayed in
type Unit string

const (
	UnitRadians Unit = "radians"
	UnitDegrees Unit = "degrees"
	UnitHours   Unit = "hours"
)

// Policy selects the normalization applied whenever an Angle is
// constructed or derived
type Policy string

const (
	// PolicyNone keeps values exactly as given
	PolicyNone Policy = "none"
	// PolicyWraparound wraps into [0, 2π), the longitude and right
	// ascension convention
	PolicyWraparound Policy = "wraparound"
	// PolicyBounce reflects into [-π/2, π/2], the latitude and
	// declination convention
	PolicyBounce Policy = "bounce"
)

// Angle is an immutable angle value. The canonical measure is radians;
// the other units are computed on demand. Deriving a new Angle always
// runs the result back through the receiver's policy, so a wraparound
// angle can never hold 25 hours and a bounce angle can never hold -91
// degrees.
type Angle struct {
	rad    float64
	unit   Unit
	policy Policy
}

// applyPolicy is the single path through which every stored radian value
// passes
func applyPolicy(rad float64, p Policy) float64 {
	switch p {
	case PolicyWraparound:
		return wrap(rad, 0, 2*math.Pi)
	case PolicyBounce:
		return bounce(rad, -math.Pi/2, math.Pi/2)
	default:
		return rad
	}
}

// New builds an Angle from a value in u, normalized per p. Units other
// than degrees and hours are taken as radians.
func New(v float64, u Unit, p Policy) Angle {
	var rad float64
	switch u {
	case UnitDegrees:
		rad = DegToRad(v)
	case UnitHours:
		rad = HourToRad(v)
	default:
		u = UnitRadians
		rad = v
	}
	return Angle{rad: applyPolicy(rad, p), unit: u, policy: p}
}

// FromRad returns an unnormalized Angle displayed in radians
func FromRad(r float64) Angle {
	return Angle{rad: r, unit: UnitRadians, policy: PolicyNone}
}

// FromDeg returns an unnormalized Angle displayed in degrees
func FromDeg(d float64) Angle {
	return Angle{rad: DegToRad(d), unit: UnitDegrees, policy: PolicyNone}
}

// FromHour returns an unnormalized Angle displayed in hours
func FromHour(h float64) Angle {
	return Angle{rad: HourToRad(h), unit: UnitHours, policy: PolicyNone}
}

// FromDMS builds an Angle from degree, minute and second parts. The
// parts sum with a positive overall sign, so FromDMS(-11, 30, 0) is
// -10.5 degrees, not -11.5.
func FromDMS(d, mm, ss float64) Angle {
	v, _ := Compose(1, d, mm, ss, false)
	return FromDeg(v)
}

// FromHMS builds an Angle from hour, minute and second parts, with the
// same sign convention as FromDMS
func FromHMS(h, mm, ss float64) Angle {
	v, _ := Compose(1, h, mm, ss, false)
	return FromHour(v)
}

// Parse builds an Angle from a sexagesimal string, taking the display
// unit from the string itself: "12h34m16.6s" is hours, "12 34 16.6" and
// "12d34m16.6s" are degrees
func Parse(s string) (Angle, error) {
	x, err := ParseSexagesimal(s)
	if err != nil {
		return Angle{}, err
	}
	v, err := Compose(x.Sign, x.Vals[0], x.Vals[1], x.Vals[2], false)
	if err != nil {
		return Angle{}, err
	}
	if x.Unit == UnitHours {
		return FromHour(v), nil
	}
	return FromDeg(v), nil
}

// Rad returns the angle in radians
func (a Angle) Rad() float64 {
	return a.rad
}

// Deg returns the angle in degrees
func (a Angle) Deg() float64 {
	return RadToDeg(a.rad)
}

// Hour returns the angle in hours
func (a Angle) Hour() float64 {
	return RadToHour(a.rad)
}

// Arcsec returns the angle in arcseconds
func (a Angle) Arcsec() float64 {
	return RadToArcsec(a.rad)
}

// Unit returns the display unit
func (a Angle) Unit() Unit {
	return a.unit
}

// Policy returns the normalization policy
func (a Angle) Policy() Policy {
	return a.policy
}

// WithUnit returns a copy displayed in u. Units other than degrees and
// hours display as radians.
func (a Angle) WithUnit(u Unit) Angle {
	return Angle{rad: a.rad, unit: u, policy: a.policy}
}

// WithPolicy returns a copy normalized per p from here on
func (a Angle) WithPolicy(p Policy) Angle {
	return Angle{rad: applyPolicy(a.rad, p), unit: a.unit, policy: p}
}

// Add returns a+b, keeping the receiver's unit and policy
func (a Angle) Add(b Angle) Angle {
	return Angle{rad: applyPolicy(a.rad+b.rad, a.policy), unit: a.unit, policy: a.policy}
}

// Sub returns a-b, keeping the receiver's unit and policy
func (a Angle) Sub(b Angle) Angle {
	return Angle{rad: applyPolicy(a.rad-b.rad, a.policy), unit: a.unit, policy: a.policy}
}

// Sexagesimal returns the parts of the angle in its display unit.
// Wraparound angles decompose their hour measure against [0, 24) with
// the 24h = 0h trim. Other angles decompose without a range: hours for
// hour-unit angles, degrees otherwise.
func (a Angle) Sexagesimal(pre int, trunc bool) Sexagesimal {
	if a.policy == PolicyWraparound {
		x, _ := DecomposeRange(a.Hour(), pre, trunc, Range{Lower: 0, Upper: 24}, true)
		return x
	}
	if a.unit == UnitHours {
		return Decompose(a.Hour(), pre, trunc)
	}
	return Decompose(a.Deg(), pre, trunc)
}

// Format renders the angle with l, applying the range convention its
// policy implies: wraparound angles format their hour measure against
// [0, 24) with the 24h trim, bounce angles their degree measure against
// the closed [-90, 90]
func (a Angle) Format(l Layout) string {
	switch {
	case a.policy == PolicyWraparound:
		s, _ := l.FormatRange(a.Hour(), Range{Lower: 0, Upper: 24}, true)
		return s
	case a.policy == PolicyBounce:
		s, _ := l.FormatRange(a.Deg(), Range{Lower: -90, Upper: 90, Bounce: true}, false)
		return s
	case a.unit == UnitRadians:
		return strconv.FormatFloat(a.rad, 'g', -1, 64)
	case a.unit == UnitHours:
		return l.Format(a.Hour())
	default:
		return l.Format(a.Deg())
	}
}

// String renders the angle in its display unit with the conventional
// separators: radians print as a bare number, wraparound angles as
// "+12HH 22MM 54.899SS", bounce angles as "+15DD 49MM 20.570SS", and
// unpoliced angles as "+12 22 54.899"
func (a Angle) String() string {
	l := DefaultLayout()
	switch a.policy {
	case PolicyWraparound:
		l.Sep1, l.Sep2, l.Sep3 = "HH ", "MM ", "SS"
	case PolicyBounce:
		l.Sep1, l.Sep2, l.Sep3 = "DD ", "MM ", "SS"
	}
	return a.Format(l)
}
