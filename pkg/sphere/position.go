package sphere

import (
	"strings"

	"github.com/chrissnell/skyangle/pkg/angle"
)

// Position is a point on the unit sphere held as two policy-bearing
// angles: alpha, the longitudinal angle, wrapped into [0, 24) hours, and
// delta, the latitudinal angle, bounced into [-90, 90] degrees. Dlim
// separates the two in the string form and defaults to a single space.
type Position struct {
	alpha angle.Angle
	delta angle.Angle
	Dlim  string
}

// NewPosition builds a Position from alpha in hours and delta in degrees
func NewPosition(alphaHour, deltaDeg float64) Position {
	return Position{
		alpha: angle.New(alphaHour, angle.UnitHours, angle.PolicyWraparound),
		delta: angle.New(deltaDeg, angle.UnitDegrees, angle.PolicyBounce),
		Dlim:  " ",
	}
}

// NewPositionAngles builds a Position from two angles, renormalizing
// them under the longitudinal and latitudinal policies
func NewPositionAngles(alpha, delta angle.Angle) Position {
	return Position{
		alpha: alpha.WithUnit(angle.UnitHours).WithPolicy(angle.PolicyWraparound),
		delta: delta.WithUnit(angle.UnitDegrees).WithPolicy(angle.PolicyBounce),
		Dlim:  " ",
	}
}

// ParsePosition parses a catalog position string. A two number string is
// read as alpha in hours and delta in degrees. A six number string is
// read as two sexagesimal triples, alpha then delta: alpha is taken in
// hours unless a 'd' anywhere in the string marks it as degrees, and an
// hour-marked delta converts to degrees. The SIMBAD form
// "12 22 54.899 +15 49 20.57" parses as 12h 22m 54.899s, +15° 49' 20.57".
func ParsePosition(s string) (Position, error) {
	r, err := angle.ParsePair(s)
	if err != nil {
		return Position{}, err
	}
	x, y := r.X, r.Y
	if r.Sexa {
		// The pair splitter strips unit letters before scanning, so the
		// scanner reports degrees for both halves. Alpha is hours unless
		// the string says otherwise.
		if r.RawX.Unit == angle.UnitDegrees && strings.ContainsRune(s, 'd') {
			x = angle.DegToHour(x)
		}
		if r.RawY.Unit == angle.UnitHours {
			y = angle.HourToDeg(y)
		}
	}
	return NewPosition(x, y), nil
}

// Alpha returns the longitudinal angle
func (p Position) Alpha() angle.Angle {
	return p.alpha
}

// Delta returns the latitudinal angle
func (p Position) Delta() angle.Angle {
	return p.delta
}

// SetAlpha replaces the longitudinal angle. The wraparound policy is
// reapplied, so assigning 25 hours stores 1.
func (p *Position) SetAlpha(a angle.Angle) {
	p.alpha = a.WithUnit(angle.UnitHours).WithPolicy(angle.PolicyWraparound)
}

// SetDelta replaces the latitudinal angle. The bounce policy is
// reapplied, so assigning 91 degrees stores 89.
func (p *Position) SetDelta(a angle.Angle) {
	p.delta = a.WithUnit(angle.UnitDegrees).WithPolicy(angle.PolicyBounce)
}

// Separation returns the great circle separation between p and q
func (p Position) Separation(q Position) angle.Angle {
	return angle.FromRad(Separation(p.alpha.Rad(), p.delta.Rad(), q.alpha.Rad(), q.delta.Rad()))
}

// Bearing returns the position angle of q as seen from p
func (p Position) Bearing(q Position) angle.Angle {
	return angle.FromRad(Bearing(p.alpha.Rad(), p.delta.Rad(), q.alpha.Rad(), q.delta.Rad()))
}

// String renders like "+12HH 22MM 54.899SS +15DD 49MM 20.570SS"
func (p Position) String() string {
	dlim := p.Dlim
	if dlim == "" {
		dlim = " "
	}
	return p.alpha.String() + dlim + p.delta.String()
}
