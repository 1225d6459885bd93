package sphere

import (
	"math"

	"github.com/chrissnell/skyangle/internal/log"
)

// tol decides when a computed separation or bearing collapses to zero
// and when a point counts as sitting on the pole
const tol = 1e-15

// Separation returns the great circle angle between two points on the
// unit sphere, each given as a longitude a and latitude b in radians.
// The result is in [0, π]; magnitudes below the tolerance snap to an
// exact zero. Coincident and antipodal points are safe.
func Separation(a1, b1, a2, b2 float64) float64 {
	v1 := FromSpherical(1, a1, b1)
	v2 := FromSpherical(1, a2, b2)

	res := math.Atan2(v1.Cross(v2).Norm(), v1.Dot(v2))
	if math.Abs(res) < tol {
		return 0
	}
	return res
}

// Bearing returns the position angle of the second point as seen from
// the first, in radians, measured from the direction of the north pole.
// The result is in (-π, π], positive east of north and negative west;
// due south comes out +π. When the first point sits on a pole the
// bearing is undefined; a warning is logged and 0 is returned.
func Bearing(a1, b1, a2, b2 float64) float64 {
	v1 := FromSpherical(1, a1, b1)
	v2 := FromSpherical(1, a2, b2)

	// Z-axis
	v0 := FromSpherical(1, 0, math.Pi/2)

	if v1.Cross(v0).Norm() < tol {
		log.Warnf("first point (%g, %g) is on the pole, bearing undefined", a1, b1)
		return 0
	}

	// Perpendiculars to the great circle through the two points and to
	// the one through the base and the pole. The angle between them is
	// the position angle; the sign of the z component of the first
	// picks the quadrant.
	v12 := v1.Cross(v2)
	v10 := v1.Cross(v0)

	x := math.Atan2(v12.Cross(v10).Norm(), v12.Dot(v10))
	if v12.Z < 0 {
		x = -x
	}
	if math.Abs(x) < tol {
		return 0
	}
	return x
}
