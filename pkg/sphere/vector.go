// Package sphere implements geometry on the unit sphere: Cartesian
// vectors built from longitude and latitude angles, great circle
// separation and bearing between points, and a Position type that pairs
// a wraparound longitudinal angle with a bounce latitudinal angle.
package sphere

import (
	"errors"
	"math"

	"github.com/chrissnell/skyangle/pkg/angle"
)

// ErrZeroVector reports a spherical conversion of the zero vector
var ErrZeroVector = errors.New("zero vector has no spherical coordinates")

// Vector is a point or direction in Cartesian space
type Vector struct {
	X, Y, Z float64
}

// FromSpherical builds a Vector from radius, longitude and latitude.
// Both angles are in radians and latitude is measured from the
// equatorial plane, not from the pole.
func FromSpherical(r, lon, lat float64) Vector {
	return Vector{
		X: r * math.Cos(lat) * math.Cos(lon),
		Y: r * math.Cos(lat) * math.Sin(lon),
		Z: r * math.Sin(lat),
	}
}

// Dot returns the scalar product with v
func (u Vector) Dot(v Vector) float64 {
	return u.X*v.X + u.Y*v.Y + u.Z*v.Z
}

// Cross returns the right-handed vector product with v
func (u Vector) Cross(v Vector) Vector {
	return Vector{
		X: u.Y*v.Z - u.Z*v.Y,
		Y: -(u.X*v.Z - u.Z*v.X),
		Z: u.X*v.Y - u.Y*v.X,
	}
}

// Norm returns the Euclidean magnitude
func (u Vector) Norm() float64 {
	return math.Sqrt(u.X*u.X + u.Y*u.Y + u.Z*u.Z)
}

// Spherical returns the radius, longitude and latitude of the vector,
// angles in radians. The zero vector fails with ErrZeroVector.
func (u Vector) Spherical() (r, lon, lat float64, err error) {
	r = u.Norm()
	if r == 0 {
		return 0, 0, 0, ErrZeroVector
	}
	lon = math.Atan2(u.Y, u.X)
	lat = math.Asin(u.Z / r)
	return r, lon, lat, nil
}

// NormalizedAngles returns the longitude wrapped into [0, 2π) and the
// latitude bounced into [-π/2, π/2]. Carrying a point across a pole and
// back through a Vector lands it on the conventional side: longitude
// 180° latitude 91° comes back as longitude 0° latitude 89°.
func (u Vector) NormalizedAngles() (lon, lat float64, err error) {
	_, lon, lat, err = u.Spherical()
	if err != nil {
		return 0, 0, err
	}
	lat, err = angle.Normalize(lat, -math.Pi/2, math.Pi/2, true)
	if err != nil {
		return 0, 0, err
	}
	return angle.WrapRad(lon), lat, nil
}
