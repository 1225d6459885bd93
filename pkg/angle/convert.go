package angle

import "math"

// Conversion factors between the supported units. One hour of right
// ascension is 15 degrees of rotation; degrees and radians convert by a
// precomputed quotient so repeated conversions stay bit-stable.
const (
	degPerRad = 180.0 / math.Pi
	radPerDeg = math.Pi / 180.0
)

// RadToDeg converts radians to degrees
func RadToDeg(r float64) float64 {
	return r * degPerRad
}

// DegToRad converts degrees to radians
func DegToRad(d float64) float64 {
	return d * radPerDeg
}

// HourToDeg converts hours to degrees
func HourToDeg(h float64) float64 {
	return h * 15.0
}

// DegToHour converts degrees to hours
func DegToHour(d float64) float64 {
	return d * (24.0 / 360.0)
}

// ArcsecToDeg converts arcseconds to degrees
func ArcsecToDeg(s float64) float64 {
	return s / 3600.0
}

// DegToArcsec converts degrees to arcseconds
func DegToArcsec(d float64) float64 {
	return d * 3600.0
}

// HourToRad converts hours to radians
func HourToRad(h float64) float64 {
	return DegToRad(HourToDeg(h))
}

// RadToHour converts radians to hours
func RadToHour(r float64) float64 {
	return DegToHour(RadToDeg(r))
}

// ArcsecToRad converts arcseconds to radians
func ArcsecToRad(s float64) float64 {
	return DegToRad(ArcsecToDeg(s))
}

// RadToArcsec converts radians to arcseconds
func RadToArcsec(r float64) float64 {
	return DegToArcsec(RadToDeg(r))
}

// ArcsecToHour converts arcseconds to hours
func ArcsecToHour(s float64) float64 {
	return DegToHour(ArcsecToDeg(s))
}

// HourToArcsec converts hours to arcseconds
func HourToArcsec(h float64) float64 {
	return DegToArcsec(HourToDeg(h))
}

// WrapDeg wraps an angle in degrees into [0, 360)
func WrapDeg(d float64) float64 {
	return wrap(d, 0, 360)
}

// WrapHour wraps an hour angle into [0, 24)
func WrapHour(h float64) float64 {
	return wrap(h, 0, 24)
}

// WrapRad wraps an angle in radians into [0, 2*π)
func WrapRad(r float64) float64 {
	return wrap(r, 0, 2*math.Pi)
}
