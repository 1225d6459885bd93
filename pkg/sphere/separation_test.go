package sphere

import (
	"math"
	"math/rand"
	"testing"

	meeusangle "github.com/soniakeys/meeus/v3/angle"
	"github.com/soniakeys/unit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/chrissnell/skyangle/internal/log"
	"github.com/chrissnell/skyangle/pkg/angle"
)

func TestSeparation(t *testing.T) {
	tests := []struct {
		name        string
		a1, b1      float64 // degrees
		a2, b2      float64
		expectedDeg float64
	}{
		{"equator to pole", 0, 0, 0, 90, 90},
		{"mid latitude to pole", 0, 45, 0, 90, 45},
		{"across the equator to the pole", 0, -45, 0, 90, 135},
		{"pole to pole", 0, -90, 0, 90, 180},
		{"pole to pole off the prime meridian", 45, -90, 45, 90, 180},
		{"quarter turn along the equator", 0, 0, 90, 0, 90},
		{"along the 45th parallel", 0, 45, 90, 45, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := angle.RadToDeg(Separation(
				angle.DegToRad(tt.a1), angle.DegToRad(tt.b1),
				angle.DegToRad(tt.a2), angle.DegToRad(tt.b2)))
			if !scalar.EqualWithinAbs(got, tt.expectedDeg, 1e-9) {
				t.Errorf("Separation = %v°, expected %v°", got, tt.expectedDeg)
			}
		})
	}
}

func TestSeparationCoincident(t *testing.T) {
	// Identical points must come back as an exact zero, not a residue of
	// the cross product
	points := [][2]float64{{0, 0}, {1.2, 0.8}, {3.5, -1.1}, {6.1, 1.5}}
	for _, p := range points {
		if got := Separation(p[0], p[1], p[0], p[1]); got != 0 {
			t.Errorf("Separation of coincident (%v, %v) = %v, expected 0", p[0], p[1], got)
		}
	}
}

func TestSeparationSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		a1 := rng.Float64() * 2 * math.Pi
		b1 := (rng.Float64() - 0.5) * math.Pi
		a2 := rng.Float64() * 2 * math.Pi
		b2 := (rng.Float64() - 0.5) * math.Pi

		s1 := Separation(a1, b1, a2, b2)
		s2 := Separation(a2, b2, a1, b1)
		if s1 != s2 {
			t.Errorf("Separation not symmetric: %v vs %v for (%v, %v) (%v, %v)", s1, s2, a1, b1, a2, b2)
		}
		if s1 < 0 || s1 > math.Pi {
			t.Errorf("Separation %v out of range [0, π]", s1)
		}
	}
}

func TestSeparationMatchesMeeus(t *testing.T) {
	// Cross-check the vector formulation against the published Pauwels
	// and haversine algorithms over well conditioned random pairs
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a1 := rng.Float64() * 2 * math.Pi
		b1 := (rng.Float64() - 0.5) * 2.8 // stay clear of the poles
		a2 := rng.Float64() * 2 * math.Pi
		b2 := (rng.Float64() - 0.5) * 2.8

		got := Separation(a1, b1, a2, b2)
		pauwels := meeusangle.SepPauwels(
			unit.Angle(a1), unit.Angle(b1), unit.Angle(a2), unit.Angle(b2)).Rad()
		hav := meeusangle.SepHav(
			unit.Angle(a1), unit.Angle(b1), unit.Angle(a2), unit.Angle(b2)).Rad()

		if !scalar.EqualWithinAbs(got, pauwels, 1e-8) {
			t.Errorf("Separation(%v, %v, %v, %v) = %v, SepPauwels = %v", a1, b1, a2, b2, got, pauwels)
		}
		if !scalar.EqualWithinAbs(got, hav, 1e-8) {
			t.Errorf("Separation(%v, %v, %v, %v) = %v, SepHav = %v", a1, b1, a2, b2, got, hav)
		}
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name        string
		a1, b1      float64 // degrees
		a2, b2      float64
		expectedDeg float64
		tol         float64
	}{
		{"eastward along the 45th parallel", 45, 45, 60, 45, 84.68152816060062, 1e-9},
		{"slightly east of north", 45, 45, 46, 45, 89.64644212193384, 1e-9},
		{"slightly west of north", 45, 45, 44, 45, -89.64644212193421, 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := angle.RadToDeg(Bearing(
				angle.DegToRad(tt.a1), angle.DegToRad(tt.b1),
				angle.DegToRad(tt.a2), angle.DegToRad(tt.b2)))
			if !scalar.EqualWithinAbs(got, tt.expectedDeg, tt.tol) {
				t.Errorf("Bearing = %v°, expected %v°", got, tt.expectedDeg)
			}
		})
	}
}

func TestBearingCardinal(t *testing.T) {
	// Due south is exactly a half turn
	if got := Bearing(0, 0, 0, angle.DegToRad(-90)); got != math.Pi {
		t.Errorf("Bearing due south = %v, expected exactly π", got)
	}
	// Due north snaps to an exact zero, even from just off the pole
	if got := Bearing(0, angle.DegToRad(-45), 0, 0); got != 0 {
		t.Errorf("Bearing due north = %v, expected 0", got)
	}
	if got := Bearing(0, angle.DegToRad(-89.678), 0, 0); got != 0 {
		t.Errorf("Bearing due north from -89.678° = %v, expected 0", got)
	}
}

func TestBearingPole(t *testing.T) {
	// A base point on either pole has no defined bearing: the call warns
	// and returns zero
	core, logs := observer.New(zapcore.WarnLevel)
	log.SetZapLogger(zap.New(core))
	defer log.SetZapLogger(zap.NewNop())

	if got := Bearing(0, math.Pi/2, 0, 0); got != 0 {
		t.Errorf("Bearing from north pole = %v, expected 0", got)
	}
	if got := Bearing(0, -math.Pi/2, 0, 0); got != 0 {
		t.Errorf("Bearing from south pole = %v, expected 0", got)
	}
	if got := Bearing(math.Pi, math.Pi/2, 0, 0); got != 0 {
		t.Errorf("Bearing from pole at alpha=π = %v, expected 0", got)
	}

	if n := logs.FilterMessageSnippet("on the pole").Len(); n != 3 {
		t.Errorf("pole warnings logged = %d, expected 3", n)
	}
}

func BenchmarkSeparation(b *testing.B) {
	a1, b1 := angle.DegToRad(45), angle.DegToRad(45)
	a2, b2 := angle.DegToRad(60), angle.DegToRad(45)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Separation(a1, b1, a2, b2)
	}
}

func BenchmarkBearing(b *testing.B) {
	a1, b1 := angle.DegToRad(45), angle.DegToRad(45)
	a2, b2 := angle.DegToRad(60), angle.DegToRad(45)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Bearing(a1, b1, a2, b2)
	}
}
