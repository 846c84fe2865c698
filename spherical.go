package walkthrough

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// sphericalSafeEps keeps Phi strictly inside (0, π).
const sphericalSafeEps = 1e-6

// Spherical is a direction in spherical coordinates. Theta is the azimuth
// around +Y measured from +Z; Phi is the polar angle measured from +Y.
type Spherical struct {
	Radius, Theta, Phi float64
}

// MakeSafe returns s with Phi clamped strictly inside (0, π), so the
// direction is never parallel to the up axis.
func (s Spherical) MakeSafe() Spherical {
	s.Phi = math.Max(sphericalSafeEps, math.Min(math.Pi-sphericalSafeEps, s.Phi))
	return s
}

// Vec3 converts s to Cartesian coordinates.
func (s Spherical) Vec3() mgl64.Vec3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return mgl64.Vec3{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}
}

// SphericalFromVec3 converts a Cartesian vector to spherical coordinates.
// The zero vector maps to the zero value.
func SphericalFromVec3(v mgl64.Vec3) Spherical {
	r := v.Len()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Theta:  math.Atan2(v.X(), v.Z()),
		Phi:    math.Acos(mgl64.Clamp(v.Y()/r, -1, 1)),
	}
}
