package walkthrough

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera that lives outside the scene graph. It looks
// down its local -Z axis with +Y up.
type Camera struct {
	// Position is the camera's world-space position.
	Position mgl64.Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is viewport width over height.
	Aspect float64
	// Near and Far are the clip plane distances.
	Near, Far float64

	// rotation is a pure rotation matrix (camera basis in its columns).
	rotation mgl64.Mat4
}

// NewCamera creates a camera at the origin looking down -Z.
func NewCamera(fov, aspect, near, far float64) *Camera {
	return &Camera{
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		rotation: mgl64.Ident4(),
	}
}

// LookAt orients the camera so that -Z points at target, keeping +Y as close
// to world up as possible. A target coincident with the camera, or straight
// above or below it, is nudged so the basis stays well defined.
func (c *Camera) LookAt(target mgl64.Vec3) {
	z := c.Position.Sub(target)
	if z.Len() < rayEpsilon {
		z = mgl64.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := Up.Cross(z)
	if x.Len() < rayEpsilon {
		if math.Abs(Up.Z()) == 1 {
			z[0] += 1e-4
		} else {
			z[2] += 1e-4
		}
		z = z.Normalize()
		x = Up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	c.rotation = mgl64.Mat3FromCols(x, y, z).Mat4()
}

// Rotation returns the camera's rotation matrix.
func (c *Camera) Rotation() mgl64.Mat4 {
	return c.rotation
}

// WorldDirection returns the unit vector the camera faces.
func (c *Camera) WorldDirection() mgl64.Vec3 {
	return c.rotation.Col(2).Vec3().Mul(-1).Normalize()
}

// WorldMatrix returns the camera's world transform.
func (c *Camera) WorldMatrix() mgl64.Mat4 {
	return mgl64.Translate3D(c.Position[0], c.Position[1], c.Position[2]).Mul4(c.rotation)
}

// ViewMatrix returns the world-to-camera matrix.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return c.WorldMatrix().Inv()
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// RayThrough returns the world-space ray from the camera position through a
// normalised device coordinate. The direction is unit length.
func (c *Camera) RayThrough(ndc Vec2) Ray {
	unproject := c.WorldMatrix().Mul4(c.ProjectionMatrix().Inv())
	p := mgl64.TransformCoordinate(mgl64.Vec3{ndc.X, ndc.Y, 0.5}, unproject)
	return Ray{Origin: c.Position, Direction: p.Sub(c.Position).Normalize()}
}

// Project maps a world-space point to normalised device coordinates. ok is
// false for points behind the camera.
func (c *Camera) Project(p mgl64.Vec3) (ndc Vec2, ok bool) {
	clip := c.ProjectionMatrix().Mul4(c.ViewMatrix()).Mul4x1(p.Vec4(1))
	if clip.W() <= rayEpsilon {
		return Vec2{}, false
	}
	return Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}, true
}
