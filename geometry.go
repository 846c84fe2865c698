package walkthrough

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const rayEpsilon = 1e-12

// Ray is a half-line. Direction need not be unit length: geometry reports the
// hit as a multiple of Direction, so a ray carried into a node's local space
// by an affine matrix keeps the same parameter for the same point.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns Origin + t*Direction.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// transformed returns the ray mapped through an affine matrix.
func (r Ray) transformed(m mgl64.Mat4) Ray {
	return Ray{
		Origin:    mgl64.TransformCoordinate(r.Origin, m),
		Direction: mgl64.TransformNormal(r.Direction, m),
	}
}

// Geometry is a ray-testable shape in a node's local coordinates.
type Geometry interface {
	// IntersectRay returns the smallest t >= 0 where r meets the shape.
	IntersectRay(r Ray) (t float64, ok bool)
}

// --- Built-in Geometry types ---

// Plane is a finite rectangle centred on the local origin in the XY plane,
// facing +Z. Rays arriving from behind miss unless DoubleSided is set.
type Plane struct {
	Width, Height float64
	DoubleSided   bool
}

// IntersectRay implements Geometry.
func (p Plane) IntersectRay(r Ray) (float64, bool) {
	dz := r.Direction.Z()
	if math.Abs(dz) < rayEpsilon {
		return 0, false
	}
	if !p.DoubleSided && dz > 0 {
		return 0, false
	}
	t := -r.Origin.Z() / dz
	if t < 0 {
		return 0, false
	}
	hit := r.At(t)
	if math.Abs(hit.X()) > p.Width/2 || math.Abs(hit.Y()) > p.Height/2 {
		return 0, false
	}
	return t, true
}

// Box is an axis-aligned box in local coordinates.
type Box struct {
	Min, Max mgl64.Vec3
}

// NewBox returns a Box of the given size centred on the local origin.
func NewBox(width, height, depth float64) Box {
	half := mgl64.Vec3{width / 2, height / 2, depth / 2}
	return Box{Min: half.Mul(-1), Max: half}
}

// IntersectRay implements Geometry using the slab method. A ray starting
// inside the box reports its exit point.
func (b Box) IntersectRay(r Ray) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o := r.Origin[axis]
		d := r.Direction[axis]
		if math.Abs(d) < rayEpsilon {
			if o < b.Min[axis] || o > b.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[axis] - o) / d
		t2 := (b.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin >= 0 {
		return tmin, true
	}
	return tmax, true
}

// Sphere is a sphere in local coordinates.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// IntersectRay implements Geometry.
func (s Sphere) IntersectRay(r Ray) (float64, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	if a < rayEpsilon {
		return 0, false
	}
	halfB := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := (-halfB - sq) / a
	if t < 0 {
		t = (-halfB + sq) / a
		if t < 0 {
			return 0, false
		}
	}
	return t, true
}

// TriangleMesh is an indexed triangle list. Front faces wind
// counter-clockwise; back faces are skipped unless DoubleSided is set.
// With no Indices, consecutive vertex triples form the triangles.
type TriangleMesh struct {
	Vertices    []mgl64.Vec3
	Indices     []uint32
	DoubleSided bool
}

// IntersectRay implements Geometry using Möller-Trumbore.
func (m TriangleMesh) IntersectRay(r Ray) (float64, bool) {
	best := math.Inf(1)
	for i := 0; i < m.NumTriangles(); i++ {
		a, b, c := m.Triangle(i)
		if t, ok := intersectTriangle(r, a, b, c, m.DoubleSided); ok && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// NumTriangles returns the number of complete triangles.
func (m TriangleMesh) NumTriangles() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

// Triangle returns the corners of triangle i.
func (m TriangleMesh) Triangle(i int) (a, b, c mgl64.Vec3) {
	i *= 3
	if len(m.Indices) > 0 {
		return m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
	}
	return m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]
}

func intersectTriangle(r Ray, a, b, c mgl64.Vec3, doubleSided bool) (float64, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	// det > 0 means the ray meets the counter-clockwise (front) side.
	if doubleSided {
		if math.Abs(det) < rayEpsilon {
			return 0, false
		}
	} else if det < rayEpsilon {
		return 0, false
	}
	inv := 1 / det
	tvec := r.Origin.Sub(a)
	u := tvec.Dot(pvec) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	qvec := tvec.Cross(edge1)
	v := r.Direction.Dot(qvec) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := edge2.Dot(qvec) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
