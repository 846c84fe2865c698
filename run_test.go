package walkthrough

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAppendEdges(t *testing.T) {
	tri := TriangleMesh{Vertices: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, Indices: []uint32{0, 1, 2, 1, 3, 2}}
	tests := []struct {
		name string
		geom Geometry
		want int
	}{
		{"box", NewBox(1, 2, 3), 12},
		{"plane", Plane{Width: 2, Height: 2}, 4},
		{"sphere", Sphere{Radius: 1}, 3 * sphereSegments},
		{"triangles", tri, 6},
		{"none", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(appendEdges(nil, tt.geom)); got != tt.want {
				t.Errorf("edges = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAppendEdgesBoxLengths(t *testing.T) {
	for _, e := range appendEdges(nil, NewBox(1, 2, 3)) {
		l := e[1].Sub(e[0]).Len()
		if math.Abs(l-1) > epsilon && math.Abs(l-2) > epsilon && math.Abs(l-3) > epsilon {
			t.Errorf("edge %v has length %v, want an axis-aligned box edge", e, l)
		}
	}
}

func TestRingPointOnSphere(t *testing.T) {
	s := Sphere{Center: mgl64.Vec3{1, 2, 3}, Radius: 2}
	for axis := 0; axis < 3; axis++ {
		for _, a := range []float64{0, 1, math.Pi, 5} {
			p := ringPoint(s, axis, a)
			assertNear(t, "radius", p.Sub(s.Center).Len(), 2)
			assertNear(t, "axis component", p[axis], s.Center[axis])
		}
	}
}

func TestNDCToPixels(t *testing.T) {
	tests := []struct {
		ndc    Vec2
		wx, wy float32
	}{
		{Vec2{0, 0}, 400, 300},
		{Vec2{-1, 1}, 0, 0},
		{Vec2{1, -1}, 800, 600},
	}
	for _, tt := range tests {
		x, y := ndcToPixels(tt.ndc, 800, 600)
		if x != tt.wx || y != tt.wy {
			t.Errorf("ndcToPixels(%v) = (%v, %v), want (%v, %v)", tt.ndc, x, y, tt.wx, tt.wy)
		}
	}
}
