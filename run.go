package walkthrough

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

var (
	wireColor    = color.RGBA{R: 0x9a, G: 0xa5, B: 0xb1, A: 0xff}
	outlineColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// game adapts a Scene to ebiten.Game. The scene is drawn as a wireframe;
// outlined nodes are drawn brighter and thicker.
type game struct {
	scene   *Scene
	showFPS bool
	edges   [][2]mgl64.Vec3
}

// Run opens a window and drives s with live mouse and keyboard input until
// the window is closed.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if s.input == nil {
		s.SetInput(NewEbitenInput())
	}
	s.Resize(Surface{Width: float64(cfg.Width), Height: float64(cfg.Height)})

	logger.Info("walkthrough starting",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))
	if err := ebiten.RunGame(&game{scene: s, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	g.scene.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	s := g.scene
	screen.Fill(s.ClearColor)

	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	s.root.UpdateWorldTransforms()
	s.root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if n.Geometry == nil {
			return true
		}
		clr, width := color.Color(wireColor), float32(1)
		if s.outlines.Contains(n) {
			clr, width = outlineColor, 2
		}
		g.edges = appendEdges(g.edges[:0], n.Geometry)
		for _, e := range g.edges {
			a, okA := s.camera.Project(n.LocalToWorld(e[0]))
			c, okC := s.camera.Project(n.LocalToWorld(e[1]))
			if !okA || !okC {
				continue
			}
			x0, y0 := ndcToPixels(a, w, h)
			x1, y1 := ndcToPixels(c, w, h)
			vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
		}
		return true
	})

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(Surface{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

func ndcToPixels(ndc Vec2, w, h float64) (float32, float32) {
	return float32((ndc.X + 1) / 2 * w), float32((1 - ndc.Y) / 2 * h)
}

// sphereSegments is the number of segments per drawn sphere ring.
const sphereSegments = 24

// appendEdges appends the local-space wireframe edges of geom to dst.
func appendEdges(dst [][2]mgl64.Vec3, geom Geometry) [][2]mgl64.Vec3 {
	switch g := geom.(type) {
	case Box:
		var c [8]mgl64.Vec3
		for i := range c {
			c[i] = mgl64.Vec3{g.Min[0], g.Min[1], g.Min[2]}
			if i&1 != 0 {
				c[i][0] = g.Max[0]
			}
			if i&2 != 0 {
				c[i][1] = g.Max[1]
			}
			if i&4 != 0 {
				c[i][2] = g.Max[2]
			}
		}
		for i := range c {
			for bit := 1; bit < 8; bit <<= 1 {
				if j := i | bit; j != i {
					dst = append(dst, [2]mgl64.Vec3{c[i], c[j]})
				}
			}
		}
	case Plane:
		hw, hh := g.Width/2, g.Height/2
		p := [4]mgl64.Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}
		for i := range p {
			dst = append(dst, [2]mgl64.Vec3{p[i], p[(i+1)%4]})
		}
	case Sphere:
		for axis := 0; axis < 3; axis++ {
			prev := ringPoint(g, axis, 0)
			for i := 1; i <= sphereSegments; i++ {
				next := ringPoint(g, axis, 2*math.Pi*float64(i)/sphereSegments)
				dst = append(dst, [2]mgl64.Vec3{prev, next})
				prev = next
			}
		}
	case TriangleMesh:
		for i := 0; i < g.NumTriangles(); i++ {
			a, b, c := g.Triangle(i)
			dst = append(dst, [2]mgl64.Vec3{a, b}, [2]mgl64.Vec3{b, c}, [2]mgl64.Vec3{c, a})
		}
	}
	return dst
}

// ringPoint returns the point at angle a on the great circle of s that is
// perpendicular to the given axis.
func ringPoint(s Sphere, axis int, a float64) mgl64.Vec3 {
	sin, cos := math.Sincos(a)
	var p mgl64.Vec3
	switch axis {
	case 0:
		p = mgl64.Vec3{0, cos, sin}
	case 1:
		p = mgl64.Vec3{cos, 0, sin}
	default:
		p = mgl64.Vec3{cos, sin, 0}
	}
	return s.Center.Add(p.Mul(s.Radius))
}
