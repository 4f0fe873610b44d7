package viz

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/kinetic/internal/vecmath"
)

const nearPlane = 0.1

// Follow smooths a moving 3-D target with one critically tuned spring per
// axis, so the camera pans instead of teleporting when the action jumps.
type Follow struct {
	spring harmonica.Spring
	pos    [3]float64
	vel    [3]float64
}

func NewFollow(fps int, frequency, damping float64) *Follow {
	return &Follow{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Track advances the springs one frame toward target and returns the
// smoothed position.
func (f *Follow) Track(target vecmath.Vec3) vecmath.Vec3 {
	want := [3]float64{target.X, target.Y, target.Z}
	for i := range f.pos {
		f.pos[i], f.vel[i] = f.spring.Update(f.pos[i], f.vel[i], want[i])
	}
	return vecmath.V3(f.pos[0], f.pos[1], f.pos[2])
}

// Jump snaps the springs onto target with zero velocity.
func (f *Follow) Jump(target vecmath.Vec3) {
	f.pos = [3]float64{target.X, target.Y, target.Z}
	f.vel = [3]float64{}
}

// Camera projects world space onto a braille canvas with a simple
// perspective transform. The look target is spring-smoothed; rotation is
// pitch around X and yaw around Y.
type Camera struct {
	Distance   float64 // eye distance from the look target, world units
	Span       float64 // world units mapped across the short canvas axis
	RotX, RotY float64
	Zoom       float64

	follow *Follow
	target vecmath.Vec3
}

func NewCamera() *Camera {
	return &Camera{
		Distance: 40,
		Span:     24,
		Zoom:     1.0,
		follow:   NewFollow(60, 4.0, 0.9),
	}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// LookAt springs the look target toward p. Call once per rendered frame.
func (c *Camera) LookAt(p vecmath.Vec3) { c.target = c.follow.Track(p) }

// SnapTo moves the look target to p immediately.
func (c *Camera) SnapTo(p vecmath.Vec3) {
	c.follow.Jump(p)
	c.target = p
}

// Target returns the current smoothed look target.
func (c *Camera) Target() vecmath.Vec3 { return c.target }

// Project maps a world point to pixel coordinates on a pw x ph pixel
// canvas. It also returns the view-space depth and whether the point is in
// front of the eye and inside the canvas.
func (c *Camera) Project(p vecmath.Vec3, pw, ph int) (x, y int, depth float64, ok bool) {
	rel := p.Sub(c.target).RotateY(c.RotY).RotateX(c.RotX).Scale(c.Zoom)
	if rel.Z >= c.Distance-nearPlane {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - rel.Z)
	px := c.pixelsPerUnit(pw, ph) * persp
	x = int(rel.X*px) + pw/2
	y = ph/2 - int(rel.Y*px)
	return x, y, rel.Z, x >= 0 && x < pw && y >= 0 && y < ph
}

// Scale returns pixels per world unit at the given view-space depth, for
// sizing shapes drawn around a projected point.
func (c *Camera) Scale(depth float64, pw, ph int) float64 {
	if depth >= c.Distance-nearPlane {
		return 0
	}
	return c.pixelsPerUnit(pw, ph) * c.Distance / (c.Distance - depth)
}

func (c *Camera) pixelsPerUnit(pw, ph int) float64 {
	minDim := float64(ph)
	if float64(pw) < minDim {
		minDim = float64(pw)
	}
	if c.Span <= 0 {
		return minDim
	}
	return minDim / c.Span
}

// Edge is one wireframe segment in world space.
type Edge struct {
	Start, End vecmath.Vec3
}

// Wireframe is a reusable bundle of edges drawn in one Render call.
type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{} }

func (w *Wireframe) AddEdge(start, end vecmath.Vec3) {
	w.Edges = append(w.Edges, Edge{Start: start, End: end})
}

func (w *Wireframe) Clear() { w.Edges = w.Edges[:0] }

// Render draws every edge whose endpoints project in front of the eye.
// Edges partially off-canvas are clipped by the canvas itself.
func Render(c *Canvas, wf *Wireframe, cam *Camera) {
	if c == nil || wf == nil || cam == nil {
		return
	}
	pw, ph := c.Width*2, c.Height*4
	for _, e := range wf.Edges {
		x1, y1, _, ok1 := cam.Project(e.Start, pw, ph)
		x2, y2, _, ok2 := cam.Project(e.End, pw, ph)
		if ok1 || ok2 {
			c.DrawLine(x1, y1, x2, y2)
		}
	}
}

// BoxWireframe builds the twelve edges of an origin-centered box, matching
// the geometry of a walls constraint.
func BoxWireframe(width, height, depth float64) *Wireframe {
	hw, hh, hd := width/2, height/2, depth/2
	v := []vecmath.Vec3{
		vecmath.V3(-hw, -hh, -hd), vecmath.V3(hw, -hh, -hd),
		vecmath.V3(hw, hh, -hd), vecmath.V3(-hw, hh, -hd),
		vecmath.V3(-hw, -hh, hd), vecmath.V3(hw, -hh, hd),
		vecmath.V3(hw, hh, hd), vecmath.V3(-hw, hh, hd),
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	w := NewWireframe()
	for _, e := range edges {
		w.AddEdge(v[e[0]], v[e[1]])
	}
	return w
}

// AxesWireframe builds origin axes of the given half-length, the fallback
// scenery for scenes without a bounding box.
func AxesWireframe(l float64) *Wireframe {
	w := NewWireframe()
	o := vecmath.Vec3{}
	w.AddEdge(o, vecmath.V3(l, 0, 0))
	w.AddEdge(o, vecmath.V3(0, l, 0))
	w.AddEdge(o, vecmath.V3(0, 0, l))
	return w
}
