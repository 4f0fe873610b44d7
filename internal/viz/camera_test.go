package viz

import (
	"math"
	"testing"

	"github.com/san-kum/kinetic/internal/vecmath"
)

func TestCameraProject(t *testing.T) {
	cam := NewCamera()
	cam.SnapTo(vecmath.Vec3{})

	x, y, depth, ok := cam.Project(vecmath.Vec3{}, 160, 96)
	if !ok {
		t.Fatal("look target should be visible")
	}
	if x != 80 || y != 48 {
		t.Errorf("target projected to (%d,%d), want canvas center (80,48)", x, y)
	}
	if depth != 0 {
		t.Errorf("target depth = %v, want 0", depth)
	}

	// Span 24 across 96 pixels puts one world unit at 4 pixels.
	x, y, _, ok = cam.Project(vecmath.V3(1, 0, 0), 160, 96)
	if !ok || x != 84 || y != 48 {
		t.Errorf("unit x projected to (%d,%d), want (84,48)", x, y)
	}
	x, y, _, ok = cam.Project(vecmath.V3(0, 1, 0), 160, 96)
	if !ok || x != 80 || y != 44 {
		t.Errorf("unit y projected to (%d,%d), want (80,44): +y is up", x, y)
	}
}

func TestCameraBehindEye(t *testing.T) {
	cam := NewCamera()
	cam.SnapTo(vecmath.Vec3{})
	if _, _, _, ok := cam.Project(vecmath.V3(0, 0, cam.Distance), 160, 96); ok {
		t.Error("points behind the eye must not be visible")
	}
}

func TestCameraZoomBounds(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 50; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("Zoom = %v, want capped at 10", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Errorf("Zoom = %v, want floored at 0.1", cam.Zoom)
	}
}

func TestCameraScaleGrowsNearEye(t *testing.T) {
	cam := NewCamera()
	far := cam.Scale(-10, 160, 96)
	near := cam.Scale(10, 160, 96)
	if !(near > far) {
		t.Errorf("scale near eye (%v) should exceed scale far away (%v)", near, far)
	}
	if cam.Scale(cam.Distance, 160, 96) != 0 {
		t.Error("scale at the eye plane should be 0")
	}
}

func TestFollowConverges(t *testing.T) {
	f := NewFollow(60, 4.0, 0.9)
	target := vecmath.V3(10, -4, 2)
	var got vecmath.Vec3
	for i := 0; i < 300; i++ {
		got = f.Track(target)
	}
	if d := got.Sub(target).Norm(); d > 0.01 {
		t.Errorf("spring still %v away from target after 5s", d)
	}
}

func TestFollowJump(t *testing.T) {
	f := NewFollow(60, 4.0, 0.9)
	target := vecmath.V3(3, 7, -2)
	f.Jump(target)
	got := f.Track(target)
	if d := got.Sub(target).Norm(); d > 1e-9 {
		t.Errorf("spring at equilibrium moved by %v", d)
	}
}

func TestBoxWireframe(t *testing.T) {
	wf := BoxWireframe(10, 20, 30)
	if len(wf.Edges) != 12 {
		t.Fatalf("box has %d edges, want 12", len(wf.Edges))
	}
	for _, e := range wf.Edges {
		for _, v := range []vecmath.Vec3{e.Start, e.End} {
			if math.Abs(v.X) != 5 || math.Abs(v.Y) != 10 || math.Abs(v.Z) != 15 {
				t.Errorf("vertex %+v is not a corner of the 10x20x30 box", v)
			}
		}
	}
}

func TestAxesWireframe(t *testing.T) {
	wf := AxesWireframe(2)
	if len(wf.Edges) != 3 {
		t.Fatalf("axes have %d edges, want 3", len(wf.Edges))
	}
}

func TestRenderDrawsBox(t *testing.T) {
	c := NewCanvas(40, 12)
	cam := NewCamera()
	cam.SnapTo(vecmath.Vec3{})
	cam.Span = 30
	cam.Distance = 60

	Render(c, BoxWireframe(20, 20, 20), cam)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != brailleBase {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("rendering a box in view should light cells")
	}
}
