package geom

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/pixil98/go-testutil"
)

const tolerance = 1e-4

func near(a, b float32) bool {
	return math32.Abs(a-b) < tolerance
}

func TestArrays(t *testing.T) {
	v := FromArray([3]float32{1, -2, 3})
	testutil.AssertEqual(t, "vec", v, V(1, -2, 3))
	testutil.AssertEqual(t, "array", Array(v), [3]float32{1, -2, 3})
	testutil.AssertEqual(t, "max component", MaxComponent(V(4, 9, -12)), float32(9))
}

func TestEmptyBox(t *testing.T) {
	b := EmptyBox()
	testutil.AssertEqual(t, "empty", b.IsEmpty(), true)

	b.ExpandByPoint(V(-1, 0, 2))
	b.ExpandByPoint(V(3, 4, -2))
	testutil.AssertEqual(t, "empty", b.IsEmpty(), false)
	testutil.AssertEqual(t, "center", b.Center(), V(1, 2, 0))
	testutil.AssertEqual(t, "size", b.Size(), V(4, 4, 4))
}

func TestHitBox(t *testing.T) {
	box := Box{Min: V(-1, -1, -1), Max: V(1, 1, 1)}
	tests := map[string]struct {
		ray     Ray
		expHit  bool
		expDist float32
	}{
		"straight on": {
			ray:     Ray{Origin: V(0, 0, 10), Dir: V(0, 0, -1)},
			expHit:  true,
			expDist: 9,
		},
		"pointing away": {
			ray:    Ray{Origin: V(0, 0, 10), Dir: V(0, 0, 1)},
			expHit: false,
		},
		"parallel outside": {
			ray:    Ray{Origin: V(0, 5, 10), Dir: V(0, 0, -1)},
			expHit: false,
		},
		"inside": {
			ray:     Ray{Origin: V(0, 0, 0), Dir: V(1, 0, 0)},
			expHit:  true,
			expDist: 1,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, ok := HitBox(tt.ray, box)
			testutil.AssertEqual(t, "hit", ok, tt.expHit)
			if ok && !near(d, tt.expDist) {
				t.Fatalf("distance = %v, want %v", d, tt.expDist)
			}
		})
	}

	_, ok := HitBox(Ray{Origin: V(0, 0, 10), Dir: V(0, 0, -1)}, EmptyBox())
	testutil.AssertEqual(t, "empty box", ok, false)
}

func TestHitTriangle(t *testing.T) {
	a, b, c := V(-1, -1, 0), V(1, -1, 0), V(0, 1, 0)

	d, ok := HitTriangle(Ray{Origin: V(0, 0, 5), Dir: V(0, 0, -1)}, a, b, c)
	testutil.AssertEqual(t, "front hit", ok, true)
	if !near(d, 5) {
		t.Fatalf("front distance = %v, want 5", d)
	}

	_, ok = HitTriangle(Ray{Origin: V(0, 0, -5), Dir: V(0, 0, 1)}, a, b, c)
	testutil.AssertEqual(t, "back face hit", ok, true)

	_, ok = HitTriangle(Ray{Origin: V(5, 5, 5), Dir: V(0, 0, -1)}, a, b, c)
	testutil.AssertEqual(t, "miss", ok, false)

	_, ok = HitTriangle(Ray{Origin: V(0, 0, 5), Dir: V(0, 0, 1)}, a, b, c)
	testutil.AssertEqual(t, "behind origin", ok, false)
}

func TestScreenToNDC(t *testing.T) {
	x, y := ScreenToNDC(400, 300, 800, 600)
	testutil.AssertEqual(t, "center x", x, float32(0))
	testutil.AssertEqual(t, "center y", y, float32(0))

	x, y = ScreenToNDC(0, 0, 800, 600)
	testutil.AssertEqual(t, "top left x", x, float32(-1))
	testutil.AssertEqual(t, "top left y", y, float32(1))

	x, y = ScreenToNDC(800, 600, 800, 600)
	testutil.AssertEqual(t, "bottom right x", x, float32(1))
	testutil.AssertEqual(t, "bottom right y", y, float32(-1))
}

func TestPerspectiveRayCenter(t *testing.T) {
	lens := Lens{FovY: 75, Near: 0.1, Far: 1000}
	r := PerspectiveRay(V(0, 0, 10), V(0, 0, 0), V(0, 1, 0), lens, 1.5, 0, 0)
	testutil.AssertEqual(t, "origin", r.Origin, V(0, 0, 10))
	if !near(r.Dir.X, 0) || !near(r.Dir.Y, 0) || !near(r.Dir.Z, -1) {
		t.Fatalf("direction = %+v, want (0, 0, -1)", r.Dir)
	}
}

func TestPerspectiveRayOffCenter(t *testing.T) {
	lens := Lens{FovY: 90}
	r := PerspectiveRay(V(0, 0, 10), V(0, 0, 0), V(0, 1, 0), lens, 1, 0, 1)
	if r.Dir.Y <= 0 {
		t.Fatalf("expected ray through top edge to point up, got %+v", r.Dir)
	}
	if !near(r.Dir.X, 0) {
		t.Fatalf("expected no horizontal component, got %+v", r.Dir)
	}
}

func TestPerspectiveRayLookingAlongUp(t *testing.T) {
	lens := Lens{FovY: 90}
	eye, target, up := V(0, 10, 0), V(0, 0, 0), V(0, 1, 0)

	center := PerspectiveRay(eye, target, up, lens, 1, 0, 0)
	if !near(center.Dir.Y, -1) {
		t.Fatalf("center direction = %+v, want straight down", center.Dir)
	}

	right := PerspectiveRay(eye, target, up, lens, 1, 1, 0)
	if right.Dir.X <= 0.1 {
		t.Fatalf("off-centre ray should lean to +X, got %+v", right.Dir)
	}
	top := PerspectiveRay(eye, target, up, lens, 1, 0, 1)
	if near(top.Dir.X, center.Dir.X) && near(top.Dir.Z, center.Dir.Z) {
		t.Fatalf("off-centre ray collapsed onto the centre ray: %+v", top.Dir)
	}
}
