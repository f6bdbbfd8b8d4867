package geom

import "cogentcore.org/core/math32"

// parallelEpsilon is the length under which forward × up counts as zero.
const parallelEpsilon = 1e-6

// Lens is the perspective projection of a camera.
type Lens struct {
	FovY float32 // vertical field of view, degrees
	Near float32
	Far  float32
}

// ScreenToNDC maps a pixel position in a w×h viewport to normalized device
// coordinates: x and y in [-1, 1], y up.
func ScreenToNDC(px, py, w, h float32) (x, y float32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return px/w*2 - 1, -(py/h)*2 + 1
}

// PerspectiveRay returns the ray from eye through the point (ndcX, ndcY) of a
// perspective camera looking at target with the given up vector. A camera looking
// along up uses +X as its right axis.
func PerspectiveRay(eye, target, up Vec3, lens Lens, aspect float32, ndcX, ndcY float32) Ray {
	forward := target.Sub(eye).Normal()
	side := forward.Cross(up)
	if side.Length() < parallelEpsilon {
		side = math32.Vec3(1, 0, 0)
	}
	right := side.Normal()
	trueUp := right.Cross(forward)

	tanHalf := math32.Tan(math32.DegToRad(lens.FovY) / 2)

	dir := forward.
		Add(right.MulScalar(ndcX * tanHalf * aspect)).
		Add(trueUp.MulScalar(ndcY * tanHalf))
	return Ray{Origin: eye, Dir: dir.Normal()}
}
