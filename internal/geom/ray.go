package geom

import "cogentcore.org/core/math32"

// Ray is a half-line from Origin along Dir. Dir is expected to be unit length
// so hit distances are in world units.
type Ray = math32.Ray

// HitBox returns the distance along r to where it meets b. A ray starting inside
// the box meets it where it leaves.
func HitBox(r Ray, b Box) (float32, bool) {
	if b.IsEmpty() {
		return 0, false
	}
	p, ok := r.IntersectBox(b)
	if !ok {
		return 0, false
	}
	return p.DistanceTo(r.Origin), true
}

// HitTriangle returns the distance along r to triangle (a, b, c). Both faces are hit.
func HitTriangle(r Ray, a, b, c Vec3) (float32, bool) {
	p, ok := r.IntersectTriangle(a, b, c, false)
	if !ok {
		return 0, false
	}
	return p.DistanceTo(r.Origin), true
}
