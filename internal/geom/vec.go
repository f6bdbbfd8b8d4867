// Package geom is the viewer's 3D maths vocabulary: vectors, boxes and rays come
// from cogentcore's math32; this package adds the few helpers picking and camera
// framing need on top. It does not depend on the renderer, so picking and camera
// logic can be tested without a window.
package geom

import "cogentcore.org/core/math32"

// Vec3 is a 3-component float32 vector (Y up).
type Vec3 = math32.Vector3

// V is shorthand for a Vec3.
func V(x, y, z float32) Vec3 {
	return math32.Vec3(x, y, z)
}

// FromArray converts an [x, y, z] triple as written in config files.
func FromArray(a [3]float32) Vec3 {
	return math32.Vec3(a[0], a[1], a[2])
}

// Array returns v as an [x, y, z] triple, the layout shader uniforms take.
func Array(v Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// MaxComponent returns the largest of v's components.
func MaxComponent(v Vec3) float32 {
	return math32.Max(v.X, math32.Max(v.Y, v.Z))
}
