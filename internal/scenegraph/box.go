package scenegraph

import "campus-viewer/internal/geom"

// boxFaces lists the corner indices of a box's 12 triangles. Corner i has
// bit 0 = max X, bit 1 = max Y, bit 2 = max Z.
var boxFaces = []uint32{
	0, 2, 1, 1, 2, 3, // -Z
	4, 5, 6, 5, 7, 6, // +Z
	0, 1, 4, 1, 5, 4, // -Y
	2, 6, 3, 3, 6, 7, // +Y
	0, 4, 2, 2, 4, 6, // -X
	1, 3, 5, 3, 7, 5, // +X
}

// BoxMesh returns a closed axis-aligned box mesh spanning b.
func BoxMesh(b geom.Box) *Mesh {
	corners := make([]geom.Vec3, 8)
	for i := range corners {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		corners[i] = c
	}
	indices := make([]uint32, len(boxFaces))
	copy(indices, boxFaces)
	return NewMesh(corners, indices)
}
