// Package scenegraph is the renderer-independent view of the loaded campus:
// a tree of named nodes rooted at a single scene root, where leaves carry
// world-space triangle meshes and a per-leaf opacity used for highlighting.
package scenegraph

import "campus-viewer/internal/geom"

// Opaque is the opacity of a normally drawn leaf.
const Opaque float32 = 1

// Mesh is world-space triangle geometry. Indices may be nil, in which case
// every three consecutive positions form a triangle.
type Mesh struct {
	Positions []geom.Vec3
	Indices   []uint32
	bounds    geom.Box
	hasBounds bool
}

// NewMesh builds a mesh and computes its bounds.
func NewMesh(positions []geom.Vec3, indices []uint32) *Mesh {
	m := &Mesh{Positions: positions, Indices: indices}
	m.Bounds()
	return m
}

// Bounds returns the axis-aligned bounds of the mesh positions.
func (m *Mesh) Bounds() geom.Box {
	if !m.hasBounds {
		b := geom.EmptyBox()
		for _, p := range m.Positions {
			b.ExpandByPoint(p)
		}
		m.bounds = b
		m.hasBounds = true
	}
	return m.bounds
}

// TriangleCount returns the number of complete triangles.
func (m *Mesh) TriangleCount() int {
	if m.Indices != nil {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

// Triangle returns the corners of triangle i. ok is false for out-of-range indices.
func (m *Mesh) Triangle(i int) (a, b, c geom.Vec3, ok bool) {
	var ia, ib, ic int
	if m.Indices != nil {
		ia, ib, ic = int(m.Indices[3*i]), int(m.Indices[3*i+1]), int(m.Indices[3*i+2])
	} else {
		ia, ib, ic = 3*i, 3*i+1, 3*i+2
	}
	n := len(m.Positions)
	if ia >= n || ib >= n || ic >= n {
		return a, b, c, false
	}
	return m.Positions[ia], m.Positions[ib], m.Positions[ic], true
}

// Node is one element of the scene tree. Group nodes have no Mesh; leaves have one.
type Node struct {
	Name     string
	Parent   *Node
	Children []*Node
	Mesh     *Mesh
	Visible  bool

	// Opacity and Transparent mirror the material state the renderer applies.
	Opacity     float32
	Transparent bool
}

// NewGroup returns a visible node without geometry.
func NewGroup(name string) *Node {
	return &Node{Name: name, Visible: true, Opacity: Opaque}
}

// NewLeaf returns a visible, opaque node drawing mesh.
func NewLeaf(name string, mesh *Mesh) *Node {
	return &Node{Name: name, Mesh: mesh, Visible: true, Opacity: Opaque}
}

// Add makes child a child of n, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if child.Parent != nil {
		child.Parent.remove(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) remove(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return
		}
	}
}

// IsLeaf reports whether n carries geometry.
func (n *Node) IsLeaf() bool {
	return n.Mesh != nil
}

// SetOpacity sets the leaf's drawn opacity; values below 1 mark it transparent.
func (n *Node) SetOpacity(alpha float32) {
	n.Opacity = alpha
	n.Transparent = alpha < Opaque
}

// Walk calls fn for n and every descendant, depth first, parents before children.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Bounds returns the union of the bounds of every leaf under n (n included).
func (n *Node) Bounds() geom.Box {
	b := geom.EmptyBox()
	n.Walk(func(c *Node) {
		if c.Mesh != nil {
			b = b.Union(c.Mesh.Bounds())
		}
	})
	return b
}
