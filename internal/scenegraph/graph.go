package scenegraph

import "campus-viewer/internal/geom"

// Graph owns the scene root and the name → node association of the loaded assets.
type Graph struct {
	Root   *Node
	byName map[string]*Node
}

// New returns a graph with an empty root group.
func New() *Graph {
	return &Graph{
		Root:   NewGroup(""),
		byName: make(map[string]*Node),
	}
}

// Attach names node, adds it under the root and records it for Lookup.
// Attaching a second node under the same name replaces the first.
func (g *Graph) Attach(name string, node *Node) {
	if old, ok := g.byName[name]; ok && old != node {
		g.Root.remove(old)
		old.Parent = nil
	}
	node.Name = name
	g.Root.Add(node)
	g.byName[name] = node
}

// Lookup returns the top-level node attached under name.
func (g *Graph) Lookup(name string) (*Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// Len returns the number of attached top-level nodes.
func (g *Graph) Len() int {
	return len(g.byName)
}

// Leaves calls fn for every node carrying geometry.
func (g *Graph) Leaves(fn func(*Node)) {
	g.Root.Walk(func(n *Node) {
		if n.IsLeaf() {
			fn(n)
		}
	})
}

// TopLevel walks parent links from n up to the node whose parent is the root.
// A node that is already top-level (or the root itself) is returned unchanged.
func TopLevel(n *Node) *Node {
	for n.Parent != nil && n.Parent.Parent != nil {
		n = n.Parent
	}
	return n
}

// Hit is the result of a successful raycast.
type Hit struct {
	Node     *Node
	Distance float32
	Point    geom.Vec3
}

// Raycast returns the nearest visible leaf hit by r. Invisible nodes hide their subtree.
func (g *Graph) Raycast(r geom.Ray) (Hit, bool) {
	var best Hit
	found := false
	var visit func(n *Node)
	visit = func(n *Node) {
		if !n.Visible {
			return
		}
		if n.Mesh != nil {
			if d, ok := intersectMesh(r, n.Mesh); ok && (!found || d < best.Distance) {
				best = Hit{Node: n, Distance: d, Point: r.At(d)}
				found = true
			}
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(g.Root)
	return best, found
}

func intersectMesh(r geom.Ray, m *Mesh) (float32, bool) {
	if _, ok := geom.HitBox(r, m.Bounds()); !ok {
		return 0, false
	}
	var best float32
	found := false
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c, ok := m.Triangle(i)
		if !ok {
			continue
		}
		if d, hit := geom.HitTriangle(r, a, b, c); hit && (!found || d < best) {
			best = d
			found = true
		}
	}
	return best, found
}
