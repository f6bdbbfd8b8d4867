package viewer

import (
	"campus-viewer/internal/campus"
	"campus-viewer/internal/geom"
	"campus-viewer/internal/scenegraph"
)

const (
	defaultDistanceFactor = 1.5
	defaultLiftFactor     = 0.3
	directionsPrefix      = "Directions: "
)

// Focus flies the camera to the room's pose, dims every other room and shows the
// room's text. It returns false, changing nothing, when the room has no loaded node
// or has neither an authored pose nor geometry to frame.
func (v *Viewer) Focus(id campus.RoomID) bool {
	node, ok := v.graph.Lookup(id.String())
	if !ok {
		return false
	}
	info, ok := v.rooms.Info(id)
	if !ok {
		return false
	}

	pose, ok := v.rooms.Pose(id)
	if !ok {
		if pose, ok = DefaultPose(node.Bounds()); !ok {
			return false
		}
	}

	if v.focused != nil {
		setSubtreeOpacity(v.focused, scenegraph.Opaque)
	}
	v.focused = node
	v.focusedID = id
	v.highlight(node)

	v.flyTo(pose)
	v.showInfo(info)
	return true
}

// DefaultPose frames a box from the front: the eye sits in front of the centre
// (+Z) at 1.5× the largest box dimension, lifted by 0.3× the box height, looking
// at the centre. It is a heuristic for rooms without an authored pose.
// An empty box has no framing and reports false.
func DefaultPose(b geom.Box) (campus.Pose, bool) {
	if b.IsEmpty() {
		return campus.Pose{}, false
	}
	center := b.Center()
	size := b.Size()
	distance := geom.MaxComponent(size) * defaultDistanceFactor
	return campus.Pose{
		Eye:    geom.V(center.X, center.Y+size.Y*defaultLiftFactor, center.Z+distance),
		Target: center,
	}, true
}

// highlight makes the focused room's own leaves opaque and dims leaves belonging to
// anything except the building shell.
func (v *Viewer) highlight(room *scenegraph.Node) {
	v.graph.Leaves(func(leaf *scenegraph.Node) {
		switch {
		case leaf.Parent == room:
			leaf.SetOpacity(scenegraph.Opaque)
		case leaf.Parent != nil && leaf.Parent.Name != v.shell:
			leaf.SetOpacity(DimmedOpacity)
		}
	})
}

func (v *Viewer) showInfo(info campus.Info) {
	v.panel = Panel{
		Visible:     true,
		Description: info.Description,
		Directions:  directionsPrefix + info.Directions,
	}
}

func setSubtreeOpacity(n *scenegraph.Node, alpha float32) {
	n.Walk(func(c *scenegraph.Node) {
		if c.IsLeaf() {
			c.SetOpacity(alpha)
		}
	})
}
