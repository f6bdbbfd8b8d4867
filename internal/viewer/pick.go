package viewer

import (
	"campus-viewer/internal/campus"
	"campus-viewer/internal/geom"
	"campus-viewer/internal/scenegraph"
)

// Pick resolves the room under pixel (px, py) of a w×h viewport: the nearest
// visible geometry under the pointer is walked up to its top-level node and that
// node's name is looked up in the registry.
func (v *Viewer) Pick(px, py, w, h float32) (campus.RoomID, *scenegraph.Node, bool) {
	if w <= 0 || h <= 0 {
		return 0, nil, false
	}
	x, y := geom.ScreenToNDC(px, py, w, h)
	ray := geom.PerspectiveRay(v.camera.Eye, v.camera.Target, v.camera.Up, v.lens, w/h, x, y)

	hit, ok := v.graph.Raycast(ray)
	if !ok {
		return 0, nil, false
	}
	candidate := scenegraph.TopLevel(hit.Node)
	id, ok := v.rooms.Lookup(candidate.Name)
	if !ok {
		return 0, nil, false
	}
	return id, candidate, true
}

// Click handles a pointer click: in edit mode the room under the pointer gets the
// live camera pose, otherwise the camera flies to it. Clicks on nothing, on the
// building shell or on rooms that have not loaded yet do nothing.
func (v *Viewer) Click(px, py, w, h float32) (campus.RoomID, bool) {
	id, _, ok := v.Pick(px, py, w, h)
	if !ok {
		return 0, false
	}
	if v.editMode {
		v.Capture(id)
	} else {
		v.Focus(id)
	}
	return id, true
}
