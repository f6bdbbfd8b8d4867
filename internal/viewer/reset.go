package viewer

import "campus-viewer/internal/scenegraph"

// Reset flies back to the home pose, makes every leaf opaque, hides the room text
// and clears the focus. Edit mode is left as it is.
func (v *Viewer) Reset() {
	v.flyTo(v.home)
	v.graph.Leaves(func(leaf *scenegraph.Node) {
		leaf.SetOpacity(scenegraph.Opaque)
	})
	v.panel.Visible = false
	v.focused = nil
	v.focusedID = 0
}
