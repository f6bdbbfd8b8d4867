package viewer

import "campus-viewer/internal/campus"

// ToggleEditMode flips edit mode and returns the new state.
func (v *Viewer) ToggleEditMode() bool {
	v.editMode = !v.editMode
	if v.editMode {
		v.log.Log("Edit mode enabled")
	} else {
		v.log.Log("Edit mode disabled")
	}
	return v.editMode
}

// EditMode reports whether clicks capture poses instead of navigating.
func (v *Viewer) EditMode() bool {
	return v.editMode
}

// EditLabel is the text of the edit mode button.
func (v *Viewer) EditLabel() string {
	if v.editMode {
		return "Edit Mode: ON"
	}
	return "Edit Mode: OFF"
}

// Capture stores the live camera eye and orbit target as the room's pose,
// replacing whatever pose it had. The camera does not move.
func (v *Viewer) Capture(id campus.RoomID) bool {
	if !v.rooms.SetPose(id, v.camera.Pose()) {
		return false
	}
	v.log.Log("Saved view for " + id.String())
	return true
}
