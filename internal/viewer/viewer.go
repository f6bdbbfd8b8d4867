// Package viewer is the interaction model of the campus map: it owns the
// selection, the edit-mode flag and the camera transition, and turns clicks,
// button presses and frame ticks into camera moves, highlighting and room text.
//
// A Viewer is driven from the render loop only; nothing in it is safe for
// concurrent use.
package viewer

import (
	"time"

	"campus-viewer/internal/animation"
	"campus-viewer/internal/campus"
	"campus-viewer/internal/geom"
	"campus-viewer/internal/orbit"
	"campus-viewer/internal/scenegraph"
)

// DimmedOpacity is the alpha of rooms other than the focused one.
const DimmedOpacity float32 = 0.3

// Logger receives user-facing notifications.
type Logger interface {
	Log(line string)
}

// Options wires a Viewer to the scene and camera it drives.
type Options struct {
	Graph  *scenegraph.Graph
	Rooms  *campus.Registry
	Camera *orbit.Controller
	Lens   geom.Lens

	// Shell is the name of the top-level building node whose leaves are never dimmed.
	Shell string
	// Home is the pose Reset flies to.
	Home       campus.Pose
	Transition time.Duration

	Log Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Panel is the content of the two room text regions.
type Panel struct {
	Visible     bool
	Description string
	Directions  string
}

// Viewer ties the scene graph, room registry and orbit camera together. It owns focus,
// edit mode and the room panel, and is driven from the render loop via Tick.
type Viewer struct {
	graph  *scenegraph.Graph
	rooms  *campus.Registry
	camera *orbit.Controller
	lens   geom.Lens
	shell  string
	home   campus.Pose
	tween  *animation.Tween
	log    Logger
	now    func() time.Time

	focused   *scenegraph.Node
	focusedID campus.RoomID
	editMode  bool
	panel     Panel
}

// New builds a Viewer from o. A nil Log discards notifications.
func New(o Options) *Viewer {
	now := o.Now
	if now == nil {
		now = time.Now
	}
	log := o.Log
	if log == nil {
		log = discard{}
	}
	return &Viewer{
		graph:  o.Graph,
		rooms:  o.Rooms,
		camera: o.Camera,
		lens:   o.Lens,
		shell:  o.Shell,
		home:   o.Home,
		tween:  animation.New(o.Transition),
		log:    log,
		now:    now,
	}
}

type discard struct{}

func (discard) Log(string) {}

// Graph returns the scene graph the viewer picks against.
func (v *Viewer) Graph() *scenegraph.Graph {
	return v.graph
}

// Rooms returns the room registry, including any poses captured in edit mode.
func (v *Viewer) Rooms() *campus.Registry {
	return v.rooms
}

// Camera returns the live camera controller.
func (v *Viewer) Camera() *orbit.Controller {
	return v.camera
}

// Lens returns the camera projection used for picking.
func (v *Viewer) Lens() geom.Lens {
	return v.lens
}

// Focused returns the currently focused room, if any.
func (v *Viewer) Focused() (campus.RoomID, bool) {
	if v.focused == nil {
		return 0, false
	}
	return v.focusedID, true
}

// Panel returns the current room text state.
func (v *Viewer) Panel() Panel {
	return v.panel
}

// Animating reports whether a camera transition is in flight.
func (v *Viewer) Animating() bool {
	return v.tween.Active()
}

// Tick advances the camera transition and applies pending orbit input. Call once per frame
// before drawing.
func (v *Viewer) Tick() {
	if pose, ok := v.tween.Sample(v.now()); ok {
		v.camera.Set(pose)
		return
	}
	v.camera.Update()
}

// flyTo starts a transition from the live camera pose to pose. A transition in
// flight is replaced.
func (v *Viewer) flyTo(pose campus.Pose) {
	v.tween.Start(v.camera.Pose(), pose, v.now())
}
