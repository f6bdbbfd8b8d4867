package console

import (
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"

	"campus-viewer/internal/campus"
	"campus-viewer/internal/commands"
	"campus-viewer/internal/engineconfig"
	"campus-viewer/internal/geom"
	"campus-viewer/internal/orbit"
	"campus-viewer/internal/scenegraph"
	"campus-viewer/internal/viewer"
)

type recorder struct{ lines []string }

func (r *recorder) Log(line string) { r.lines = append(r.lines, line) }

type overlays struct{ fps, pose bool }

func (o *overlays) SetShowFPS(on bool)  { o.fps = on }
func (o *overlays) SetShowPose(on bool) { o.pose = on }

var (
	start    = campus.Pose{Eye: geom.V(0, 25, 30), Target: geom.V(0, 20, 0)}
	home     = campus.Pose{Eye: geom.V(0, 25, 30), Target: geom.V(0, 25, 0)}
	room3    = campus.Pose{Eye: geom.V(20, 15, 10), Target: geom.V(20, 12, 0)}
	infoText = campus.Info{Description: "Room 3 - Adviser: Sir Naval - Section: Rutherford", Directions: "First floor"}
)

type fixture struct {
	reg      *commands.Registry
	v        *viewer.Viewer
	log      *recorder
	overlays *overlays
	prefs    engineconfig.EnginePrefs
	saved    []engineconfig.EnginePrefs
	saveErr  error
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	g := scenegraph.New()
	for _, name := range []string{"school", "Room 3"} {
		top := scenegraph.NewGroup(name)
		top.Add(scenegraph.NewLeaf(name+" mesh", scenegraph.BoxMesh(geom.Box{Min: geom.V(18, 10, -2), Max: geom.V(22, 14, 2)})))
		g.Attach(name, top)
	}
	rooms := campus.NewRegistry(
		map[campus.RoomID]campus.Info{campus.Room3: infoText, campus.Room4: {Description: "Room 4"}},
		map[campus.RoomID]campus.Pose{campus.Room3: room3},
	)

	f := &fixture{
		reg:      commands.NewRegistry(nil),
		log:      &recorder{},
		overlays: &overlays{},
		prefs:    engineconfig.Default(),
	}
	f.v = viewer.New(viewer.Options{
		Graph:      g,
		Rooms:      rooms,
		Camera:     orbit.New(start, 10, 50, 0.05),
		Shell:      "school",
		Home:       home,
		Transition: time.Second,
		Log:        f.log,
	})
	Register(f.reg, Deps{
		Viewer:   f.v,
		Log:      f.log,
		Overlays: f.overlays,
		Prefs:    &f.prefs,
		SavePrefs: func(p engineconfig.EnginePrefs) error {
			f.saved = append(f.saved, p)
			return f.saveErr
		},
	})
	return f
}

func (f *fixture) run(t *testing.T, line string) error {
	t.Helper()
	args, ok := commands.Parse(line)
	if !ok {
		t.Fatalf("not a command line: %q", line)
	}
	return f.reg.Execute(args)
}

func TestEditTogglesMode(t *testing.T) {
	f := newFixture(t)

	if err := f.run(t, "cmd edit"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	testutil.AssertEqual(t, "edit mode", f.v.EditMode(), true)
	testutil.AssertEqual(t, "log", f.log.lines[len(f.log.lines)-1], "Edit mode enabled")

	if err := f.run(t, "cmd edit"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	testutil.AssertEqual(t, "edit mode", f.v.EditMode(), false)
}

func TestFocus(t *testing.T) {
	tests := map[string]struct {
		line   string
		expErr string
	}{
		"number":     {line: "cmd focus -room 3"},
		"name":       {line: "cmd focus -room Room3"},
		"missing":    {line: "cmd focus", expErr: "missing -room"},
		"unknown":    {line: "cmd focus -room gym", expErr: `unknown room "gym"`},
		"not loaded": {line: "cmd focus -room 4", expErr: "Room 4 is not loaded"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			err := f.run(t, tt.line)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				testutil.AssertEqual(t, "panel visible", f.v.Panel().Visible, false)
				return
			}
			if err != nil {
				t.Fatalf("focus: %v", err)
			}
			id, ok := f.v.Focused()
			testutil.AssertEqual(t, "focused", ok, true)
			testutil.AssertEqual(t, "room", id, campus.Room3)
			testutil.AssertEqual(t, "description", f.v.Panel().Description, infoText.Description)
		})
	}
}

func TestResetClearsFocus(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "cmd focus -room 3"); err != nil {
		t.Fatalf("focus: %v", err)
	}
	if err := f.run(t, "cmd reset"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	_, ok := f.v.Focused()
	testutil.AssertEqual(t, "focused", ok, false)
	testutil.AssertEqual(t, "panel visible", f.v.Panel().Visible, false)
}

func TestCaptureSavesLiveCamera(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "cmd capture -room 4"); err != nil {
		t.Fatalf("capture: %v", err)
	}
	p, ok := f.v.Rooms().Pose(campus.Room4)
	testutil.AssertEqual(t, "has pose", ok, true)
	testutil.AssertEqual(t, "eye", p.Eye, start.Eye)
	testutil.AssertEqual(t, "target", p.Target, start.Target)
	testutil.AssertEqual(t, "log", f.log.lines[len(f.log.lines)-1], "Saved view for Room 4")

	testutil.AssertErrorContains(t, f.run(t, "cmd capture -room 8"), "Room 8 is not in the campus")
}

func TestPosesListsEveryRoom(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "cmd poses"); err != nil {
		t.Fatalf("poses: %v", err)
	}
	testutil.AssertEqual(t, "line count", len(f.log.lines), 3)
	testutil.AssertEqual(t, "room 3", f.log.lines[0], "Room 3: eye [20, 15, 10] target [20, 12, 0]")
	testutil.AssertEqual(t, "room 4", f.log.lines[1], "Room 4: framed from its bounds")
	testutil.AssertEqual(t, "camera", f.log.lines[2], "camera: eye [0, 25, 30] target [0, 20, 0]")
}

func TestOverlayTogglesPersist(t *testing.T) {
	f := newFixture(t)

	if err := f.run(t, "cmd fps"); err != nil {
		t.Fatalf("fps: %v", err)
	}
	testutil.AssertEqual(t, "fps shown", f.overlays.fps, true)
	testutil.AssertEqual(t, "prefs fps", f.prefs.ShowFPS, true)

	if err := f.run(t, "cmd pose -on=true"); err != nil {
		t.Fatalf("pose: %v", err)
	}
	testutil.AssertEqual(t, "pose shown", f.overlays.pose, true)

	if err := f.run(t, "cmd fps -on=false"); err != nil {
		t.Fatalf("fps: %v", err)
	}
	testutil.AssertEqual(t, "fps hidden", f.overlays.fps, false)
	testutil.AssertEqual(t, "save count", len(f.saved), 3)
	testutil.AssertEqual(t, "last saved fps", f.saved[2].ShowFPS, false)
	testutil.AssertEqual(t, "last saved pose", f.saved[2].ShowPose, true)

	f.saveErr = errors.New("read-only")
	testutil.AssertErrorContains(t, f.run(t, "cmd pose -on=false"), "saving preferences: read-only")
}

func TestHelpListsCommands(t *testing.T) {
	f := newFixture(t)
	if err := f.run(t, "cmd help"); err != nil {
		t.Fatalf("help: %v", err)
	}
	testutil.AssertEqual(t, "line count", len(f.log.lines), len(f.reg.Names()))
	testutil.AssertEqual(t, "first", f.log.lines[0], "capture - save the current view for a room: -room 3")
}

func TestFlagsStartFromDefaults(t *testing.T) {
	f := newFixture(t)

	if err := f.run(t, "cmd fps -on=false"); err != nil {
		t.Fatalf("fps: %v", err)
	}
	testutil.AssertEqual(t, "fps hidden", f.overlays.fps, false)
	if err := f.run(t, "cmd fps"); err != nil {
		t.Fatalf("fps: %v", err)
	}
	testutil.AssertEqual(t, "fps shown again", f.overlays.fps, true)

	if err := f.run(t, "cmd capture -room 3"); err != nil {
		t.Fatalf("capture: %v", err)
	}
	testutil.AssertErrorContains(t, f.run(t, "cmd capture"), "missing -room")
}
