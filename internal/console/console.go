// Package console registers the viewer's terminal commands ("cmd edit", "cmd focus -room 3", ...)
// on a commands.Registry.
package console

import (
	"flag"
	"fmt"

	"campus-viewer/internal/campus"
	"campus-viewer/internal/commands"
	"campus-viewer/internal/engineconfig"
	"campus-viewer/internal/viewer"
)

// Logger receives command output.
type Logger interface {
	Log(line string)
}

// Overlays are the debug readouts the fps and pose commands switch.
type Overlays interface {
	SetShowFPS(bool)
	SetShowPose(bool)
}

// Deps are what the commands act on. SavePrefs is called after a toggle changes Prefs;
// nil skips persisting.
type Deps struct {
	Viewer    *viewer.Viewer
	Log       Logger
	Overlays  Overlays
	Prefs     *engineconfig.EnginePrefs
	SavePrefs func(engineconfig.EnginePrefs) error
}

// Register adds every viewer command to reg.
func Register(reg *commands.Registry, d Deps) {
	reg.Register("edit", "toggle edit mode", nil, func() error {
		d.Viewer.ToggleEditMode()
		return nil
	})

	reg.Register("reset", "fly back to the home view", nil, func() error {
		d.Viewer.Reset()
		return nil
	})

	focusFlags := flag.NewFlagSet("focus", flag.ContinueOnError)
	focusRoom := focusFlags.String("room", "", "room number or name, e.g. 3 or \"Room 3\"")
	reg.Register("focus", "fly to a room: -room 3", focusFlags, func() error {
		id, err := roomArg(*focusRoom)
		if err != nil {
			return err
		}
		if !d.Viewer.Focus(id) {
			return fmt.Errorf("%s is not loaded", id)
		}
		return nil
	})

	captureFlags := flag.NewFlagSet("capture", flag.ContinueOnError)
	captureRoom := captureFlags.String("room", "", "room number or name")
	reg.Register("capture", "save the current view for a room: -room 3", captureFlags, func() error {
		id, err := roomArg(*captureRoom)
		if err != nil {
			return err
		}
		if !d.Viewer.Capture(id) {
			return fmt.Errorf("%s is not in the campus", id)
		}
		return nil
	})

	reg.Register("poses", "print the view saved for every room", nil, func() error {
		rooms := d.Viewer.Rooms()
		for _, id := range rooms.Rooms() {
			if p, ok := rooms.Pose(id); ok {
				d.Log.Log(id.String() + ": " + FormatPose(p))
			} else {
				d.Log.Log(id.String() + ": framed from its bounds")
			}
		}
		d.Log.Log("camera: " + FormatPose(d.Viewer.Camera().Pose()))
		return nil
	})

	fpsFlags := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsOn := fpsFlags.Bool("on", true, "show the FPS counter")
	reg.Register("fps", "show or hide FPS: -on=false", fpsFlags, func() error {
		d.Overlays.SetShowFPS(*fpsOn)
		return d.save(func(p *engineconfig.EnginePrefs) { p.ShowFPS = *fpsOn })
	})

	poseFlags := flag.NewFlagSet("pose", flag.ContinueOnError)
	poseOn := poseFlags.Bool("on", true, "show the camera pose readout")
	reg.Register("pose", "show or hide the camera pose: -on=false", poseFlags, func() error {
		d.Overlays.SetShowPose(*poseOn)
		return d.save(func(p *engineconfig.EnginePrefs) { p.ShowPose = *poseOn })
	})

	reg.Register("help", "list commands", nil, func() error {
		for _, line := range reg.Help() {
			d.Log.Log(line)
		}
		return nil
	})
}

func (d Deps) save(change func(*engineconfig.EnginePrefs)) error {
	if d.Prefs == nil {
		return nil
	}
	change(d.Prefs)
	if d.SavePrefs == nil {
		return nil
	}
	if err := d.SavePrefs(*d.Prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

func roomArg(s string) (campus.RoomID, error) {
	if s == "" {
		return 0, fmt.Errorf("missing -room")
	}
	id, ok := campus.ParseRoomNumber(s)
	if !ok {
		return 0, fmt.Errorf("unknown room %q", s)
	}
	return id, nil
}

// FormatPose renders a pose in the campus config's notation.
func FormatPose(p campus.Pose) string {
	return fmt.Sprintf("eye [%g, %g, %g] target [%g, %g, %g]",
		p.Eye.X, p.Eye.Y, p.Eye.Z, p.Target.X, p.Target.Y, p.Target.Z)
}
