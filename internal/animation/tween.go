// Package animation moves the camera between poses. It is polled from the
// render loop: nothing here blocks or runs on its own goroutine.
package animation

import (
	"time"

	"campus-viewer/internal/campus"
)

// Tween linearly interpolates a camera pose over a fixed duration. Starting a
// new tween replaces the one in flight.
type Tween struct {
	Duration time.Duration

	from, to campus.Pose
	start    time.Time
	active   bool
}

// New returns an idle tween with the given duration.
func New(d time.Duration) *Tween {
	return &Tween{Duration: d}
}

// Start begins moving from the current pose to the target pose at time now.
func (t *Tween) Start(from, to campus.Pose, now time.Time) {
	t.from = from
	t.to = to
	t.start = now
	t.active = true
}

// Active reports whether a tween is in flight.
func (t *Tween) Active() bool {
	return t.active
}

// Target returns the pose the current (or last) tween ends at.
func (t *Tween) Target() campus.Pose {
	return t.to
}

// Progress returns the clamped [0, 1] progress at now.
func (t *Tween) Progress(now time.Time) float32 {
	if t.Duration <= 0 {
		return 1
	}
	p := float32(now.Sub(t.start)) / float32(t.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Sample returns the interpolated pose at now and whether the tween was active.
// Once progress reaches 1 the exact target pose is returned and the tween stops.
func (t *Tween) Sample(now time.Time) (campus.Pose, bool) {
	if !t.active {
		return campus.Pose{}, false
	}
	p := t.Progress(now)
	if p >= 1 {
		t.active = false
		return t.to, true
	}
	return campus.Pose{
		Eye:    t.from.Eye.Lerp(t.to.Eye, p),
		Target: t.from.Target.Lerp(t.to.Target, p),
	}, true
}
