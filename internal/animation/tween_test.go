package animation

import (
	"testing"
	"time"

	"github.com/pixil98/go-testutil"

	"campus-viewer/internal/campus"
	"campus-viewer/internal/geom"
)

var (
	epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	from  = campus.Pose{Eye: geom.V(0, 25, 30), Target: geom.V(0, 20, 0)}
	to    = campus.Pose{Eye: geom.V(20, 15, 10), Target: geom.V(20, 12, 0)}
)

func TestSampleIdle(t *testing.T) {
	tw := New(time.Second)
	_, ok := tw.Sample(epoch)
	testutil.AssertEqual(t, "active", ok, false)
}

func TestSampleProgress(t *testing.T) {
	tests := map[string]struct {
		elapsed   time.Duration
		expPose   campus.Pose
		expActive bool
	}{
		"start": {
			elapsed:   0,
			expPose:   from,
			expActive: true,
		},
		"half way": {
			elapsed:   500 * time.Millisecond,
			expPose:   campus.Pose{Eye: geom.V(10, 20, 20), Target: geom.V(10, 16, 0)},
			expActive: true,
		},
		"at duration": {
			elapsed:   time.Second,
			expPose:   to,
			expActive: false,
		},
		"long after": {
			elapsed:   time.Minute,
			expPose:   to,
			expActive: false,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tw := New(time.Second)
			tw.Start(from, to, epoch)

			got, ok := tw.Sample(epoch.Add(tt.elapsed))
			testutil.AssertEqual(t, "sampled", ok, true)
			testutil.AssertEqual(t, "pose", got, tt.expPose)
			testutil.AssertEqual(t, "still active", tw.Active(), tt.expActive)
		})
	}
}

func TestProgressClamped(t *testing.T) {
	tw := New(time.Second)
	tw.Start(from, to, epoch)
	testutil.AssertEqual(t, "before start", tw.Progress(epoch.Add(-time.Second)), float32(0))
	testutil.AssertEqual(t, "after end", tw.Progress(epoch.Add(3*time.Second)), float32(1))

	zero := New(0)
	zero.Start(from, to, epoch)
	got, _ := zero.Sample(epoch)
	testutil.AssertEqual(t, "zero duration jumps", got, to)
}

func TestRestartReplacesTween(t *testing.T) {
	tw := New(time.Second)
	tw.Start(from, to, epoch)
	mid, _ := tw.Sample(epoch.Add(500 * time.Millisecond))

	home := campus.Pose{Eye: geom.V(0, 25, 30), Target: geom.V(0, 25, 0)}
	restart := epoch.Add(500 * time.Millisecond)
	tw.Start(mid, home, restart)

	got, _ := tw.Sample(restart)
	testutil.AssertEqual(t, "restarts from live pose", got, mid)
	testutil.AssertEqual(t, "target", tw.Target(), home)

	got, _ = tw.Sample(restart.Add(time.Second))
	testutil.AssertEqual(t, "ends at new target", got, home)
}
