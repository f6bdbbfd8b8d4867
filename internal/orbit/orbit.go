// Package orbit is a damped orbit camera controller: the eye circles a target
// point, the wheel dollies in and out within distance limits and panning moves
// the target. Input is accumulated between frames and applied by Update.
package orbit

import (
	"math"

	"github.com/chewxy/math32"

	"campus-viewer/internal/campus"
	"campus-viewer/internal/geom"
)

const (
	// motionEpsilon is the size below which pending motion is dropped.
	motionEpsilon = 1e-5
	// polarMargin keeps the eye from passing straight over the target, where the up vector flips.
	polarMargin = 1e-3
	zoomStep    = 0.95
)

// Controller holds the live camera pose and any motion not yet applied.
type Controller struct {
	Eye    geom.Vec3
	Target geom.Vec3
	Up     geom.Vec3

	MinDistance float32
	MaxDistance float32
	// Damping is the fraction of pending motion applied per Update; 0 applies it all at once.
	Damping     float32
	RotateSpeed float32
	PanSpeed    float32

	deltaTheta float32
	deltaPhi   float32
	pan        geom.Vec3
	zoomScale  float32
}

// New returns a controller at pose with Y up and unit speeds.
func New(pose campus.Pose, minDistance, maxDistance, damping float32) *Controller {
	return &Controller{
		Eye:         pose.Eye,
		Target:      pose.Target,
		Up:          geom.V(0, 1, 0),
		MinDistance: minDistance,
		MaxDistance: maxDistance,
		Damping:     damping,
		RotateSpeed: 1,
		PanSpeed:    1,
		zoomScale:   1,
	}
}

// Pose returns the live eye and target.
func (c *Controller) Pose() campus.Pose {
	return campus.Pose{Eye: c.Eye, Target: c.Target}
}

// Set moves the camera to pose immediately and drops pending user motion.
func (c *Controller) Set(pose campus.Pose) {
	c.Eye = pose.Eye
	c.Target = pose.Target
	c.Stop()
}

// Stop drops pending user motion.
func (c *Controller) Stop() {
	c.deltaTheta = 0
	c.deltaPhi = 0
	c.pan = geom.Vec3{}
	c.zoomScale = 1
}

// Rotate queues an orbit for a pointer drag of (dx, dy) pixels in a viewport h pixels tall.
// A drag across the full height turns the camera by one full revolution.
func (c *Controller) Rotate(dx, dy, h float32) {
	if h <= 0 {
		return
	}
	c.deltaTheta -= 2 * math32.Pi * dx / h * c.RotateSpeed
	c.deltaPhi -= 2 * math32.Pi * dy / h * c.RotateSpeed
}

// Zoom queues a dolly; positive wheel moves toward the target.
func (c *Controller) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	c.zoomScale *= float32(math.Pow(zoomStep, float64(wheel)))
}

// Pan queues a sideways move of the target for a drag of (dx, dy) pixels, scaled so the
// point under the pointer stays under it at the target's distance.
func (c *Controller) Pan(dx, dy, h, fovY float32) {
	if h <= 0 {
		return
	}
	offset := c.Eye.Sub(c.Target)
	half := fovY * math32.Pi / 180 / 2
	visible := 2 * offset.Length() * math32.Sin(half) / math32.Cos(half)
	perPixel := visible / h * c.PanSpeed

	forward := offset.MulScalar(-1).Normal()
	right := forward.Cross(c.Up).Normal()
	up := right.Cross(forward)
	c.pan = c.pan.Add(right.MulScalar(-dx * perPixel)).Add(up.MulScalar(dy * perPixel))
}

// Moving reports whether motion is still pending.
func (c *Controller) Moving() bool {
	return c.deltaTheta != 0 || c.deltaPhi != 0 || c.pan != (geom.Vec3{}) || c.zoomScale != 1
}

// Update applies pending motion and returns whether the camera moved.
// With no pending motion the pose is left exactly as it is.
func (c *Controller) Update() bool {
	if !c.Moving() {
		return false
	}
	step := c.Damping
	if step <= 0 || step > 1 {
		step = 1
	}

	offset := c.Eye.Sub(c.Target)
	radius := offset.Length()
	theta := math32.Atan2(offset.X, offset.Z)
	phi := math32.Atan2(math32.Sqrt(offset.X*offset.X+offset.Z*offset.Z), offset.Y)

	theta += c.deltaTheta * step
	phi += c.deltaPhi * step
	phi = math32.Max(polarMargin, math32.Min(math32.Pi-polarMargin, phi))

	if c.zoomScale != 1 {
		radius *= c.zoomScale
		radius = math32.Max(c.MinDistance, radius)
		if c.MaxDistance > 0 {
			radius = math32.Min(c.MaxDistance, radius)
		}
	}

	c.Target = c.Target.Add(c.pan.MulScalar(step))
	sinPhi := math32.Sin(phi)
	c.Eye = c.Target.Add(geom.V(
		radius*sinPhi*math32.Sin(theta),
		radius*math32.Cos(phi),
		radius*sinPhi*math32.Cos(theta),
	))

	c.zoomScale = 1
	if step == 1 {
		c.deltaTheta, c.deltaPhi, c.pan = 0, 0, geom.Vec3{}
		return true
	}
	c.deltaTheta = settle(c.deltaTheta * (1 - step))
	c.deltaPhi = settle(c.deltaPhi * (1 - step))
	c.pan = c.pan.MulScalar(1 - step)
	if c.pan.Length() < motionEpsilon {
		c.pan = geom.Vec3{}
	}
	return true
}

func settle(v float32) float32 {
	if math32.Abs(v) < motionEpsilon {
		return 0
	}
	return v
}
