package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const polarEpsilon = 1e-3

// OrbitControls rotates a camera around a target on a sphere
// Azimuth is measured around +Y from +Z, polar from +Y
type OrbitControls struct {
	camera *Camera

	Target      mgl64.Vec3
	EnableZoom  bool
	RotateSpeed float64 // Radians per rotation step
	MinDistance float64
	MaxDistance float64

	azimuth  float64
	polar    float64
	distance float64
}

// NewOrbitControls derives the spherical state from the camera's current position
func NewOrbitControls(cam *Camera, target mgl64.Vec3) *OrbitControls {
	o := &OrbitControls{
		camera:      cam,
		Target:      target,
		RotateSpeed: 0.1,
		MinDistance: 0.5,
		MaxDistance: math.Inf(1),
	}
	o.syncFromCamera()
	return o
}

func (o *OrbitControls) syncFromCamera() {
	offset := o.camera.Position.Sub(o.Target)
	o.distance = offset.Len()
	if o.distance == 0 {
		o.azimuth, o.polar = 0, math.Pi/2
		return
	}
	o.azimuth = math.Atan2(offset.X(), offset.Z())
	o.polar = math.Acos(clampUnit(offset.Y() / o.distance))
}

// Rotate adds angles in radians; polar is clamped short of the poles
func (o *OrbitControls) Rotate(dAzimuth, dPolar float64) {
	o.azimuth += dAzimuth
	o.polar += dPolar
	o.polar = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, o.polar))
}

// Step rotates by whole steps of RotateSpeed
func (o *OrbitControls) Step(azSteps, polarSteps int) {
	o.Rotate(float64(azSteps)*o.RotateSpeed, float64(polarSteps)*o.RotateSpeed)
}

// Dolly scales the orbit distance; ignored unless zoom is enabled
func (o *OrbitControls) Dolly(scale float64) bool {
	if !o.EnableZoom || scale <= 0 {
		return false
	}
	o.distance = math.Max(o.MinDistance, math.Min(o.MaxDistance, o.distance*scale))
	return true
}

// Distance returns the current orbit radius
func (o *OrbitControls) Distance() float64 {
	return o.distance
}

// Update moves the camera to the spherical position and aims it at the target
func (o *OrbitControls) Update() {
	sinP := math.Sin(o.polar)
	offset := mgl64.Vec3{
		o.distance * sinP * math.Sin(o.azimuth),
		o.distance * math.Cos(o.polar),
		o.distance * sinP * math.Cos(o.azimuth),
	}
	o.camera.Position = o.Target.Add(offset)
	o.camera.LookAt(o.Target)
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
