package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera aimed at a target point
type Camera struct {
	FOV    float64 // Vertical field of view in degrees
	Aspect float64 // Width over height of the drawing surface
	Near   float64
	Far    float64

	Position mgl64.Vec3
	Up       mgl64.Vec3

	target mgl64.Vec3
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	return &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl64.Vec3{0, 1, 0},
		target: mgl64.Vec3{0, 0, -1},
	}
}

// LookAt aims the camera at p
func (c *Camera) LookAt(p mgl64.Vec3) {
	c.target = p
}

// Target returns the point the camera is aimed at
func (c *Camera) Target() mgl64.Vec3 {
	return c.target
}

// SetAspect updates the aspect ratio, ignoring degenerate values
func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// ViewMatrix transforms world space into camera space
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.target, c.Up)
}

// ProjectionMatrix transforms camera space into clip space
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection is ProjectionMatrix * ViewMatrix
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// Project maps a world point to normalized device coordinates
// visible is false for points behind the near plane
func (c *Camera) Project(p mgl64.Vec3) (ndc mgl64.Vec3, visible bool) {
	return projectWith(c.ViewProjection(), c.Near, p)
}

func projectWith(vp mgl64.Mat4, near float64, p mgl64.Vec3) (mgl64.Vec3, bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < near {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{clip.X() / w, clip.Y() / w, clip.Z() / w}, true
}

// Unproject maps normalized device coordinates back into world space
func (c *Camera) Unproject(ndc mgl64.Vec3) mgl64.Vec3 {
	inv := c.ViewProjection().Inv()
	v := inv.Mul4x1(ndc.Vec4(1))
	if v.W() == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v.W())
}

// Depth returns the distance along the view axis, larger is farther
func (c *Camera) Depth(p mgl64.Vec3) float64 {
	return -c.ViewMatrix().Mul4x1(p.Vec4(1)).Z()
}
