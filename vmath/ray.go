package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line from Origin along unit Direction
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay normalizes dir; a zero direction yields a ray that hits nothing
func NewRay(origin, dir mgl64.Vec3) Ray {
	if dir.Len() == 0 {
		return Ray{Origin: origin}
	}
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Box is an axis-aligned bounding box
type Box struct {
	Min, Max mgl64.Vec3
}

// CenteredBox returns a cube of edge size centered on c
func CenteredBox(c mgl64.Vec3, size float64) Box {
	h := size / 2
	return Box{
		Min: mgl64.Vec3{c.X() - h, c.Y() - h, c.Z() - h},
		Max: mgl64.Vec3{c.X() + h, c.Y() + h, c.Z() + h},
	}
}

// Corners returns the 8 box corners, bit 0 = x, bit 1 = y, bit 2 = z (set = Max)
func (b Box) Corners() [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i := range out {
		p := b.Min
		if i&1 != 0 {
			p[0] = b.Max[0]
		}
		if i&2 != 0 {
			p[1] = b.Max[1]
		}
		if i&4 != 0 {
			p[2] = b.Max[2]
		}
		out[i] = p
	}
	return out
}

// BoxEdges lists corner index pairs forming the 12 edges of a box
var BoxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along x
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along z
}

// IntersectBox runs the slab test and returns the entry distance
// Origin inside the box reports the exit distance so the hit stays in front of the ray
func (r Ray) IntersectBox(b Box) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := r.Origin[axis]
		d := r.Direction[axis]
		if d == 0 {
			// Parallel to slab: miss unless origin lies between the planes
			if o < b.Min[axis] || o > b.Max[axis] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / d
		t1 := (b.Min[axis] - o) * inv
		t2 := (b.Max[axis] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return tMax, true
	}
	return tMin, true
}
