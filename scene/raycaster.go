package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ledcube/vmath"
)

// Intersection is one ray hit
type Intersection struct {
	Distance float64
	Point    mgl64.Vec3
	Object   *Mesh
}

// Raycaster casts rays into a set of meshes
type Raycaster struct {
	Ray vmath.Ray
}

// SetFromCamera aims the ray from the camera through a point in normalized device coordinates
func (r *Raycaster) SetFromCamera(ndc mgl64.Vec2, cam *Camera) {
	through := cam.Unproject(mgl64.Vec3{ndc.X(), ndc.Y(), 0.5})
	r.Ray = vmath.NewRay(cam.Position, through.Sub(cam.Position))
}

// IntersectObjects returns all hits, nearest first
func (r *Raycaster) IntersectObjects(objects []*Mesh) []Intersection {
	var hits []Intersection
	for _, m := range objects {
		if m == nil || m.Geometry == nil {
			continue
		}
		t, ok := r.Ray.IntersectBox(m.Bounds())
		if !ok {
			continue
		}
		hits = append(hits, Intersection{Distance: t, Point: r.Ray.At(t), Object: m})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// First returns the nearest hit, if any
func (r *Raycaster) First(objects []*Mesh) (Intersection, bool) {
	hits := r.IntersectObjects(objects)
	if len(hits) == 0 {
		return Intersection{}, false
	}
	return hits[0], true
}
