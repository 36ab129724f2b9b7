package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ledcube/vmath"
)

// BoxGeometry is an axis-aligned cube of edge Size centered on the mesh position
// A single geometry may be shared by many meshes
type BoxGeometry struct {
	Size float64
}

// Material controls how a mesh is drawn
type Material struct {
	Color       Color
	Opacity     float64 // Used only when Transparent is set
	Transparent bool
	Wireframe   bool
}

// Mesh is a renderable placed in the scene
type Mesh struct {
	Position mgl64.Vec3
	Geometry *BoxGeometry
	Material *Material
}

// NewMesh creates a mesh at the origin
func NewMesh(geo *BoxGeometry, mat *Material) *Mesh {
	return &Mesh{Geometry: geo, Material: mat}
}

// Bounds returns the world-space box of the mesh
func (m *Mesh) Bounds() vmath.Box {
	return vmath.CenteredBox(m.Position, m.Geometry.Size)
}

// Alpha returns the effective opacity in [0,1]
func (m *Mesh) Alpha() float64 {
	if !m.Material.Transparent {
		return 1
	}
	a := m.Material.Opacity
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Scene is an ordered collection of meshes
type Scene struct {
	children []*Mesh
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a mesh; insertion order is preserved
func (s *Scene) Add(m *Mesh) {
	s.children = append(s.children, m)
}

// Children returns the meshes in insertion order
// The slice is owned by the scene and must not be modified
func (s *Scene) Children() []*Mesh {
	return s.children
}
