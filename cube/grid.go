// Package cube builds the LED voxel grid and resolves coordinates to voxels.
package cube

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ledcube/scene"
)

var (
	// ErrInvalidSize is returned for a cube side below 1
	ErrInvalidSize = errors.New("invalid cube size")
	// ErrInvalidCoordinate is returned for coordinates outside the cube
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Settings describes the cube and its LEDs
type Settings struct {
	Size         int
	LEDSize      float64
	DefaultColor scene.Color
	Opacity      float64
}

// Voxel is one LED; its color lives on the mesh material
type Voxel struct {
	X, Y, Z int
	mesh    *scene.Mesh
}

// Color returns the current LED color
func (v *Voxel) Color() scene.Color {
	return v.mesh.Material.Color
}

// SetColor changes the LED color
func (v *Voxel) SetColor(c scene.Color) {
	v.mesh.Material.Color.SetHex(uint32(c))
}

// Position returns the LED center in world space
func (v *Voxel) Position() mgl64.Vec3 {
	return v.mesh.Position
}

// Mesh returns the renderable backing this voxel
func (v *Voxel) Mesh() *scene.Mesh {
	return v.mesh
}

// String formats the coordinates as (x, y, z)
func (v *Voxel) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Grid holds exactly one voxel per coordinate of an N×N×N cube
// Storage is dense with linear index x + y*N + z*N*N
type Grid struct {
	size   int
	voxels []*Voxel
	meshes []*scene.Mesh // Creation order
}

// New populates a grid of side s.Size and adds every LED to sc
// LEDs are created for i in [0, N³) with x = (i/N)%N, y = i/N², z = i%N
func New(sc *scene.Scene, s Settings) (*Grid, error) {
	n := s.Size
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	total := n * n * n
	g := &Grid{
		size:   n,
		voxels: make([]*Voxel, total),
		meshes: make([]*scene.Mesh, 0, total),
	}

	// Shared by every LED; materials are per LED so colors are independent
	geo := &scene.BoxGeometry{Size: s.LEDSize}

	for i := 0; i < total; i++ {
		x := (i / n) % n
		y := i / (n * n)
		z := i % n

		mat := &scene.Material{
			Opacity:     s.Opacity,
			Transparent: true,
		}
		mat.Color.SetHex(uint32(s.DefaultColor))

		m := scene.NewMesh(geo, mat)
		m.Position = mgl64.Vec3{float64(x), float64(y), float64(z)}

		g.voxels[g.index(x, y, z)] = &Voxel{X: x, Y: y, Z: z, mesh: m}
		g.meshes = append(g.meshes, m)

		if sc != nil {
			sc.Add(m)
		}
	}

	return g, nil
}

func (g *Grid) index(x, y, z int) int {
	return x + y*g.size + z*g.size*g.size
}

// Size returns the cube side length
func (g *Grid) Size() int {
	return g.size
}

// Len returns the number of voxels, always Size³
func (g *Grid) Len() int {
	return len(g.voxels)
}

// Contains reports whether the coordinate lies inside the cube
func (g *Grid) Contains(x, y, z int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size && z >= 0 && z < g.size
}

// Get returns the voxel at (x, y, z)
func (g *Grid) Get(x, y, z int) (*Voxel, error) {
	if !g.Contains(x, y, z) {
		return nil, fmt.Errorf("%w: (%d, %d, %d) outside cube of size %d", ErrInvalidCoordinate, x, y, z, g.size)
	}
	return g.voxels[g.index(x, y, z)], nil
}

// At returns the voxel whose LED sits at world position p
func (g *Grid) At(p mgl64.Vec3) (*Voxel, error) {
	return g.Get(int(math.Round(p.X())), int(math.Round(p.Y())), int(math.Round(p.Z())))
}

// Each visits voxels in creation order
func (g *Grid) Each(fn func(v *Voxel)) {
	for _, m := range g.meshes {
		v, _ := g.At(m.Position)
		fn(v)
	}
}

// Meshes returns the LED meshes in creation order
func (g *Grid) Meshes() []*scene.Mesh {
	return g.meshes
}

// Center returns the middle of the cube, the camera's point of focus
func (g *Grid) Center() mgl64.Vec3 {
	c := float64(g.size)/2 - 0.5
	return mgl64.Vec3{c, c, c}
}
