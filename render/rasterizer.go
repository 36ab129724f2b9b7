package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ledcube/scene"
	"github.com/lixenwraith/ledcube/vmath"
)

// CellAspect is terminal cell height over width
const CellAspect = 2.0

// Viewport is the cell rectangle the scene is drawn into
type Viewport struct {
	X, Y, W, H int
}

// Rect returns the viewport in pointer units (cells)
func (v Viewport) Rect() scene.Rect {
	return scene.Rect{Left: float64(v.X), Top: float64(v.Y), Width: float64(v.W), Height: float64(v.H)}
}

// Aspect returns the camera aspect ratio that keeps cubes square on screen
func (v Viewport) Aspect() float64 {
	if v.H <= 0 {
		return 1
	}
	return float64(v.W) / (float64(v.H) * CellAspect)
}

// Contains reports whether cell (x, y) is inside the viewport
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

// CellCenterNDC returns the normalized device coordinates of a cell center
func (v Viewport) CellCenterNDC(x, y int) mgl64.Vec2 {
	return scene.PointerNDC(float64(x)+0.5, float64(y)+0.5, v.Rect())
}

// NDCToCell returns the cell containing an NDC point
func (v Viewport) NDCToCell(ndc mgl64.Vec2) (x, y int) {
	px, py := scene.NDCToPointer(ndc, v.Rect())
	return int(math.Floor(px)), int(math.Floor(py))
}

const (
	edgeRune   = '·'
	cornerRune = '+'
)

type drawItem struct {
	mesh  *scene.Mesh
	depth float64
}

// DrawScene rasterizes every mesh with the painter's algorithm, far to near
// Translucent materials blend over what was drawn before them
func DrawScene(buf *Buffer, sc *scene.Scene, cam *scene.Camera, vp Viewport, bg RGB) {
	buf.Fill(vp.X, vp.Y, vp.W, vp.H, bg)
	if vp.W <= 0 || vp.H <= 0 {
		return
	}

	kids := sc.Children()
	items := make([]drawItem, 0, len(kids))
	for _, m := range kids {
		if m.Geometry == nil || m.Material == nil {
			continue
		}
		items = append(items, drawItem{mesh: m, depth: cam.Depth(m.Position)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].depth > items[j].depth
	})

	vpm := cam.ViewProjection()
	for _, it := range items {
		if it.mesh.Material.Wireframe {
			drawWireframe(buf, it.mesh, vpm, cam.Near, vp)
		} else {
			drawSolid(buf, it.mesh, vpm, cam.Near, vp)
		}
	}
}

// project maps a world point into fractional cell coordinates
func project(vpm mgl64.Mat4, near float64, p mgl64.Vec3, vp Viewport) (x, y float64, ok bool) {
	clip := vpm.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < near {
		return 0, 0, false
	}
	px, py := scene.NDCToPointer(mgl64.Vec2{clip.X() / w, clip.Y() / w}, vp.Rect())
	return px, py, true
}

func drawSolid(buf *Buffer, m *scene.Mesh, vpm mgl64.Mat4, near float64, vp Viewport) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range m.Bounds().Corners() {
		x, y, ok := project(vpm, near, c, vp)
		if !ok {
			return
		}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	// Cells whose centers fall inside the projected extent
	x0 := int(math.Ceil(minX - 0.5))
	x1 := int(math.Floor(maxX - 0.5))
	y0 := int(math.Ceil(minY - 0.5))
	y1 := int(math.Floor(maxY - 0.5))

	// Too small to cover a cell center: keep one cell so the LED stays visible
	if x0 > x1 || y0 > y1 {
		cx, cy, ok := project(vpm, near, m.Position, vp)
		if !ok {
			return
		}
		x0, x1 = int(math.Floor(cx)), int(math.Floor(cx))
		y0, y1 = int(math.Floor(cy)), int(math.Floor(cy))
	}

	color := FromColor(m.Material.Color)
	alpha := m.Alpha()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !vp.Contains(x, y) {
				continue
			}
			buf.Set(x, y, ' ', RGBWhite, color, BlendAlpha, alpha)
		}
	}
}

func drawWireframe(buf *Buffer, m *scene.Mesh, vpm mgl64.Mat4, near float64, vp Viewport) {
	corners := m.Bounds().Corners()
	var pts [8][2]float64
	var vis [8]bool
	for i, c := range corners {
		x, y, ok := project(vpm, near, c, vp)
		pts[i] = [2]float64{x, y}
		vis[i] = ok
	}

	fg := FromColor(m.Material.Color)
	for _, e := range vmath.BoxEdges {
		a, b := e[0], e[1]
		if !vis[a] || !vis[b] {
			continue
		}
		drawLine(buf, pts[a], pts[b], fg, vp)
	}
	for i := range pts {
		if !vis[i] {
			continue
		}
		x, y := int(math.Floor(pts[i][0])), int(math.Floor(pts[i][1]))
		if vp.Contains(x, y) {
			buf.Set(x, y, cornerRune, fg, RGB{}, BlendFgOnly, 1)
		}
	}
}

// drawLine walks a DDA line between two fractional cell positions
func drawLine(buf *Buffer, a, b [2]float64, fg RGB, vp Viewport) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(a[0] + dx*t))
		y := int(math.Floor(a[1] + dy*t))
		if vp.Contains(x, y) {
			buf.Set(x, y, edgeRune, fg, RGB{}, BlendFgOnly, 1)
		}
	}
}
