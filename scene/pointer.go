package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Rect is a drawing surface in pointer units
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Contains reports whether the point lies within the rectangle
func (r Rect) Contains(px, py float64) bool {
	return px >= r.Left && px < r.Left+r.Width && py >= r.Top && py < r.Top+r.Height
}

// PointerNDC maps a pointer position over r to [-1,1] on both axes, +Y up
func PointerNDC(px, py float64, r Rect) mgl64.Vec2 {
	if r.Width <= 0 || r.Height <= 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{
		(px-r.Left)/r.Width*2 - 1,
		-(py-r.Top)/r.Height*2 + 1,
	}
}

// NDCToPointer is the inverse of PointerNDC
func NDCToPointer(ndc mgl64.Vec2, r Rect) (px, py float64) {
	px = r.Left + (ndc.X()+1)/2*r.Width
	py = r.Top + (1-ndc.Y())/2*r.Height
	return px, py
}
