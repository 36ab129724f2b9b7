package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ledcube/scene"
)

// RGB is a 24-bit terminal color
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// FromColor converts a scene color
func FromColor(c scene.Color) RGB {
	r, g, b := c.RGB()
	return RGB{r, g, b}
}

// TCell converts to a tcell true color
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Blend mixes src over c with straight alpha
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	return fromColorful(c.colorful().BlendRgb(src.colorful(), alpha))
}

// Luma returns perceived brightness in [0,255]
func Luma(c RGB) uint8 {
	return uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
}

// Contrast picks black or white text for legibility on bg
func Contrast(bg RGB) RGB {
	if Luma(bg) > 140 {
		return RGBBlack
	}
	return RGBWhite
}
