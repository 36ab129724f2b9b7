package scene

// Color is a 24-bit RGB value packed as 0xRRGGBB
type Color uint32

// ColorMask keeps the low 24 bits
const ColorMask = 0xFFFFFF

// Hex returns the packed value
func (c Color) Hex() uint32 {
	return uint32(c) & ColorMask
}

// SetHex replaces the color, discarding bits above 24
func (c *Color) SetHex(hex uint32) {
	*c = Color(hex & ColorMask)
}

// RGB splits the color into channels
func (c Color) RGB() (r, g, b uint8) {
	v := c.Hex()
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// ColorFromRGB packs three channels
func ColorFromRGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}
