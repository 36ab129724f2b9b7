package render

// BlendMode selects how Set composites into a cell
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Overwrite fg and bg
	BlendAlpha                    // Alpha-blend bg, replace fg
	BlendFgOnly                   // Replace fg and rune, keep bg
)
