package render

import (
	"github.com/lixenwraith/ledcube/scene"
	"github.com/lixenwraith/ledcube/tui"
)

// Theme colors for the form panel and status lines
type Theme struct {
	Label   RGB
	Focus   RGB
	Value   RGB
	FieldBg RGB
	Dim     RGB
	Error   RGB
}

// DefaultTheme is a muted dark palette
var DefaultTheme = Theme{
	Label:   RGB{170, 170, 180},
	Focus:   RGB{255, 200, 60},
	Value:   RGB{235, 235, 235},
	FieldBg: RGB{40, 40, 48},
	Dim:     RGB{100, 100, 110},
	Error:   RGB{255, 90, 90},
}

const (
	labelWidth = 7
	boxWidth   = 8
)

// FormRowWidth is the number of columns DrawForm uses per row
const FormRowWidth = 2 + labelWidth + boxWidth

// DrawForm draws one field per row starting at (x, y), returns rows used
func DrawForm(buf *Buffer, form *tui.Form, x, y int, th Theme) int {
	for i, f := range form.Fields {
		row := y + i
		focused := i == form.Focus

		marker, labelFg := "  ", th.Label
		if focused {
			marker, labelFg = "> ", th.Focus
		}
		buf.Text(x, row, marker, th.Focus)
		buf.Text(x+2, row, f.Label, labelFg)
		if focused {
			for j := range []rune(f.Label) {
				buf.SetAttrs(x+2+j, row, true, false)
			}
		}

		bx := x + 2 + labelWidth
		buf.Fill(bx, row, boxWidth, 1, th.FieldBg)
		value := []rune(f.Value())
		if len(value) > boxWidth-1 {
			value = value[len(value)-(boxWidth-1):]
		}
		buf.Text(bx, row, string(value), th.Value)

		if focused {
			cur := min(f.Cursor(), boxWidth-1)
			buf.SetAttrs(bx+cur, row, false, true)
		}
	}
	return len(form.Fields)
}

// DrawSwatch paints w cells of color c
func DrawSwatch(buf *Buffer, x, y, w int, c scene.Color) {
	buf.Fill(x, y, w, 1, FromColor(c))
}

// DrawStatus writes a single line, clipped to w columns
func DrawStatus(buf *Buffer, x, y, w int, msg string, isErr bool, th Theme) {
	fg := th.Dim
	if isErr {
		fg = th.Error
	}
	runes := []rune(msg)
	if len(runes) > w {
		runes = runes[:max(w, 0)]
	}
	buf.Text(x, y, string(runes), fg)
}
