package app

import (
	"github.com/lixenwraith/ledcube/render"
	"github.com/lixenwraith/ledcube/selection"
)

const title = "LED CUBE"

var helpLines = []string{
	"Tab/S-Tab  field",
	"Enter      apply",
	"Up/Down    step",
	"< >        orbit",
	"PgUp/PgDn  tilt",
	"drag       orbit",
	"click      pick",
	"Esc/C-c    quit",
}

func (a *App) formOrigin() (x, y int) {
	return a.viewport.X + a.viewport.W + 1, 2
}

// Draw renders the scene, panel and status line and shows the frame
func (a *App) Draw() {
	a.controls.Update()
	a.buf.Clear()

	render.DrawScene(a.buf, a.scene, a.camera, a.viewport, a.bg)

	px, py := a.formOrigin()
	pw := a.width - px
	if pw > 0 {
		a.buf.Text(px, 0, title, a.theme.Focus)
		rows := render.DrawForm(a.buf, a.form, px, py, a.theme)

		row := py + rows + 1
		if v, err := a.ctrl.Current(); err == nil {
			a.buf.Text(px, row, v.String(), a.theme.Label)
			render.DrawSwatch(a.buf, px, row+1, min(render.FormRowWidth, pw), v.Color())
			a.buf.Text(px, row+2, "#"+selection.FormatHex(v.Color()), a.theme.Dim)
		}

		row += 4
		for i, line := range helpLines {
			if row+i >= a.height-statusRows {
				break
			}
			a.buf.Text(px, row+i, line, a.theme.Dim)
		}
	}

	if a.height > 0 {
		render.DrawStatus(a.buf, 0, a.height-1, a.width, a.status, a.statusErr, a.theme)
	}

	a.buf.Flush(a.screen)
	a.screen.Show()
}
