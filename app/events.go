package app

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ledcube/tui"
)

const (
	wheelZoomIn  = 0.9
	wheelZoomOut = 1.1
)

// HandleEvent applies one terminal event, returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout()
	case *tcell.EventKey:
		if !a.handleKey(ev) {
			return false
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	a.controls.Update()
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	}

	if a.form.HandleKey(ev) {
		return true
	}

	switch ev.Key() {
	case tcell.KeyPgUp:
		a.controls.Step(0, -1)
	case tcell.KeyPgDn:
		a.controls.Step(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case '<', ',':
			a.controls.Step(-1, 0)
		case '>', '.':
			a.controls.Step(1, 0)
		}
	}
	return true
}

func (a *App) onFieldChange(f *tui.Field) {
	var err error
	if f == a.fieldColor {
		err = a.ctrl.ApplyColorField()
	} else {
		err = a.ctrl.SelectFromFields()
	}
	a.reportErr(err)
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		if a.controls.Dolly(wheelZoomIn) {
			a.log.Debug("Zoom", zap.Float64("distance", a.controls.Distance()))
		}
		return
	case btn&tcell.WheelDown != 0:
		if a.controls.Dolly(wheelZoomOut) {
			a.log.Debug("Zoom", zap.Float64("distance", a.controls.Distance()))
		}
		return
	}

	if btn&tcell.Button1 != 0 {
		if !a.drag.active {
			a.press(x, y)
			return
		}
		if x != a.drag.lastX || y != a.drag.lastY {
			speed := a.cfg.Controls.DragSpeed
			a.controls.Rotate(-float64(x-a.drag.lastX)*speed, -float64(y-a.drag.lastY)*speed)
			a.drag.moved = true
			a.drag.lastX, a.drag.lastY = x, y
		}
		return
	}

	if btn == tcell.ButtonNone && a.drag.active {
		if !a.drag.moved {
			a.pick(a.drag.startX, a.drag.startY)
		}
		a.drag = dragState{}
	}
}

// press starts a drag in the viewport or focuses a form row in the panel
func (a *App) press(x, y int) {
	if a.viewport.Contains(x, y) {
		// Leaving the form commits a pending edit against the current selection
		a.form.Commit()
		a.drag = dragState{active: true, startX: x, startY: y, lastX: x, lastY: y}
		return
	}
	px, py := a.formOrigin()
	row := y - py
	if x >= px && row >= 0 && row < len(a.form.Fields) {
		a.form.FocusField(a.form.Fields[row])
	}
}

func (a *App) pick(x, y int) {
	if !a.viewport.Contains(x, y) {
		return
	}
	ndc := a.viewport.CellCenterNDC(x, y)
	hit, err := a.ctrl.SelectByPick(ndc, a.camera, a.scene.Children())
	if err != nil {
		a.reportErr(err)
		return
	}
	if hit {
		a.setStatus("", false)
	}
}
