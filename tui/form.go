package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Form is an ordered set of fields with a single focus
type Form struct {
	Fields []*Field
	Focus  int

	onChange func(*Field)
}

// NewForm creates a form focused on its first field
func NewForm(fields ...*Field) *Form {
	return &Form{Fields: fields}
}

// OnChange registers the handler for committed edits
func (f *Form) OnChange(fn func(*Field)) {
	f.onChange = fn
}

// Current returns the focused field, or nil for an empty form
func (f *Form) Current() *Field {
	if f.Focus >= 0 && f.Focus < len(f.Fields) {
		return f.Fields[f.Focus]
	}
	return nil
}

// FocusNext commits the focused field and moves focus forward, wrapping around
func (f *Form) FocusNext() {
	f.moveFocus(1)
}

// FocusPrev commits the focused field and moves focus back, wrapping around
func (f *Form) FocusPrev() {
	f.moveFocus(-1)
}

// FocusField commits the focused field and focuses target if it belongs to the form
func (f *Form) FocusField(target *Field) {
	for i, fld := range f.Fields {
		if fld == target {
			if i != f.Focus {
				f.Commit()
				f.Focus = i
			}
			return
		}
	}
}

func (f *Form) moveFocus(delta int) {
	n := len(f.Fields)
	if n == 0 {
		return
	}
	f.Commit()
	f.Focus = ((f.Focus+delta)%n + n) % n
}

// Commit fires a change event if the focused field has an uncommitted edit
func (f *Form) Commit() {
	fld := f.Current()
	if fld == nil {
		return
	}
	if fld.commit() && f.onChange != nil {
		f.onChange(fld)
	}
}

// HandleKey routes a key to the form, returns true if the form consumed it
func (f *Form) HandleKey(ev *tcell.EventKey) bool {
	fld := f.Current()
	if fld == nil {
		return false
	}

	switch ev.Key() {
	case tcell.KeyTab:
		f.FocusNext()
		return true
	case tcell.KeyBacktab:
		f.FocusPrev()
		return true
	case tcell.KeyEnter:
		f.Commit()
		return true
	case tcell.KeyUp, tcell.KeyDown:
		if fld.Kind != KindNumber {
			return false
		}
		delta := 1
		if ev.Key() == tcell.KeyDown {
			delta = -1
		}
		if fld.Step(delta) {
			f.Commit()
		}
		return true
	case tcell.KeyLeft:
		fld.MoveLeft()
		return true
	case tcell.KeyRight:
		fld.MoveRight()
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		fld.MoveToStart()
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		fld.MoveToEnd()
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		fld.DeleteBackward()
		return true
	case tcell.KeyDelete:
		fld.DeleteForward()
		return true
	case tcell.KeyRune:
		return fld.Insert(ev.Rune())
	}
	return false
}
