package tui

import (
	"strconv"
	"strings"
	"unicode"
)

// Kind restricts which runes a field accepts
type Kind uint8

const (
	KindText Kind = iota
	KindNumber
	KindHex
)

// Field is an editable single-line value with a cursor
type Field struct {
	Label  string
	Kind   Kind
	MaxLen int // 0 = unlimited

	// Spinner bounds for number fields, applied only when Bounded
	Min, Max int
	Bounded  bool

	text      []rune
	cursor    int
	committed string
}

// NewField creates a field whose initial value counts as committed
func NewField(label string, kind Kind, initial string) *Field {
	f := &Field{Label: label, Kind: kind}
	f.SetValue(initial)
	return f
}

// Value returns the current text
func (f *Field) Value() string {
	return string(f.text)
}

// SetValue replaces the text without firing a change
func (f *Field) SetValue(s string) {
	f.text = []rune(s)
	f.cursor = len(f.text)
	f.committed = s
}

// Cursor returns the rune index the cursor sits before
func (f *Field) Cursor() int {
	return f.cursor
}

// Dirty reports an uncommitted edit
func (f *Field) Dirty() bool {
	return f.Value() != f.committed
}

// commit marks the current text as committed, returns true if it changed
func (f *Field) commit() bool {
	if !f.Dirty() {
		return false
	}
	f.committed = f.Value()
	return true
}

// Accepts reports whether r may be typed into the field
func (f *Field) Accepts(r rune) bool {
	switch f.Kind {
	case KindNumber:
		return unicode.IsDigit(r) || r == '-'
	case KindHex:
		return strings.ContainsRune("0123456789abcdefABCDEF", r)
	default:
		return unicode.IsPrint(r)
	}
}

// Insert adds r at the cursor if the kind and length limit allow it
func (f *Field) Insert(r rune) bool {
	if !f.Accepts(r) {
		return false
	}
	if f.MaxLen > 0 && len(f.text) >= f.MaxLen {
		return false
	}
	if f.Kind == KindHex {
		r = unicode.ToUpper(r)
	}
	f.text = append(f.text[:f.cursor], append([]rune{r}, f.text[f.cursor:]...)...)
	f.cursor++
	return true
}

// DeleteBackward removes the rune before the cursor
func (f *Field) DeleteBackward() bool {
	if f.cursor == 0 {
		return false
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	return true
}

// DeleteForward removes the rune at the cursor
func (f *Field) DeleteForward() bool {
	if f.cursor >= len(f.text) {
		return false
	}
	f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
	return true
}

// MoveLeft moves the cursor one rune left
func (f *Field) MoveLeft() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// MoveRight moves the cursor one rune right
func (f *Field) MoveRight() {
	if f.cursor < len(f.text) {
		f.cursor++
	}
}

// MoveToStart moves the cursor before the first rune
func (f *Field) MoveToStart() {
	f.cursor = 0
}

// MoveToEnd moves the cursor after the last rune
func (f *Field) MoveToEnd() {
	f.cursor = len(f.text)
}

// Step adds delta to a number field, treating unparsable text as 0
// Returns false for non-number fields or when clamped to the same value
func (f *Field) Step(delta int) bool {
	if f.Kind != KindNumber {
		return false
	}
	v, err := strconv.Atoi(strings.TrimSpace(f.Value()))
	if err != nil {
		v = 0
	}
	next := v + delta
	if f.Bounded {
		next = max(f.Min, min(f.Max, next))
	}
	s := strconv.Itoa(next)
	if s == f.Value() {
		return false
	}
	f.text = []rune(s)
	f.cursor = len(f.text)
	return true
}
