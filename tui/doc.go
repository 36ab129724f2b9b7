// Package tui provides the form the LED cube is edited through: labelled
// single-line fields with focus cycling and browser-style change events.
//
// A change event fires when the user commits an edit (Enter, focus leave, or
// a spinner step on a number field). Programmatic SetValue never fires one.
package tui
