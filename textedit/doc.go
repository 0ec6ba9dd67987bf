// Package textedit is an editable text input for Bubble Tea programs.
//
// Text reaches the widget through a block queue: SetText, AppendText and
// InsertText only queue, from any goroutine, and the frame task applies the
// queue to the text layers in order. Keys, mouse and focus are translated
// into named widget events whose handlers move the caret, filter typed text
// and edit in place.
//
// A password character switches display to a mask layer kept in step with
// the real text; GetText and Text always read the real text.
package textedit
