package textedit

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iw2rmb/texted/editbuffer"
	"github.com/iw2rmb/texted/styletag"
)

// SetText replaces the content with text. Style tags in text are parsed
// when enabled. The new text shows after the next frame.
func (m *Model) SetText(text string) error {
	m.Lock()
	defer m.Unlock()
	m.clearText()
	return m.enqueue(text, editbuffer.Append)
}

// SetTextRunes is SetText for a rune slice.
func (m *Model) SetTextRunes(text []rune) error { return m.SetText(string(text)) }

// AppendText queues text for the end of the content.
func (m *Model) AppendText(text string) error {
	return m.enqueue(text, editbuffer.Append)
}

func (m *Model) AppendTextRunes(text []rune) error { return m.AppendText(string(text)) }

// InsertText queues text for the caret. The caret is read when the text is
// applied, so inserts queued together land one after another.
func (m *Model) InsertText(text string) error {
	return m.enqueue(text, editbuffer.Insert)
}

func (m *Model) InsertTextRunes(text []rune) error { return m.InsertText(string(text)) }

func (m *Model) enqueue(text string, mode editbuffer.Mode) error {
	var sc editbuffer.Scanner
	if m.styleTags.Load() {
		sc = styletag.Scanner{}
	}
	n, err := m.buf.Enqueue(text, mode, sc)
	if err != nil {
		m.log.Warn("enqueue rejected", zap.Stringer("mode", mode), zap.Int("runes", len([]rune(text))), zap.Error(err))
		return fmt.Errorf("textedit: %s text: %w", mode, err)
	}
	if n == 0 {
		return nil
	}
	m.tasks[taskSetText].Store(true)
	m.AddTask()
	return nil
}

// GetText returns up to maxLen characters of the real text starting at
// character start. A negative maxLen reads to the end. Masking never
// applies here.
func (m *Model) GetText(start, maxLen int) string {
	m.Lock()
	defer m.Unlock()
	return m.layers.source.Text(start, maxLen)
}

// Text returns the whole real text.
func (m *Model) Text() string { return m.GetText(0, -1) }

// Len returns the number of characters held.
func (m *Model) Len() int {
	m.Lock()
	defer m.Unlock()
	return m.layers.source.Len()
}

// Backspace removes up to n characters before the caret right away.
func (m *Model) Backspace(n int) int {
	m.Lock()
	defer m.Unlock()
	return m.backspace(n)
}

// Delete removes up to n characters after the caret right away.
func (m *Model) Delete(n int) int {
	m.Lock()
	defer m.Unlock()
	return m.delete(n)
}

func (m *Model) backspace(n int) int {
	k := m.layers.backspace(n)
	m.afterRemove(k)
	return k
}

func (m *Model) delete(n int) int {
	k := m.layers.delete(n)
	m.afterRemove(k)
	return k
}

func (m *Model) afterRemove(k int) {
	if k > 0 {
		m.textChanged = true
	}
	m.syncCaret()
	m.requestUpdate()
}

// ClearText drops the content, queued text and open style tags.
func (m *Model) ClearText() {
	m.Lock()
	defer m.Unlock()
	m.clearText()
}

func (m *Model) clearText() {
	m.buf.Reset()
	m.tags.Clear()
	if m.layers.source.Len() > 0 {
		m.textChanged = true
	}
	m.layers.clear()
	m.InvalidateArea(m.Box.PaddingBox())
	m.syncCaret()
}

func (m *Model) SetMultiline(v bool) {
	m.Lock()
	defer m.Unlock()
	m.setMultiline(v)
}

func (m *Model) setMultiline(v bool) {
	m.multiline = v
	m.layers.each(func(l Layer) { l.SetMultiline(v) })
	m.requestUpdate()
}

func (m *Model) Multiline() bool {
	m.Lock()
	defer m.Unlock()
	return m.multiline
}

// SetUsingStyleTags turns style tag parsing on or off for text queued
// from now on.
func (m *Model) SetUsingStyleTags(v bool) {
	m.Lock()
	defer m.Unlock()
	m.setUsingStyleTags(v)
}

func (m *Model) setUsingStyleTags(v bool) {
	m.styleTags.Store(v)
	m.layers.source.SetUsingStyleTags(v)
}

func (m *Model) SetReadOnly(v bool) {
	m.Lock()
	defer m.Unlock()
	m.readOnly = v
}

func (m *Model) ReadOnly() bool {
	m.Lock()
	defer m.Unlock()
	return m.readOnly
}

// SetAllowInput restricts text input to the characters in chars. An empty
// string lifts the restriction.
func (m *Model) SetAllowInput(chars string) {
	m.Lock()
	defer m.Unlock()
	m.setAllowInput(chars)
}

func (m *Model) setAllowInput(chars string) {
	if chars == "" {
		m.allow = nil
		return
	}
	m.allow = make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		m.allow[r] = struct{}{}
	}
}

// SetPasswordChar masks the displayed text with r. Zero shows the text.
func (m *Model) SetPasswordChar(r rune) {
	m.Lock()
	defer m.Unlock()
	m.setPasswordChar(r)
}

func (m *Model) setPasswordChar(r rune) {
	prev := m.layers.kind
	m.layers.setMask(r)
	if m.layers.kind != prev || r != 0 {
		m.InvalidateAll()
		m.syncCaret()
	}
}

func (m *Model) SetPlaceholder(text string) {
	m.Lock()
	defer m.Unlock()
	m.placeholder = text
	m.InvalidateAll()
}

// SetBlinkInterval changes the caret blink period. Non-positive values
// restore the default.
func (m *Model) SetBlinkInterval(d time.Duration) {
	m.Lock()
	defer m.Unlock()
	m.caret.SetBlinkInterval(d)
}
