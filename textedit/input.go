package textedit

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/texted/editbuffer"
	"github.com/iw2rmb/texted/widget"
)

// Handlers run with the widget lock held; every Emit site takes it.
func (m *Model) bindHandlers() {
	m.Bind(widget.EventTextInput, func(e *widget.Event) { m.onTextInput(e.Text) })
	m.Bind(widget.EventMouseDown, m.onMouseDown)
	m.Bind(widget.EventMouseUp, m.onMouseUp)
	m.Bind(widget.EventKeyDown, m.onKeyDown)
	m.Bind(widget.EventResize, m.onResize)
	m.Bind(widget.EventFocus, m.onFocus)
	m.Bind(widget.EventBlur, m.onBlur)
}

func (m *Model) onFocus(*widget.Event) {
	m.focused = true
	m.ime.SetTarget(m)
	m.caret.RequestVisible(true)
	m.caret.BlinkHide()
	m.InvalidateAll()
	m.syncCaret()
	m.log.Debug("focus", zap.Int("id", m.id))
}

func (m *Model) onBlur(*widget.Event) {
	if m.focused {
		m.log.Debug("blur", zap.Int("id", m.id))
		m.InvalidateAll()
	}
	m.focused = false
	m.ime.Release(m)
	m.caret.RequestVisible(false)
}

func (m *Model) onKeyDown(e *widget.Event) {
	l := m.layers.active()
	cur := l.Caret()
	row, col := cur.Row, cur.Col
	rows := l.RowTotal()
	cols := l.RowTextLength(row)

	switch e.Key {
	case widget.KeyHome:
		col = 0
	case widget.KeyEnd:
		col = cols
	case widget.KeyLeft:
		if col > 0 {
			col--
		} else if row > 0 {
			row--
			col = l.RowTextLength(row)
		}
	case widget.KeyRight:
		if col < cols {
			col++
		} else if row < rows-1 {
			row++
			col = 0
		}
	case widget.KeyUp:
		if row > 0 {
			row--
		}
	case widget.KeyDown:
		if row < rows-1 {
			row++
		}
	case widget.KeyBackspace:
		if !m.readOnly {
			m.backspace(1)
		}
		return
	case widget.KeyDelete:
		if !m.readOnly {
			m.delete(1)
		}
		return
	}
	m.moveCaret(row, col)
}

// excluded reports whether r never reaches the text from input.
func (m *Model) excluded(r rune) bool {
	switch r {
	case '\b', '\r', '\t':
		return true
	case '\n':
		return !m.multiline
	}
	return false
}

// filterInput drops excluded characters and, when an allow list is set,
// every character not on it.
func (m *Model) filterInput(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if m.excluded(r) {
			continue
		}
		if m.allow != nil {
			if _, ok := m.allow[r]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// InputText receives committed text from the input method.
func (m *Model) InputText(text []rune) {
	m.Lock()
	defer m.Unlock()
	m.Emit(&widget.Event{Type: widget.EventTextInput, Text: text})
}

func (m *Model) onTextInput(text []rune) {
	if m.readOnly {
		return
	}
	text = m.filterInput(text)
	if len(text) == 0 {
		return
	}
	if err := m.enqueue(string(text), editbuffer.Insert); err != nil {
		m.log.Warn("text input dropped", zap.Error(err))
	}
}

func (m *Model) caretByPointer(e *widget.Event) {
	p := m.Box.ToContent(e.X, e.Y)
	m.layers.active().SetCaretPosByPixel(p.X, p.Y)
	m.syncCaret()
}

func (m *Model) onMouseDown(e *widget.Event) {
	m.caretByPointer(e)
	m.SetMouseCapture()
	if m.moveID == 0 {
		m.moveID = m.Bind(widget.EventMouseMove, m.caretByPointer)
	}
}

func (m *Model) onMouseUp(*widget.Event) {
	m.ReleaseMouseCapture()
	if m.moveID != 0 {
		m.Unbind(widget.EventMouseMove, m.moveID)
		m.moveID = 0
	}
}

func (m *Model) onResize(*widget.Event) {
	cs := m.Box.ContentSize()
	w, h := max(cs.X, MinLayoutSize), max(cs.Y, MinLayoutSize)
	m.layers.each(func(l Layer) { l.SetMaxSize(w, h) })

	origin := m.Box.Content().Min
	for _, r := range m.layers.active().Update() {
		m.InvalidateArea(r.Add(origin))
	}
	m.layers.inactive().Update()
	m.syncCaret()
}
