package textedit

import (
	"image"

	"github.com/iw2rmb/texted/widget"
)

// autoSizeRows caps the rows AutoSize measures in multiline mode.
const autoSizeRows = 3

// AutoSize returns the preferred size: Config.AutoWidth by the height of
// the text, at most three rows in multiline mode. Unless the box sizing is
// ContentBox the padding and border are included.
func (m *Model) AutoSize() (w, h int) {
	m.Lock()
	defer m.Unlock()
	return m.autoSize()
}

func (m *Model) autoSize() (int, int) {
	l := m.layers.active()
	h := 0
	if m.multiline {
		n := min(l.RowTotal(), autoSizeRows)
		for i := 0; i < n; i++ {
			h += l.RowHeight(i)
		}
	} else {
		h = l.Height()
	}
	if m.Box.Sizing != widget.ContentBox {
		h += m.Box.Padding.Vertical() + m.Box.Border.Vertical()
	}
	return m.cfg.AutoWidth, h
}

// SetSize resizes the widget's box and lays the text out again.
func (m *Model) SetSize(w, h int) {
	m.Lock()
	defer m.Unlock()
	m.setSize(w, h)
}

func (m *Model) setSize(w, h int) {
	sz := image.Pt(max(w, 0), max(h, 0))
	if m.sized && sz == m.Box.Size {
		return
	}
	m.sized = true
	m.Box.Size = sz
	m.InvalidateAll()
	m.Emit(&widget.Event{Type: widget.EventResize})
}

// SetPosition places the widget at (x, y) on screen. Mouse events are
// translated from there.
func (m *Model) SetPosition(x, y int) {
	m.Lock()
	defer m.Unlock()
	m.Box.Position = image.Pt(x, y)
}

// Size returns the widget's box size.
func (m *Model) Size() image.Point {
	m.Lock()
	defer m.Unlock()
	return m.Box.Size
}

// autoHeight follows the text height when no fixed height is configured.
func (m *Model) autoHeight() {
	if m.cfg.Height > 0 {
		return
	}
	_, h := m.autoSize()
	m.setSize(m.Box.Size.X, h)
}
