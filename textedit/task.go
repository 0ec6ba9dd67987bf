package textedit

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/texted/editbuffer"
)

// Task runs one frame of pending work: queued text is applied in order,
// the caret is resynced and the layers' dirty rows are invalidated. It is
// cheap when nothing is pending.
func (m *Model) Task() {
	ev, changed := m.task()
	if changed && m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
}

func (m *Model) task() (ChangeEvent, bool) {
	m.Lock()
	defer m.Unlock()
	m.TakeTask()

	if m.tasks[taskSetText].Swap(false) {
		n := m.buf.DrainInto(m.applyBlock)
		if n > 0 {
			m.log.Debug("drained", zap.Int("blocks", n), zap.Int("len", m.layers.source.Len()))
			m.textChanged = true
		}
		m.tasks[taskUpdate].Store(true)
		m.syncCaret()
		m.autoHeight()
	}

	origin := m.Box.Content().Min
	for _, r := range m.layers.active().Update() {
		m.InvalidateArea(r.Add(origin))
	}
	// The hidden layer's rows are repainted in full when it is shown.
	m.layers.inactive().Update()
	m.tasks[taskUpdate].Store(false)

	if !m.textChanged {
		return ChangeEvent{}, false
	}
	m.textChanged = false
	return m.buildChangeEvent(), true
}

func (m *Model) applyBlock(blk editbuffer.Block) {
	text := string(blk.Text)
	switch blk.Mode {
	case editbuffer.Append:
		m.layers.appendText(text, &m.tags)
	case editbuffer.Insert:
		m.layers.insertText(text, &m.tags)
	}
}

// syncCaret aligns the caret element with the displayed layer's caret
// and scrolls the layer to keep it visible.
func (m *Model) syncCaret() {
	m.layers.follow()
	if m.caret.SyncToTextCaret(m.layers.active(), m.Box) {
		m.layers.inactive().SetOffset(m.layers.active().Offset().X, m.layers.active().Offset().Y)
		m.requestUpdate()
	}
}

// moveCaret places the caret at (row, col) of the displayed layer.
func (m *Model) moveCaret(row, col int) {
	m.layers.active().SetCaretPos(row, col)
	m.syncCaret()
}
