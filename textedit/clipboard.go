package textedit

import "go.uber.org/zap"

// Clipboard provides clipboard integration.
//
// Errors must not crash the UI; failures are logged and ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// paste feeds clipboard text through the text input path.
func (m *Model) paste() {
	if m.cfg.Clipboard == nil || m.readOnly {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Warn("clipboard read", zap.Error(err))
		return
	}
	if s == "" {
		return
	}
	m.onTextInput([]rune(s))
}

// copyAll writes the whole text. Masked text is never copied.
func (m *Model) copyAll() {
	if m.cfg.Clipboard == nil || m.layers.kind == MaskLayer {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.layers.source.Text(0, -1)); err != nil {
		m.log.Warn("clipboard write", zap.Error(err))
	}
}
