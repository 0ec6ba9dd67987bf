package textedit

import "github.com/iw2rmb/texted/textlayer"

// ChangeEvent reports the text after a frame that changed it.
type ChangeEvent struct {
	Caret textlayer.Pos
	Len   int

	// Unmasked, even when a password character is set.
	Text string
}

func (m *Model) buildChangeEvent() ChangeEvent {
	src := m.layers.source
	return ChangeEvent{
		Caret: m.layers.active().Caret(),
		Len:   src.Len(),
		Text:  src.Text(0, -1),
	}
}
