package textedit

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/texted/widget"
)

// Border colours for the focused and idle states.
const (
	FocusBorderColor = "#2196F3"
	IdleBorderColor  = "#eeeeee"
)

// Style controls the text edit's rendering.
type Style struct {
	// Frame carries the padding and border around the content.
	Frame       lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Caret       lipgloss.Style

	Border      lipgloss.Border
	FocusBorder lipgloss.TerminalColor
	IdleBorder  lipgloss.TerminalColor

	// Padding and BorderWidth are in cells. BorderWidth is 0 or 1.
	Padding     widget.Sides
	BorderWidth int
}

func DefaultStyle() Style { return StyleFor(lipgloss.DefaultRenderer()) }

// StyleFor returns the default style bound to r.
func StyleFor(r *lipgloss.Renderer) Style {
	return Style{
		Frame:       r.NewStyle(),
		Text:        r.NewStyle(),
		Placeholder: r.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Caret:       r.NewStyle().Reverse(true),
		Border:      lipgloss.NormalBorder(),
		FocusBorder: lipgloss.Color(FocusBorderColor),
		IdleBorder:  lipgloss.Color(IdleBorderColor),
		Padding:     widget.Symmetric(0, 1),
		BorderWidth: 1,
	}
}

func (s Style) isZero() bool {
	return s.FocusBorder == nil && s.IdleBorder == nil && s.BorderWidth == 0 && s.Padding == (widget.Sides{})
}

func (s Style) frame(focused bool) lipgloss.Style {
	st := s.Frame.
		Padding(s.Padding.Top, s.Padding.Right, s.Padding.Bottom, s.Padding.Left)
	if s.BorderWidth > 0 {
		c := s.IdleBorder
		if focused {
			c = s.FocusBorder
		}
		st = st.Border(s.Border).BorderForeground(c)
	}
	return st
}
