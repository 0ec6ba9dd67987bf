package styletag

import "github.com/charmbracelet/lipgloss"

// Style is the resolved rendering style of a character.
type Style struct {
	Foreground    string
	Background    string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// IsZero reports whether s carries no styling.
func (s Style) IsZero() bool { return s == Style{} }

// Lipgloss layers s on top of base.
func (s Style) Lipgloss(base lipgloss.Style) lipgloss.Style {
	out := base
	if s.Foreground != "" {
		out = out.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		out = out.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		out = out.Bold(true)
	}
	if s.Italic {
		out = out.Italic(true)
	}
	if s.Underline {
		out = out.Underline(true)
	}
	if s.Strikethrough {
		out = out.Strikethrough(true)
	}
	return out
}

// Stack holds the tags opened but not yet closed while parsing a stream of
// text. It carries state across separately parsed chunks.
type Stack struct {
	tags []Tag
}

func (s *Stack) Push(t Tag) { s.tags = append(s.tags, t) }

// Pop removes the most recently opened tag with the given name. Ending tags
// without a matching opening tag are ignored.
func (s *Stack) Pop(name Name) {
	for i := len(s.tags) - 1; i >= 0; i-- {
		if s.tags[i].Name == name {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return
		}
	}
}

func (s *Stack) Clear() { s.tags = s.tags[:0] }

func (s *Stack) Len() int { return len(s.tags) }

// Style resolves the stack into a Style; later tags win.
func (s *Stack) Style() Style {
	var st Style
	for _, t := range s.tags {
		switch t.Name {
		case Color:
			st.Foreground = t.Value
		case Background:
			st.Background = t.Value
		case Bold:
			st.Bold = true
		case Italic:
			st.Italic = true
		case Underline:
			st.Underline = true
		case Strikethrough:
			st.Strikethrough = true
		}
	}
	return st
}
