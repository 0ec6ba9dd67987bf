package textedit

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap/zaptest"

	"github.com/iw2rmb/texted/ime"
	"github.com/iw2rmb/texted/widget"
)

var (
	_ tea.Model         = (*Model)(nil)
	_ ime.Target        = (*Model)(nil)
	_ widget.Painter    = (*Model)(nil)
	_ widget.TextSetter = (*Model)(nil)
	_ widget.AutoSizer  = (*Model)(nil)
	_ widget.Tasker     = (*Model)(nil)
	_ widget.Destroyer  = (*Model)(nil)
)

func asciiStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return StyleFor(r)
}

func newModel(t *testing.T, cfg Config) *Model {
	t.Helper()
	if cfg.IME == nil {
		cfg.IME = ime.NewManager(zaptest.NewLogger(t))
	}
	if cfg.Logger == nil {
		cfg.Logger = zaptest.NewLogger(t)
	}
	if cfg.Style.isZero() {
		cfg.Style = asciiStyle()
	}
	if cfg.Width == 0 {
		cfg.Width = 20
	}
	m := New(cfg)
	t.Cleanup(m.Destroy)
	return m
}

// setText replaces the text and runs the frame that applies it.
func setText(t *testing.T, m *Model, text string) {
	t.Helper()
	if err := m.SetText(text); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	m.Task()
}

func press(m *Model, k tea.KeyType) {
	m.Update(tea.KeyMsg{Type: k})
}

func typeRunes(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNew_Defaults(t *testing.T) {
	m := newModel(t, Config{})
	if m.Focused() {
		t.Fatalf("new model should be unfocused")
	}
	if m.Multiline() || m.ReadOnly() {
		t.Fatalf("unexpected mode multiline=%v readonly=%v", m.Multiline(), m.ReadOnly())
	}
	if got, want := m.ActiveLayer(), SourceLayer; got != want {
		t.Fatalf("active layer=%v, want %v", got, want)
	}
	if got, want := m.LayoutSize().X, MinLayoutSize; got != want {
		t.Fatalf("layout width=%d, want %d", got, want)
	}
}

func TestNew_InitialTextAppliesOnFirstFrame(t *testing.T) {
	m := newModel(t, Config{Text: "hello"})
	if got := m.Text(); got != "" {
		t.Fatalf("text before frame=%q, want empty", got)
	}
	m.Task()
	if got, want := m.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_DestroyStopsCaret(t *testing.T) {
	mgr := ime.NewManager(zaptest.NewLogger(t))
	m := New(Config{IME: mgr, Logger: zaptest.NewLogger(t), Style: asciiStyle()})
	m.Focus()
	m.Destroy()
	if mgr.Target() != nil {
		t.Fatalf("destroy kept the input method target")
	}
	if cmd := m.caretCmd(); cmd != nil {
		t.Fatalf("caret still ticking after destroy")
	}
}
