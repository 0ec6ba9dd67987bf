package textedit

import (
	"image"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/texted/caret"
	"github.com/iw2rmb/texted/widget"
)

// FrameInterval is the delay between a requested task and the frame that
// runs it.
const FrameInterval = time.Second / 60

// TaskMsg runs the Model's pending frame task.
type TaskMsg struct{ ID int }

// wakeMsg only lets Update schedule a pending task.
type wakeMsg struct{ id int }

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// AttachSender lets text queued from other goroutines wake the program.
func (m *Model) AttachSender(s Sender) {
	id := m.id
	m.SetWaker(func() { go s.Send(wakeMsg{id: id}) })
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.caretCmd(), m.scheduleTask())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case TaskMsg:
		if msg.ID == m.id {
			m.scheduled = false
			m.Task()
		}
	case caret.BlinkMsg:
		m.Lock()
		cmds = append(cmds, m.caret.Update(msg))
		m.Unlock()
	case tea.KeyMsg:
		m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	case tea.WindowSizeMsg:
		m.updateWindowSize(msg)
	case tea.FocusMsg:
		m.Focus()
	case tea.BlurMsg:
		m.Blur()
	}
	cmds = append(cmds, m.caretCmd(), m.scheduleTask())
	return m, tea.Batch(cmds...)
}

func (m *Model) caretCmd() tea.Cmd {
	m.Lock()
	defer m.Unlock()
	return m.caret.Cmd()
}

// scheduleTask returns a one-frame tick when a task is pending and none is
// scheduled yet.
func (m *Model) scheduleTask() tea.Cmd {
	if m.scheduled || !m.TaskPending() {
		return nil
	}
	m.scheduled = true
	id := m.id
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg { return TaskMsg{ID: id} })
}

func (m *Model) updateKey(msg tea.KeyMsg) {
	m.Lock()
	defer m.Unlock()
	if !m.focused {
		return
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.Emit(&widget.Event{Type: widget.EventTextInput, Text: msg.Runes})
		return
	}

	km := m.cfg.KeyMap
	keydown := func(k widget.KeyCode) {
		m.Emit(&widget.Event{Type: widget.EventKeyDown, Key: k})
	}
	switch {
	case key.Matches(msg, km.Left):
		keydown(widget.KeyLeft)
	case key.Matches(msg, km.Right):
		keydown(widget.KeyRight)
	case key.Matches(msg, km.Up):
		keydown(widget.KeyUp)
	case key.Matches(msg, km.Down):
		keydown(widget.KeyDown)
	case key.Matches(msg, km.Home):
		keydown(widget.KeyHome)
	case key.Matches(msg, km.End):
		keydown(widget.KeyEnd)
	case key.Matches(msg, km.Backspace):
		keydown(widget.KeyBackspace)
	case key.Matches(msg, km.Delete):
		keydown(widget.KeyDelete)
	case key.Matches(msg, km.Enter):
		m.Emit(&widget.Event{Type: widget.EventTextInput, Text: []rune{'\n'}})
	case key.Matches(msg, km.Copy):
		m.copyAll()
	case key.Matches(msg, km.Paste):
		m.paste()
	default:
		switch msg.Type {
		case tea.KeySpace:
			m.Emit(&widget.Event{Type: widget.EventTextInput, Text: []rune{' '}})
		case tea.KeyTab:
			m.Emit(&widget.Event{Type: widget.EventTextInput, Text: []rune{'\t'}})
		case tea.KeyRunes:
			if len(msg.Runes) > 0 && !msg.Alt {
				m.Emit(&widget.Event{Type: widget.EventTextInput, Text: msg.Runes})
			}
		}
	}
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	m.Lock()
	defer m.Unlock()

	e := &widget.Event{X: msg.X, Y: msg.Y}
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.inBounds(msg.X, msg.Y) {
			return
		}
		if !m.focused {
			m.Emit(&widget.Event{Type: widget.EventFocus})
		}
		e.Type = widget.EventMouseDown
	case tea.MouseActionMotion:
		if !m.HasMouseCapture() {
			return
		}
		e.Type = widget.EventMouseMove
	case tea.MouseActionRelease:
		if !m.HasMouseCapture() {
			return
		}
		e.Type = widget.EventMouseUp
	default:
		return
	}
	m.Emit(e)
}

func (m *Model) inBounds(x, y int) bool {
	r := image.Rectangle{Min: m.Box.Position, Max: m.Box.Position.Add(m.Box.Outer())}
	return image.Pt(x, y).In(r)
}

func (m *Model) updateWindowSize(msg tea.WindowSizeMsg) {
	m.Lock()
	defer m.Unlock()
	w, h := m.cfg.Width, m.cfg.Height
	if w <= 0 {
		w = msg.Width - m.Box.Position.X
	}
	if h <= 0 {
		_, h = m.autoSize()
	}
	m.setSize(w, h)
}
