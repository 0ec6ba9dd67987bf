package textedit

import (
	"image"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iw2rmb/texted/caret"
	"github.com/iw2rmb/texted/editbuffer"
	"github.com/iw2rmb/texted/ime"
	"github.com/iw2rmb/texted/styletag"
	"github.com/iw2rmb/texted/textlayer"
	"github.com/iw2rmb/texted/widget"
)

// MinLayoutSize is the smallest max size a resize gives the text layers.
const MinLayoutSize = 16

type task uint8

const (
	taskSetText task = iota
	taskUpdate
	taskCount
)

var lastID atomic.Int64

// Model is a Bubble Tea component for single or multi line text input.
//
// AppendText, InsertText, SetText and the other exported methods may be
// called from any goroutine. The tea.Model methods belong to the program
// goroutine.
type Model struct {
	widget.Base

	id  int
	cfg Config
	log *zap.Logger

	layers layers
	tags   styletag.Stack
	buf    *editbuffer.Buffer

	caretEl *widget.CaretElement
	caret   *caret.Controller
	ime     *ime.Manager

	tasks     [taskCount]atomic.Bool
	styleTags atomic.Bool
	scheduled bool

	readOnly    bool
	multiline   bool
	focused     bool
	placeholder string
	allow       map[rune]struct{}

	sized       bool
	textChanged bool
	moveID      widget.HandlerID
	paint       paintCache
}

// New builds a Model. The widget starts unfocused; Config.Text is queued
// for the first frame.
func New(cfg Config) *Model {
	cfg = cfg.withDefaults()
	m := &Model{
		id:  int(lastID.Add(1)),
		cfg: cfg,
		log: cfg.Logger.Named("textedit"),
		buf: editbuffer.New(editbuffer.Options{BlockSize: cfg.BlockSize, MaxPending: cfg.MaxPending}),
		ime: cfg.IME,
	}

	opt := textlayer.Options{Multiline: cfg.Multiline, AutoWrap: !cfg.NoAutoWrap}
	m.layers = layers{source: cfg.NewLayer(opt), mask: cfg.NewLayer(opt), char: DefaultMaskChar}
	m.caretEl = widget.NewCaretElement()
	m.caret = caret.New(m.caretEl, m.log)
	m.caret.SetBlinkInterval(cfg.BlinkInterval)
	m.Append(m.caretEl)

	m.Box = widget.Box{
		Padding: cfg.Style.Padding,
		Border:  widget.All(cfg.Style.BorderWidth),
		Sizing:  cfg.Sizing,
	}
	m.bindHandlers()

	m.setMultiline(cfg.Multiline)
	m.setUsingStyleTags(cfg.UsingStyleTags)
	m.readOnly = cfg.ReadOnly
	m.placeholder = cfg.Placeholder
	m.setAllowInput(cfg.AllowInput)
	m.setPasswordChar(cfg.PasswordChar)

	w, h := m.AutoSize()
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}
	m.Lock()
	m.setSize(w, h)
	m.Unlock()

	if cfg.Text != "" {
		if err := m.SetText(cfg.Text); err != nil {
			m.log.Warn("initial text", zap.Error(err))
		}
	}
	return m
}

func (m *Model) ID() int { return m.id }

// Focused reports whether the widget has input focus.
func (m *Model) Focused() bool {
	m.Lock()
	defer m.Unlock()
	return m.focused
}

// Focus gives the widget input focus.
func (m *Model) Focus() {
	m.Lock()
	defer m.Unlock()
	if !m.focused {
		m.Emit(&widget.Event{Type: widget.EventFocus})
	}
}

// Blur takes input focus away. Blurring an unfocused widget still runs the
// blur handlers, which tolerate it.
func (m *Model) Blur() {
	m.Lock()
	defer m.Unlock()
	m.Emit(&widget.Event{Type: widget.EventBlur})
}

// Caret returns the caret of the displayed layer.
func (m *Model) Caret() textlayer.Pos {
	m.Lock()
	defer m.Unlock()
	return m.layers.active().Caret()
}

// CaretVisible reports whether the caret is drawn right now.
func (m *Model) CaretVisible() bool {
	m.Lock()
	defer m.Unlock()
	return m.caretEl.Visible()
}

// CaretPosition returns the caret cell in widget-local coordinates.
func (m *Model) CaretPosition() image.Point {
	m.Lock()
	defer m.Unlock()
	return m.caretEl.Position()
}

// LayoutSize returns the max size the text layers lay out into.
func (m *Model) LayoutSize() image.Point {
	m.Lock()
	defer m.Unlock()
	return m.layers.active().MaxSize()
}

// ActiveLayer reports which layer is displayed.
func (m *Model) ActiveLayer() LayerKind {
	m.Lock()
	defer m.Unlock()
	return m.layers.kind
}

// Pending returns how many queued blocks wait for the next frame.
func (m *Model) Pending() int { return m.buf.Len() }

// Destroy stops the caret, releases the input method and drops queued
// text. The model must not be used afterwards.
func (m *Model) Destroy() {
	m.Lock()
	defer m.Unlock()
	m.caret.Close()
	m.ime.Release(m)
	m.buf.Reset()
	m.DestroyChildren()
	m.log.Debug("destroyed", zap.Int("id", m.id))
}

// requestUpdate asks the next frame to run the layer update.
func (m *Model) requestUpdate() {
	m.tasks[taskUpdate].Store(true)
	m.AddTask()
}
