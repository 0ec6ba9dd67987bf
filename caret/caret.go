// Package caret drives a blinking text caret as a Bubble Tea tick task and
// keeps it aligned with a text layer's logical caret.
//
// A Controller is not safe for concurrent use; it belongs to the goroutine
// running the owning widget's Update.
package caret

import (
	"image"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/texted/widget"
)

// DefaultBlinkInterval is the time between two blink phases.
const DefaultBlinkInterval = 500 * time.Millisecond

// Phase is the visible state of a blinking caret.
type Phase uint8

const (
	Hidden Phase = iota
	Shown
)

func (p Phase) String() string {
	if p == Shown {
		return "shown"
	}
	return "hidden"
}

// Element is the caret child the controller shows, hides and moves.
type Element interface {
	Show()
	Hide()
	Move(x, y int)
	SetHeight(h int)
	Size() image.Point
}

// Layer is what SyncToTextCaret needs from a text layer. Coordinates are in
// cells, with rows one cell high.
type Layer interface {
	CaretPixelPos() (image.Point, bool)
	CaretHeight() int
	Width() int
	Height() int
	SetOffset(x, y int)
}

// BlinkMsg is the tick message of one Controller. Ticks whose tag does not
// match the controller's current tag are stale and dropped.
type BlinkMsg struct {
	ID  int
	Tag int
}

var lastID atomic.Int64

func nextID() int { return int(lastID.Add(1)) }

type Controller struct {
	el  Element
	log *zap.Logger

	id       int
	tag      int
	interval time.Duration
	armed    bool
	closed   bool

	visible bool
	phase   Phase
}

// New returns a controller for el with blinking requested off. A nil logger
// disables logging.
func New(el Element, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	el.Hide()
	return &Controller{
		el:       el,
		log:      log.Named("caret"),
		id:       nextID(),
		interval: DefaultBlinkInterval,
	}
}

func (c *Controller) ID() int                 { return c.id }
func (c *Controller) Phase() Phase            { return c.phase }
func (c *Controller) Visible() bool           { return c.visible }
func (c *Controller) Interval() time.Duration { return c.interval }

// Cmd arms the next tick. It returns nil while a tick is already in flight
// and after Close.
func (c *Controller) Cmd() tea.Cmd {
	if c.closed || c.armed {
		return nil
	}
	c.armed = true
	id, tag := c.id, c.tag
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return BlinkMsg{ID: id, Tag: tag}
	})
}

// Update handles a BlinkMsg addressed to this controller and re-arms the
// tick. The tick keeps running while blinking is off so it resumes on the
// same rhythm.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(BlinkMsg)
	if !ok || m.ID != c.id || c.closed {
		return nil
	}
	if m.Tag != c.tag {
		return nil
	}
	c.armed = false
	if c.visible {
		if c.phase == Hidden {
			c.show()
		} else {
			c.hide()
		}
	}
	return c.Cmd()
}

func (c *Controller) show() {
	c.phase = Shown
	c.el.Show()
}

func (c *Controller) hide() {
	c.phase = Hidden
	c.el.Hide()
}

// reset restarts the blink period. The tick in flight goes stale.
func (c *Controller) reset() {
	c.tag++
	c.armed = false
}

// RequestVisible turns blinking on, starting from Shown, or off, forcing
// Hidden. Either way the blink period restarts.
func (c *Controller) RequestVisible(v bool) {
	if c.visible != v {
		c.log.Debug("caret visibility", zap.Bool("visible", v))
	}
	c.visible = v
	if v {
		c.BlinkShow()
	} else {
		c.BlinkHide()
	}
}

// BlinkShow shows the caret and restarts the period, if blinking is on.
func (c *Controller) BlinkShow() {
	if !c.visible {
		return
	}
	c.show()
	c.reset()
}

// BlinkHide hides the caret and restarts the period.
func (c *Controller) BlinkHide() {
	c.hide()
	c.reset()
}

// SetBlinkInterval changes the period and re-arms without touching the
// phase. Non-positive values select DefaultBlinkInterval.
func (c *Controller) SetBlinkInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultBlinkInterval
	}
	c.interval = d
	c.reset()
}

// Close stops the tick. Ticks already scheduled are ignored.
func (c *Controller) Close() {
	c.closed = true
	c.armed = false
}

func (c *Controller) Closed() bool { return c.closed }

// SyncToTextCaret scrolls layer so its caret is inside box's content area
// and moves the element over it. It reports false, leaving layer and
// element alone, when the layer has no caret to show. The blink restarts
// from Shown in both cases.
func (c *Controller) SyncToTextCaret(layer Layer, box widget.Box) bool {
	defer c.BlinkShow()

	pos, ok := layer.CaretPixelPos()
	if !ok {
		return false
	}
	h := layer.CaretHeight()
	c.el.SetHeight(h)

	content := box.ContentSize()
	caretW := c.el.Size().X

	var off image.Point
	if pos.X+caretW > content.X {
		off.X = content.X - pos.X - caretW
	}
	if pos.Y+h > content.Y {
		off.Y = content.Y - pos.Y - h
	}
	off.X = clampOffset(off.X, content.X-layer.Width()-caretW)
	off.Y = clampOffset(off.Y, content.Y-layer.Height())
	layer.SetOffset(off.X, off.Y)

	at := box.Content().Min.Add(pos).Add(off)
	c.el.Move(at.X, at.Y)
	return true
}

// clampOffset keeps a scroll offset in [min(limit, 0), 0].
func clampOffset(v, limit int) int {
	return min(max(v, min(limit, 0)), 0)
}
