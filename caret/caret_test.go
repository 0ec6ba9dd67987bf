package caret

import (
	"image"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/iw2rmb/texted/textlayer"
	"github.com/iw2rmb/texted/widget"
)

func newController(t *testing.T) (*Controller, *widget.CaretElement) {
	t.Helper()
	el := widget.NewCaretElement()
	return New(el, zaptest.NewLogger(t)), el
}

func tick(c *Controller) BlinkMsg { return BlinkMsg{ID: c.ID(), Tag: c.tag} }

func TestController_Defaults(t *testing.T) {
	c, el := newController(t)
	if got, want := c.Interval(), DefaultBlinkInterval; got != want {
		t.Fatalf("interval=%v, want %v", got, want)
	}
	if c.Visible() || c.Phase() != Hidden || el.Visible() {
		t.Fatalf("new controller should be hidden")
	}
}

func TestController_CmdArmsOnce(t *testing.T) {
	c, _ := newController(t)
	if c.Cmd() == nil {
		t.Fatalf("expected first Cmd to arm a tick")
	}
	if c.Cmd() != nil {
		t.Fatalf("expected no second tick while one is in flight")
	}
}

func TestController_TickTogglesWhenVisible(t *testing.T) {
	c, el := newController(t)
	c.RequestVisible(true)
	if c.Phase() != Shown || !el.Visible() {
		t.Fatalf("RequestVisible(true) should show immediately")
	}
	c.Cmd()

	if c.Update(tick(c)) == nil {
		t.Fatalf("tick should re-arm")
	}
	if c.Phase() != Hidden || el.Visible() {
		t.Fatalf("phase=%v visible=%v, want hidden", c.Phase(), el.Visible())
	}
	c.Update(tick(c))
	if c.Phase() != Shown || !el.Visible() {
		t.Fatalf("phase=%v visible=%v, want shown", c.Phase(), el.Visible())
	}
}

func TestController_TickIdleWhenNotVisible(t *testing.T) {
	c, el := newController(t)
	c.Cmd()
	if c.Update(tick(c)) == nil {
		t.Fatalf("tick should keep running while idle")
	}
	if c.Phase() != Hidden || el.Visible() {
		t.Fatalf("idle tick changed the caret")
	}
}

func TestController_StaleTickDropped(t *testing.T) {
	c, _ := newController(t)
	c.RequestVisible(true)
	c.Cmd()
	stale := tick(c)

	// Moving the caret restarts the period.
	c.BlinkShow()
	if c.Update(stale) != nil {
		t.Fatalf("stale tick must not re-arm")
	}
	if c.Phase() != Shown {
		t.Fatalf("stale tick toggled phase")
	}
	if c.Cmd() == nil {
		t.Fatalf("expected a fresh tick after reset")
	}
}

func TestController_OtherIDIgnored(t *testing.T) {
	a, _ := newController(t)
	b, _ := newController(t)
	a.RequestVisible(true)
	if a.Update(BlinkMsg{ID: b.ID(), Tag: a.tag}) != nil {
		t.Fatalf("tick for another controller handled")
	}
	if a.Update("not a tick") != nil {
		t.Fatalf("foreign message handled")
	}
}

func TestController_RequestVisibleFalseHides(t *testing.T) {
	c, el := newController(t)
	c.RequestVisible(true)
	c.RequestVisible(false)
	if c.Phase() != Hidden || el.Visible() {
		t.Fatalf("RequestVisible(false) should hide")
	}
	c.BlinkShow()
	if el.Visible() {
		t.Fatalf("BlinkShow shows while blinking is off")
	}
}

func TestController_SetBlinkIntervalKeepsPhase(t *testing.T) {
	c, _ := newController(t)
	c.RequestVisible(true)
	c.Cmd()
	c.SetBlinkInterval(200 * time.Millisecond)
	if got, want := c.Interval(), 200*time.Millisecond; got != want {
		t.Fatalf("interval=%v, want %v", got, want)
	}
	if c.Phase() != Shown {
		t.Fatalf("phase changed on interval update")
	}
	if c.Cmd() == nil {
		t.Fatalf("expected re-arm after interval change")
	}
	c.SetBlinkInterval(0)
	if got, want := c.Interval(), DefaultBlinkInterval; got != want {
		t.Fatalf("interval=%v, want %v", got, want)
	}
}

func TestController_Close(t *testing.T) {
	c, _ := newController(t)
	c.RequestVisible(true)
	c.Cmd()
	msg := tick(c)
	c.Close()
	if c.Cmd() != nil {
		t.Fatalf("Cmd after Close must be nil")
	}
	if c.Update(msg) != nil {
		t.Fatalf("tick after Close handled")
	}
}

func layerWith(text string, w, h int) *textlayer.Layer {
	l := textlayer.New(textlayer.Options{})
	l.SetMaxSize(w, h)
	l.AppendText(text, nil)
	return l
}

func TestController_SyncScrollsCaretIntoView(t *testing.T) {
	c, el := newController(t)
	c.RequestVisible(true)
	box := widget.Box{Size: image.Pt(12, 3), Padding: widget.Symmetric(0, 1), Border: widget.All(1)}

	l := layerWith("abcdefghijkl", 8, 1)
	if !c.SyncToTextCaret(l, box) {
		t.Fatalf("expected sync")
	}
	// Caret at column 12 in an 8 cell content box.
	if got, want := l.Offset(), image.Pt(-5, 0); got != want {
		t.Fatalf("offset=%v, want %v", got, want)
	}
	if got, want := el.Position(), image.Pt(2+12-5, 1); got != want {
		t.Fatalf("caret position=%v, want %v", got, want)
	}

	l.SetCaretPos(0, 0)
	c.SyncToTextCaret(l, box)
	if got, want := l.Offset(), image.Pt(0, 0); got != want {
		t.Fatalf("offset=%v, want %v", got, want)
	}
	if got, want := el.Position(), image.Pt(2, 1); got != want {
		t.Fatalf("caret position=%v, want %v", got, want)
	}
}

func TestController_SyncVerticalScrollClamped(t *testing.T) {
	c, el := newController(t)
	c.RequestVisible(true)
	box := widget.Box{Size: image.Pt(10, 2)}

	l := textlayer.New(textlayer.Options{Multiline: true})
	l.SetMaxSize(10, 2)
	l.AppendText("a\nb\nc\nd", nil)

	c.SyncToTextCaret(l, box)
	if got, want := l.Offset(), image.Pt(0, -2); got != want {
		t.Fatalf("offset=%v, want %v", got, want)
	}
	if got, want := el.Position(), image.Pt(1, 1); got != want {
		t.Fatalf("caret position=%v, want %v", got, want)
	}
	if got, want := el.Size().Y, 1; got != want {
		t.Fatalf("caret height=%d, want %d", got, want)
	}
}

func TestController_SyncWithoutCaretIsNoop(t *testing.T) {
	c, el := newController(t)
	c.RequestVisible(true)
	c.BlinkHide()
	el.Move(4, 4)

	l := textlayer.New(textlayer.Options{})
	l.AppendText("abc", nil)
	if c.SyncToTextCaret(l, widget.Box{Size: image.Pt(5, 1)}) {
		t.Fatalf("sync on an unsized layer reported true")
	}
	if got, want := el.Position(), image.Pt(4, 4); got != want {
		t.Fatalf("caret moved to %v", got)
	}
	if c.Phase() != Shown {
		t.Fatalf("blink should restart shown")
	}
}
