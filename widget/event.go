package widget

// Event names a widget can bind handlers to.
const (
	EventTextInput = "textinput"
	EventMouseDown = "mousedown"
	EventMouseUp   = "mouseup"
	EventMouseMove = "mousemove"
	EventKeyDown   = "keydown"
	EventResize    = "resize"
	EventFocus     = "focus"
	EventBlur      = "blur"
)

// KeyCode identifies the keys a keydown event can carry.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyHome
	KeyEnd
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBackspace
	KeyDelete
)

var keyNames = [...]string{
	KeyNone:      "none",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
}

func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Event is dispatched to handlers by name. X and Y are absolute pointer
// coordinates for mouse events.
type Event struct {
	Type string
	Key  KeyCode
	Text []rune
	X, Y int

	stopped bool
}

// StopPropagation keeps later handlers from seeing the event.
func (e *Event) StopPropagation() { e.stopped = true }

func (e *Event) Stopped() bool { return e.stopped }

// Handler receives events emitted on a widget.
type Handler func(e *Event)

// HandlerID identifies a bound handler for Unbind.
type HandlerID uint64
