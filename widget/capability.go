package widget

// Widgets implement whichever of these capabilities they need. Hosts probe
// for them with type assertions.
type (
	Initer interface {
		InitWidget()
	}
	Destroyer interface {
		Destroy()
	}
	Painter interface {
		Paint() string
	}
	TextSetter interface {
		SetText(text string) error
	}
	AutoSizer interface {
		AutoSize() (w, h int)
	}
	Tasker interface {
		Task()
	}
)

// RunTasks runs Task on every w that is a Tasker and reports how many ran.
func RunTasks(ws ...any) int {
	n := 0
	for _, w := range ws {
		if t, ok := w.(Tasker); ok {
			t.Task()
			n++
		}
	}
	return n
}

// Destroy calls Destroy on w if it is a Destroyer.
func Destroy(w any) {
	if d, ok := w.(Destroyer); ok {
		d.Destroy()
	}
}
