// Package widget is the small retained-widget framework texted widgets are
// hosted in: box geometry, named event handlers, mouse capture, invalidated
// regions, a per-widget lock and the per-frame task hook.
//
// Everything but AddTask, TaskPending and SetWaker belongs to the UI
// goroutine.
package widget

import (
	"image"
	"slices"
	"sync"
	"sync/atomic"
)

type binding struct {
	id HandlerID
	fn Handler
}

// Base carries the framework state a widget embeds.
type Base struct {
	Box Box

	mu sync.Mutex

	handlers map[string][]binding
	nextID   HandlerID

	capture bool

	dirty    []image.Rectangle
	allDirty bool

	task    atomic.Bool
	wakerMu sync.Mutex
	waker   func()

	children []any
}

// Lock takes the widget lock. Mutations of widget state from outside the
// frame loop hold it.
func (b *Base) Lock()   { b.mu.Lock() }
func (b *Base) Unlock() { b.mu.Unlock() }

// Bind registers fn for events named name.
func (b *Base) Bind(name string, fn Handler) HandlerID {
	if b.handlers == nil {
		b.handlers = make(map[string][]binding)
	}
	b.nextID++
	b.handlers[name] = append(b.handlers[name], binding{id: b.nextID, fn: fn})
	return b.nextID
}

// Unbind removes the handler id from name. Unknown ids are ignored.
func (b *Base) Unbind(name string, id HandlerID) {
	hs := b.handlers[name]
	i := slices.IndexFunc(hs, func(h binding) bool { return h.id == id })
	if i < 0 {
		return
	}
	// Copy so an Emit in progress keeps iterating its own slice.
	b.handlers[name] = slices.Delete(slices.Clone(hs), i, i+1)
}

// Bound reports how many handlers are bound to name.
func (b *Base) Bound(name string) int { return len(b.handlers[name]) }

// Emit calls the handlers bound to e.Type in bind order and reports whether
// any ran. Handlers may bind and unbind while the event is dispatched.
func (b *Base) Emit(e *Event) bool {
	hs := b.handlers[e.Type]
	for _, h := range hs {
		h.fn(e)
		if e.Stopped() {
			break
		}
	}
	return len(hs) > 0
}

func (b *Base) SetMouseCapture()      { b.capture = true }
func (b *Base) ReleaseMouseCapture()  { b.capture = false }
func (b *Base) HasMouseCapture() bool { return b.capture }

// InvalidateArea marks r, in widget-local coordinates, for repaint.
func (b *Base) InvalidateArea(r image.Rectangle) {
	if r.Empty() || b.allDirty {
		return
	}
	b.dirty = append(b.dirty, r)
}

// InvalidateAll marks the whole widget for repaint.
func (b *Base) InvalidateAll() {
	b.allDirty = true
	b.dirty = b.dirty[:0]
}

// TakeInvalidated returns and clears the invalidated rectangles. A full
// invalidation is returned as the widget's border box.
func (b *Base) TakeInvalidated() []image.Rectangle {
	var out []image.Rectangle
	switch {
	case b.allDirty:
		out = []image.Rectangle{{Max: b.Box.Outer()}}
	case len(b.dirty) > 0:
		out = slices.Clone(b.dirty)
	}
	b.dirty = b.dirty[:0]
	b.allDirty = false
	return out
}

// AddTask asks for Task to run on the next frame. Safe from any goroutine.
func (b *Base) AddTask() {
	if b.task.Swap(true) {
		return
	}
	b.wakerMu.Lock()
	wake := b.waker
	b.wakerMu.Unlock()
	if wake != nil {
		wake()
	}
}

// TaskPending reports whether a task was requested and not yet taken.
func (b *Base) TaskPending() bool { return b.task.Load() }

// TakeTask clears the pending request and reports whether there was one.
func (b *Base) TakeTask() bool { return b.task.Swap(false) }

// SetWaker installs fn to be called when a task is first requested. The
// host uses it to wake its event loop from other goroutines.
func (b *Base) SetWaker(fn func()) {
	b.wakerMu.Lock()
	b.waker = fn
	b.wakerMu.Unlock()
}

// Append attaches child, calling InitWidget when child is an Initer.
func (b *Base) Append(child any) {
	b.children = append(b.children, child)
	if in, ok := child.(Initer); ok {
		in.InitWidget()
	}
}

func (b *Base) Children() []any { return b.children }

// DestroyChildren destroys and detaches every child.
func (b *Base) DestroyChildren() {
	for _, c := range b.children {
		Destroy(c)
	}
	b.children = nil
}
