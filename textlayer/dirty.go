package textlayer

import "image"

// diffRows records a full-width rectangle for every row whose rendered
// content differs between prev and next, including rows only one side has.
func (l *Layer) diffRows(prev, next []row) {
	if l.allDirty {
		return
	}
	width := l.dirtyWidth(prev, next)
	n := max(len(prev), len(next))
	for i := 0; i < n; i++ {
		if i < len(prev) && i < len(next) && prev[i].sig == next[i].sig {
			continue
		}
		l.dirty = append(l.dirty, image.Rect(0, i*rowHeight, width, (i+1)*rowHeight))
	}
}

func (l *Layer) dirtyWidth(prev, next []row) int {
	// The caret may sit one cell past the widest row.
	w := l.maxSize.X
	for _, r := range prev {
		w = max(w, r.width+1)
	}
	for _, r := range next {
		w = max(w, r.width+1)
	}
	return w
}

// Update lays out pending changes and returns the invalidated rectangles in
// content-box coordinates. The accumulated set is cleared.
func (l *Layer) Update() []image.Rectangle {
	l.ensureLayout()

	var out []image.Rectangle
	if l.allDirty {
		full := image.Rect(0, 0, max(l.maxSize.X, l.Width()+1), max(l.maxSize.Y, l.Height()))
		out = []image.Rectangle{full}
	} else {
		out = make([]image.Rectangle, 0, len(l.dirty))
		for _, r := range l.dirty {
			out = append(out, r.Add(l.offset))
		}
		out = coalesce(out)
	}
	l.ClearInvalidRect()
	return out
}

// ClearInvalidRect drops all accumulated invalidation.
func (l *Layer) ClearInvalidRect() {
	l.dirty = l.dirty[:0]
	l.allDirty = false
}

// coalesce merges rectangles that overlap or touch vertically with the same
// horizontal extent, in the order they were recorded.
func coalesce(in []image.Rectangle) []image.Rectangle {
	out := in[:0]
	for _, r := range in {
		if r.Empty() {
			continue
		}
		if n := len(out); n > 0 {
			last := out[n-1]
			if last.Min.X == r.Min.X && last.Max.X == r.Max.X && r.Min.Y <= last.Max.Y && r.Max.Y >= last.Min.Y {
				out[n-1] = last.Union(r)
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
