package textlayer

import (
	"image"
	"strings"

	"github.com/iw2rmb/texted/internal/grapheme"
)

// Cells returns the characters visible inside view, one slice per view row
// from view.Min.Y to view.Max.Y, with the rendering offset applied.
// Characters only partly inside view are left out.
func (l *Layer) Cells(view image.Rectangle) [][]Cell {
	l.ensureLayout()
	out := make([][]Cell, 0, max(view.Dy(), 0))
	for y := view.Min.Y; y < view.Max.Y; y++ {
		ri := (y - l.offset.Y) / rowHeight
		if y-l.offset.Y < 0 || ri >= len(l.rows) {
			out = append(out, nil)
			continue
		}
		r := l.rows[ri]

		var line []Cell
		for i := 0; i < r.len(); i++ {
			c := l.chars[r.start+i]
			w := grapheme.Width(c.text, r.cells[i], l.opt.TabWidth)
			if w == 0 {
				continue
			}
			x := r.cells[i] + l.offset.X
			if x < view.Min.X || x+w > view.Max.X {
				continue
			}
			text := c.text
			if text == "\t" {
				text = strings.Repeat(" ", w)
			}
			line = append(line, Cell{X: x - view.Min.X, Width: w, Text: text, Style: c.style})
		}
		out = append(out, line)
	}
	return out
}
