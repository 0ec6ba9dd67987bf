package textlayer

import (
	"strings"

	"github.com/iw2rmb/texted/internal/grapheme"
)

const rowHeight = 1

type row struct {
	start int
	end   int  // exclusive; the line break of a hard row sits at end
	hard  bool // ended by a line break

	// cells[i] is the start cell of character start+i.
	cells []int
	width int

	// sig identifies the row's rendered content for dirty diffing.
	sig string
}

func (r row) len() int { return r.end - r.start }

// cellAt returns the start cell of column col, or the row width past the end.
func (r row) cellAt(col int) int {
	if col < 0 {
		return 0
	}
	if col >= len(r.cells) {
		return r.width
	}
	return r.cells[col]
}

func (l *Layer) wrapWidth() int {
	if !l.opt.Multiline || !l.opt.AutoWrap {
		return 0
	}
	return l.maxSize.X
}

func (l *Layer) ensureLayout() {
	if !l.stale {
		return
	}
	l.stale = false

	next := l.buildRows()
	l.diffRows(l.rows, next)
	l.rows = next

	if l.caretFromOffset {
		l.caret = l.posOf(l.caretOff)
		l.caretFromOffset = false
	} else {
		l.caret = ClampPos(l.caret, len(l.rows), l.rowLen)
	}
}

func (l *Layer) rowLen(row int) int {
	if row < 0 || row >= len(l.rows) {
		return 0
	}
	return l.rows[row].len()
}

// buildRows lays out l.chars. Soft wrapping prefers the position after the
// last whitespace of the row and falls back to breaking before the
// overflowing character.
func (l *Layer) buildRows() []row {
	maxW := l.wrapWidth()
	rows := make([]row, 0, 1+len(l.chars)/max(maxW, 64))

	start, x, lastSpace := 0, 0, -1
	for i := 0; i < len(l.chars); i++ {
		c := l.chars[i]
		if l.opt.Multiline && grapheme.IsNewline(c.text) {
			rows = append(rows, l.makeRow(start, i, true))
			start, x, lastSpace = i+1, 0, -1
			continue
		}

		w := grapheme.Width(c.text, x, l.opt.TabWidth)
		for maxW > 0 && x > 0 && x+w > maxW {
			brk := i
			if lastSpace > start && lastSpace < i {
				brk = lastSpace
			}
			rows = append(rows, l.makeRow(start, brk, false))
			start, lastSpace = brk, -1
			x = l.measure(brk, i)
			w = grapheme.Width(c.text, x, l.opt.TabWidth)
		}
		x += w
		if grapheme.IsSpace(c.text) {
			lastSpace = i + 1
		}
	}
	rows = append(rows, l.makeRow(start, len(l.chars), false))
	return rows
}

func (l *Layer) measure(from, to int) int {
	x := 0
	for i := from; i < to; i++ {
		x += grapheme.Width(l.chars[i].text, x, l.opt.TabWidth)
	}
	return x
}

func (l *Layer) makeRow(start, end int, hard bool) row {
	r := row{start: start, end: end, hard: hard, cells: make([]int, 0, end-start)}
	var sb strings.Builder
	x := 0
	for i := start; i < end; i++ {
		c := l.chars[i]
		r.cells = append(r.cells, x)
		x += grapheme.Width(c.text, x, l.opt.TabWidth)
		sb.WriteString(c.text)
		if !c.style.IsZero() {
			sb.WriteString("\x00")
			sb.WriteString(c.style.Foreground)
			sb.WriteString(c.style.Background)
			for _, on := range []bool{c.style.Bold, c.style.Italic, c.style.Underline, c.style.Strikethrough} {
				if on {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('0')
				}
			}
			sb.WriteString("\x00")
		}
	}
	r.width = x
	r.sig = sb.String()
	return r
}

// posOf resolves a flat character offset to a row/column. An offset on a
// soft wrap boundary resolves to the start of the later row.
func (l *Layer) posOf(off int) Pos {
	off = clampInt(off, 0, len(l.chars))
	ri := 0
	for i, r := range l.rows {
		if r.start > off {
			break
		}
		ri = i
	}
	r := l.rows[ri]
	return Pos{Row: ri, Col: clampInt(off-r.start, 0, r.len())}
}

func (l *Layer) offsetOf(p Pos) int {
	p = ClampPos(p, len(l.rows), l.rowLen)
	return l.rows[p.Row].start + p.Col
}
