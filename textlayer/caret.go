package textlayer

import (
	"image"

	"github.com/iw2rmb/texted/internal/grapheme"
)

// Caret returns the logical caret position.
func (l *Layer) Caret() Pos {
	l.ensureLayout()
	return l.caret
}

// SetCaretPos moves the caret, clamping row into the laid-out rows and col
// into the row's text length.
func (l *Layer) SetCaretPos(row, col int) {
	l.ensureLayout()
	l.caret = ClampPos(Pos{Row: row, Col: col}, len(l.rows), l.rowLen)
	l.caretOff = l.offsetOf(l.caret)
}

// CaretOffset returns the caret as a flat character offset.
func (l *Layer) CaretOffset() int {
	l.ensureLayout()
	return l.offsetOf(l.caret)
}

func (l *Layer) SetCaretOffset(off int) {
	l.ensureLayout()
	l.caretOff = clampInt(off, 0, len(l.chars))
	l.caret = l.posOf(l.caretOff)
}

// CaretPixelPos returns the top-left cell of the caret in layer space,
// without the rendering offset. It reports false until the layer has a
// non-empty max size.
func (l *Layer) CaretPixelPos() (image.Point, bool) {
	l.ensureLayout()
	if l.maxSize.X <= 0 || l.maxSize.Y <= 0 {
		return image.Point{}, false
	}
	if l.caret.Row < 0 || l.caret.Row >= len(l.rows) {
		return image.Point{}, false
	}
	r := l.rows[l.caret.Row]
	return image.Pt(r.cellAt(l.caret.Col), l.caret.Row*rowHeight), true
}

// SetCaretPosByPixel places the caret at the character boundary nearest to
// (x, y), given in content-box coordinates with the offset applied.
func (l *Layer) SetCaretPosByPixel(x, y int) {
	l.ensureLayout()
	x -= l.offset.X
	y -= l.offset.Y

	ri := clampInt(y/rowHeight, 0, len(l.rows)-1)
	r := l.rows[ri]

	col := r.len()
	for i := 0; i < r.len(); i++ {
		w := grapheme.Width(l.chars[r.start+i].text, r.cells[i], l.opt.TabWidth)
		if x < r.cells[i]+(w+1)/2 {
			col = i
			break
		}
	}
	l.SetCaretPos(ri, col)
}

// CaretHeight returns the height of the caret's row.
func (l *Layer) CaretHeight() int {
	return l.RowHeight(l.Caret().Row)
}
