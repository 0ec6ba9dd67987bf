package textlayer

import (
	"image"
	"strings"
)

// Options configures a Layer created with New.
type Options struct {
	Multiline      bool
	AutoWrap       bool
	UsingStyleTags bool
	TabWidth       int // default: 4
}

// Layer is styled text plus its row layout and logical caret.
type Layer struct {
	opt Options

	chars []char
	rows  []row
	stale bool

	// caret is authoritative unless caretFromOffset is set, in which case it
	// is resolved from caretOff at the next layout.
	caret           Pos
	caretOff        int
	caretFromOffset bool

	maxSize image.Point
	offset  image.Point

	dirty    []image.Rectangle
	allDirty bool
}

func New(opt Options) *Layer {
	if opt.TabWidth <= 0 {
		opt.TabWidth = 4
	}
	return &Layer{
		opt:             opt,
		rows:            []row{{}},
		stale:           true,
		caretFromOffset: true,
	}
}

func (l *Layer) Multiline() bool      { return l.opt.Multiline }
func (l *Layer) AutoWrap() bool       { return l.opt.AutoWrap }
func (l *Layer) UsingStyleTags() bool { return l.opt.UsingStyleTags }

func (l *Layer) SetMultiline(v bool) {
	if l.opt.Multiline == v {
		return
	}
	l.opt.Multiline = v
	l.relayoutAll()
}

func (l *Layer) SetAutoWrap(v bool) {
	if l.opt.AutoWrap == v {
		return
	}
	l.opt.AutoWrap = v
	l.relayoutAll()
}

// SetUsingStyleTags controls whether appended and inserted text is parsed
// for style tags. Already stored characters keep their styles.
func (l *Layer) SetUsingStyleTags(v bool) { l.opt.UsingStyleTags = v }

// SetMaxSize sets the layout box. Its width is the auto-wrap limit.
func (l *Layer) SetMaxSize(w, h int) {
	next := image.Pt(max(w, 0), max(h, 0))
	if next == l.maxSize {
		return
	}
	l.maxSize = next
	l.relayoutAll()
}

func (l *Layer) MaxSize() image.Point { return l.maxSize }

// SetOffset shifts the rendering origin. Offsets are usually <= 0 and scroll
// content left/up.
func (l *Layer) SetOffset(x, y int) {
	next := image.Pt(x, y)
	if next == l.offset {
		return
	}
	l.offset = next
	l.allDirty = true
}

func (l *Layer) Offset() image.Point { return l.offset }

func (l *Layer) relayoutAll() {
	l.keepCaretOffset()
	l.stale = true
	l.allDirty = true
}

// keepCaretOffset pins the caret to its flat offset across a re-layout.
func (l *Layer) keepCaretOffset() {
	if !l.caretFromOffset {
		l.ensureLayout()
		l.caretOff = l.offsetOf(l.caret)
	}
	l.caretFromOffset = true
}

// Len returns the number of characters held.
func (l *Layer) Len() int { return len(l.chars) }

// Text returns up to maxLen characters starting at character index start.
// A negative maxLen reads to the end.
func (l *Layer) Text(start, maxLen int) string {
	start = clampInt(start, 0, len(l.chars))
	end := len(l.chars)
	if maxLen >= 0 && start+maxLen < end {
		end = start + maxLen
	}
	var sb strings.Builder
	for _, c := range l.chars[start:end] {
		sb.WriteString(c.text)
	}
	return sb.String()
}

func (l *Layer) RowTotal() int {
	l.ensureLayout()
	return len(l.rows)
}

// RowTextLength returns the number of characters on row, excluding the
// newline that ends a hard row.
func (l *Layer) RowTextLength(row int) int {
	l.ensureLayout()
	if row < 0 || row >= len(l.rows) {
		return 0
	}
	return l.rows[row].len()
}

func (l *Layer) RowHeight(row int) int {
	l.ensureLayout()
	if row < 0 || row >= len(l.rows) {
		return 0
	}
	return rowHeight
}

// Height returns the total height of all rows.
func (l *Layer) Height() int {
	l.ensureLayout()
	return len(l.rows) * rowHeight
}

// Width returns the width of the widest row.
func (l *Layer) Width() int {
	l.ensureLayout()
	w := 0
	for _, r := range l.rows {
		w = max(w, r.width)
	}
	return w
}
