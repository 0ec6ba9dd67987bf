package textedit

import (
	"image"
	"strings"

	"github.com/iw2rmb/texted/caret"
	"github.com/iw2rmb/texted/internal/grapheme"
	"github.com/iw2rmb/texted/styletag"
	"github.com/iw2rmb/texted/textlayer"
)

// Layer lays out and stores styled text. textlayer.Layer implements it.
type Layer interface {
	caret.Layer

	AppendText(text string, tags *styletag.Stack) int
	InsertText(text string, tags *styletag.Stack) int
	Backspace(n int) int
	Delete(n int) int
	ClearText()

	Text(start, maxLen int) string
	Len() int

	Caret() textlayer.Pos
	SetCaretPos(row, col int)
	SetCaretPosByPixel(x, y int)
	CaretOffset() int
	SetCaretOffset(off int)

	RowTotal() int
	RowTextLength(row int) int
	RowHeight(row int) int

	SetMultiline(v bool)
	SetAutoWrap(v bool)
	SetUsingStyleTags(v bool)
	SetMaxSize(w, h int)
	MaxSize() image.Point
	Offset() image.Point

	Update() []image.Rectangle
	Cells(view image.Rectangle) [][]textlayer.Cell
}

// LayerKind selects which layer is displayed and edited through the caret.
type LayerKind uint8

const (
	SourceLayer LayerKind = iota
	MaskLayer
)

func (k LayerKind) String() string {
	if k == MaskLayer {
		return "mask"
	}
	return "source"
}

// layers holds the real text and its masked rendering. The mask always has
// one character per source character, so flat offsets are shared.
type layers struct {
	kind   LayerKind
	source Layer
	mask   Layer
	char   rune
}

func (ls *layers) active() Layer {
	if ls.kind == MaskLayer {
		return ls.mask
	}
	return ls.source
}

func (ls *layers) inactive() Layer {
	if ls.kind == MaskLayer {
		return ls.source
	}
	return ls.mask
}

func (ls *layers) each(fn func(Layer)) {
	fn(ls.source)
	fn(ls.mask)
}

// follow moves the inactive caret to the active one.
func (ls *layers) follow() {
	ls.inactive().SetCaretOffset(ls.active().CaretOffset())
}

// maskRange returns one mask character for each of the n source characters
// at off. Line breaks stay as they are so rows match.
func (ls *layers) maskRange(off, n int) string {
	var sb strings.Builder
	for i := range n {
		if g := ls.source.Text(off+i, 1); grapheme.IsNewline(g) {
			sb.WriteString(g)
			continue
		}
		sb.WriteRune(ls.char)
	}
	return sb.String()
}

func (ls *layers) appendText(text string, tags *styletag.Stack) int {
	n := ls.source.AppendText(text, tags)
	if n > 0 {
		ls.mask.AppendText(ls.maskRange(ls.source.Len()-n, n), nil)
	}
	ls.follow()
	return n
}

// insertText inserts at the active caret.
func (ls *layers) insertText(text string, tags *styletag.Stack) int {
	off := ls.active().CaretOffset()
	ls.source.SetCaretOffset(off)
	n := ls.source.InsertText(text, tags)
	ls.mask.SetCaretOffset(off)
	if n > 0 {
		ls.mask.InsertText(ls.maskRange(off, n), nil)
	}
	return n
}

func (ls *layers) backspace(n int) int {
	ls.follow()
	k := ls.active().Backspace(n)
	ls.inactive().Backspace(k)
	return k
}

func (ls *layers) delete(n int) int {
	ls.follow()
	k := ls.active().Delete(n)
	ls.inactive().Delete(k)
	return k
}

func (ls *layers) clear() {
	ls.each(Layer.ClearText)
}

// setMask switches masking on with r, or off when r is 0, rebuilding the
// mask from the source.
func (ls *layers) setMask(r rune) {
	off := ls.active().CaretOffset()
	if r == 0 {
		ls.kind = SourceLayer
		ls.source.SetCaretOffset(off)
		return
	}
	ls.kind = MaskLayer
	if r != ls.char || ls.mask.Len() != ls.source.Len() {
		ls.char = r
		ls.mask.ClearText()
		ls.mask.AppendText(ls.maskRange(0, ls.source.Len()), nil)
	}
	ls.mask.SetCaretOffset(off)
}
