package widget

import "image"

// CaretElement is a one-cell-wide caret child. It only records state; the
// owning widget draws it.
type CaretElement struct {
	visible bool
	pos     image.Point
	width   int
	height  int
}

func NewCaretElement() *CaretElement {
	return &CaretElement{width: 1, height: 1}
}

func (c *CaretElement) Show()         { c.visible = true }
func (c *CaretElement) Hide()         { c.visible = false }
func (c *CaretElement) Visible() bool { return c.visible }

// Move places the caret at (x, y) in widget-local coordinates.
func (c *CaretElement) Move(x, y int)         { c.pos = image.Pt(x, y) }
func (c *CaretElement) Position() image.Point { return c.pos }

func (c *CaretElement) SetHeight(h int) { c.height = max(h, 1) }

func (c *CaretElement) Size() image.Point { return image.Pt(c.width, c.height) }
