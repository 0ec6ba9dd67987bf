package widget

import "image"

// Sides holds one value per box side, in cells.
type Sides struct {
	Top, Right, Bottom, Left int
}

// All returns Sides with every side set to v.
func All(v int) Sides { return Sides{Top: v, Right: v, Bottom: v, Left: v} }

// Symmetric returns Sides with vertical sides v and horizontal sides h.
func Symmetric(v, h int) Sides { return Sides{Top: v, Right: h, Bottom: v, Left: h} }

func (s Sides) Horizontal() int { return s.Left + s.Right }
func (s Sides) Vertical() int   { return s.Top + s.Bottom }

// BoxSizing selects what Box.Size measures.
type BoxSizing uint8

const (
	// BorderBox sizes include padding and border.
	BorderBox BoxSizing = iota
	// ContentBox sizes cover the content only.
	ContentBox
)

// Box is a widget's geometry. Position is absolute; everything a Box
// returns as a rectangle is widget-local.
type Box struct {
	Position image.Point
	Size     image.Point
	Padding  Sides
	Border   Sides
	Sizing   BoxSizing
}

func (b Box) inset() image.Point {
	return image.Pt(b.Border.Left+b.Padding.Left, b.Border.Top+b.Padding.Top)
}

// Outer returns the border box size.
func (b Box) Outer() image.Point {
	if b.Sizing == ContentBox {
		return b.Size.Add(image.Pt(
			b.Padding.Horizontal()+b.Border.Horizontal(),
			b.Padding.Vertical()+b.Border.Vertical(),
		))
	}
	return b.Size
}

// ContentSize returns the size of the content box, never negative.
func (b Box) ContentSize() image.Point {
	if b.Sizing == ContentBox {
		return image.Pt(max(b.Size.X, 0), max(b.Size.Y, 0))
	}
	return image.Pt(
		max(b.Size.X-b.Padding.Horizontal()-b.Border.Horizontal(), 0),
		max(b.Size.Y-b.Padding.Vertical()-b.Border.Vertical(), 0),
	)
}

// Content returns the content box.
func (b Box) Content() image.Rectangle {
	o := b.inset()
	return image.Rectangle{Min: o, Max: o.Add(b.ContentSize())}
}

// PaddingBox returns the content box grown by the padding.
func (b Box) PaddingBox() image.Rectangle {
	c := b.Content()
	return image.Rect(
		c.Min.X-b.Padding.Left, c.Min.Y-b.Padding.Top,
		c.Max.X+b.Padding.Right, c.Max.Y+b.Padding.Bottom,
	)
}

// ToContent converts absolute coordinates into content-box coordinates.
func (b Box) ToContent(x, y int) image.Point {
	return image.Pt(x, y).Sub(b.Position).Sub(b.inset())
}
