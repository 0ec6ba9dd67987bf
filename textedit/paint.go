package textedit

import (
	"image"
	"strings"

	"github.com/iw2rmb/texted/internal/grapheme"
	"github.com/iw2rmb/texted/styletag"
	"github.com/iw2rmb/texted/textlayer"
)

// paintCache keeps the laid-out cells of every content row. Only rows
// covered by an invalidated rectangle are read from the layer again.
type paintCache struct {
	size image.Point
	rows [][]textlayer.Cell
}

// View renders the widget.
func (m *Model) View() string {
	m.Lock()
	defer m.Unlock()
	return m.render()
}

// Paint renders the widget for hosts driving it as a plain widget.
func (m *Model) Paint() string { return m.View() }

func (m *Model) render() string {
	content := m.Box.Content()
	size := content.Size()
	m.refreshRows(content)

	lines := make([]string, size.Y)
	if m.showPlaceholder() {
		lines[0] = m.placeholderLine(size.X)
		for y := 1; y < size.Y; y++ {
			lines[y] = strings.Repeat(" ", size.X)
		}
	} else {
		cp, caretOn := m.caretCell(content)
		for y := range lines {
			cx := -1
			if caretOn && cp.Y == y {
				cx = cp.X
			}
			lines[y] = m.renderRow(m.paint.rows[y], size.X, cx)
		}
	}
	return m.cfg.Style.frame(m.focused).Render(strings.Join(lines, "\n"))
}

func (m *Model) refreshRows(content image.Rectangle) {
	size := content.Size()
	l := m.layers.active()
	if m.paint.size != size || len(m.paint.rows) != size.Y {
		m.paint.size = size
		m.paint.rows = l.Cells(image.Rect(0, 0, size.X, size.Y))
		m.TakeInvalidated()
		return
	}
	for _, r := range m.TakeInvalidated() {
		r = r.Intersect(content).Sub(content.Min)
		if r.Empty() {
			continue
		}
		fresh := l.Cells(image.Rect(0, r.Min.Y, size.X, r.Max.Y))
		copy(m.paint.rows[r.Min.Y:r.Max.Y], fresh)
	}
}

func (m *Model) showPlaceholder() bool {
	return m.placeholder != "" && !m.focused && m.layers.source.Len() == 0 && m.paint.size.Y > 0
}

func (m *Model) placeholderLine(width int) string {
	var sb strings.Builder
	w := 0
	for _, g := range grapheme.Split(m.placeholder) {
		if grapheme.IsNewline(g) {
			break
		}
		gw := grapheme.Width(g, w, grapheme.DefaultTabWidth)
		if w+gw > width {
			break
		}
		sb.WriteString(g)
		w += gw
	}
	return m.cfg.Style.Placeholder.Render(sb.String()) + strings.Repeat(" ", width-w)
}

// caretCell returns the caret's content-box cell when it is drawn.
func (m *Model) caretCell(content image.Rectangle) (image.Point, bool) {
	if !m.focused || !m.caretEl.Visible() {
		return image.Point{}, false
	}
	p := m.caretEl.Position()
	if !p.In(content) {
		return image.Point{}, false
	}
	return p.Sub(content.Min), true
}

// renderRow draws cells into width columns, with the caret at column cx
// when cx is not negative.
func (m *Model) renderRow(cells []textlayer.Cell, width, cx int) string {
	st := m.cfg.Style
	var sb strings.Builder
	var run strings.Builder
	var runStyle styletag.Style
	x := 0

	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(runStyle.Lipgloss(st.Text).Render(run.String()))
		run.Reset()
	}
	put := func(text string, s styletag.Style, w int, isCaret bool) {
		if isCaret {
			flush()
			sb.WriteString(s.Lipgloss(st.Caret).Render(text))
		} else {
			if s != runStyle {
				flush()
				runStyle = s
			}
			run.WriteString(text)
		}
		x += w
	}

	for _, c := range cells {
		for x < c.X {
			put(" ", styletag.Style{}, 1, x == cx)
		}
		put(c.Text, c.Style, c.Width, cx >= c.X && cx < c.X+c.Width)
	}
	for x < width {
		put(" ", styletag.Style{}, 1, x == cx)
	}
	flush()
	return sb.String()
}
