package textedit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/texted/widget"
)

func TestView_Frame(t *testing.T) {
	m := newModel(t, Config{Width: 8})
	setText(t, m, "ab")

	want := strings.Join([]string{
		"┌──────┐",
		"│ ab   │",
		"└──────┘",
	}, "\n")
	if diff := cmp.Diff(want, m.View()); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
	if got, want := m.Paint(), m.View(); got != want {
		t.Fatalf("Paint differs from View")
	}
}

func TestView_ClipsToContent(t *testing.T) {
	m := newModel(t, Config{Width: 8})
	setText(t, m, "abcdefgh")
	lines := strings.Split(m.View(), "\n")
	if got, want := len(lines), 3; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	for _, l := range lines {
		if got, want := len([]rune(l)), 8; got != want {
			t.Fatalf("line %q has width %d, want %d", l, got, want)
		}
	}
}

func TestView_Placeholder(t *testing.T) {
	m := newModel(t, Config{Placeholder: "Type here please"})
	if v := m.View(); !strings.Contains(v, "Type here please") {
		t.Fatalf("placeholder missing:\n%s", v)
	}
	m.Focus()
	if v := m.View(); strings.Contains(v, "Type") {
		t.Fatalf("placeholder shown while focused:\n%s", v)
	}
	m.Blur()
	setText(t, m, "x")
	if v := m.View(); strings.Contains(v, "Type") {
		t.Fatalf("placeholder shown over text:\n%s", v)
	}
}

func TestView_PlaceholderTruncated(t *testing.T) {
	m := newModel(t, Config{Width: 8, Placeholder: "abcdefgh"})
	want := "│ abcd │"
	if got := strings.Split(m.View(), "\n")[1]; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
}

func TestView_RepaintsOnlyInvalidatedRows(t *testing.T) {
	m := newModel(t, Config{Multiline: true, Height: 5})
	setText(t, m, "one\ntwo\nthree")
	if v := m.View(); !strings.Contains(v, "three") {
		t.Fatalf("first view missing text:\n%s", v)
	}

	m.Backspace(2)
	m.Task()
	lines := strings.Split(m.View(), "\n")
	if got, want := lines[3], framedRow(m, "thr"); got != want {
		t.Fatalf("edited row=%q, want %q", got, want)
	}
	if got, want := lines[1], framedRow(m, "one"); got != want {
		t.Fatalf("untouched row=%q, want %q", got, want)
	}
}

func TestView_MultilineRows(t *testing.T) {
	m := newModel(t, Config{Multiline: true, Height: 5})
	setText(t, m, "one\ntwo\nthree")
	lines := strings.Split(m.View(), "\n")
	got := []string{lines[1], lines[2], lines[3]}
	want := []string{framedRow(m, "one"), framedRow(m, "two"), framedRow(m, "three")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestView_CRLFBreaksRows(t *testing.T) {
	m := newModel(t, Config{Multiline: true, Height: 4})
	setText(t, m, "ab\r\ncd")
	if got, want := m.layers.source.RowTotal(), 2; got != want {
		t.Fatalf("rows=%d, want %d", got, want)
	}
	lines := strings.Split(m.View(), "\n")
	got := []string{lines[1], lines[2]}
	if diff := cmp.Diff([]string{framedRow(m, "ab"), framedRow(m, "cd")}, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if got, want := m.Text(), "ab\r\ncd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestView_CRLFMasked(t *testing.T) {
	m := newModel(t, Config{Multiline: true, Height: 4, PasswordChar: '*'})
	setText(t, m, "ab\r\ncd")
	if got, want := m.layers.mask.RowTotal(), 2; got != want {
		t.Fatalf("mask rows=%d, want %d", got, want)
	}
	lines := strings.Split(m.View(), "\n")
	if got, want := lines[2], framedRow(m, "**"); got != want {
		t.Fatalf("second row=%q, want %q", got, want)
	}
}

// framedRow renders text as one bordered content row of m, padded to the
// content width.
func framedRow(m *Model, text string) string {
	pad := m.Box.ContentSize().X - len([]rune(text))
	return "│ " + text + strings.Repeat(" ", pad) + " │"
}

func TestAutoSize(t *testing.T) {
	m := newModel(t, Config{})
	if w, h := m.AutoSize(); w != DefaultAutoWidth || h != 3 {
		t.Fatalf("auto size=(%d,%d), want (%d,3)", w, h, DefaultAutoWidth)
	}

	ml := newModel(t, Config{Multiline: true})
	setText(t, ml, "1\n2\n3\n4\n5")
	if _, h := ml.AutoSize(); h != 5 {
		t.Fatalf("multiline auto height=%d, want 5", h)
	}
	if got, want := ml.Size().Y, 5; got != want {
		t.Fatalf("height after text=%d, want %d", got, want)
	}

	cb := newModel(t, Config{Sizing: widget.ContentBox, AutoWidth: 10})
	if w, h := cb.AutoSize(); w != 10 || h != 1 {
		t.Fatalf("content box auto size=(%d,%d), want (10,1)", w, h)
	}
}
