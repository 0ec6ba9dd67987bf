package textedit

import (
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/texted/editbuffer"
)

func TestModel_SetTextRoundTrip(t *testing.T) {
	for _, text := range []string{
		"",
		"plain",
		"héllo wörld",
		"wide 界界 chars",
		"two\nrows",
		"[b]not a tag when disabled[/b]",
		strings.Repeat("long block text ", 100),
	} {
		m := newModel(t, Config{Multiline: true, BlockSize: 7})
		setText(t, m, text)
		if got := m.GetText(0, len([]rune(text))); got != text {
			t.Fatalf("round trip=%q, want %q", got, text)
		}
	}
}

func TestModel_SetTextReplaces(t *testing.T) {
	m := newModel(t, Config{})
	setText(t, m, "first")
	setText(t, m, "second")
	if got, want := m.Text(), "second"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_SetTextDropsQueuedText(t *testing.T) {
	m := newModel(t, Config{})
	if err := m.AppendText("stale"); err != nil {
		t.Fatal(err)
	}
	setText(t, m, "fresh")
	if got, want := m.Text(), "fresh"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_RuneForms(t *testing.T) {
	m := newModel(t, Config{})
	if err := m.SetTextRunes([]rune("ab")); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendTextRunes([]rune("界")); err != nil {
		t.Fatal(err)
	}
	m.Task()
	if got, want := m.Text(), "ab界"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_AppendTextWaitsForFrame(t *testing.T) {
	m := newModel(t, Config{})
	if err := m.AppendText("abc"); err != nil {
		t.Fatal(err)
	}
	if got, want := m.Pending(), 1; got != want {
		t.Fatalf("pending=%d, want %d", got, want)
	}
	if m.Text() != "" {
		t.Fatalf("text applied before the frame")
	}
	if !m.TaskPending() {
		t.Fatalf("expected a pending task")
	}
	m.Task()
	if got, want := m.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := m.Pending(); got != 0 {
		t.Fatalf("pending after frame=%d, want 0", got)
	}

	// A frame with nothing queued changes nothing.
	m.Task()
	if got, want := m.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_InsertsApplyAgainstCaretAtDrain(t *testing.T) {
	m := newModel(t, Config{})
	m.Focus()
	setText(t, m, "ad")
	press(m, tea.KeyLeft)

	if err := m.InsertText("b"); err != nil {
		t.Fatal(err)
	}
	if err := m.InsertTextRunes([]rune("c")); err != nil {
		t.Fatal(err)
	}
	m.Task()
	if got, want := m.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := m.Caret().Col, 3; got != want {
		t.Fatalf("caret col=%d, want %d", got, want)
	}
}

func TestModel_GetTextRange(t *testing.T) {
	m := newModel(t, Config{})
	setText(t, m, "abcdef")
	if got, want := m.GetText(2, 3), "cde"; got != want {
		t.Fatalf("GetText(2,3)=%q, want %q", got, want)
	}
	if got, want := m.GetText(4, 10), "ef"; got != want {
		t.Fatalf("GetText(4,10)=%q, want %q", got, want)
	}
	if got, want := m.Len(), 6; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
}

func TestModel_BackspaceAtStartIsNoop(t *testing.T) {
	m := newModel(t, Config{})
	m.Focus()
	setText(t, m, "abc")
	press(m, tea.KeyHome)

	if got := m.Backspace(1); got != 0 {
		t.Fatalf("removed=%d, want 0", got)
	}
	if got, want := m.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := m.Delete(1), 1; got != want {
		t.Fatalf("delete removed=%d, want %d", got, want)
	}
	if got, want := m.Text(), "bc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_BackspaceAndDeleteAtEnd(t *testing.T) {
	m := newModel(t, Config{})
	setText(t, m, "abc")
	if got := m.Delete(1); got != 0 {
		t.Fatalf("delete at end removed=%d, want 0", got)
	}
	if got, want := m.Backspace(2), 2; got != want {
		t.Fatalf("backspace removed=%d, want %d", got, want)
	}
	if got, want := m.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_ClearText(t *testing.T) {
	m := newModel(t, Config{UsingStyleTags: true})
	setText(t, m, "[b]open")
	m.ClearText()
	if got := m.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	setText(t, m, "plain")
	if got, want := m.Text(), "plain"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_StyleTagsAreParsed(t *testing.T) {
	m := newModel(t, Config{UsingStyleTags: true, BlockSize: 4})
	setText(t, m, "[b]bold[/b] [color=#f00]red[/color]")
	if got, want := m.Text(), "bold red"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_OutOfMemory(t *testing.T) {
	m := newModel(t, Config{MaxPending: 4})
	if err := m.AppendText("abc"); err != nil {
		t.Fatal(err)
	}
	err := m.AppendText("hello")
	if !errors.Is(err, editbuffer.ErrOutOfMemory) {
		t.Fatalf("err=%v, want ErrOutOfMemory", err)
	}
	m.Task()
	if got, want := m.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_ConcurrentAppends(t *testing.T) {
	m := newModel(t, Config{})
	const producers, each = 4, 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				if err := m.AppendText("ab"); err != nil {
					t.Errorf("append: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	m.Task()

	if got, want := m.Text(), strings.Repeat("ab", producers*each); got != want {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
}

func TestModel_OnChange(t *testing.T) {
	var events []ChangeEvent
	m := newModel(t, Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})

	setText(t, m, "abc")
	m.Task()
	m.Backspace(1)
	m.Task()

	want := []string{"abc", "ab"}
	var got []string
	for _, ev := range events {
		got = append(got, ev.Text)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("change events mismatch (-want +got):\n%s", diff)
	}
	if got, want := events[1].Caret.Col, 2; got != want {
		t.Fatalf("caret col=%d, want %d", got, want)
	}
}

func TestModel_PasswordNeverLeaks(t *testing.T) {
	m := newModel(t, Config{PasswordChar: '•'})
	setText(t, m, "secret")

	if got, want := m.ActiveLayer(), MaskLayer; got != want {
		t.Fatalf("active layer=%v, want %v", got, want)
	}
	if got, want := m.Text(), "secret"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := m.GetText(1, 3), "ecr"; got != want {
		t.Fatalf("GetText=%q, want %q", got, want)
	}
	v := m.View()
	if strings.Contains(v, "secret") {
		t.Fatalf("view leaked the text:\n%s", v)
	}
	if !strings.Contains(v, "••••••") {
		t.Fatalf("view missing mask:\n%s", v)
	}
}

func TestModel_PasswordEditsStayMirrored(t *testing.T) {
	m := newModel(t, Config{PasswordChar: '*'})
	m.Focus()
	setText(t, m, "abcd")
	press(m, tea.KeyLeft)
	press(m, tea.KeyBackspace)
	typeRunes(m, "X")
	m.Task()

	if got, want := m.Text(), "abXd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if !strings.Contains(m.View(), "****") {
		t.Fatalf("mask not mirrored:\n%s", m.View())
	}
}

func TestModel_MaskMatchesSourceAcrossTags(t *testing.T) {
	// The tag splits the base letter from its combining mark, so the source
	// holds them as two characters.
	m := newModel(t, Config{UsingStyleTags: true, PasswordChar: '*'})
	setText(t, m, "e[b][/b]\u0301xy")
	if got, want := m.layers.mask.Len(), m.layers.source.Len(); got != want {
		t.Fatalf("mask len=%d, source len=%d", got, want)
	}
	if got, want := m.Len(), 4; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}

	if got := m.Backspace(1); got != 1 {
		t.Fatalf("removed=%d, want 1", got)
	}
	if got, want := m.Text(), "e\u0301x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	if err := m.InsertText("[i][/i]\u0301"); err != nil {
		t.Fatal(err)
	}
	m.Task()
	if got, want := m.layers.mask.Len(), m.layers.source.Len(); got != want {
		t.Fatalf("after insert mask len=%d, source len=%d", got, want)
	}

	m.SetPasswordChar('#')
	if got, want := m.layers.mask.Len(), m.layers.source.Len(); got != want {
		t.Fatalf("after remask mask len=%d, source len=%d", got, want)
	}
}

func TestModel_SetPasswordCharToggles(t *testing.T) {
	m := newModel(t, Config{})
	setText(t, m, "abc")

	m.SetPasswordChar('#')
	if !strings.Contains(m.View(), "###") || strings.Contains(m.View(), "abc") {
		t.Fatalf("masking not applied:\n%s", m.View())
	}
	m.SetPasswordChar(0)
	if got, want := m.ActiveLayer(), SourceLayer; got != want {
		t.Fatalf("active layer=%v, want %v", got, want)
	}
	if !strings.Contains(m.View(), "abc") {
		t.Fatalf("text not shown after unmasking:\n%s", m.View())
	}
}
