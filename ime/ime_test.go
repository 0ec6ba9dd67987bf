package ime

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

type recorder struct{ got []string }

func (r *recorder) InputText(text []rune) { r.got = append(r.got, string(text)) }

func TestManager_SetAndClear(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))
	r := &recorder{}
	m.SetTarget(r)
	if m.Target() != r {
		t.Fatalf("target not set")
	}
	m.ClearTarget()
	if m.Target() != nil {
		t.Fatalf("target not cleared")
	}
	// A second clear has nothing to release.
	m.ClearTarget()
	if m.Target() != nil {
		t.Fatalf("target reappeared")
	}
}

func TestManager_ReleaseOnlyOwnTarget(t *testing.T) {
	m := NewManager(nil)
	a, b := &recorder{}, &recorder{}
	m.SetTarget(a)
	m.SetTarget(b)

	if m.Release(a) {
		t.Fatalf("released a target that was replaced")
	}
	if m.Target() != b {
		t.Fatalf("Release(a) dropped b")
	}
	if !m.Release(b) {
		t.Fatalf("expected Release(b)=true")
	}
	if m.Release(b) {
		t.Fatalf("double release reported true")
	}
}

func TestManager_Commit(t *testing.T) {
	m := NewManager(nil)
	if m.Commit([]rune("x")) {
		t.Fatalf("commit without target reported true")
	}
	r := &recorder{}
	m.SetTarget(r)
	m.Commit([]rune("héllo"))
	if got, want := len(r.got), 1; got != want {
		t.Fatalf("commits=%d, want %d", got, want)
	}
	if got, want := r.got[0], "héllo"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
