// Package ime tracks which widget receives composed text input.
package ime

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Target receives text committed by an input method.
type Target interface {
	InputText(text []rune)
}

// Manager holds at most one current target.
type Manager struct {
	mu     sync.Mutex
	target Target
	log    *zap.Logger
}

// NewManager returns an empty manager. A nil logger disables logging.
func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{log: log.Named("ime")}
}

// Default is the process-wide manager widgets use unless told otherwise.
var Default = NewManager(nil)

// SetTarget makes t the current target, replacing any previous one.
func (m *Manager) SetTarget(t Target) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.target = t
	m.log.Debug("set target", zap.String("target", describe(t)))
}

// ClearTarget releases the current target. It does nothing when no target
// is set.
func (m *Manager) ClearTarget() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.target == nil {
		return
	}
	m.log.Debug("clear target", zap.String("target", describe(m.target)))
	m.target = nil
}

// Release clears the current target only if it is t.
func (m *Manager) Release(t Target) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.target == nil || m.target != t {
		return false
	}
	m.log.Debug("release target", zap.String("target", describe(t)))
	m.target = nil
	return true
}

func (m *Manager) Target() Target {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.target
}

// Commit delivers text to the current target and reports whether there was
// one.
func (m *Manager) Commit(text []rune) bool {
	t := m.Target()
	if t == nil {
		return false
	}
	t.InputText(text)
	return true
}

func describe(t Target) string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", t)
}
