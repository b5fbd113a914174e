// Package state holds the in-memory document state: the single current
// assignment plus the upload side-state that survives between
// generations.
package state

import (
	"sync"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

// Store is the application state. A successful generation replaces the
// current assignment wholesale; there are no partial merges.
type Store struct {
	mu              sync.RWMutex
	current         *entity.GeneratedAssignment
	logo            []byte
	documentContext string
}

func NewStore() *Store {
	return &Store{}
}

// Current returns the last generated assignment, or nil when none has
// been generated since the last reset.
func (s *Store) Current() *entity.GeneratedAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) SetCurrent(a *entity.GeneratedAssignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = a
}

func (s *Store) Logo() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logo
}

func (s *Store) SetLogo(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logo = data
}

func (s *Store) ClearLogo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logo = nil
}

func (s *Store) DocumentContext() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documentContext
}

func (s *Store) SetDocumentContext(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documentContext = text
}

// Reset drops the assignment and document context. The logo survives so
// repeated generations keep the uploaded branding.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.documentContext = ""
}
