// Package vocabulary holds, loads and caches the graded word lists that the
// validator checks text against.
package vocabulary

import (
	"sync/atomic"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// Store holds the active vocabulary of one session. The table is only ever
// replaced as a whole, so readers see either the previous complete table or
// the new one.
type Store struct {
	current atomic.Pointer[domain.Vocabulary]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Snapshot returns the active vocabulary. Callers must not modify it.
func (s *Store) Snapshot() domain.Vocabulary {
	return *s.current.Load()
}

// Replace swaps in v as the active vocabulary. A nil v is stored as empty.
func (s *Store) Replace(v domain.Vocabulary) {
	if v == nil {
		v = domain.Vocabulary{}
	}
	s.current.Store(&v)
}

// Reset installs an explicitly empty vocabulary.
func (s *Store) Reset() {
	s.Replace(domain.Vocabulary{})
}
