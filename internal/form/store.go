// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package form holds the client-side form state: the selected input
// document, the output name, and the ordered list of replacements.
//
// Every mutation installs a fresh replacements slice, so a State returned
// by Snapshot is never changed by later edits.
package form

import (
	"sync"

	"github.com/pdiddy/docreplace/pkg/types"
)

// Field names one side of a replacement pair.
type Field string

const (
	FieldFind    Field = "find"
	FieldReplace Field = "replace"
)

// State is an immutable snapshot of the form.
type State struct {
	// Input is the selected document, nil when none is selected.
	Input Document

	// OutputName is the desired base name of the downloaded file.
	OutputName string

	// Replacements is the ordered list sent to the service.
	Replacements []types.Replacement
}

// HasInput reports whether a document is selected.
func (s State) HasInput() bool {
	return s.Input != nil
}

// Store holds the mutable form state.
type Store struct {
	mu    sync.RWMutex
	state State
}

// Option configures a new Store.
type Option func(*State)

// WithSeed starts the store with a copy of rs.
func WithSeed(rs []types.Replacement) Option {
	return func(s *State) {
		s.Replacements = types.CloneReplacements(rs)
	}
}

// WithOutputName starts the store with the given output name.
func WithOutputName(name string) Option {
	return func(s *State) {
		s.OutputName = name
	}
}

// NewStore returns an empty store with the given options applied.
func NewStore(opts ...Option) *Store {
	st := State{Replacements: []types.Replacement{}}
	for _, opt := range opts {
		opt(&st)
	}
	return &Store{state: st}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetFile replaces the selected document. A nil doc clears the selection.
func (s *Store) SetFile(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Input = doc
}

// SetOutputName replaces the output name verbatim.
func (s *Store) SetOutputName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.OutputName = name
}

// AddReplacement appends an empty pair.
func (s *Store) AddReplacement() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]types.Replacement, len(s.state.Replacements), len(s.state.Replacements)+1)
	copy(next, s.state.Replacements)
	s.state.Replacements = append(next, types.Replacement{})
}

// RemoveReplacement removes the pair at index i. It reports whether a pair
// was removed; an out-of-range index leaves the list unchanged.
func (s *Store) RemoveReplacement(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.state.Replacements
	if i < 0 || i >= len(cur) {
		return false
	}
	next := make([]types.Replacement, 0, len(cur)-1)
	next = append(next, cur[:i]...)
	next = append(next, cur[i+1:]...)
	s.state.Replacements = next
	return true
}

// UpdateReplacement sets one field of the pair at index i. It reports
// whether anything changed; an out-of-range index or unknown field is a no-op.
func (s *Store) UpdateReplacement(i int, field Field, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.state.Replacements
	if i < 0 || i >= len(cur) {
		return false
	}
	if field != FieldFind && field != FieldReplace {
		return false
	}
	next := types.CloneReplacements(cur)
	switch field {
	case FieldFind:
		next[i].Find = value
	case FieldReplace:
		next[i].Replace = value
	}
	s.state.Replacements = next
	return true
}

// SetReplacements replaces the whole list with a copy of rs.
func (s *Store) SetReplacements(rs []types.Replacement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Replacements = types.CloneReplacements(rs)
}
