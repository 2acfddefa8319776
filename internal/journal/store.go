package journal

import (
	"github.com/rs/zerolog"

	"github.com/faizmokh/jurnal/internal/logging"
)

// Mirror receives the full journal after every mutation.
type Mirror interface {
	Write(entries []Entry) error
	Location() string
}

// Store keeps entries in insertion order. It is not safe for concurrent use;
// callers confine it to a single goroutine.
type Store struct {
	entries []Entry
	mirror  Mirror
	log     zerolog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMirror makes every Add and Clear rewrite the mirror.
func WithMirror(m Mirror) StoreOption {
	return func(s *Store) {
		s.mirror = m
	}
}

// WithLogger sets the logger used to report mirror failures.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = logging.Component(log, "store")
	}
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends entry to the journal.
func (s *Store) Add(entry Entry) {
	s.entries = append(s.entries, entry)
	s.log.Debug().
		Str("kind", entry.Kind.String()).
		Int("count", len(s.entries)).
		Msg("entry added")
	s.sync()
}

// All returns a copy of the entries in insertion order.
func (s *Store) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports how many entries the journal holds.
func (s *Store) Len() int {
	return len(s.entries)
}

// Clear drops every entry.
func (s *Store) Clear() {
	dropped := len(s.entries)
	s.entries = nil
	s.log.Debug().Int("dropped", dropped).Msg("journal cleared")
	s.sync()
}

// Save writes the mirror on request and, unlike the automatic write after a
// mutation, hands any failure back to the caller.
func (s *Store) Save() error {
	if s.mirror == nil {
		return ErrNoMirror
	}
	if err := s.mirror.Write(s.All()); err != nil {
		return err
	}
	s.log.Info().
		Str("path", s.mirror.Location()).
		Int("count", len(s.entries)).
		Msg("journal saved")
	return nil
}

// Location reports where the mirror writes, or "" when persistence is off.
func (s *Store) Location() string {
	if s.mirror == nil {
		return ""
	}
	return s.mirror.Location()
}

// sync mirrors the journal after a mutation. Failures are logged only.
func (s *Store) sync() {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Write(s.All()); err != nil {
		s.log.Error().
			Err(err).
			Str("path", s.mirror.Location()).
			Msg("mirror journal")
	}
}
