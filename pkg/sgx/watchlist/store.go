// Package watchlist maintains the ordered set of tracked symbols. Insertion
// order is preserved and ticker uniqueness is enforced on the canonical symbol
// form. Persistence failures degrade to in-memory state; losing a save is not
// worth crashing a watchlist over.
package watchlist

import (
	"github.com/rs/zerolog/log"

	"github.com/komsit37/sgx/pkg/sgx/quote"
	"github.com/komsit37/sgx/pkg/sgx/types"
)

type Store struct {
	storage Storage
	entries []types.Entry
}

// New loads the persisted sequence. Corrupt or unreadable storage yields an
// empty watchlist.
func New(storage Storage) *Store {
	s := &Store{storage: storage}
	entries, err := storage.Load()
	if err != nil {
		log.Warn().Err(err).Msg("watchlist load failed, starting empty")
		entries = nil
	}
	s.entries = entries
	return s
}

// Contains reports whether an entry with the same canonical symbol exists.
func (s *Store) Contains(ticker string) bool {
	sym := quote.CanonicalSymbol(ticker)
	for _, e := range s.entries {
		if quote.CanonicalSymbol(e.Ticker) == sym {
			return true
		}
	}
	return false
}

// Add canonicalizes ticker and appends an entry unless one with the same
// canonical symbol already exists. Reports whether the entry was added.
func (s *Store) Add(ticker, name string) bool {
	sym := quote.CanonicalSymbol(ticker)
	if sym == "" || s.Contains(sym) {
		return false
	}
	if name == "" {
		name = sym
	}
	s.entries = append(s.entries, types.Entry{Ticker: sym, Name: name})
	s.save()
	return true
}

// Remove deletes the entry with the given ticker, preserving the order of the
// rest. Reports whether an entry was removed.
func (s *Store) Remove(ticker string) bool {
	sym := quote.CanonicalSymbol(ticker)
	for i, e := range s.entries {
		if quote.CanonicalSymbol(e.Ticker) == sym {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}

// Clear empties the watchlist unconditionally.
func (s *Store) Clear() {
	s.entries = nil
	s.save()
}

// Entries returns a snapshot copy in insertion order.
func (s *Store) Entries() []types.Entry {
	out := make([]types.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) save() {
	if err := s.storage.Save(s.entries); err != nil {
		log.Warn().Err(err).Msg("watchlist save failed, continuing in memory")
	}
}
