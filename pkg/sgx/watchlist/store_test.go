package watchlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/sgx/pkg/sgx/types"
)

func tempStorage(t *testing.T) *YAMLStorage {
	t.Helper()
	return NewYAMLStorage(filepath.Join(t.TempDir(), "watchlist.yaml"))
}

func TestStore_AddDeduplicatesOnCanonicalSymbol(t *testing.T) {
	s := New(tempStorage(t))

	assert.True(t, s.Add("D05", "DBS Group Holdings Ltd"))
	assert.False(t, s.Add("d05.si", "duplicate"))
	assert.False(t, s.Add(" D05.SI ", "duplicate"))

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "D05.SI", entries[0].Ticker)
	assert.Equal(t, "DBS Group Holdings Ltd", entries[0].Name)
}

func TestStore_AddPreservesInsertionOrder(t *testing.T) {
	s := New(tempStorage(t))
	s.Add("D05", "DBS")
	s.Add("Z74", "Singtel")
	s.Add("U11", "UOB")

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "D05.SI", entries[0].Ticker)
	assert.Equal(t, "Z74.SI", entries[1].Ticker)
	assert.Equal(t, "U11.SI", entries[2].Ticker)
}

func TestStore_AddEmptyTickerRejected(t *testing.T) {
	s := New(tempStorage(t))
	assert.False(t, s.Add("  ", "blank"))
	assert.Empty(t, s.Entries())
}

func TestStore_AddNameFallsBackToSymbol(t *testing.T) {
	s := New(tempStorage(t))
	s.Add("Z74", "")
	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Z74.SI", entries[0].Name)
}

func TestStore_Contains(t *testing.T) {
	s := New(tempStorage(t))
	s.Add("D05", "DBS")

	assert.True(t, s.Contains("D05"))
	assert.True(t, s.Contains("d05.si"))
	assert.True(t, s.Contains(" D05.SI "))
	assert.False(t, s.Contains("Z74"))
}

func TestStore_Remove(t *testing.T) {
	s := New(tempStorage(t))
	s.Add("D05", "DBS")
	s.Add("Z74", "Singtel")

	assert.True(t, s.Remove("d05"))
	assert.False(t, s.Remove("D05"), "already removed")

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Z74.SI", entries[0].Ticker)
}

func TestStore_ClearPersistsEmpty(t *testing.T) {
	storage := tempStorage(t)
	s := New(storage)
	s.Add("D05", "DBS")
	s.Clear()
	assert.Empty(t, s.Entries())

	reloaded := New(storage)
	assert.Empty(t, reloaded.Entries())
}

func TestStore_RoundTripsThroughStorage(t *testing.T) {
	storage := tempStorage(t)
	s := New(storage)
	s.Add("D05", "DBS Group Holdings Ltd 星展银行")
	s.Add("Z74", "Singtel")

	reloaded := New(storage)
	entries := reloaded.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "DBS Group Holdings Ltd 星展银行", entries[0].Name)
	assert.Equal(t, "Z74.SI", entries[1].Ticker)
}

func TestStore_EntriesIsASnapshot(t *testing.T) {
	s := New(tempStorage(t))
	s.Add("D05", "DBS")

	entries := s.Entries()
	entries[0].Ticker = "MUTATED"
	assert.Equal(t, "D05.SI", s.Entries()[0].Ticker)
}

func TestYAMLStorage_MissingFileIsEmpty(t *testing.T) {
	storage := NewYAMLStorage(filepath.Join(t.TempDir(), "absent.yaml"))
	entries, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_CorruptStorageStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not yaml"), 0o644))

	s := New(NewYAMLStorage(path))
	assert.Empty(t, s.Entries())
}

type failingStorage struct{}

func (failingStorage) Load() ([]types.Entry, error) { return nil, errors.New("disk gone") }
func (failingStorage) Save([]types.Entry) error     { return errors.New("disk gone") }

func TestStore_SaveFailureKeepsInMemoryState(t *testing.T) {
	s := New(failingStorage{})
	assert.True(t, s.Add("D05", "DBS"))
	require.Len(t, s.Entries(), 1)
}
