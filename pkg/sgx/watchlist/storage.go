package watchlist

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/komsit37/sgx/pkg/sgx/types"
)

// Storage persists the full ordered watchlist. The sequence is the unit of
// save/load; there is no partial update.
type Storage interface {
	Load() ([]types.Entry, error)
	Save(entries []types.Entry) error
}

// YAMLStorage stores the watchlist as an ordered YAML list of
// {ticker, name} records at a fixed path.
type YAMLStorage struct {
	Path string
}

func NewYAMLStorage(path string) *YAMLStorage { return &YAMLStorage{Path: path} }

// Load reads the full sequence. A missing file is an empty watchlist, not an
// error.
func (s *YAMLStorage) Load() ([]types.Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var entries []types.Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Save writes the full sequence, creating parent directories as needed.
func (s *YAMLStorage) Save(entries []types.Entry) error {
	if entries == nil {
		entries = []types.Entry{}
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, data, 0o644)
}
