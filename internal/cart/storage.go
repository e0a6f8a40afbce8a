package cart

import (
	"encoding/json"
	"os"
)

// Storage persists the cart between runs. Implementations must treat Load on
// a never-saved cart as a normal condition, not an error.
type Storage interface {
	Load() (*State, error)
	Save(*State) error
}

// FileStorage keeps the cart as a JSON file, the server-side analog of the
// browser's local storage entry.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

// Load reads the persisted cart. A missing file yields (nil, nil).
func (f *FileStorage) Load() (*State, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (f *FileStorage) Save(st *State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, raw, 0o644)
}
