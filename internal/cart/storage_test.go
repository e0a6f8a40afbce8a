package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	storage := NewFileStorage(path)

	want := &State{
		Items:    []Item{{ID: "a", Name: "Oil", UnitPrice: 30, Quantity: 2, ImageURL: "/a.png"}},
		Province: "ON",
	}
	require.NoError(t, storage.Save(want))

	got, err := storage.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Items, got.Items)
	assert.Equal(t, "ON", got.Province)
}

func TestFileStorage_MissingFile(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "absent.json"))

	got, err := storage.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStorage(path).Load()
	assert.Error(t, err)
}
