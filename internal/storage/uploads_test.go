package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredName(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	assert.Equal(t, "1700000000123pad-thai.jpg", StoredName(at, "pad-thai.jpg"))
	assert.Equal(t, "1700000000123passwd", StoredName(at, "../../etc/passwd"))
}

func TestDiskImageStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskImageStore(dir)
	require.NoError(t, err)

	at := time.UnixMilli(1700000000123)
	store.(*diskImageStore).now = func() time.Time { return at }

	name, err := store.Save("curry.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "1700000000123curry.png", name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}
