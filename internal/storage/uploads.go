package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// ImageStore persists uploaded recipe images and returns the stored name.
type ImageStore interface {
	Save(originalName string, content io.Reader) (string, error)
}

type diskImageStore struct {
	dir string
	now func() time.Time
}

// NewDiskImageStore stores images under dir, which is created if needed.
func NewDiskImageStore(dir string) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &diskImageStore{dir: dir, now: time.Now}, nil
}

// StoredName is the millisecond timestamp followed by the base of the
// original file name.
func StoredName(at time.Time, originalName string) string {
	base := filepath.Base(filepath.Clean("/" + originalName))
	if base == "/" || base == "." {
		base = "upload"
	}
	return strconv.FormatInt(at.UnixMilli(), 10) + base
}

func (s *diskImageStore) Save(originalName string, content io.Reader) (string, error) {
	name := StoredName(s.now(), originalName)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	log.Debug().Str("file", path).Msg("Stored recipe image")
	return name, nil
}
