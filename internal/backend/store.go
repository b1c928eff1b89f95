package backend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"snapdeck/internal/capture"
	"snapdeck/internal/config"
)

// Store places capture files under a base directory.
// Layout: <base>/snapdeck-<mode>-<selection>-<YYYYMMDD-HHMMSS>[-N].<ext>
type Store struct {
	baseDir string
	now     func() time.Time
}

// NewStore creates a store rooted at base, or at the user's home +
// config.DefaultOutputBase when base is empty.
func NewStore(base string) (*Store, error) {
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, config.DefaultOutputBase)
	}
	return &Store{baseDir: base, now: time.Now}, nil
}

// BaseDir returns the directory files are written to.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// FileName returns the collision-free base name for a capture taken at t.
func FileName(cfg capture.Configuration, t time.Time, ext string) string {
	return fmt.Sprintf("snapdeck-%s-%s-%s.%s", cfg.Mode, cfg.SelectionType, t.Format("20060102-150405"), ext)
}

// NextPath returns a path in the base directory that does not exist yet,
// creating the directory if needed.
func (s *Store) NextPath(cfg capture.Configuration, ext string) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", err
	}
	name := FileName(cfg, s.now(), ext)
	path := filepath.Join(s.baseDir, name)
	stem := path[:len(path)-len(ext)-1]
	for i := 2; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		path = fmt.Sprintf("%s-%d.%s", stem, i, ext)
	}
}

// Save writes data to a new file and returns its path.
func (s *Store) Save(cfg capture.Configuration, ext string, data []byte) (string, error) {
	for {
		path, err := s.NextPath(cfg, ext)
		if err != nil {
			return "", err
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			// Lost a race with another writer; pick the next suffix.
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", err
		}
		return path, f.Close()
	}
}
