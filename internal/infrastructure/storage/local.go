package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// PublicPrefix is the URL prefix cover images are served under. Book
// records reference images as PublicPrefix + "/" + filename.
const PublicPrefix = "/uploads"

// LocalStorage persists cover images in a single flat directory on local
// disk. Filenames are millisecond timestamps plus the original extension.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the directory images are written to.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes data under a generated unique name and returns the public
// relative path, e.g. /uploads/1717680000000.png.
func (s *LocalStorage) Save(data []byte, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := fmt.Sprintf("%d", time.Now().UnixMilli())

	// Two uploads can land on the same millisecond; suffix until free.
	name := base + ext
	for i := 1; ; i++ {
		if _, err := os.Stat(filepath.Join(s.dir, name)); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s-%d%s", base, i, ext)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return PublicPrefix + "/" + name, nil
}

// Delete removes the file referenced by a public relative path. Cleanup is
// best-effort: empty paths, paths outside the uploads prefix and missing
// files are logged and ignored. Only an actual removal failure is returned,
// and callers are expected to log and discard it.
func (s *LocalStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}

	if !strings.HasPrefix(relPath, PublicPrefix+"/") {
		log.Warn().Str("path", relPath).Msg("refusing to delete image outside the uploads prefix")
		return nil
	}

	// Base strips any directory components an attacker could smuggle in.
	absolute := filepath.Join(s.dir, filepath.Base(relPath))

	if _, err := os.Stat(absolute); os.IsNotExist(err) {
		log.Warn().Str("path", absolute).Msg("image scheduled for deletion does not exist")
		return nil
	}

	if err := os.Remove(absolute); err != nil {
		log.Error().Err(err).Str("path", absolute).Msg("failed to remove image")
		return fmt.Errorf("failed to remove image: %w", err)
	}

	return nil
}
