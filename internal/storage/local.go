package storage

import (
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalStorage persists uploaded files on local disk and serves them back
// under a relative access path.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates a LocalStorage rooted at dir. The directory is
// created lazily on first save.
func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

// Save writes src under the client-supplied filename and returns the
// relative access path. Two uploads with the same name overwrite each other;
// that is the documented behavior, not collision handling left to chance.
func (s *LocalStorage) Save(filename string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/" + path.Join(filepath.Base(s.dir), filename), nil
}

// Remove deletes the file backing the given access path. A file that is
// already absent counts as success.
func (s *LocalStorage) Remove(imageURL string) error {
	err := os.Remove(filepath.Join(s.dir, path.Base(imageURL)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
