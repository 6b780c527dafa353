package blob

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore keeps each collection document as one JSON file under dir.
type FileStore struct {
	dir string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data dir %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	doc, err := ioutil.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrAbsent
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading document %s", key)
	}
	return doc, nil
}

func (s *FileStore) Put(ctx context.Context, key string, doc []byte) error {
	// write-then-rename so a crashed write never truncates the document
	tmp := s.path(key) + ".tmp"
	if err := ioutil.WriteFile(tmp, doc, 0o644); err != nil {
		return errors.Wrapf(err, "writing document %s", key)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return errors.Wrapf(err, "replacing document %s", key)
	}
	return nil
}
