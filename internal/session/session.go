// Package session persists the active session to durable client storage.
// One fixed key holds the serialized session; absence means logged out.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AsanTolepov/softwash/internal/model"
)

// ErrNoSession is returned by Load when no session is stored.
var ErrNoSession = errors.New("session: none stored")

// Store is the durable client storage for the session.
type Store interface {
	Load() (model.Session, error)
	Save(s model.Session) error
	Clear() error
}

// FileStore keeps the session as a JSON file, the desktop analogue of a
// browser's localStorage entry.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (model.Session, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", f.path, err)
	}
	s, err := model.DecodeSession(data)
	if err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	return s, nil
}

func (f *FileStore) Save(s model.Session) error {
	data, err := model.EncodeSession(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: clear %s: %w", f.path, err)
	}
	return nil
}
