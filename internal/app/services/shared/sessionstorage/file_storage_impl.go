package sessionstorage

import (
	"context"
	"errors"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type fileStorage struct {
	path string
	mu   sync.Mutex
	Log  *zap.Logger
}

// NewFileStorage keeps every item in one JSON object at path. The file is
// created on first write with mode 0600.
func NewFileStorage(path string, logger *zap.Logger) contracts.SessionStorage {
	return &fileStorage{path: path, Log: logger}
}

func (s *fileStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		s.Log.Error("fileStorage.GetItem error loading session file",
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return "", false, exceptions.ErrStorageRead(err, key)
	}

	value, found := items[key]
	return value, found, nil
}

func (s *fileStorage) SetItem(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		s.Log.Error("fileStorage.SetItem error loading session file",
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(err, key)
	}

	items[key] = value
	err = s.save(items)
	if err != nil {
		s.Log.Error("fileStorage.SetItem error saving session file",
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(err, key)
	}
	return nil
}

func (s *fileStorage) RemoveItem(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		s.Log.Error("fileStorage.RemoveItem error loading session file",
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStorageRemove(err, key)
	}
	if _, found := items[key]; !found {
		return nil
	}

	delete(items, key)
	err = s.save(items)
	if err != nil {
		s.Log.Error("fileStorage.RemoveItem error saving session file",
			zap.String(constvars.LoggingStorageKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStorageRemove(err, key)
	}
	return nil
}

func (s *fileStorage) load() (map[string]string, error) {
	items := make(map[string]string)

	content, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return items, nil
	}

	err = json.Unmarshal(content, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// save replaces the file through a temporary sibling and a rename.
func (s *fileStorage) save(items map[string]string) error {
	content, err := json.Marshal(items)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	err = os.MkdirAll(dir, 0o700)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	_, err = tmp.Write(content)
	if err == nil {
		err = tmp.Chmod(0o600)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	return os.Rename(tmpName, s.path)
}
