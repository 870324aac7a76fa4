package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yoockh/chatrelay/internal/models"
)

// FileStore appends encoded records to a single file.
// The file and its directory are created on the first append. Every entry is written
// with one Write call on an O_APPEND descriptor while holding mu, then fsynced, so
// concurrent appenders never interleave bytes and a nil error means the entry is on disk.
type FileStore struct {
	name string
	path string
	enc  Encoding
	mu   sync.Mutex
}

func NewFileStore(name, path string, enc Encoding) *FileStore {
	return &FileStore{name: name, path: path, enc: enc}
}

func NewCSVStore(path string) *FileStore { return NewFileStore("csv", path, CSVEncoding{}) }

func NewLogStore(path string) *FileStore { return NewFileStore("log", path, BlockEncoding{}) }

func (s *FileStore) Name() string { return s.name }

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Append(_ context.Context, rec *models.InteractionRecord) (err error) {
	entry, err := s.enc.Encode(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to ensure log dir: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open append: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	if header := s.enc.Header(); header != nil {
		st, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat: %w", err)
		}
		if st.Size() == 0 {
			entry = append(header, entry...)
		}
	}

	if _, err := f.Write(entry); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
