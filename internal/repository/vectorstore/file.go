package vectorstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// FileStore persists records as a pretty-printed JSON array in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path. The file need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads every record in file order. A missing file is an empty store.
func (s *FileStore) Load(_ context.Context) ([]domain.StoredRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.StoredRecord{}, nil
		}
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}

	var records []domain.StoredRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}
	if records == nil {
		return nil, &CorruptStoreError{Path: s.path, Err: errors.New("top-level value is not an array")}
	}
	if err := validate(records); err != nil {
		return nil, &CorruptStoreError{Path: s.path, Err: err}
	}
	return records, nil
}

// Save replaces the whole file with records. The data is written to a temp file
// in the same directory and renamed over the target.
func (s *FileStore) Save(_ context.Context, records []domain.StoredRecord) error {
	if records == nil {
		records = []domain.StoredRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// validate checks the record invariants a loaded store must hold.
func validate(records []domain.StoredRecord) error {
	for i := range records {
		if records[i].ID == "" {
			return fmt.Errorf("record %d has no id", i)
		}
		if !records[i].Type.Valid() {
			return fmt.Errorf("record %q has unknown type %q", records[i].ID, records[i].Type)
		}
	}
	if _, err := domain.Dimensions(records); err != nil {
		return err //nolint:wrapcheck // wrapped by caller
	}
	return nil
}
