package fs

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/claricenunes/quemequem"
)

// Ensure FileStore implements quemequem.RecordStore at compile time.
var _ quemequem.RecordStore = (*FileStore)(nil)

// FileStore stages records in baseDir/name.tmp and moves them into
// baseDir/name on Commit. Files of roles not written in this run are left
// untouched, and every committed file is replaced with a single rename.
type FileStore struct {
	baseDir string
	name    string

	mu    sync.Mutex
	files map[string]bool
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteRecord stages the JSON and CSV files for roleID.
func (s *FileStore) WriteRecord(ctx context.Context, roleID string, rec *quemequem.Record) error {
	files, err := recordFiles(roleID, rec)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(s.tempDir(), name), content, 0644); err != nil {
			return err
		}
		if s.files == nil {
			s.files = make(map[string]bool)
		}
		s.files[name] = true
	}
	return nil
}

// Commit moves every staged file into the output directory and removes the
// staging directory.
func (s *FileStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.finalDir(), 0755); err != nil {
		return err
	}
	for name := range s.files {
		if err := os.Rename(filepath.Join(s.tempDir(), name), filepath.Join(s.finalDir(), name)); err != nil {
			return err
		}
	}
	s.files = nil
	return os.RemoveAll(s.tempDir())
}

// Abort discards every staged file.
func (s *FileStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = nil
	return os.RemoveAll(s.tempDir())
}
