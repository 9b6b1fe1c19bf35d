package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/claricenunes/quemequem"
)

// Ensure Writer implements quemequem.RecordWriter at compile time.
var _ quemequem.RecordWriter = (*Writer)(nil)

// Writer writes each record straight into a directory as <role>.json and
// <role>.csv.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecord writes the JSON and CSV files for roleID.
func (w *Writer) WriteRecord(ctx context.Context, roleID string, rec *quemequem.Record) error {
	files, err := recordFiles(roleID, rec)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(w.baseDir, name), content, 0644); err != nil {
			return err
		}
	}
	return nil
}
