package mock

import (
	"context"

	"github.com/claricenunes/quemequem"
)

var _ quemequem.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of quemequem.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, roleID string, rec *quemequem.Record) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, roleID string, rec *quemequem.Record) error {
	return w.WriteRecordFn(ctx, roleID, rec)
}

var _ quemequem.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of quemequem.RecordStore.
type RecordStore struct {
	WriteRecordFn func(ctx context.Context, roleID string, rec *quemequem.Record) error
	CommitFn      func() error
	AbortFn       func() error
}

func (s *RecordStore) WriteRecord(ctx context.Context, roleID string, rec *quemequem.Record) error {
	return s.WriteRecordFn(ctx, roleID, rec)
}

func (s *RecordStore) Commit() error {
	return s.CommitFn()
}

func (s *RecordStore) Abort() error {
	return s.AbortFn()
}
