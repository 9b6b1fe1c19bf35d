package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("stages records until commit", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewFileStore(dir, "out")

		require.NoError(t, store.WriteRecord(context.Background(), "transportes", transportes))

		assert.FileExists(t, filepath.Join(dir, "out.tmp", "transportes.json"))
		assert.NoFileExists(t, filepath.Join(dir, "out", "transportes.json"))

		require.NoError(t, store.Commit())

		assert.FileExists(t, filepath.Join(dir, "out", "transportes.json"))
		assert.FileExists(t, filepath.Join(dir, "out", "transportes.csv"))
		assert.NoDirExists(t, filepath.Join(dir, "out.tmp"))
	})

	t.Run("keeps files of roles not written in the run", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "out"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "out", "mec.json"), []byte("{}"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "out", "transportes.json"), []byte("{}"), 0644))

		store := fs.NewFileStore(dir, "out")
		require.NoError(t, store.WriteRecord(context.Background(), "transportes", transportes))
		require.NoError(t, store.Commit())

		mec, err := os.ReadFile(filepath.Join(dir, "out", "mec.json"))
		require.NoError(t, err)
		assert.Equal(t, "{}", string(mec))

		got, err := os.ReadFile(filepath.Join(dir, "out", "transportes.json"))
		require.NoError(t, err)
		assert.Contains(t, string(got), "Renan Filho")
	})

	t.Run("overwrites a role written twice", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewFileStore(dir, "out")
		ctx := context.Background()

		require.NoError(t, store.WriteRecord(ctx, "mec", &quemequem.Record{Name: "Primeiro"}))
		require.NoError(t, store.WriteRecord(ctx, "mec", &quemequem.Record{Name: "Segundo"}))
		require.NoError(t, store.Commit())

		got, err := os.ReadFile(filepath.Join(dir, "out", "mec.json"))
		require.NoError(t, err)
		assert.Contains(t, string(got), "Segundo")
	})

	t.Run("abort discards staged records", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewFileStore(dir, "out")

		require.NoError(t, store.WriteRecord(context.Background(), "transportes", transportes))
		require.NoError(t, store.Abort())

		assert.NoDirExists(t, filepath.Join(dir, "out.tmp"))
		assert.NoDirExists(t, filepath.Join(dir, "out"))
	})

	t.Run("rejects role ids that escape the directory", func(t *testing.T) {
		t.Parallel()

		store := fs.NewFileStore(t.TempDir(), "out")

		err := store.WriteRecord(context.Background(), "../mec", transportes)

		require.Error(t, err)
		assert.Equal(t, quemequem.EINVALID, quemequem.ErrorCode(err))
	})
}

func TestWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	w := fs.NewWriter(dir)

	require.NoError(t, w.WriteRecord(context.Background(), "transportes", transportes))

	got, err := os.ReadFile(filepath.Join(dir, "transportes.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "name,title,phones,emails,source")
}
