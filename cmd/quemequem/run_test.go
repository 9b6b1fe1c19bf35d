package main_test

import (
	"context"
	"sync"
	"testing"

	"github.com/claricenunes/quemequem"
	main "github.com/claricenunes/quemequem/cmd/quemequem"
	"github.com/claricenunes/quemequem/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes records, stores history and commits", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Fetcher = pages(map[string]string{pescaURL: pescaPage, mdicURL: emptyPage})

		var s store
		deps.Records = s.mock()

		var mu sync.Mutex
		var stored []string
		deps.Extractions = &mock.ExtractionService{
			CreateExtractionFn: func(_ context.Context, e *quemequem.Extraction) error {
				mu.Lock()
				defer mu.Unlock()
				stored = append(stored, e.RoleID)
				return nil
			},
		}

		err := (&main.RunCmd{Concurrency: 2}).Run(deps)

		require.NoError(t, err)
		assert.True(t, s.committed)
		require.Contains(t, s.records, "pesca")
		assert.Equal(t, []string{"(61) 3276-5186", "(61) 3276-4474"}, s.records["pesca"].Phones)
		assert.Equal(t, mdicURL, s.records["mdic"].Source)
		assert.Equal(t, []string{"pesca", "mdic"}, stored)

		out := stdout.String()
		assert.Contains(t, out, "André de Paula")
		assert.Contains(t, out, "not found")
		assert.Contains(t, out, "Saved 2 records (1 from defaults), 0 failed")
	})

	t.Run("runs only the selected roles", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t)
		deps.Fetcher = pages(map[string]string{pescaURL: pescaPage})

		var s store
		deps.Records = s.mock()

		err := (&main.RunCmd{Roles: []string{"pesca"}, NoStore: true}).Run(deps)

		require.NoError(t, err)
		assert.Len(t, s.records, 1)
		assert.Contains(t, s.records, "pesca")
	})

	t.Run("skips the history when asked", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t)
		deps.Fetcher = pages(map[string]string{pescaURL: pescaPage, mdicURL: emptyPage})

		var s store
		deps.Records = s.mock()
		deps.Extractions = &mock.ExtractionService{
			CreateExtractionFn: func(context.Context, *quemequem.Extraction) error {
				t.Error("CreateExtraction should not be called")
				return nil
			},
		}

		err := (&main.RunCmd{NoStore: true}).Run(deps)

		require.NoError(t, err)
		assert.True(t, s.committed)
	})

	t.Run("reports failed roles and commits the rest", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps(t)
		deps.Fetcher = pages(map[string]string{pescaURL: pescaPage})

		var s store
		deps.Records = s.mock()

		err := (&main.RunCmd{NoStore: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 roles failed")
		assert.True(t, s.committed)
		assert.Contains(t, s.records, "pesca")
		assert.NotContains(t, s.records, "mdic")
		assert.Contains(t, stderr.String(), "mdic")
		assert.Contains(t, stdout.String(), "failed")
	})

	t.Run("writes the default record of failed roles with fallback", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t)
		deps.Fetcher = pages(map[string]string{pescaURL: pescaPage})

		var s store
		deps.Records = s.mock()

		err := (&main.RunCmd{NoStore: true, Fallback: true}).Run(deps)

		require.Error(t, err)
		require.Contains(t, s.records, "mdic")
		assert.Equal(t, "Geraldo José Rodrigues Alckmin Filho", s.records["mdic"].Name)
	})

	t.Run("aborts when the context is canceled", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		deps.Ctx = ctx
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, _ string) (string, error) {
				return "", ctx.Err()
			},
		}

		var s store
		deps.Records = s.mock()

		err := (&main.RunCmd{NoStore: true}).Run(deps)

		require.ErrorIs(t, err, context.Canceled)
		assert.True(t, s.aborted)
		assert.False(t, s.committed)
	})

	t.Run("returns ENOTFOUND for an unknown role", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)

		err := (&main.RunCmd{Roles: []string{"nope"}}).Run(deps)

		assert.Equal(t, quemequem.ENOTFOUND, quemequem.ErrorCode(err))
		assert.Contains(t, stderr.String(), "role not found: nope")
	})
}
