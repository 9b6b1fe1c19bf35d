package main_test

import (
	"testing"

	main "github.com/claricenunes/quemequem/cmd/quemequem"
	"github.com/claricenunes/quemequem/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists every role with its default name", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)

		err := (&main.RolesCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "pesca")
		assert.Contains(t, stdout.String(), "André de Paula")
		assert.Contains(t, stdout.String(), mdicURL)
	})

	t.Run("shows a message for an empty catalog", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Catalog = &config.Catalog{}

		err := (&main.RolesCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No roles")
	})
}
