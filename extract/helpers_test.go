package extract_test

import (
	"testing"

	"github.com/claricenunes/quemequem"
	"github.com/stretchr/testify/require"
)

func compileRule(t *testing.T, role quemequem.Role) *quemequem.Rule {
	t.Helper()
	if role.ID == "" {
		role.ID = "test"
	}
	if role.Default.Title == "" {
		role.Default.Title = "Ministro de Estado"
	}
	rule, err := role.Compile()
	require.NoError(t, err)
	return rule
}
