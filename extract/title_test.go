package extract_test

import (
	"strings"
	"testing"

	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/extract"
	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips contacts and separators",
			input: "Ministra de Estado da Saúde — Tel: (61) 3315-2000 / 2580 — E-mail: gab@saude.gov.br",
			want:  "Ministra de Estado da Saúde",
		},
		{
			name:  "strips the gender marker",
			input: "Ministro(a) de Estado da Cultura",
			want:  "Ministro de Estado da Cultura",
		},
		{
			name:  "collapses pipes and spaced hyphens",
			input: "Ministro de Estado | Casa Civil - Presidência",
			want:  "Ministro de Estado Casa Civil Presidência",
		},
		{
			name:  "keeps hyphenated words",
			input: "Secretário-Executivo",
			want:  "Secretário-Executivo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, extract.CleanTitle(tt.input))
		})
	}
}

func TestTitles(t *testing.T) {
	t.Parallel()

	rule := compileRule(t, quemequem.Role{Pattern: `Ministr[oa] de Estado`})

	t.Run("reads the role line from the match", func(t *testing.T) {
		t.Parallel()

		w := window("ANA SILVA — Ministra de Estado da Saúde — E-mail: gab@saude.gov.br")
		w.RoleLine = 0

		assert.Equal(t, []string{"Ministro de Estado da Saúde"}, extract.Titles(w, rule))
	})

	t.Run("prefers the typed title field", func(t *testing.T) {
		t.Parallel()

		w := window("Ministra de Estado da Saúde")
		w.RoleLine = 0
		w.Fields = map[quemequem.Field][]string{quemequem.FieldTitle: {"MINISTRA DE ESTADO DA SAÚDE"}}

		assert.Equal(t, []string{"MINISTRO DE ESTADO DA SAÚDE", "Ministro de Estado da Saúde"}, extract.Titles(w, rule))
	})

	t.Run("returns nothing without a role line", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.Titles(window("Camilo Santana"), rule))
	})
}

func TestValidTitle(t *testing.T) {
	t.Parallel()

	assert.True(t, extract.ValidTitle("Ministro de Estado da Saúde"))
	assert.False(t, extract.ValidTitle(""))
	assert.False(t, extract.ValidTitle("123"))
	assert.False(t, extract.ValidTitle(strings.Repeat("a", extract.MaxTitleLength+1)))
}
