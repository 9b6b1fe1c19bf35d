package main_test

import (
	"testing"

	"github.com/claricenunes/quemequem"
	main "github.com/claricenunes/quemequem/cmd/quemequem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardPage = `<html><body>
<div class="dados-pessoa">
  <span class="nome">Ana Silva</span>
  <span class="cargo">Ministra de Estado da Saúde</span>
</div>
<p>Chefe de Gabinete da Ministra</p>
</body></html>`

func TestProbeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists cards and matching lines", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Fetcher = pages(map[string]string{"https://www.gov.br/saude": cardPage})

		err := (&main.ProbeCmd{URL: "https://www.gov.br/saude", Pattern: "Ministr[oa]"}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "card")
		assert.Contains(t, out, "Ana Silva")
		assert.Contains(t, out, "Chefe de Gabinete da Ministra")
		assert.Contains(t, out, "yes")
	})

	t.Run("says when nothing matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Fetcher = pages(map[string]string{"https://www.gov.br/x": emptyPage})

		err := (&main.ProbeCmd{URL: "https://www.gov.br/x", Pattern: "Ministr[oa]"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No cards or lines")
	})

	t.Run("returns EINVALID for a bad pattern", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t)

		err := (&main.ProbeCmd{URL: "https://www.gov.br/x", Pattern: "Ministr[oa"}).Run(deps)

		assert.Equal(t, quemequem.EINVALID, quemequem.ErrorCode(err))
	})
}
