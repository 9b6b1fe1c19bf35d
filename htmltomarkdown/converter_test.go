package htmltomarkdown_test

import (
	"testing"

	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("renders a person card", func(t *testing.T) {
		t.Parallel()

		html := `<div class="dados-pessoa">
<h3 class="cargo">Ministro de Estado da Pesca e Aquicultura</h3>
<p class="nome"><strong>André de Paula</strong></p>
<p class="telefone">(61) 3276-5186</p>
<p class="email"><a href="mailto:gab.gm@mpa.gov.br">gab.gm@mpa.gov.br</a></p>
</div>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "### Ministro de Estado da Pesca e Aquicultura")
		assert.Contains(t, md, "**André de Paula**")
		assert.Contains(t, md, "mailto:gab.gm@mpa.gov.br")
	})

	t.Run("renders contact tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Cargo</th><th>Telefone</th></tr></thead>
<tbody><tr><td>Ministro</td><td>(61) 2029-7001</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Cargo")
		assert.Contains(t, md, "(61) 2029-7001")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n<p>Gabinete</p>\n")

		require.NoError(t, err)
		assert.Equal(t, "Gabinete", md)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		assert.Equal(t, quemequem.EINVALID, quemequem.ErrorCode(err))
	})
}
