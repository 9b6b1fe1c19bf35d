package main_test

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/claricenunes/quemequem"
	main "github.com/claricenunes/quemequem/cmd/quemequem"
	"github.com/claricenunes/quemequem/config"
	"github.com/claricenunes/quemequem/extract"
	"github.com/claricenunes/quemequem/goquery"
	"github.com/claricenunes/quemequem/htmltomarkdown"
	"github.com/claricenunes/quemequem/mock"
	"github.com/stretchr/testify/require"
)

const (
	pescaURL = "https://www.gov.br/pescaeaquicultura/quem-e-quem"
	mdicURL  = "https://www.gov.br/mdic/quem-e-quem"
)

const pescaPage = `<html><body><div id="content-core">
<div class="autoridade">
  <h2>ANDRÉ DE PAULA</h2>
  <p>Ministro de Estado da Pesca e Aquicultura</p>
  <p>Telefone: (61) 3276-5186 / 4474</p>
  <p>E-mail: gab.gm@mpa.gov.br</p>
</div>
</div></body></html>`

const emptyPage = `<html><body><p>Página em atualização</p></body></html>`

const testCatalog = `
defaults:
  pattern: 'Ministr[oa] de Estado'
roles:
  - id: pesca
    url: ` + pescaURL + `
    default:
      name: André de Paula
      title: Ministro de Estado da Pesca e Aquicultura
  - id: mdic
    url: ` + mdicURL + `
    default:
      name: Geraldo José Rodrigues Alckmin Filho
      title: Ministro de Estado do Desenvolvimento, Indústria, Comércio e Serviços
`

func catalog(t *testing.T) *config.Catalog {
	t.Helper()
	c, err := config.Parse([]byte(testCatalog), "yaml")
	require.NoError(t, err)
	return c
}

func pages(byURL map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			html, ok := byURL[url]
			if !ok {
				return "", &quemequem.FetchError{URL: url, Status: http.StatusNotFound}
			}
			return html, nil
		},
	}
}

// store is an in-memory record store.
type store struct {
	mu        sync.Mutex
	records   map[string]*quemequem.Record
	committed bool
	aborted   bool
}

func (s *store) mock() *mock.RecordStore {
	return &mock.RecordStore{
		WriteRecordFn: func(_ context.Context, roleID string, rec *quemequem.Record) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.records == nil {
				s.records = make(map[string]*quemequem.Record)
			}
			s.records[roleID] = rec
			return nil
		},
		CommitFn: func() error {
			s.committed = true
			return nil
		},
		AbortFn: func() error {
			s.aborted = true
			return nil
		},
	}
}

// testDeps returns dependencies wired with the real engine and mocks for
// I/O, writing command output to the returned buffers.
func testDeps(t *testing.T) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	locator := goquery.NewLocator()
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Catalog:   catalog(t),
		Locator:   locator,
		Engine:    extract.NewEngine(locator),
		Converter: htmltomarkdown.NewConverter(),
	}, stdout, stderr
}
