package crawl_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/crawl"
	"github.com/claricenunes/quemequem/extract"
	"github.com/claricenunes/quemequem/goquery"
	"github.com/claricenunes/quemequem/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pescaPage = `<html><body><div id="content-core">
<div class="autoridade">
  <h2>ANDRÉ DE PAULA</h2>
  <p>Ministro de Estado da Pesca e Aquicultura</p>
  <p>Telefone: (61) 3276-5186 / 4474</p>
  <p>E-mail: gab.gm@mpa.gov.br</p>
</div>
</div></body></html>`

func role(id, url string) *quemequem.Role {
	return &quemequem.Role{
		ID:      id,
		URL:     url,
		Pattern: `Ministr[oa] de Estado`,
		Default: quemequem.Record{
			Name:   "Nome Padrão",
			Title:  "Ministro de Estado",
			Phones: []string{"(61) 0000-0000"},
		},
	}
}

type recorder struct {
	mu      sync.Mutex
	roleIDs []string
	records map[string]*quemequem.Record
}

func (r *recorder) writer() *mock.RecordWriter {
	return &mock.RecordWriter{
		WriteRecordFn: func(_ context.Context, roleID string, rec *quemequem.Record) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.records == nil {
				r.records = make(map[string]*quemequem.Record)
			}
			r.roleIDs = append(r.roleIDs, roleID)
			r.records[roleID] = rec
			return nil
		},
	}
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

func TestCrawler_CrawlRoles(t *testing.T) {
	t.Parallel()

	t.Run("extracts and writes every role in input order", func(t *testing.T) {
		t.Parallel()

		var rec recorder
		c := &crawl.Crawler{
			Fetcher: pages(map[string]string{
				"https://www.gov.br/mpa/quem-e-quem":  pescaPage,
				"https://www.gov.br/mdic/quem-e-quem": `<html><body><p>Em atualização</p></body></html>`,
			}),
			Engine:      extract.NewEngine(goquery.NewLocator()),
			Records:     rec.writer(),
			Concurrency: 2,
			RetryDelays: noDelays,
		}

		result, err := c.CrawlRoles(context.Background(), []*quemequem.Role{
			role("pesca", "https://www.gov.br/mpa/quem-e-quem"),
			role("mdic", "https://www.gov.br/mdic/quem-e-quem"),
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 1, result.Defaulted)
		assert.Zero(t, result.Failed)
		assert.Equal(t, []string{"pesca", "mdic"}, rec.roleIDs)

		assert.Equal(t, &quemequem.Record{
			Name:   "André de Paula",
			Title:  "Ministro de Estado da Pesca e Aquicultura",
			Phones: []string{"(61) 3276-5186", "(61) 3276-4474"},
			Emails: []string{"gab.gm@mpa.gov.br"},
			Source: "https://www.gov.br/mpa/quem-e-quem",
		}, rec.records["pesca"])
		assert.Equal(t, "Nome Padrão", rec.records["mdic"].Name)
		assert.Equal(t, "https://www.gov.br/mdic/quem-e-quem", rec.records["mdic"].Source)

		require.Len(t, result.Outcomes, 2)
		assert.Equal(t, "pesca", result.Outcomes[0].RoleID)
		assert.Equal(t, quemequem.StrategyKeyword, result.Outcomes[0].Extraction.Strategy)
	})

	t.Run("counts failed fetches without writing a record", func(t *testing.T) {
		t.Parallel()

		var rec recorder
		c := &crawl.Crawler{
			Fetcher:     pages(nil),
			Engine:      extract.NewEngine(goquery.NewLocator()),
			Records:     rec.writer(),
			RetryDelays: noDelays,
		}

		result, err := c.CrawlRoles(context.Background(), []*quemequem.Role{
			role("pesca", "https://www.gov.br/mpa/quem-e-quem"),
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Zero(t, result.Saved)
		assert.Empty(t, rec.roleIDs)
		assert.Equal(t, quemequem.EFETCH, quemequem.ErrorCode(result.Outcomes[0].Err))
	})

	t.Run("writes the default record for failed fetches when asked", func(t *testing.T) {
		t.Parallel()

		var rec recorder
		c := &crawl.Crawler{
			Fetcher:         pages(nil),
			Engine:          extract.NewEngine(goquery.NewLocator()),
			Records:         rec.writer(),
			RetryDelays:     noDelays,
			FallbackOnError: true,
		}

		result, err := c.CrawlRoles(context.Background(), []*quemequem.Role{
			role("pesca", "https://www.gov.br/mpa/quem-e-quem"),
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		require.Contains(t, rec.records, "pesca")
		assert.Equal(t, "Nome Padrão", rec.records["pesca"].Name)
		assert.Equal(t, "https://www.gov.br/mpa/quem-e-quem", rec.records["pesca"].Source)
	})

	t.Run("reports invalid roles as failures", func(t *testing.T) {
		t.Parallel()

		var rec recorder
		invalid := role("quebrado", "https://www.gov.br/x")
		invalid.Pattern = "("
		c := &crawl.Crawler{
			Fetcher:     pages(nil),
			Engine:      extract.NewEngine(goquery.NewLocator()),
			Records:     rec.writer(),
			RetryDelays: noDelays,
		}

		result, err := c.CrawlRoles(context.Background(), []*quemequem.Role{invalid}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, quemequem.EINVALID, quemequem.ErrorCode(result.Outcomes[0].Err))
	})

	t.Run("stores extraction history", func(t *testing.T) {
		t.Parallel()

		var rec recorder
		var stored []*quemequem.Extraction
		c := &crawl.Crawler{
			Fetcher: pages(map[string]string{"https://www.gov.br/mpa/quem-e-quem": pescaPage}),
			Engine:  extract.NewEngine(goquery.NewLocator()),
			Records: rec.writer(),
			Extractions: &mock.ExtractionService{
				CreateExtractionFn: func(_ context.Context, e *quemequem.Extraction) error {
					stored = append(stored, e)
					return nil
				},
			},
			RetryDelays: noDelays,
		}

		_, err := c.CrawlRoles(context.Background(), []*quemequem.Role{
			role("pesca", "https://www.gov.br/mpa/quem-e-quem"),
		}, nil)

		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "pesca", stored[0].RoleID)
		assert.Equal(t, extract.HashPage(pescaPage), stored[0].PageHash)
	})

	t.Run("counts a failed write", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{
			Fetcher: pages(map[string]string{"https://www.gov.br/mpa/quem-e-quem": pescaPage}),
			Engine:  extract.NewEngine(goquery.NewLocator()),
			Records: &mock.RecordWriter{
				WriteRecordFn: func(context.Context, string, *quemequem.Record) error {
					return errors.New("disk full")
				},
			},
			RetryDelays: noDelays,
		}

		result, err := c.CrawlRoles(context.Background(), []*quemequem.Role{
			role("pesca", "https://www.gov.br/mpa/quem-e-quem"),
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.ErrorContains(t, result.Outcomes[0].Err, "disk full")
	})

	t.Run("waits on the rate limiter with the page host", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var hosts []string
		var rec recorder
		c := &crawl.Crawler{
			Fetcher: pages(map[string]string{"https://www.gov.br/mpa/quem-e-quem": pescaPage}),
			Engine:  extract.NewEngine(goquery.NewLocator()),
			Records: rec.writer(),
			RateLimiter: &mock.DomainLimiter{
				WaitFn: func(_ context.Context, domain string) error {
					mu.Lock()
					defer mu.Unlock()
					hosts = append(hosts, domain)
					return nil
				},
			},
			RetryDelays: noDelays,
		}

		_, err := c.CrawlRoles(context.Background(), []*quemequem.Role{
			role("pesca", "https://www.gov.br/mpa/quem-e-quem"),
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"www.gov.br"}, hosts)
	})

	t.Run("calls progress callback with events", func(t *testing.T) {
		t.Parallel()

		var rec recorder
		c := &crawl.Crawler{
			Fetcher:     pages(map[string]string{"https://www.gov.br/mpa/quem-e-quem": pescaPage}),
			Engine:      extract.NewEngine(goquery.NewLocator()),
			Records:     rec.writer(),
			RetryDelays: noDelays,
		}

		var events []crawl.ProgressEvent
		_, err := c.CrawlRoles(context.Background(), []*quemequem.Role{
			role("pesca", "https://www.gov.br/mpa/quem-e-quem"),
			role("mdic", "https://www.gov.br/mdic/quem-e-quem"),
		}, func(e crawl.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, crawl.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, crawl.ProgressFinished, events[3].Type)

		var completed, failed int
		for _, e := range events[1:3] {
			switch e.Type {
			case crawl.ProgressCompleted:
				completed++
				assert.Equal(t, "pesca", e.RoleID)
			case crawl.ProgressFailed:
				failed++
				assert.Equal(t, "mdic", e.RoleID)
				assert.Error(t, e.Error)
			}
		}
		assert.Equal(t, 1, completed)
		assert.Equal(t, 1, failed)
	})

	t.Run("returns the context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var rec recorder
		c := &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", &quemequem.FetchError{URL: url, Err: ctx.Err()}
				},
			},
			Engine:      extract.NewEngine(goquery.NewLocator()),
			Records:     rec.writer(),
			RetryDelays: noDelays,
		}

		result, err := c.CrawlRoles(ctx, []*quemequem.Role{
			role("pesca", "https://www.gov.br/mpa/quem-e-quem"),
		}, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, result.Failed)
	})
}
