// Package crawl runs extractions for many roles concurrently. It fetches
// each role page with retry and per-host rate limiting, runs the extraction
// engine, and hands records to a sink and to the extraction history.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/extract"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of roles processed at once.
const DefaultConcurrency = 4

// Crawler orchestrates extraction runs over a list of roles.
type Crawler struct {
	Fetcher     quemequem.Fetcher
	Engine      *extract.Engine
	Records     quemequem.RecordWriter
	Extractions quemequem.ExtractionService
	RateLimiter quemequem.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger

	// FallbackOnError writes the default record of a role whose page could
	// not be fetched or parsed. The failure is still reported.
	FallbackOnError bool
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved     int
	Failed    int
	Defaulted int

	// Outcomes holds one entry per role, in input order.
	Outcomes []Outcome
}

// Outcome is the result of one role.
type Outcome struct {
	RoleID     string
	Extraction *quemequem.Extraction
	Err        error
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	RoleID    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// CrawlRoles extracts the record of every role and writes it to Records.
// Per-role failures are counted and reported, never returned; the error is
// only set when the context is canceled.
func (c *Crawler) CrawlRoles(ctx context.Context, roles []*quemequem.Role, progress ProgressFunc) (*Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(roles)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type indexed struct {
		position int
		outcome  Outcome
	}
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, role := range roles {
			g.Go(func() error {
				resultCh <- indexed{position: i, outcome: c.processRole(gctx, role)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{Outcomes: make([]Outcome, total)}
	var completed atomic.Int64
	for r := range resultCh {
		n := int(completed.Add(1))
		result.Outcomes[r.position] = r.outcome

		event := ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, RoleID: r.outcome.RoleID}
		if r.outcome.Err != nil {
			event.Type, event.Error = ProgressFailed, r.outcome.Err
		}
		if progress != nil {
			progress(event)
		}
	}

	// Records are written in input order so that sinks see a stable sequence.
	for i := range result.Outcomes {
		out := &result.Outcomes[i]
		if out.Extraction != nil {
			if err := c.save(ctx, out.Extraction); err != nil {
				out.Err = err
			}
		}
		switch {
		case out.Err != nil:
			result.Failed++
		case out.Extraction.Provenance.Defaulted():
			result.Defaulted++
			result.Saved++
		default:
			result.Saved++
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// processRole fetches and extracts a single role. On failure the outcome
// carries the error and, with FallbackOnError, the default record.
func (c *Crawler) processRole(ctx context.Context, role *quemequem.Role) (out Outcome) {
	out.RoleID = role.ID
	defer func(begin time.Time) {
		if c.Logger == nil {
			return
		}
		attrs := []any{"role", role.ID, "duration", time.Since(begin)}
		if out.Extraction != nil {
			attrs = append(attrs,
				"strategy", out.Extraction.Strategy,
				"defaulted", out.Extraction.Provenance.Defaulted(),
			)
		}
		attrs = append(attrs, "err", out.Err)
		c.Logger.Info("extract", attrs...)
	}(time.Now())

	rule, err := role.Compile()
	if err != nil {
		out.Err = err
		return out
	}

	html, err := c.fetch(ctx, role.URL)
	if err == nil {
		out.Extraction, err = c.Engine.ExtractRule(html, rule, role.URL)
	}
	if err != nil {
		out.Err = fmt.Errorf("%s: %w", role.ID, err)
		if c.FallbackOnError {
			out.Extraction = c.fallback(role)
		}
	}
	return out
}

func (c *Crawler) fetch(ctx context.Context, rawURL string) (string, error) {
	if c.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", quemequem.Errorf(quemequem.EINVALID, "invalid role URL %q", rawURL)
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	var logf LogFunc
	if c.Logger != nil {
		logf = func(format string, args ...any) {
			c.Logger.Warn(fmt.Sprintf(format, args...))
		}
	}
	return FetchWithRetryDelays(ctx, rawURL, c.Fetcher.Fetch, logf, delays)
}

func (c *Crawler) fallback(role *quemequem.Role) *quemequem.Extraction {
	rec := role.Default.Clone()
	rec.Source = role.URL
	return &quemequem.Extraction{
		RoleID:      role.ID,
		Record:      *rec,
		Provenance:  quemequem.DefaultProvenance(),
		ExtractedAt: time.Now().UTC(),
	}
}

// save writes the record and, when configured, the extraction history.
func (c *Crawler) save(ctx context.Context, e *quemequem.Extraction) error {
	if err := c.Records.WriteRecord(ctx, e.RoleID, &e.Record); err != nil {
		return fmt.Errorf("write %s: %w", e.RoleID, err)
	}
	if c.Extractions != nil {
		if err := c.Extractions.CreateExtraction(ctx, e); err != nil {
			return fmt.Errorf("store %s: %w", e.RoleID, err)
		}
	}
	return nil
}
