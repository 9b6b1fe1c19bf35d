package main

import (
	"errors"
	"fmt"

	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/crawl"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	roles, err := deps.Catalog.Select(c.Roles)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	crawler := &crawl.Crawler{
		Fetcher:         deps.Fetcher,
		Engine:          deps.Engine,
		Records:         deps.Records,
		RateLimiter:     deps.RateLimiter,
		Concurrency:     c.Concurrency,
		Logger:          deps.Logger,
		FallbackOnError: c.Fallback,
	}
	if !c.NoStore {
		crawler.Extractions = deps.Extractions
	}

	bar := progressbar.NewOptions(len(roles),
		progressbar.OptionSetWriter(deps.Stderr),
		progressbar.OptionSetDescription(color.BlueString("extracting")),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted, crawl.ProgressFailed:
			_ = bar.Add(1)
		case crawl.ProgressFinished:
			_ = bar.Finish()
		}
	}

	result, err := crawler.CrawlRoles(deps.Ctx, roles, progress)
	if err != nil {
		if abortErr := deps.Records.Abort(); abortErr != nil {
			err = errors.Join(err, abortErr)
		}
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if err := deps.Records.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	printSummary(deps, result)

	for _, out := range result.Outcomes {
		if out.Err != nil {
			fmt.Fprintf(deps.Stderr, "%s %s: %s\n", failColor.Sprint("fail"), out.RoleID, quemequem.ErrorMessage(out.Err))
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved %d records (%d from defaults), %d failed\n",
		result.Saved, result.Defaulted, result.Failed)

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d roles failed", result.Failed, len(roles))
	}
	return nil
}

func printSummary(deps *Dependencies, result *crawl.Result) {
	t := newTable(deps.Stdout)
	t.AppendHeader(table.Row{"Role", "Name", "Title", "Phones", "Emails", "Status"})
	for _, out := range result.Outcomes {
		if out.Extraction == nil {
			t.AppendRow(table.Row{out.RoleID, "-", "-", "-", "-", failColor.Sprint("failed")})
			continue
		}
		e := out.Extraction
		status := okColor.Sprint(string(e.Strategy))
		switch {
		case out.Err != nil:
			status = failColor.Sprint("fallback")
		case e.Strategy == "":
			status = defaultColor.Sprint("not found")
		}
		t.AppendRow(table.Row{
			out.RoleID,
			originCell(e.Record.Name, e.Provenance.Name),
			originCell(e.Record.Title, e.Provenance.Title),
			originCell(joinList(e.Record.Phones), e.Provenance.Phones),
			originCell(joinList(e.Record.Emails), e.Provenance.Emails),
			status,
		})
	}
	t.Render()
}
