package main

import (
	"fmt"
	"strings"

	"github.com/claricenunes/quemequem"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if _, err := deps.Catalog.Find(c.Role); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	if c.Clear {
		if err := deps.Extractions.DeleteExtractionsByRole(deps.Ctx, c.Role); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Cleared history of %s\n", c.Role)
		return nil
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, quemequem.ExtractionFilter{
		RoleID: &c.Role,
		Limit:  c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintf(deps.Stdout, "No extractions recorded for %s. Use 'quemequem run %s' to create one.\n", c.Role, c.Role)
		return nil
	}

	t := newTable(deps.Stdout)
	t.AppendHeader(table.Row{"Extracted at", "Name", "Phones", "Emails", "Strategy", "Similarity", "Page"})
	for _, e := range extractions {
		strategy := string(e.Strategy)
		if strategy == "" {
			strategy = "-"
		}
		t.AppendRow(table.Row{
			e.ExtractedAt.Local().Format("2006-01-02 15:04:05"),
			originCell(e.Record.Name, e.Provenance.Name),
			originCell(strings.Join(e.Record.Phones, ", "), e.Provenance.Phones),
			originCell(strings.Join(e.Record.Emails, ", "), e.Provenance.Emails),
			strategy,
			fmt.Sprintf("%.2f", e.NameSimilarity),
			shortHash(e.PageHash),
		})
	}
	t.Render()
	return nil
}

func shortHash(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}
