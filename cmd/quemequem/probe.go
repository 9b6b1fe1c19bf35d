package main

import (
	"fmt"

	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/goquery"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the probe command.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	role := &quemequem.Role{
		ID:      "probe",
		URL:     c.URL,
		Pattern: c.Pattern,
		Default: quemequem.Record{Title: c.Pattern},
	}
	rule, err := role.Compile()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	html, err := readPage(deps, c.URL, "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	hits, err := goquery.Probe(html, rule)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	if len(hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No cards or lines matching %q.\n", c.Pattern)
		return nil
	}

	t := newTable(deps.Stdout)
	t.AppendHeader(table.Row{"#", "Strategy", "Name", "Role", "Excluded"})
	for i, hit := range hits {
		excluded := ""
		if hit.Excluded {
			excluded = failColor.Sprint("yes")
		}
		t.AppendRow(table.Row{i + 1, hit.Strategy, hit.Name, hit.Role, excluded})
	}
	t.Render()
	return nil
}
