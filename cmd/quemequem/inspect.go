package main

import (
	"fmt"

	"github.com/claricenunes/quemequem"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	role, err := deps.Catalog.Find(c.Role)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}
	rule, err := role.Compile()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	html, err := readPage(deps, role.URL, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	w, err := deps.Locator.Locate(html, rule)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	if w == nil {
		fmt.Fprintf(deps.Stdout, "No candidate window for %s; the default record would be used.\n", role.ID)
	} else {
		printWindow(deps, w)
	}

	if c.Page {
		return c.printPage(deps, html)
	}
	return nil
}

func printWindow(deps *Dependencies, w *quemequem.Window) {
	fmt.Fprintf(deps.Stdout, "Strategy: %s\n", w.Strategy)
	fmt.Fprintf(deps.Stdout, "Lines (%d):\n", len(w.Lines))
	for i, line := range w.Lines {
		marker := " "
		if i == w.RoleLine {
			marker = ">"
		}
		fmt.Fprintf(deps.Stdout, "%s %3d  %s\n", marker, i, line)
	}
	if len(w.Links) > 0 {
		fmt.Fprintln(deps.Stdout, "Links:")
		for _, link := range w.Links {
			fmt.Fprintf(deps.Stdout, "  %s\n", link)
		}
	}
	for _, f := range []quemequem.Field{quemequem.FieldName, quemequem.FieldTitle, quemequem.FieldPhone, quemequem.FieldEmail} {
		if values := w.Field(f); len(values) > 0 {
			fmt.Fprintf(deps.Stdout, "Card %s: %q\n", f, values)
		}
	}

	md, err := deps.Converter.Convert(w.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: cannot render window: %s\n", quemequem.ErrorMessage(err))
		return
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", md)
}

func (c *InspectCmd) printPage(deps *Dependencies, html string) error {
	extractor, ok := deps.ContentExtractors[c.Extractor]
	if !ok {
		err := quemequem.Errorf(quemequem.EINVALID, "unknown extractor %q", c.Extractor)
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	content, err := extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nPage: %s\n", content.Title)
	if content.ContentHTML == "" {
		fmt.Fprintln(deps.Stdout, "(no main content)")
		return nil
	}
	md, err := deps.Converter.Convert(content.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", md)
	return nil
}
