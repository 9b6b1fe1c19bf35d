package main

import (
	"encoding/json"
	"fmt"

	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	role, err := deps.Catalog.Find(c.Role)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	source := role.URL
	if c.URL != "" {
		source = c.URL
	}

	html, err := readPage(deps, source, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	ext, err := deps.Engine.Extract(html, role, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	var out []byte
	if c.Full {
		out, err = json.MarshalIndent(ext, "", "  ")
		out = append(out, '\n')
	} else {
		out, err = fs.FormatJSON(&ext.Record)
	}
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(out)
	return err
}
