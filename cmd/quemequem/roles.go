package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the roles command.
func (c *RolesCmd) Run(deps *Dependencies) error {
	if len(deps.Catalog.Roles) == 0 {
		fmt.Fprintln(deps.Stdout, "No roles in the catalog.")
		return nil
	}

	t := newTable(deps.Stdout)
	t.AppendHeader(table.Row{"Role", "Default name", "URL"})
	for _, role := range deps.Catalog.Roles {
		name := role.Default.Name
		if name == "" {
			name = "-"
		}
		t.AppendRow(table.Row{role.ID, name, role.URL})
	}
	t.Render()
	return nil
}
