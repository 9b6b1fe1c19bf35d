package main

import (
	"io"
	"os"
	"strings"

	"github.com/claricenunes/quemequem"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	defaultColor = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
	okColor      = color.New(color.FgGreen)
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// originCell renders a field value, marking values that came from the role
// default rather than the page.
func originCell(value string, origin quemequem.Origin) string {
	if value == "" {
		value = "-"
	}
	if origin == quemequem.OriginDefault {
		return defaultColor.Sprint(value + " (default)")
	}
	return value
}

func joinList(items []string) string {
	return strings.Join(items, "\n")
}

// readPage returns the markup of a saved page, or fetches url when path is
// empty.
func readPage(deps *Dependencies, url, path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if deps.Fetcher == nil {
		return "", quemequem.Errorf(quemequem.EINTERNAL, "no fetcher configured")
	}
	return deps.Fetcher.Fetch(deps.Ctx, url)
}
