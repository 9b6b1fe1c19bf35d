package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/config"
	"github.com/claricenunes/quemequem/extract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Catalog *config.Catalog

	Fetcher           quemequem.Fetcher
	Locator           quemequem.Locator
	Engine            *extract.Engine
	RateLimiter       quemequem.DomainLimiter
	Records           quemequem.RecordStore
	Extractions       quemequem.ExtractionService
	Converter         quemequem.Converter
	ContentExtractors map[string]quemequem.ContentExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string        `short:"c" type:"path" help:"Role catalog file (YAML or JSON5); the bundled catalog is used when empty"`
	DB        string        `type:"path" default:"${db}" help:"Extraction history database"`
	Out       string        `short:"o" type:"path" default:"${out}" help:"Output directory for record files"`
	Timeout   time.Duration `default:"${timeout}" help:"Page fetch timeout"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" help:"User-Agent header sent to portals"`
	Browser   bool          `short:"b" help:"Render pages in headless Chrome"`
	Verbose   bool          `short:"v" help:"Log every fetch and extraction to stderr"`

	Roles   RolesCmd   `cmd:"" help:"List the roles in the catalog"`
	Run     RunCmd     `cmd:"" help:"Extract and save the records of all or selected roles"`
	Extract ExtractCmd `cmd:"" help:"Extract one role and print its record"`
	Inspect InspectCmd `cmd:"" help:"Show the candidate window located for a role"`
	Probe   ProbeCmd   `cmd:"" help:"List person cards and role mentions on a page"`
	History HistoryCmd `cmd:"" help:"Show past extractions of a role"`
}

// RolesCmd is the "roles" subcommand.
type RolesCmd struct{}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Roles       []string `arg:"" optional:"" help:"Role IDs (default: all)"`
	NoStore     bool     `name:"no-store" help:"Do not record the extractions in the history database"`
	Fallback    bool     `help:"Write the default record of roles whose page fails"`
	Concurrency int      `short:"j" default:"4" help:"Roles processed at once"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Role string `arg:"" help:"Role ID"`
	URL  string `help:"Page URL overriding the catalog"`
	File string `short:"f" type:"path" help:"Read the page from a saved HTML file"`
	Full bool   `help:"Print provenance, strategy and page hash along with the record"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Role      string `arg:"" help:"Role ID"`
	File      string `short:"f" type:"path" help:"Read the page from a saved HTML file"`
	Page      bool   `help:"Also print the main content of the page"`
	Extractor string `default:"trafilatura" enum:"trafilatura,readability" help:"Main content extractor (trafilatura, readability)"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL     string `arg:"" help:"Page URL"`
	Pattern string `short:"p" default:"Ministr[oa]" help:"Role pattern (case-insensitive regex)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Role  string `arg:"" help:"Role ID"`
	Limit int    `short:"n" default:"10" help:"Number of extractions to show"`
	Clear bool   `help:"Delete the history of the role"`
}
