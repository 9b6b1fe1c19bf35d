package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/claricenunes/quemequem"
	"github.com/claricenunes/quemequem/config"
	"github.com/claricenunes/quemequem/crawl"
	"github.com/claricenunes/quemequem/extract"
	"github.com/claricenunes/quemequem/fs"
	"github.com/claricenunes/quemequem/goquery"
	"github.com/claricenunes/quemequem/htmltomarkdown"
	qqhttp "github.com/claricenunes/quemequem/http"
	"github.com/claricenunes/quemequem/readability"
	"github.com/claricenunes/quemequem/rod"
	qqslog "github.com/claricenunes/quemequem/slog"
	"github.com/claricenunes/quemequem/sqlite"
	"github.com/claricenunes/quemequem/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the extraction history. Opened by Run when
	// the command needs it.
	DB *sqlite.DB

	// Fetcher used by commands that download pages.
	Fetcher quemequem.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	if m.Fetcher != nil {
		if err := m.Fetcher.Close(); err != nil {
			firstErr = err
		}
	}
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("quemequem"),
		kong.Description("Extract minister contact records from gov.br \"quem é quem\" pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"db":         env.DB,
			"out":        env.Out,
			"timeout":    timeoutVar(env.Timeout),
			"user_agent": env.UserAgent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'quemequem --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.Config != "" {
		deps.Catalog, err = config.Load(cli.Config)
	} else {
		deps.Catalog, err = config.Default()
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", quemequem.ErrorMessage(err))
		return err
	}

	cmd := strings.Fields(kongCtx.Command())[0]

	if needsFetcher(cmd, cli) {
		m.Fetcher, err = newFetcher(cli)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		deps.Fetcher = qqslog.NewLoggingFetcher(m.Fetcher, deps.Logger)
	}

	if (cmd == "run" && !cli.Run.NoStore) || cmd == "history" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set %s to use a different database path\n", config.EnvDB)
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		deps.Extractions = sqlite.NewExtractionService(m.DB)
	}

	deps.Locator = qqslog.NewLoggingLocator(goquery.NewLocator(), deps.Logger)
	deps.Engine = extract.NewEngine(deps.Locator)
	deps.RateLimiter = crawl.NewDomainLimiter(defaultRequestsPerSecond)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.ContentExtractors = map[string]quemequem.ContentExtractor{
		"trafilatura": trafilatura.NewExtractor(),
		"readability": readability.NewExtractor(),
	}

	out := filepath.Clean(cli.Out)
	deps.Records = fs.NewFileStore(filepath.Dir(out), filepath.Base(out))

	return kongCtx.Run(deps)
}

// defaultRequestsPerSecond bounds requests to a single portal host.
const defaultRequestsPerSecond = 1.0

func timeoutVar(d time.Duration) string {
	if d <= 0 {
		d = qqhttp.DefaultFetchTimeout
	}
	return d.String()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func needsFetcher(cmd string, cli *CLI) bool {
	switch cmd {
	case "run", "probe":
		return true
	case "extract":
		return cli.Extract.File == ""
	case "inspect":
		return cli.Inspect.File == ""
	}
	return false
}

func newFetcher(cli *CLI) (quemequem.Fetcher, error) {
	if cli.Browser {
		opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout)}
		if cli.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(cli.UserAgent))
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	opts := []qqhttp.Option{qqhttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, qqhttp.WithUserAgent(cli.UserAgent))
	}
	return qqhttp.NewFetcher(opts...), nil
}
