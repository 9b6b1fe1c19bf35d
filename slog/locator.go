package slog

import (
	"log/slog"
	"time"

	"github.com/claricenunes/quemequem"
)

// Ensure LoggingLocator implements quemequem.Locator.
var _ quemequem.Locator = (*LoggingLocator)(nil)

// LoggingLocator wraps a Locator and logs which strategy found the window.
type LoggingLocator struct {
	next   quemequem.Locator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next quemequem.Locator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped locator and logs the outcome.
func (l *LoggingLocator) Locate(html string, rule *quemequem.Rule) (w *quemequem.Window, err error) {
	defer func(begin time.Time) {
		strategy, lines := "(none)", 0
		if w != nil {
			strategy, lines = string(w.Strategy), len(w.Lines)
		}
		l.logger.Debug("locate",
			"role", rule.Role.ID,
			"strategy", strategy,
			"lines", lines,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Locate(html, rule)
}
