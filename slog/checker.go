// Package slog provides logging decorators for svgspell services.
package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/svgspell"
)

// Ensure LoggingChecker implements svgspell.Checker.
var _ svgspell.Checker = (*LoggingChecker)(nil)

// LoggingChecker wraps a Checker with debug logging.
type LoggingChecker struct {
	next   svgspell.Checker
	logger *slog.Logger
}

// NewLoggingChecker creates a new LoggingChecker.
func NewLoggingChecker(next svgspell.Checker, logger *slog.Logger) *LoggingChecker {
	return &LoggingChecker{next: next, logger: logger}
}

// Banner delegates to the wrapped checker.
func (c *LoggingChecker) Banner() string {
	return c.next.Banner()
}

// Check delegates to the wrapped checker and logs the verdict. A word with
// an embedded newline reaches the checker as several requests, so it is
// logged as a warning.
func (c *LoggingChecker) Check(ctx context.Context, word string) (ok bool, err error) {
	if strings.Contains(word, "\n") {
		c.logger.Warn("word contains newline", "word", word)
	}
	defer func(begin time.Time) {
		c.logger.Debug("check",
			"word", word,
			"ok", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Check(ctx, word)
}
