package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/svgspell"
)

// Ensure LoggingPrompter implements svgspell.Prompter.
var _ svgspell.Prompter = (*LoggingPrompter)(nil)

// LoggingPrompter wraps a Prompter with debug logging.
type LoggingPrompter struct {
	next   svgspell.Prompter
	logger *slog.Logger
}

// NewLoggingPrompter creates a new LoggingPrompter.
func NewLoggingPrompter(next svgspell.Prompter, logger *slog.Logger) *LoggingPrompter {
	return &LoggingPrompter{next: next, logger: logger}
}

// Prompt delegates to the wrapped prompter and logs whether the text changed.
func (p *LoggingPrompter) Prompt(ctx context.Context, words []svgspell.Word, original string) (answer string, err error) {
	defer func(begin time.Time) {
		flagged := 0
		for _, w := range words {
			if !w.OK {
				flagged++
			}
		}
		p.logger.Debug("prompt",
			"flagged", flagged,
			"changed", err == nil && answer != original,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Prompt(ctx, words, original)
}
