// Package terminal implements svgspell.Prompter for an interactive terminal
// using github.com/peterh/liner for line editing and github.com/fatih/color
// for highlighting.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/fwojciec/svgspell"
	"github.com/peterh/liner"
)

// Ensure Prompter implements svgspell.Prompter at compile time.
var _ svgspell.Prompter = (*Prompter)(nil)

// Labels printed in front of the flagged text and the editable line.
const (
	OriginalLabel  = "original:  "
	CorrectedLabel = "corrected: "
)

// LineEditor reads one edited line starting from suggested text.
// *liner.State satisfies it.
type LineEditor interface {
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
}

// Prompter shows flagged text on out and reads the correction from editor.
type Prompter struct {
	out    io.Writer
	editor LineEditor
	flag   *color.Color
	label  *color.Color
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithColor forces highlighting on or off. By default it follows terminal
// detection.
func WithColor(enabled bool) Option {
	return func(p *Prompter) {
		for _, c := range []*color.Color{p.flag, p.label} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewPrompter returns a Prompter writing to out and reading from editor.
func NewPrompter(out io.Writer, editor LineEditor, opts ...Option) *Prompter {
	p := &Prompter{
		out:    out,
		editor: editor,
		flag:   color.New(color.FgRed),
		label:  color.New(color.FgYellow),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prompt prints words with rejected ones in red and lets the operator edit
// original. The suggestion applies to this prompt only.
// Returns EINTERRUPTED if the operator aborts with Ctrl-C or end of input.
func (p *Prompter) Prompt(ctx context.Context, words []svgspell.Word, original string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	marked := svgspell.MarkedText(words, func(s string) string {
		return p.flag.Sprint(s)
	})
	fmt.Fprintln(p.out, p.label.Sprint(OriginalLabel)+marked)

	answer, err := p.editor.PromptWithSuggestion(CorrectedLabel, original, -1)
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", svgspell.Errorf(svgspell.EINTERRUPTED, "correction aborted: %w", err)
	} else if err != nil {
		return "", fmt.Errorf("reading correction: %w", err)
	}

	fmt.Fprintln(p.out)
	return answer, nil
}
