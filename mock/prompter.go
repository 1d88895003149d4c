package mock

import (
	"context"

	"github.com/fwojciec/svgspell"
)

var _ svgspell.Prompter = (*Prompter)(nil)

// Prompter is a mock implementation of svgspell.Prompter.
type Prompter struct {
	PromptFn func(ctx context.Context, words []svgspell.Word, original string) (string, error)
}

func (p *Prompter) Prompt(ctx context.Context, words []svgspell.Word, original string) (string, error) {
	return p.PromptFn(ctx, words, original)
}
