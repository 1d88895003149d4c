package svgspell

import "context"

// Prompter asks the operator to correct a flagged text fragment.
type Prompter interface {
	// Prompt shows words with rejected ones marked and returns the operator's
	// replacement for original. The operator edits original in place.
	// Returns EINTERRUPTED if the operator aborts.
	Prompt(ctx context.Context, words []Word, original string) (string, error)
}
