// Package review provides the interactive correction workflow. It checks
// the text of every node in a document, asks the operator to correct nodes
// containing rejected words, and saves the document if anything changed.
package review

import (
	"context"
	"time"

	"github.com/fwojciec/svgspell"
)

// Reviewer walks a document's text nodes and applies operator corrections.
type Reviewer struct {
	Documents svgspell.DocumentStore
	Checker   svgspell.Checker
	Prompter  svgspell.Prompter

	// Timeout bounds each checker call. Zero waits indefinitely.
	Timeout time.Duration
}

// Result holds the outcome of a review.
type Result struct {
	Path    string
	Nodes   int
	Checked int
	Words   int
	Flagged int
	Changed int
	Saved   bool
}

// Review checks the document at path and saves it back if the operator
// changed at least one node. Nothing is written when an error occurs before
// the save.
func (r *Reviewer) Review(ctx context.Context, path string) (*Result, error) {
	doc, err := r.Documents.Open(ctx, path)
	if err != nil {
		return nil, err
	}

	nodes := doc.TextNodes()
	result := &Result{Path: path, Nodes: len(nodes)}

	for _, node := range nodes {
		if err := r.reviewNode(ctx, node, result); err != nil {
			return result, err
		}
	}

	if result.Changed == 0 {
		return result, nil
	}

	if err := r.Documents.Save(ctx, path, doc); err != nil {
		return result, err
	}
	result.Saved = true

	return result, nil
}

// reviewNode checks one node and, if any word is rejected, replaces its text
// with the operator's answer.
func (r *Reviewer) reviewNode(ctx context.Context, node svgspell.TextNode, result *Result) error {
	original, ok := node.Text()
	if !ok {
		return nil
	}
	result.Checked++

	words, err := r.checkText(ctx, original)
	if err != nil {
		return err
	}
	result.Words += len(words)

	if !svgspell.Flagged(words) {
		return nil
	}
	result.Flagged++

	corrected, err := r.Prompter.Prompt(ctx, words, original)
	if err != nil {
		return err
	}

	if corrected != original {
		node.SetText(corrected)
		result.Changed++
	}
	return nil
}

// checkText submits every space-delimited word of text, empty ones included,
// in order.
func (r *Reviewer) checkText(ctx context.Context, text string) ([]svgspell.Word, error) {
	parts := svgspell.SplitWords(text)
	words := make([]svgspell.Word, 0, len(parts))
	for _, part := range parts {
		ok, err := r.checkWord(ctx, part)
		if err != nil {
			return nil, err
		}
		words = append(words, svgspell.Word{Text: part, OK: ok})
	}
	return words, nil
}

func (r *Reviewer) checkWord(ctx context.Context, word string) (bool, error) {
	if r.Timeout <= 0 {
		return r.Checker.Check(ctx, word)
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()
	return r.Checker.Check(ctx, word)
}
