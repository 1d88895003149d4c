package svgspell

import "strings"

// Word is a single space-delimited token of a text fragment together with
// the checker's verdict.
type Word struct {
	Text string
	OK   bool
}

// SplitWords splits text on the space character. Runs of spaces produce
// empty words; tabs and newlines are part of the surrounding word.
func SplitWords(text string) []string {
	return strings.Split(text, " ")
}

// JoinWords is the inverse of SplitWords.
func JoinWords(words []string) string {
	return strings.Join(words, " ")
}

// MarkedText renders words joined by single spaces, passing rejected words
// through mark.
func MarkedText(words []Word, mark func(string) string) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w.OK || mark == nil {
			parts = append(parts, w.Text)
			continue
		}
		parts = append(parts, mark(w.Text))
	}
	return JoinWords(parts)
}

// Flagged reports whether any word was rejected.
func Flagged(words []Word) bool {
	for _, w := range words {
		if !w.OK {
			return true
		}
	}
	return false
}
