package svgspell

import "context"

// Checker judges single words against an external spell checker.
type Checker interface {
	// Banner returns the identification line the checker printed at startup.
	Banner() string

	// Check reports whether word is accepted by the checker.
	// A rejected word returns false with a nil error. Returns ETRANSPORT if
	// the checker can no longer be reached.
	Check(ctx context.Context, word string) (bool, error)
}
