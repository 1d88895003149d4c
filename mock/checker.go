package mock

import (
	"context"

	"github.com/fwojciec/svgspell"
)

var _ svgspell.Checker = (*Checker)(nil)

// Checker is a mock implementation of svgspell.Checker.
type Checker struct {
	BannerFn func() string
	CheckFn  func(ctx context.Context, word string) (bool, error)
}

func (c *Checker) Banner() string {
	return c.BannerFn()
}

func (c *Checker) Check(ctx context.Context, word string) (bool, error) {
	return c.CheckFn(ctx, word)
}
