// Package lru provides a verdict cache for svgspell.Checker backed by
// github.com/hashicorp/golang-lru/v2.
package lru

import (
	"context"

	"github.com/fwojciec/svgspell"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Ensure CachingChecker implements svgspell.Checker.
var _ svgspell.Checker = (*CachingChecker)(nil)

// CachingChecker answers repeated words from memory and forwards the rest.
// Only verdicts are cached; transport errors always reach the caller.
type CachingChecker struct {
	next  svgspell.Checker
	cache *lru.Cache[string, bool]
}

// NewCachingChecker wraps next with a cache holding up to size verdicts.
func NewCachingChecker(next svgspell.Checker, size int) (*CachingChecker, error) {
	cache, err := lru.New[string, bool](size)
	if err != nil {
		return nil, svgspell.Errorf(svgspell.EINVALID, "verdict cache size %d: %w", size, err)
	}
	return &CachingChecker{next: next, cache: cache}, nil
}

// Banner delegates to the wrapped checker.
func (c *CachingChecker) Banner() string {
	return c.next.Banner()
}

// Check returns a cached verdict for word or asks the wrapped checker.
func (c *CachingChecker) Check(ctx context.Context, word string) (bool, error) {
	if ok, hit := c.cache.Get(word); hit {
		return ok, nil
	}

	ok, err := c.next.Check(ctx, word)
	if err != nil {
		return false, err
	}
	c.cache.Add(word, ok)
	return ok, nil
}

// Len returns the number of cached verdicts.
func (c *CachingChecker) Len() int {
	return c.cache.Len()
}
