// Package ispell implements svgspell.Checker over the line-oriented pipe
// protocol spoken by ispell and compatible checkers.
package ispell

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/fwojciec/svgspell"
)

// Ensure Client implements svgspell.Checker at compile time.
var _ svgspell.Checker = (*Client)(nil)

// Response lines that end the answer for one word. Both spellings occur in
// the wild.
const (
	terminatorBlank = "\n"
	terminatorWord  = "word: \n"
)

// Answer line prefixes that accept a word. Any other answer line rejects it.
var acceptPrefixes = []string{"word: ok", "ok"}

// Client speaks the checker protocol over a reader/writer pair. One request
// is outstanding at a time; Client is not safe for concurrent use.
type Client struct {
	r      *bufio.Reader
	w      *bufio.Writer
	banner string

	// err is set on the first transport failure. Once set the stream
	// position is unknown and every later call fails with it.
	err error
}

// NewClient reads the checker's banner line from r and returns a Client
// that sends requests to w and reads answers from r.
func NewClient(r io.Reader, w io.Writer) (*Client, error) {
	c := &Client{
		r: bufio.NewReader(r),
		w: bufio.NewWriter(w),
	}

	line, err := c.r.ReadString('\n')
	if err != nil {
		return nil, svgspell.Errorf(svgspell.ETRANSPORT, "reading checker banner: %w", err)
	}
	c.banner = strings.TrimRight(line, "\r\n")

	return c, nil
}

// Banner returns the line the checker printed at startup.
func (c *Client) Banner() string {
	return c.banner
}

// Check sends word to the checker and returns its verdict.
//
// When ctx carries no deadline or cancellation the call blocks until the
// checker answers. Otherwise an expired ctx abandons the pending answer and
// leaves the client unusable.
func (c *Client) Check(ctx context.Context, word string) (bool, error) {
	if c.err != nil {
		return false, c.err
	}

	if ctx.Done() == nil {
		ok, err := c.exchange(word)
		if err != nil {
			c.err = err
		}
		return ok, err
	}

	type result struct {
		ok  bool
		err error
	}
	ch := make(chan result, 1)
	go func() {
		ok, err := c.exchange(word)
		ch <- result{ok: ok, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			c.err = res.err
		}
		return res.ok, res.err
	case <-ctx.Done():
		c.err = svgspell.Errorf(svgspell.ETRANSPORT, "waiting for checker answer to %q: %w", word, ctx.Err())
		return false, c.err
	}
}

// exchange writes one request and reads the matching answer.
func (c *Client) exchange(word string) (bool, error) {
	if _, err := c.w.WriteString(word + "\n"); err != nil {
		return false, svgspell.Errorf(svgspell.ETRANSPORT, "sending %q to checker: %w", word, err)
	}
	if err := c.w.Flush(); err != nil {
		return false, svgspell.Errorf(svgspell.ETRANSPORT, "sending %q to checker: %w", word, err)
	}
	return c.readVerdict()
}

// readVerdict consumes answer lines up to and including the terminator. The
// verdict is true only if every answer line accepts the word.
func (c *Client) readVerdict() (bool, error) {
	ok := true
	for {
		line, err := c.r.ReadString('\n')
		if err != nil {
			return false, svgspell.Errorf(svgspell.ETRANSPORT, "reading checker answer: %w", err)
		}
		if isTerminator(line) {
			return ok, nil
		}
		if !accepts(line) {
			ok = false
		}
	}
}

func isTerminator(line string) bool {
	return line == terminatorBlank || line == terminatorWord
}

func accepts(line string) bool {
	for _, prefix := range acceptPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
