package ispell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/fwojciec/svgspell"
)

// Ensure Process implements svgspell.Checker at compile time.
var _ svgspell.Checker = (*Process)(nil)

// DefaultCloseTimeout is how long Close waits for the checker to exit after
// its input is closed before killing it.
const DefaultCloseTimeout = 2 * time.Second

// Process is a running checker binary. It owns the process and its pipes.
type Process struct {
	client       *Client
	cmd          *exec.Cmd
	stdin        io.WriteCloser
	closeTimeout time.Duration
	closed       bool
}

// Option configures a Process.
type Option func(*options)

type options struct {
	stderr       io.Writer
	env          []string
	closeTimeout time.Duration
}

// WithStderr forwards the checker's standard error to w.
// Defaults to discarding it.
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// WithEnv adds environment variables on top of the current environment.
func WithEnv(env ...string) Option {
	return func(o *options) {
		o.env = append(o.env, env...)
	}
}

// WithCloseTimeout sets how long Close waits before killing the checker.
func WithCloseTimeout(d time.Duration) Option {
	return func(o *options) {
		o.closeTimeout = d
	}
}

// Start launches the checker binary and reads its banner.
// Returns ETRANSPORT if the binary cannot be started or exits before
// printing a banner.
func Start(ctx context.Context, name string, args []string, opts ...Option) (*Process, error) {
	o := options{
		stderr:       io.Discard,
		closeTimeout: DefaultCloseTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = o.stderr
	if len(o.env) > 0 {
		cmd.Env = append(os.Environ(), o.env...)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, svgspell.Errorf(svgspell.ETRANSPORT, "opening checker input: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, svgspell.Errorf(svgspell.ETRANSPORT, "opening checker output: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, svgspell.Errorf(svgspell.ETRANSPORT, "starting checker %q: %w", name, err)
	}

	p := &Process{
		cmd:          cmd,
		stdin:        stdin,
		closeTimeout: o.closeTimeout,
	}

	client, err := NewClient(stdout, stdin)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	p.client = client

	return p, nil
}

// Banner returns the line the checker printed at startup.
func (p *Process) Banner() string {
	return p.client.Banner()
}

// Check delegates to the protocol client.
func (p *Process) Check(ctx context.Context, word string) (bool, error) {
	return p.client.Check(ctx, word)
}

// PID returns the process ID of the checker.
func (p *Process) PID() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

// Close closes the checker's input and waits for it to exit, killing it if
// it does not exit within the close timeout. Close is safe to call multiple
// times.
func (p *Process) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	_ = p.stdin.Close()

	done := make(chan error, 1)
	go func() {
		done <- p.cmd.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(p.closeTimeout):
		_ = p.cmd.Process.Kill()
		<-done
		return nil
	}
}
