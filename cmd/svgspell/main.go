package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/svgspell"
	"github.com/fwojciec/svgspell/etree"
	"github.com/fwojciec/svgspell/ispell"
	"github.com/fwojciec/svgspell/lru"
	"github.com/fwojciec/svgspell/review"
	svgslog "github.com/fwojciec/svgspell/slog"
	"github.com/fwojciec/svgspell/terminal"
	"github.com/peterh/liner"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run starts the checker
	// process and an interactive terminal prompt.
	Checker  svgspell.Checker
	Prompter svgspell.Prompter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("svgspell"),
		kong.Description("Interactively spell-check the text of an SVG file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars(vars),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no file specified")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var documents svgspell.DocumentStore = etree.NewDocumentStore(
		etree.WithTag(cli.Tag),
		etree.WithNamespace(cli.Namespace),
	)

	checker := m.Checker
	if checker == nil {
		proc, err := ispell.Start(ctx, cli.Checker, cli.CheckerArgs, ispell.WithStderr(stderr))
		if err != nil {
			fmt.Fprintf(stderr, "Hint: %q must be installed and on PATH (see --checker)\n", cli.Checker)
			return err
		}
		defer proc.Close()
		checker = proc
	}

	if cli.Cache > 0 {
		cached, err := lru.NewCachingChecker(checker, cli.Cache)
		if err != nil {
			return err
		}
		checker = cached
	}

	prompter := m.Prompter
	if prompter == nil {
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		var opts []terminal.Option
		if cli.NoColor {
			opts = append(opts, terminal.WithColor(false))
		}
		prompter = terminal.NewPrompter(stdout, line, opts...)
	}

	if logger != nil {
		checker = svgslog.NewLoggingChecker(checker, logger)
		documents = svgslog.NewLoggingDocumentStore(documents, logger)
		prompter = svgslog.NewLoggingPrompter(prompter, logger)
	}

	deps.Checker = checker
	deps.Reviewer = &review.Reviewer{
		Documents: documents,
		Checker:   checker,
		Prompter:  prompter,
		Timeout:   cli.Timeout,
	}

	cmd := &CheckCmd{
		File:    cli.File,
		NoColor: cli.NoColor,
	}

	return cmd.Run(deps)
}
