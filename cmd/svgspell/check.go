package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/svgspell"
)

var separator = strings.Repeat("-", 67)

// CheckCmd spell-checks one file.
type CheckCmd struct {
	File    string
	NoColor bool
}

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	bold := color.New(color.Bold)
	if c.NoColor {
		bold.DisableColor()
	}

	fmt.Fprintln(deps.Stdout, separator)
	fmt.Fprintf(deps.Stdout, "Spellchecking '%s'\n", bold.Sprint(c.File))
	fmt.Fprintf(deps.Stdout, "Using %s\n", deps.Checker.Banner())
	fmt.Fprintln(deps.Stdout, separator)
	fmt.Fprintln(deps.Stdout)

	result, err := deps.Reviewer.Review(deps.Ctx, c.File)
	if err != nil {
		switch svgspell.ErrorCode(err) {
		case svgspell.EFORMAT:
			fmt.Fprintf(deps.Stderr, "error: %s is not a well-formed SVG file\n", c.File)
		case svgspell.ETRANSPORT:
			fmt.Fprintf(deps.Stderr, "error: lost connection to the spell checker, %s was not modified\n", c.File)
		case svgspell.EINTERRUPTED:
			fmt.Fprintf(deps.Stderr, "Aborted, %s was not modified\n", c.File)
		case svgspell.ECOMMIT:
			fmt.Fprintf(deps.Stderr, "error: failed to save corrections to %s\n", c.File)
		}
		return err
	}

	if result.Changed > 0 {
		fmt.Fprintf(deps.Stdout, "Corrected %d strings, saved to %s.\n", result.Changed, c.File)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "No changes have been made in %s.\n", c.File)
	return nil
}
