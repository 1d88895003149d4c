package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/svgspell"
	"github.com/fwojciec/svgspell/etree"
	"github.com/fwojciec/svgspell/review"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Checker  svgspell.Checker
	Reviewer *review.Reviewer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File        string        `arg:"" type:"existingfile" help:"SVG file to spell-check and correct in place"`
	Checker     string        `default:"ispell" help:"Spell checker binary speaking the ispell pipe protocol"`
	CheckerArgs []string      `name:"checker-arg" sep:"none" help:"Argument passed to the checker (repeatable)"`
	Tag         string        `default:"${tag}" help:"Element whose text is checked"`
	Namespace   string        `default:"${namespace}" help:"Namespace URI of checked elements (empty matches any)"`
	Timeout     time.Duration `default:"0s" help:"Give up on a checker answer after this long (0 waits forever)"`
	Cache       int           `default:"0" help:"Remember up to this many verdicts for repeated words (0 disables)"`
	NoColor     bool          `help:"Disable colored output"`
	Debug       bool          `help:"Log checker traffic and file operations to stderr"`
}

// vars supplies interpolated defaults for CLI.
var vars = map[string]string{
	"tag":       etree.DefaultTag,
	"namespace": etree.SVGNamespace,
}
