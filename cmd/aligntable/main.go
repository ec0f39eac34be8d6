// Package main lays out one of the demo scenes and prints the resulting box
// tree: every table, row and cell with its final position and size.
//
// Usage:
//
//	aligntable [--width W] [--height H] [--no-color] [--debug] SCENE
//
// Scenes: dialog, nested, scroll, toolbar.
//
// Debug logging can also be enabled with ALIGNTABLE_DEBUG=/path/to/file and
// ALIGNTABLE_DEBUG_LEVEL=debug.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	at "github.com/spiddekauga/aligntable"
	"github.com/spiddekauga/aligntable/internal/debug"
)

const version = "0.1.0"

type args struct {
	Scene   string  `arg:"positional,required" help:"scene to lay out: dialog, nested, scroll or toolbar"`
	Width   float64 `arg:"--width" default:"800" help:"stage width"`
	Height  float64 `arg:"--height" default:"600" help:"stage height"`
	NoColor bool    `arg:"--no-color" help:"disable colored output"`
	Debug   bool    `arg:"--debug" help:"log layout passes to stderr"`
}

func (args) Version() string {
	return "aligntable " + version
}

func main() {
	var a args
	arg.MustParse(&a)

	if err := run(os.Stdout, a); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, a args) error {
	if a.NoColor {
		color.NoColor = true
	}

	if a.Debug {
		debug.SetOutput(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: a.NoColor}, zerolog.DebugLevel)
	} else {
		cfg, err := debug.LoadConfig()
		if err != nil {
			return err
		}
		if err := debug.Init(cfg); err != nil {
			return err
		}
	}
	defer debug.Close()

	stage, err := buildScene(a.Scene, a.Width, a.Height)
	if err != nil {
		return err
	}

	header := color.New(color.FgHiGreen, color.Bold)
	header.Fprintf(w, "scene %s on %gx%g stage\n", a.Scene, stage.Width(), stage.Height())
	return at.DumpStage(w, stage)
}
