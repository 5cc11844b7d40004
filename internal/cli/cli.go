// Package cli implements the legend command-line interface.
//
// This package provides commands for computing legend dimensions from spec
// files or flags, previewing the resulting line layout, and running the
// sizing HTTP API. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - size: Compute the legend dimension for a spec
//   - preview: Render the wrapped line groups, optionally interactively
//   - serve: Run the sizing HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/dana-c0914/tui.chart/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dana-c0914/tui.chart/pkg/buildinfo"
	"github.com/dana-c0914/tui.chart/pkg/cache"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/measure"
	"github.com/dana-c0914/tui.chart/pkg/observability"
)

// appName is the application name used for directories and display.
const appName = "legend"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "legend",
		Short:        "Legend computes the space a chart legend occupies",
		Long:         `Legend is the sizing engine for chart legend regions: given label strings, a font theme, and layout options it computes the width and height the legend needs, wrapping entries across lines for horizontal placements.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Surface degraded font measurement instead of letting it pass silently.
	observability.SetMeasureHooks(measureLogHooks{logger: c.Logger})

	// Register all subcommands
	root.AddCommand(c.sizeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// measureLogHooks warns when a font face cannot be loaded and measurement
// falls back to heuristic metrics.
type measureLogHooks struct {
	logger *log.Logger
}

func (h measureLogHooks) OnFontLoad(family string, size float64, err error) {
	if err != nil {
		h.logger.Warn("font load failed, using heuristic metrics",
			"family", family, "size", size, "error", err)
	}
}

func (h measureLogHooks) OnMeasure(string, string, float64) {}

// =============================================================================
// Measurer Factory
// =============================================================================

// Measurer names accepted by --measurer.
const (
	measurerFontFace = "fontface"
	measurerCells    = "cells"
	measurerApprox   = "approx"
)

// newMeasurer builds the named measurement adapter. FontFace results are
// memoized since interactive use re-measures the same labels repeatedly.
func newMeasurer(name string) (layout.Measurer, error) {
	switch name {
	case measurerFontFace, "":
		return measure.NewCached(measure.NewFontFace()), nil
	case measurerCells:
		return measure.NewCells(), nil
	case measurerApprox:
		return measure.NewApprox(), nil
	}
	return nil, errInvalidMeasurer(name)
}

// =============================================================================
// Cache Factory
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/legend/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
