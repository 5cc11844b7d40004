package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dana-c0914/tui.chart/pkg/cache"
	"github.com/dana-c0914/tui.chart/pkg/legend"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/store"
)

// sizeCacheTTL bounds how long cached sizing results live. Font metrics do
// not change under a fixed theme, but rendering environments do.
const sizeCacheTTL = 24 * time.Hour

// sizeResult is the cached and printed form of one sizing computation.
// ColumnHeight carries the caller-side height estimate for vertical layouts,
// whose dimension reports height 0 by contract.
type sizeResult struct {
	Dimension    legend.Dimension   `json:"dimension"`
	Lines        []layout.LineGroup `json:"lines,omitempty"`
	ColumnHeight float64            `json:"column_height,omitempty"`
	Skipped      bool               `json:"skipped,omitempty"`
}

// sizeCommand creates the size command for computing legend dimensions.
func (c *CLI) sizeCommand() *cobra.Command {
	var (
		specPath string
		config   string
		measurer string
		width    float64
		jsonOut  bool
		noCache  bool
		save     bool
		flags    specFlags
	)

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute the dimension a legend occupies",
		Long: `Compute the width and height a chart legend needs.

The spec comes from a JSON file (--spec) or from flags. Horizontal
alignments (top, bottom) wrap entries across lines constrained by
--width; vertical alignments (left, right) size a single column and
report height 0.

Examples:
  legend size -l alpha,beta,gamma -a top -w 400
  legend size --spec chart.json --width 640 --json
  legend size -l a,b --align right --measurer cells`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			cfg, err := loadThemeConfig(config)
			if err != nil {
				return err
			}
			spec, err := loadSpec(specPath, flags, cfg)
			if err != nil {
				return err
			}
			m, err := newMeasurer(measurer)
			if err != nil {
				return err
			}

			cch, err := newCache(noCache)
			if err != nil {
				return err
			}
			defer cch.Close()

			p := newProgress(logger)
			result, cached, err := computeSize(ctx, cch, spec, cfg, m, width)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Sized %d labels", len(spec.Labels)))

			if save {
				// The computation succeeded; a persistence failure should
				// not discard its output.
				if err := saveLayout(ctx, spec, width, result); err != nil {
					printError("save layout: %v", err)
				}
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			if cached {
				printInfo("cached result")
			}
			printSizeResult(result, width)
			return nil
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "f", "", "path to a JSON legend spec")
	cmd.Flags().StringVarP(&config, "config", "c", "", "path to a TOML theme config")
	cmd.Flags().StringVarP(&measurer, "measurer", "m", measurerFontFace, "text measurer: fontface, cells, approx")
	cmd.Flags().Float64VarP(&width, "width", "w", 640, "chart width constraining horizontal layouts")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the result as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the sizing cache")
	cmd.Flags().BoolVar(&save, "save", false, "persist the layout document for later retrieval")
	flags.register(cmd)

	return cmd
}

// computeSize runs one cached sizing computation. The logger travels in ctx.
func computeSize(ctx context.Context, cch cache.Cache, spec legend.Spec, cfg themeConfig, m layout.Measurer, width float64) (sizeResult, bool, error) {
	logger := loggerFromContext(ctx)
	key := sizeCacheKey(spec, cfg, width)

	if data, ok, err := cch.Get(ctx, key); err == nil && ok {
		var result sizeResult
		if err := json.Unmarshal(data, &result); err == nil {
			logger.Debug("sizing result from cache")
			return result, true, nil
		}
		// Stale or corrupt entry, recompute below.
	}

	eng := legend.New(spec, m,
		legend.WithConstants(cfg.Constants),
		legend.WithLogger(logger))

	result := sizeResult{
		Dimension: eng.Dimension(width),
		Skipped:   eng.Skip(),
	}
	if !result.Skipped {
		if eng.Align().IsHorizontal() {
			result.Lines = eng.Partition(width).Lines
		} else {
			result.ColumnHeight = eng.Sizer().ColumnHeight(spec.Labels)
		}
	}

	if data, err := json.Marshal(result); err == nil {
		if err := cch.Set(ctx, key, data, sizeCacheTTL); err != nil {
			logger.Debug("cache write failed", "error", err)
		}
	}
	return result, false, nil
}

// sizeCacheKey derives the cache key for a spec, theme, and chart width.
func sizeCacheKey(spec legend.Spec, cfg themeConfig, width float64) string {
	specJSON, _ := json.Marshal(spec)

	var constsDigest string
	if cfg.Constants != layout.DefaultConstants() {
		constsJSON, _ := json.Marshal(cfg.Constants)
		constsDigest = cache.Hash(constsJSON)
	}

	return cache.NewDefaultKeyer().SizeKey(cache.Hash(specJSON), cache.SizeKeyOpts{
		ChartWidth: width,
		Constants:  constsDigest,
	})
}

// saveLayout writes the result as a layout document in the file store.
func saveLayout(ctx context.Context, spec legend.Spec, width float64, result sizeResult) error {
	st, err := store.NewFileStore("")
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	specJSON, _ := json.Marshal(spec)
	doc := store.NewDocument(cache.Hash(specJSON), width, result.Dimension, layout.Partition{Lines: result.Lines})
	if err := st.Put(ctx, doc); err != nil {
		return err
	}

	printSuccess("Saved layout %s", StyleHighlight.Render(doc.ID))
	printFile(filepath.Join(st.Path(), doc.ID+".json"))
	return nil
}

// printSizeResult renders a result for terminal consumption.
func printSizeResult(result sizeResult, chartWidth float64) {
	if result.Skipped {
		fmt.Println(styleSkipped.Render("legend skipped (hidden or pie-internal placement)"))
		printKeyValue("width", "0")
		printKeyValue("height", "absent")
		return
	}

	if len(result.Lines) > 0 && result.Dimension.Width > chartWidth {
		printWarning("legend wider than chart (%s > %s)",
			formatFloat(result.Dimension.Width), formatFloat(chartWidth))
	}

	printKeyValue("width", formatFloat(result.Dimension.Width))
	printKeyValue("height", formatFloat(result.Dimension.HeightOrZero()))
	if len(result.Lines) > 0 {
		printKeyValue("lines", fmt.Sprintf("%d", len(result.Lines)))
	}
	if result.ColumnHeight > 0 {
		printKeyValue("column", formatFloat(result.ColumnHeight))
	}
}

// formatFloat trims trailing zeros for display.
func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
