package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dana-c0914/tui.chart/pkg/legend"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
)

// previewCommand creates the preview command for inspecting line wrapping.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		specPath    string
		config      string
		measurer    string
		width       float64
		interactive bool
		flags       specFlags
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render how legend entries wrap across lines",
		Long: `Render the line grouping a horizontal legend produces at a given
chart width, one box per entry.

With --interactive the preview becomes a live explorer: arrow keys
grow and shrink the chart width and the wrapping recomputes on every
step.

Examples:
  legend preview -l alpha,beta,gamma,delta -a top -w 300
  legend preview --spec chart.json --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			eng := legend.New(spec, m,
				legend.WithConstants(cfg.Constants),
				legend.WithLogger(c.Logger))

			if interactive {
				model := newExplorerModel(eng, width)
				_, err := tea.NewProgram(model).Run()
				return err
			}

			fmt.Println(renderPreview(eng, width))
			return nil
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "f", "", "path to a JSON legend spec")
	cmd.Flags().StringVarP(&config, "config", "c", "", "path to a TOML theme config")
	cmd.Flags().StringVarP(&measurer, "measurer", "m", measurerFontFace, "text measurer: fontface, cells, approx")
	cmd.Flags().Float64VarP(&width, "width", "w", 640, "chart width constraining horizontal layouts")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "explore wrapping across chart widths")
	flags.register(cmd)

	return cmd
}

// renderPreview draws the current wrapping and dimension for one width.
func renderPreview(eng *legend.Engine, width float64) string {
	if eng.Skip() {
		return styleSkipped.Render("legend skipped (hidden or pie-internal placement)")
	}

	dim := eng.Dimension(width)
	header := StyleTitle.Render("legend") + " " +
		StyleDim.Render(fmt.Sprintf("align=%s chart-width=%s", eng.Align(), formatFloat(width))) + "\n" +
		StyleDim.Render(fmt.Sprintf("dimension %s × %s", formatFloat(dim.Width), formatFloat(dim.HeightOrZero())))

	if !eng.Align().IsHorizontal() {
		// Vertical legends are a single column; show one entry per row.
		// The dimension reports height 0 by contract, so the caller-side
		// column estimate is shown alongside it.
		header += "\n" + StyleDim.Render(fmt.Sprintf("column height %s",
			formatFloat(eng.Sizer().ColumnHeight(eng.Labels()))))
		var rows []string
		for _, label := range eng.Labels() {
			rows = append(rows, styleEntry.Render(label))
		}
		return header + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	return header + "\n" + renderLines(eng.Partition(width))
}

// renderLines draws each line group as a row of bordered entry boxes.
func renderLines(part layout.Partition) string {
	var rows []string
	for _, line := range part.Lines {
		boxes := make([]string, 0, len(line))
		for _, label := range line {
			boxes = append(boxes, styleEntry.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
