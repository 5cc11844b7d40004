package cli

import (
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	errs "github.com/dana-c0914/tui.chart/pkg/errors"
	"github.com/dana-c0914/tui.chart/pkg/legend"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
)

// =============================================================================
// Theme / Constants Config
// =============================================================================

// themeConfig is the TOML file format for theme and spacing overrides:
//
//	[label]
//	font_family = "Arial"
//	font_size = 14
//
//	[constants]
//	checkbox_width = 16
//	marker_width = 10
//	label_left_padding = 5
//	area_padding = 10
type themeConfig struct {
	Label     legend.LabelTheme `toml:"label"`
	Constants layout.Constants  `toml:"constants"`
}

// defaultThemeConfig returns compiled-in theme defaults.
func defaultThemeConfig() themeConfig {
	return themeConfig{
		Label:     legend.DefaultTheme().Label,
		Constants: layout.DefaultConstants(),
	}
}

// loadThemeConfig decodes a TOML config over the defaults, so partial files
// override only the fields they mention.
func loadThemeConfig(path string) (themeConfig, error) {
	cfg := defaultThemeConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "load theme config %s", path)
	}
	return cfg, nil
}

// =============================================================================
// Spec Flags
// =============================================================================

// specFlags builds a legend spec from the command line when no spec file is
// given.
type specFlags struct {
	labels     []string
	chartType  string
	chartTypes []string
	align      string
	noCheckbox bool
	hidden     bool
	fontFamily string
	fontSize   float64
}

func (f *specFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.labels, "labels", "l", nil, "legend labels (comma separated)")
	cmd.Flags().StringVarP(&f.chartType, "chart-type", "t", legend.ChartLine, "primary chart type")
	cmd.Flags().StringSliceVar(&f.chartTypes, "chart-types", nil, "all chart types sharing the legend (combo charts)")
	cmd.Flags().StringVarP(&f.align, "align", "a", string(legend.DefaultAlign), "legend alignment: top, bottom, left, right, center, outer")
	cmd.Flags().BoolVar(&f.noCheckbox, "no-checkbox", false, "exclude checkbox width from entry footprints")
	cmd.Flags().BoolVar(&f.hidden, "hidden", false, "treat the legend as hidden")
	cmd.Flags().StringVar(&f.fontFamily, "font-family", "", "label font family (overrides spec and config)")
	cmd.Flags().Float64Var(&f.fontSize, "font-size", 0, "label font size (overrides spec and config)")
}

// loadSpec reads a spec from specPath when given, otherwise assembles one
// from flags. The theme config fills in any font context the spec omits.
func loadSpec(specPath string, f specFlags, cfg themeConfig) (legend.Spec, error) {
	var spec legend.Spec

	if specPath != "" {
		data, err := os.ReadFile(specPath)
		if err != nil {
			return spec, errs.Wrap(errs.ErrCodeInvalidSpec, err, "read spec %s", specPath)
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			return spec, errs.Wrap(errs.ErrCodeInvalidSpec, err, "parse spec %s", specPath)
		}
	} else {
		checkbox := !f.noCheckbox
		spec = legend.Spec{
			ChartType:  f.chartType,
			ChartTypes: f.chartTypes,
			Labels:     f.labels,
			Options: legend.Options{
				Checkbox: &checkbox,
				Align:    legend.Align(f.align),
				Hidden:   f.hidden,
			},
		}
	}

	// Theme layering: flag over spec file over config file over defaults.
	if spec.Theme.Label.FontSize == 0 {
		spec.Theme.Label = cfg.Label
	}
	if f.fontFamily != "" {
		spec.Theme.Label.FontFamily = f.fontFamily
	}
	if f.fontSize > 0 {
		spec.Theme.Label.FontSize = f.fontSize
	}

	if err := validateSpec(spec); err != nil {
		return spec, err
	}
	return spec, nil
}

// validateSpec rejects malformed specs before they reach the (total,
// non-validating) sizing core.
func validateSpec(spec legend.Spec) error {
	if err := errs.ValidateChartType(spec.ChartType); err != nil {
		return err
	}
	for _, t := range spec.ChartTypes {
		if err := errs.ValidateChartType(t); err != nil {
			return err
		}
	}
	if err := errs.ValidateAlign(string(spec.Options.Align)); err != nil {
		return err
	}
	return errs.ValidateLabels(spec.Labels)
}

func errInvalidMeasurer(name string) error {
	return errs.New(errs.ErrCodeUnsupported, "unknown measurer %q (valid: fontface, cells, approx)", name)
}
