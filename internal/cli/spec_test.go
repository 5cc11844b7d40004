package cli

import (
	"os"
	"path/filepath"
	"testing"

	errs "github.com/dana-c0914/tui.chart/pkg/errors"
	"github.com/dana-c0914/tui.chart/pkg/legend"
)

func TestLoadThemeConfig_Defaults(t *testing.T) {
	cfg, err := loadThemeConfig("")
	if err != nil {
		t.Fatalf("loadThemeConfig() failed: %v", err)
	}
	if cfg.Label.FontSize != 12 {
		t.Errorf("font size = %v, want 12", cfg.Label.FontSize)
	}
	if cfg.Constants.CheckboxWidth != 16 {
		t.Errorf("checkbox width = %v, want 16", cfg.Constants.CheckboxWidth)
	}
}

func TestLoadThemeConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	content := "[label]\nfont_size = 14\n\n[constants]\narea_padding = 4\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadThemeConfig(path)
	if err != nil {
		t.Fatalf("loadThemeConfig() failed: %v", err)
	}
	if cfg.Label.FontSize != 14 {
		t.Errorf("font size = %v, want 14", cfg.Label.FontSize)
	}
	if cfg.Constants.AreaPadding != 4 {
		t.Errorf("area padding = %v, want 4", cfg.Constants.AreaPadding)
	}
	// Fields the file does not mention keep their defaults.
	if cfg.Label.FontFamily != "Helvetica" {
		t.Errorf("font family = %q, want Helvetica", cfg.Label.FontFamily)
	}
	if cfg.Constants.MarkerWidth != 10 {
		t.Errorf("marker width = %v, want 10", cfg.Constants.MarkerWidth)
	}
}

func TestLoadThemeConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("[label\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadThemeConfig(path); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadSpec_FromFlags(t *testing.T) {
	flags := specFlags{
		labels:    []string{"a", "b"},
		chartType: "line",
		align:     "top",
	}

	spec, err := loadSpec("", flags, defaultThemeConfig())
	if err != nil {
		t.Fatalf("loadSpec() failed: %v", err)
	}
	if spec.Options.Align != legend.AlignTop {
		t.Errorf("align = %v, want top", spec.Options.Align)
	}
	if !spec.Options.HasCheckbox() {
		t.Error("checkbox disabled, want enabled by default")
	}
	if spec.Theme.Label.FontSize != 12 {
		t.Errorf("font size = %v, want theme default 12", spec.Theme.Label.FontSize)
	}
}

func TestLoadSpec_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.json")
	content := `{
		"chart_type": "pie",
		"labels": ["x", "y"],
		"options": {"align": "outer"},
		"theme": {"label": {"font_family": "Arial", "font_size": 14}}
	}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	spec, err := loadSpec(path, specFlags{}, defaultThemeConfig())
	if err != nil {
		t.Fatalf("loadSpec() failed: %v", err)
	}
	if spec.ChartType != "pie" || spec.Options.Align != legend.AlignOuter {
		t.Errorf("spec = %+v, want pie/outer", spec)
	}
	// A spec that carries its own theme is not overridden by the config.
	if spec.Theme.Label.FontFamily != "Arial" || spec.Theme.Label.FontSize != 14 {
		t.Errorf("theme = %+v, want Arial 14", spec.Theme.Label)
	}
}

func TestLoadSpec_FontFlagsWinOverConfig(t *testing.T) {
	flags := specFlags{
		chartType:  "line",
		fontFamily: "Menlo",
		fontSize:   16,
	}

	spec, err := loadSpec("", flags, defaultThemeConfig())
	if err != nil {
		t.Fatalf("loadSpec() failed: %v", err)
	}
	if spec.Theme.Label.FontFamily != "Menlo" || spec.Theme.Label.FontSize != 16 {
		t.Errorf("theme = %+v, want Menlo 16", spec.Theme.Label)
	}
}

func TestLoadSpec_InvalidAlign(t *testing.T) {
	flags := specFlags{chartType: "line", align: "middle"}
	if _, err := loadSpec("", flags, defaultThemeConfig()); !errs.Is(err, errs.ErrCodeInvalidAlign) {
		t.Errorf("error = %v, want INVALID_ALIGN", err)
	}
}

func TestNewMeasurer(t *testing.T) {
	for _, name := range []string{"", measurerFontFace, measurerCells, measurerApprox} {
		if _, err := newMeasurer(name); err != nil {
			t.Errorf("newMeasurer(%q) failed: %v", name, err)
		}
	}
	if _, err := newMeasurer("ruler"); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("newMeasurer(ruler) error = %v, want UNSUPPORTED", err)
	}
}
