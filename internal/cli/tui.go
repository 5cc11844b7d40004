package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dana-c0914/tui.chart/pkg/legend"
)

// Width stepping for the interactive explorer.
const (
	explorerStep     = 10.0
	explorerStepBig  = 50.0
	explorerMinWidth = 0.0
)

// explorerModel is the bubbletea model for the interactive width explorer.
// Arrow keys adjust the chart width and the wrapping recomputes each step.
type explorerModel struct {
	eng   *legend.Engine
	width float64
}

func newExplorerModel(eng *legend.Engine, width float64) explorerModel {
	if width < explorerMinWidth {
		width = explorerMinWidth
	}
	return explorerModel{eng: eng, width: width}
}

func (m explorerModel) Init() tea.Cmd { return nil }

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.width = max(explorerMinWidth, m.width-explorerStep)
	case "right", "l":
		m.width += explorerStep
	case "down", "j":
		m.width = max(explorerMinWidth, m.width-explorerStepBig)
	case "up", "k":
		m.width += explorerStepBig
	}
	return m, nil
}

func (m explorerModel) View() string {
	return renderPreview(m.eng, m.width) + "\n\n" +
		StyleDim.Render("←/→ ±10  ↑/↓ ±50  q quit")
}
