package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"dsaexplorer/internal/ui/input/types"
)

// PlaygroundMode is active while the code editor has focus. Keys it does
// not claim go to the editor.
type PlaygroundMode struct{}

func NewPlaygroundMode() *PlaygroundMode {
	return &PlaygroundMode{}
}

func (m *PlaygroundMode) Name() string {
	return "editor"
}

func (m *PlaygroundMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PlaygroundMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PlaygroundMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "ctrl+r":
		return []types.Action{types.RunCodeAction{}}, true
	case "ctrl+l":
		return []types.Action{types.ResetCodeAction{}}, true
	case "ctrl+n":
		return []types.Action{types.NextSampleAction{}}, true
	}
	return nil, false
}
