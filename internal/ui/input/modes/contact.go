package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"dsaexplorer/internal/ui/input/types"
)

// ContactMode moves focus through the contact form fields. Typing goes to
// the focused field.
type ContactMode struct{}

func NewContactMode() *ContactMode {
	return &ContactMode{}
}

func (m *ContactMode) Name() string {
	return "contact"
}

func (m *ContactMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusFieldAction{Delta: 0}}
}

func (m *ContactMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ContactMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "tab", "down":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	case "enter":
		return []types.Action{types.FocusFieldAction{Delta: 1, Submit: true}}, true
	case "ctrl+s":
		return []types.Action{types.SubmitContactAction{}}, true
	}
	return nil, false
}
