package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dsaexplorer/internal/ui/input/types"
)

// OverlayMode drives the global search overlay. Typing edits the shared
// query, the arrows move through the results.
type OverlayMode struct {
	TextInputMode
}

func NewOverlayMode(ti *textinput.Model) *OverlayMode {
	return &OverlayMode{
		TextInputMode: NewTextInputMode(types.ModeOverlay, "overlay", "Search topics: ", ti),
	}
}

func (m *OverlayMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	return []types.Action{types.OpenOverlayAction{}}
}

func (m *OverlayMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "ctrl+k":
		return []types.Action{
			types.CloseOverlayAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		if ctx.OverlayResultCount() == 0 {
			return nil, true
		}
		return []types.Action{
			types.SelectResultAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "up", "ctrl+p":
		return navigate("up"), true
	case "down", "ctrl+n":
		return navigate("down"), true
	case "pgup":
		return navigate("pageup"), true
	case "pgdown":
		return navigate("pagedown"), true
	}
	return nil, false
}
