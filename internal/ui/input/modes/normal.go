package modes

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dsaexplorer/internal/ui/input/types"
	"dsaexplorer/internal/ui/services/routing"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// Page keys take precedence over the global ones
	if actions, ok := m.handlePageKey(msg, ctx); ok {
		m.lastKeyWasG = false
		return actions, true
	}

	key := msg.String()

	for _, link := range routing.NavLinks {
		if key == lowerFKey(link.Key) {
			return []types.Action{types.GoToAction{Path: link.Path}}, true
		}
	}

	switch key {
	case "up", "k":
		return navigate("up"), true
	case "down", "j":
		return navigate("down"), true
	case "pgup", "ctrl+u":
		return navigate("pageup"), true
	case "pgdown", "ctrl+d":
		return navigate("pagedown"), true
	case "home":
		return navigate("home"), true
	case "end":
		return navigate("end"), true

	case "ctrl+k", "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeOverlay, Data: ctx.SearchQuery()}}, true

	case "t":
		return []types.Action{types.ToggleThemeAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "b", "backspace", "esc":
		if ctx.CanGoBack() {
			return []types.Action{types.BackAction{}}, true
		}
		return nil, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return navigate("home"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return navigate("end"), true
	}

	// Any other key cancels the 'g' prefix
	m.lastKeyWasG = false
	return nil, false
}

func (m *NormalMode) handlePageKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	page := ctx.CurrentPage()

	if page == routing.PageNotFound || (page == routing.PageTopic && !ctx.TopicFound()) {
		switch key {
		case "enter", "b", "esc", "backspace":
			return []types.Action{types.GoToAction{Path: routing.Home}}, true
		}
		return nil, false
	}

	switch page {
	case routing.PageCatalog:
		switch key {
		case "enter":
			if id := ctx.CurrentTopicID(); id != "" {
				return []types.Action{types.OpenTopicAction{ID: id}}, true
			}
			return nil, true
		case "/":
			return []types.Action{types.ChangeModeAction{Mode: types.ModeQueryEdit, Data: ctx.SearchQuery()}}, true
		case "c":
			return []types.Action{types.ChangeModeAction{Mode: types.ModeCategorySelect}}, true
		case "d":
			return []types.Action{types.ChangeModeAction{Mode: types.ModeDifficultySelect}}, true
		case "x":
			return []types.Action{types.ClearFiltersAction{}}, true
		}

	case routing.PageTopic:
		switch key {
		case "tab", "right", "l":
			return []types.Action{types.SwitchTabAction{Delta: 1}}, true
		case "shift+tab", "left", "h":
			return []types.Action{types.SwitchTabAction{Delta: -1}}, true
		case "1", "2", "3", "4":
			n, _ := strconv.Atoi(key)
			return []types.Action{types.SelectTabAction{Index: n - 1}}, true
		case "L":
			return []types.Action{types.CycleLanguageAction{}}, true
		case "o":
			return []types.Action{types.OpenPagerAction{}}, true
		case "esc":
			if ctx.CanGoBack() {
				return []types.Action{types.BackAction{}}, true
			}
			return []types.Action{types.GoToAction{Path: routing.Home}}, true
		}

	case routing.PageFAQ:
		switch key {
		case "enter", " ":
			return []types.Action{types.ToggleAnswerAction{}}, true
		}

	case routing.PageRoadmap:
		if key == "enter" {
			if id := ctx.CurrentTopicID(); id != "" {
				return []types.Action{types.OpenTopicAction{ID: id}}, true
			}
			return nil, true
		}

	case routing.PagePlayground:
		switch key {
		case "enter", "e", "i":
			return []types.Action{types.ChangeModeAction{Mode: types.ModePlayground}}, true
		case "ctrl+r":
			return []types.Action{types.RunCodeAction{}}, true
		case "ctrl+l":
			return []types.Action{types.ResetCodeAction{}}, true
		case "ctrl+n":
			return []types.Action{types.NextSampleAction{}}, true
		case "L":
			return []types.Action{types.CycleLanguageAction{}}, true
		}

	case routing.PageContact:
		switch key {
		case "enter", "i":
			return []types.Action{types.ChangeModeAction{Mode: types.ModeContact}}, true
		}
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}

// lowerFKey turns "F1" into the "f1" form bubbletea reports
func lowerFKey(k string) string {
	if len(k) > 0 && k[0] == 'F' {
		return "f" + k[1:]
	}
	return k
}
