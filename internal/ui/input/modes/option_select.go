package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"dsaexplorer/internal/domain"
	"dsaexplorer/internal/ui/input/types"
)

const (
	FieldCategory   = "category"
	FieldDifficulty = "difficulty"
)

// CategoryOptions in selector order
var CategoryOptions = append([]string{domain.All}, domain.Categories...)

// DifficultyOptions in selector order
var DifficultyOptions = []string{
	domain.All,
	string(domain.DifficultyEasy),
	string(domain.DifficultyMedium),
	string(domain.DifficultyHard),
}

// OptionSelectMode cycles through a fixed list of filter values. Changes
// apply immediately; Esc restores the value the mode was entered with.
type OptionSelectMode struct {
	name          string
	field         string
	options       []string
	current       func(types.Context) string
	index         int
	originalIndex int
}

func NewCategorySelectMode() *OptionSelectMode {
	return &OptionSelectMode{
		name:    "category",
		field:   FieldCategory,
		options: CategoryOptions,
		current: func(ctx types.Context) string { return ctx.CurrentCategory() },
	}
}

func NewDifficultySelectMode() *OptionSelectMode {
	return &OptionSelectMode{
		name:    "difficulty",
		field:   FieldDifficulty,
		options: DifficultyOptions,
		current: func(ctx types.Context) string { return ctx.CurrentDifficulty() },
	}
}

func (m *OptionSelectMode) Name() string {
	return m.name
}

// Options returns the values this mode cycles through
func (m *OptionSelectMode) Options() []string {
	return m.options
}

func (m *OptionSelectMode) Enter(ctx types.Context) []types.Action {
	m.index = 0
	m.originalIndex = 0

	current := m.current(ctx)
	for i, option := range m.options {
		if option == current {
			m.index = i
			m.originalIndex = i
			break
		}
	}

	return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}
}

func (m *OptionSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OptionSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{
			types.SetFilterAction{Field: m.field, Value: m.options[m.originalIndex]},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k", "left", "h":
		return m.move(-1), true

	case "down", "j", "right", "l":
		return m.move(1), true
	}

	return nil, false
}

func (m *OptionSelectMode) move(delta int) []types.Action {
	m.index = (m.index + delta + len(m.options)) % len(m.options)
	return []types.Action{
		types.UpdateOptionIndexAction{Index: m.index},
		types.SetFilterAction{Field: m.field, Value: m.options[m.index]},
	}
}

// GetCurrentIndex returns the highlighted option index
func (m *OptionSelectMode) GetCurrentIndex() int {
	return m.index
}
