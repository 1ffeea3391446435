package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dsaexplorer/internal/ui/input/modes"
	"dsaexplorer/internal/ui/input/types"
)

// KeySink receives the keys an editor mode did not claim
type KeySink func(msg tea.KeyMsg) tea.Cmd

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	sinks       map[types.Mode]KeySink
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		sinks:       make(map[types.Mode]KeySink),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeOverlay] = modes.NewOverlayMode(h.textInput)
	h.modes[types.ModeQueryEdit] = modes.NewQueryEditMode(h.textInput)
	h.modes[types.ModeCategorySelect] = modes.NewCategorySelectMode()
	h.modes[types.ModeDifficultySelect] = modes.NewDifficultySelectMode()
	h.modes[types.ModePlayground] = modes.NewPlaygroundMode()
	h.modes[types.ModeContact] = modes.NewContactMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed {
		if sink := h.sinks[h.currentMode]; sink != nil {
			return nil, sink(msg)
		}
		if !h.isTextMode(h.currentMode) {
			return nil, nil
		}
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		allActions = append(allActions, h.switchMode(changeMode, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	// Text modes feed every unclaimed key to the shared input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) switchMode(change types.ChangeModeAction, ctx types.Context) []types.Action {
	var actions []types.Action

	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	oldMode := h.currentMode
	h.currentMode = change.Mode

	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	if h.isTextMode(h.currentMode) {
		h.textInput.Prompt = ""
		if seed, ok := change.Data.(string); ok {
			h.textInput.SetValue(seed)
			h.textInput.CursorEnd()
		}
		h.textInput.Focus()
	} else if h.isTextMode(oldMode) {
		h.textInput.Blur()
	}

	// Mode change is also reported so the model can react to it
	return append(actions, change)
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// RegisterSink routes keys unclaimed in mode to sink
func (h *Handler) RegisterSink(mode types.Mode, sink KeySink) {
	h.sinks[mode] = sink
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeOverlay, types.ModeQueryEdit:
		return true
	default:
		return false
	}
}

// Reset drops back to normal mode without running mode exit hooks
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
