package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// GoToAction navigates the router to a path
type GoToAction struct {
	Path string
}

func (a GoToAction) Type() string { return "go_to" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type OpenTopicAction struct {
	ID string
}

func (a OpenTopicAction) Type() string { return "open_topic" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode, a string seeds text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search overlay actions
type OpenOverlayAction struct{}

func (a OpenOverlayAction) Type() string { return "open_overlay" }

type CloseOverlayAction struct{}

func (a CloseOverlayAction) Type() string { return "close_overlay" }

// SelectResultAction picks the overlay result under the cursor
type SelectResultAction struct{}

func (a SelectResultAction) Type() string { return "select_result" }

// Catalog filter actions
type SetFilterAction struct {
	Field string // "category" or "difficulty"
	Value string
}

func (a SetFilterAction) Type() string { return "set_filter" }

type UpdateOptionIndexAction struct {
	Index int
}

func (a UpdateOptionIndexAction) Type() string { return "update_option_index" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Topic detail actions
type SwitchTabAction struct {
	Delta int
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

type SelectTabAction struct {
	Index int
}

func (a SelectTabAction) Type() string { return "select_tab" }

type CycleLanguageAction struct{}

func (a CycleLanguageAction) Type() string { return "cycle_language" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// Page actions
type ToggleAnswerAction struct{}

func (a ToggleAnswerAction) Type() string { return "toggle_answer" }

type RunCodeAction struct{}

func (a RunCodeAction) Type() string { return "run_code" }

type ResetCodeAction struct{}

func (a ResetCodeAction) Type() string { return "reset_code" }

type NextSampleAction struct{}

func (a NextSampleAction) Type() string { return "next_sample" }

type FocusFieldAction struct {
	Delta  int
	Submit bool // submit instead when already on the last field
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type SubmitContactAction struct{}

func (a SubmitContactAction) Type() string { return "submit_contact" }

// Global actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
