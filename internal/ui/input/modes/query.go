package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"dsaexplorer/internal/ui/input/types"
)

// QueryEditMode edits the search query inline on the catalog page
type QueryEditMode struct {
	TextInputMode
}

func NewQueryEditMode(ti *textinput.Model) *QueryEditMode {
	return &QueryEditMode{
		TextInputMode: NewTextInputMode(types.ModeQueryEdit, "search", "Search: ", ti),
	}
}
