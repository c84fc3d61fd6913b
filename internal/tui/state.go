package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/ql/internal/tui/layout"
)

// Mode identifies which input surface owns key events.
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm
)

// formFieldURL and formFieldName index the focusable form inputs.
const (
	formFieldURL = iota
	formFieldName
)

// FormState holds state for the add/edit shortcut modal.
type FormState struct {
	URLInput  textinput.Model
	NameInput textinput.Model
	Focused   int    // formFieldURL or formFieldName
	EditingID string // empty when adding a new shortcut
	Message   string // validation feedback, shown until the form settles
}

// NewFormState creates a FormState with initialized inputs.
func NewFormState(cfg layout.LayoutConfig) FormState {
	urlInput := textinput.New()
	urlInput.Placeholder = "URL"
	urlInput.CharLimit = 2048
	urlInput.Width = cfg.Modal.MaxWidth - 10

	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.CharLimit = 128
	nameInput.Width = cfg.Modal.MaxWidth - 10

	return FormState{
		URLInput:  urlInput,
		NameInput: nameInput,
	}
}

// Open prepares the form for a new add or edit session.
func (f *FormState) Open(editingID, name, url string) {
	f.EditingID = editingID
	f.Message = ""
	f.URLInput.SetValue(url)
	f.NameInput.SetValue(name)
	f.Focused = formFieldURL
	f.URLInput.Focus()
	f.NameInput.Blur()
}

// Close blurs the inputs and clears the session.
func (f *FormState) Close() {
	f.EditingID = ""
	f.Message = ""
	f.URLInput.Reset()
	f.NameInput.Reset()
	f.URLInput.Blur()
	f.NameInput.Blur()
}

// ToggleFocus moves focus between the URL and name fields.
func (f *FormState) ToggleFocus() {
	if f.Focused == formFieldURL {
		f.Focused = formFieldName
		f.URLInput.Blur()
		f.NameInput.Focus()
	} else {
		f.Focused = formFieldURL
		f.NameInput.Blur()
		f.URLInput.Focus()
	}
}
