package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/ql/internal/engine"
	"github.com/nikbrunner/ql/internal/link"
	"github.com/nikbrunner/ql/internal/model"
	"github.com/nikbrunner/ql/internal/tui/layout"
)

// App is the main bubbletea model for the quick links panel.
type App struct {
	engine    *engine.Engine
	keys      KeyMap
	styles    Styles
	layoutCfg layout.LayoutConfig

	openURL func(string) error
	yankURL func(string) error

	mode   Mode
	form   FormState
	cursor int

	// grabbedID marks the item currently being moved. It is presentational
	// feedback only and is never persisted.
	grabbedID string

	status string

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Engine       *engine.Engine
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	OpenURL      func(string) error   // optional, opens a URL in the browser
	YankURL      func(string) error   // optional, copies a URL, defaults to the system clipboard
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	openURL := params.OpenURL
	if openURL == nil {
		openURL = func(string) error { return nil }
	}

	yankURL := params.YankURL
	if yankURL == nil {
		yankURL = clipboard.WriteAll
	}

	return App{
		engine:    params.Engine,
		keys:      keys,
		styles:    styles,
		layoutCfg: layoutCfg,
		openURL:   openURL,
		yankURL:   yankURL,
		form:      NewFormState(layoutCfg),
		width:     80,
		height:    24,
	}
}

// WithDimensions returns a copy of the app with fixed dimensions.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// CurrentMode returns the active input mode.
func (a App) CurrentMode() Mode {
	return a.mode
}

// GrabbedID returns the id of the item being moved, or "".
func (a App) GrabbedID() string {
	return a.grabbedID
}

// Status returns the transient status line.
func (a App) Status() string {
	return a.status
}

// FormMessage returns the validation feedback of the open form.
func (a App) FormMessage() string {
	return a.form.Message
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.mode == ModeForm {
			return a.updateForm(msg)
		}
		return a.updateNormal(msg)
	}

	return a, nil
}

// updateNormal handles key events on the panel itself.
func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	shortcuts := a.engine.Shortcuts()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.grabbedID != "" {
			a.moveGrabbed(shortcuts, a.cursor+1)
			return a, nil
		}
		if len(shortcuts) > 0 && a.cursor < len(shortcuts)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.grabbedID != "" {
			a.moveGrabbed(shortcuts, a.cursor-1)
			return a, nil
		}
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Grab):
		if a.grabbedID != "" {
			a.grabbedID = ""
			a.status = ""
			return a, nil
		}
		if len(shortcuts) > 0 && a.cursor < len(shortcuts) {
			a.grabbedID = shortcuts[a.cursor].ID
			a.status = "moving " + layout.DisplayName(shortcuts[a.cursor].Name, a.layoutCfg.Text)
		}

	case key.Matches(msg, a.keys.Open):
		if len(shortcuts) == 0 || a.cursor >= len(shortcuts) {
			return a, nil
		}
		selected := shortcuts[a.cursor]
		// Clicks are suppressed while the item is mid-drag
		if a.grabbedID == selected.ID {
			return a, nil
		}
		if err := a.openURL(selected.URL); err != nil {
			a.status = "could not open " + selected.URL
		}

	case key.Matches(msg, a.keys.Add):
		a.form.Open("", "", "")
		a.mode = ModeForm

	case key.Matches(msg, a.keys.Edit):
		if len(shortcuts) > 0 && a.cursor < len(shortcuts) {
			s := shortcuts[a.cursor]
			a.form.Open(s.ID, s.Name, s.URL)
			a.mode = ModeForm
		}

	case key.Matches(msg, a.keys.Delete):
		if len(shortcuts) > 0 && a.cursor < len(shortcuts) {
			removed := shortcuts[a.cursor]
			a.engine.Remove(removed.ID)
			if a.grabbedID == removed.ID {
				a.grabbedID = ""
			}
			if remaining := len(shortcuts) - 1; a.cursor >= remaining && a.cursor > 0 {
				a.cursor--
			}
			a.status = "removed shortcut"
		}

	case key.Matches(msg, a.keys.YankURL):
		if len(shortcuts) > 0 && a.cursor < len(shortcuts) {
			if err := a.yankURL(shortcuts[a.cursor].URL); err != nil {
				a.status = "clipboard unavailable"
			} else {
				a.status = "copied URL"
			}
		}
	}

	return a, nil
}

// moveGrabbed relocates the grabbed item to the neighbor's position,
// the keyboard stand-in for a drag gesture.
func (a *App) moveGrabbed(shortcuts []model.Shortcut, target int) {
	if target < 0 || target >= len(shortcuts) {
		return
	}
	a.engine.Move(a.grabbedID, shortcuts[target].ID)
	a.cursor = target
}

// updateForm handles key events while the add/edit modal is open.
func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.form.Close()
		a.mode = ModeNormal
		return a, nil

	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		a.form.ToggleFocus()
		return a, nil

	case tea.KeyEnter:
		return a.submitForm()
	}

	var cmd tea.Cmd
	if a.form.Focused == formFieldURL {
		a.form.URLInput, cmd = a.form.URLInput.Update(msg)
	} else {
		a.form.NameInput, cmd = a.form.NameInput.Update(msg)
	}

	a.form.Message = a.validateForm()
	return a, cmd
}

// submitForm applies the add/edit intent. Rejections keep the form open
// with the validation message so the input can be corrected.
func (a App) submitForm() (tea.Model, tea.Cmd) {
	name := a.form.NameInput.Value()
	url := a.form.URLInput.Value()

	id, err := a.engine.AddOrEdit(a.form.EditingID, name, url)
	if err != nil {
		a.form.Message = intentMessage(err)
		return a, nil
	}

	a.form.Close()
	a.mode = ModeNormal

	// Put the cursor on the affected shortcut
	for i, s := range a.engine.Shortcuts() {
		if s.ID == id {
			a.cursor = i
			break
		}
	}
	return a, nil
}

// validateForm mirrors the submit checks for live feedback while typing.
func (a App) validateForm() string {
	url := link.Normalize(a.form.URLInput.Value())
	if url == "" {
		return ""
	}
	if !link.IsValid(url) {
		return "Please enter a valid URL."
	}
	for _, s := range a.engine.Shortcuts() {
		if s.ID != a.form.EditingID && s.URL == url {
			return "Shortcut already exists."
		}
	}
	return ""
}

// intentMessage maps engine rejections to the form feedback text.
func intentMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrInvalidURL):
		return "Please enter a valid URL."
	case errors.Is(err, engine.ErrDuplicateURL):
		return "Shortcut already exists."
	default:
		return fmt.Sprintf("Could not save shortcut: %v", err)
	}
}
