package model

// Shortcut represents a single quick-link entry on the panel.
type Shortcut struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	IconURL string `json:"iconUrl"` // derived from URL's domain, not user-editable
}

// NewShortcutParams holds parameters for creating a new Shortcut.
type NewShortcutParams struct {
	Name    string
	URL     string
	IconURL string
}

// NewShortcut creates a Shortcut with a generated UUID.
func NewShortcut(params NewShortcutParams) Shortcut {
	return Shortcut{
		ID:      generateUUID(),
		Name:    params.Name,
		URL:     params.URL,
		IconURL: params.IconURL,
	}
}
