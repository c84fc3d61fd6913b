package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Modal ModalConfig
	Text  TextConfig
	List  ListConfig
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// TextConfig holds text rendering configuration.
type TextConfig struct {
	// Ellipsis is appended to truncated text.
	Ellipsis string

	// NameWidth is the max rune count of a shortcut name on the panel.
	NameWidth int
}

// ListConfig holds list rendering configuration.
type ListConfig struct {
	// HeightReduction is subtracted from terminal height for list content.
	// Accounts for: title (2) + status line (1) + help bar (2) = 5
	HeightReduction int

	// MinVisible is the minimum number of visible list rows.
	MinVisible int
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Modal: ModalConfig{
			WidthPercent: 60,
			MinWidth:     40,
			MaxWidth:     80,
		},
		Text: TextConfig{
			Ellipsis:  "…",
			NameWidth: 6,
		},
		List: ListConfig{
			HeightReduction: 5,
			MinVisible:      3,
		},
	}
}
