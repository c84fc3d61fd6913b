package layout_test

import (
	"testing"

	"github.com/nikbrunner/ql/internal/tui/layout"
)

func TestCalculateModalWidth(t *testing.T) {
	cfg := layout.ModalConfig{WidthPercent: 60, MinWidth: 40, MaxWidth: 80}

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"standard terminal", 100, 60},
		{"wide terminal clamps to max", 200, 80},
		{"narrow terminal clamps to min then fits", 50, 40},
		{"tiny terminal never exceeds width", 30, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layout.CalculateModalWidth(tt.terminalWidth, cfg); got != tt.want {
				t.Errorf("CalculateModalWidth(%d) = %d, want %d", tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleListItems(t *testing.T) {
	tests := []struct {
		name        string
		maxVisible  int
		selectedIdx int
		totalItems  int
		wantStart   int
		wantEnd     int
	}{
		{"all fit", 10, 0, 5, 0, 5},
		{"window at top", 3, 0, 10, 0, 3},
		{"window follows selection", 3, 5, 10, 3, 6},
		{"window at bottom", 3, 9, 10, 7, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := layout.CalculateVisibleListItems(tt.maxVisible, tt.selectedIdx, tt.totalItems)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("got (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := layout.TextConfig{Ellipsis: "…"}

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"fits", "Mail", 10, "Mail", false},
		{"exact fit", "Mail", 4, "Mail", false},
		{"truncated", "Dashboard", 5, "Dash…", true},
		{"zero width", "Mail", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := layout.TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.truncated {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.truncated)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	cfg := layout.DefaultConfig().Text

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty renders dash", "", "-"},
		{"short name unchanged", "Mail", "Mail"},
		{"exact width unchanged", "Docs12", "Docs12"},
		{"long name truncated", "Dashboard", "Dashbo…"},
		{"trailing space trimmed before ellipsis", "Team  Wiki", "Team…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layout.DisplayName(tt.in, cfg); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	styled := "\x1b[1mMail\x1b[0m"
	if got := layout.StripANSI(styled); got != "Mail" {
		t.Errorf("StripANSI = %q, want %q", got, "Mail")
	}
	if got := layout.VisibleLength(styled); got != 4 {
		t.Errorf("VisibleLength = %d, want 4", got)
	}
}
