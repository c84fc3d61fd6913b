package link_test

import (
	"testing"

	"github.com/nikbrunner/ql/internal/link"
	"github.com/nikbrunner/ql/internal/model"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"https url", "https://mail.example.com", true},
		{"http url", "http://example.com/inbox", true},
		{"url with port", "https://localhost:8080/app", true},
		{"empty string", "", false},
		{"missing scheme", "example.com", false},
		{"scheme only", "https://", false},
		{"garbage", "not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := link.IsValid(tt.url); got != tt.valid {
				t.Errorf("IsValid(%q) = %v, want %v", tt.url, got, tt.valid)
			}
		})
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain host", "https://mail.example.com", "mail.example.com"},
		{"host with path", "https://docs.example.com/a/b", "docs.example.com"},
		{"host with port", "http://localhost:3000/x", "localhost:3000"},
		{"no scheme", "example.com", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := link.Domain(tt.url); got != tt.want {
				t.Errorf("Domain(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestIconURL(t *testing.T) {
	provider := "https://icon.horse/icon/"

	got := link.IconURL(provider, "https://docs.example.com/page")
	if got != "https://icon.horse/icon/docs.example.com" {
		t.Errorf("unexpected icon URL: %q", got)
	}

	// No extractable domain falls back to the default icon
	got = link.IconURL(provider, "nonsense")
	if got != "https://icon.horse/icon/google.com" {
		t.Errorf("expected fallback icon, got %q", got)
	}
}

func TestExists(t *testing.T) {
	records := map[string]model.Shortcut{
		"a": {ID: "a", Name: "Mail", URL: "https://mail.example.com"},
		"b": {ID: "b", Name: "Docs", URL: "https://docs.example.com"},
	}

	if !link.Exists(records, "https://mail.example.com", "") {
		t.Error("expected existing URL to be found")
	}
	if link.Exists(records, "https://news.example.com", "") {
		t.Error("did not expect unknown URL to be found")
	}

	// Editing a record to its own URL is not a duplicate
	if link.Exists(records, "https://mail.example.com", "a") {
		t.Error("own URL should be excluded when editing in place")
	}

	// But editing to another record's URL is
	if !link.Exists(records, "https://docs.example.com", "a") {
		t.Error("expected duplicate against another record to be found")
	}
}
