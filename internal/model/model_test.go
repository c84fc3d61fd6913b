package model_test

import (
	"encoding/json"
	"testing"

	"github.com/nikbrunner/ql/internal/model"
)

func TestShortcut_JSONShape(t *testing.T) {
	s := model.Shortcut{
		ID:      "a",
		Name:    "Mail",
		URL:     "https://mail.example.com",
		IconURL: "https://icon.horse/icon/mail.example.com",
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	// The wire format is the stored object form: name, url, iconUrl, id
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, field := range []string{"id", "name", "url", "iconUrl"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing %q field in JSON", field)
		}
	}

	var got model.Shortcut
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if got != s {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestNewShortcut_GeneratesUniqueIDs(t *testing.T) {
	a := model.NewShortcut(model.NewShortcutParams{Name: "A", URL: "https://a.example.com"})
	b := model.NewShortcut(model.NewShortcutParams{Name: "B", URL: "https://b.example.com"})

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected generated ids")
	}
	if a.ID == b.ID {
		t.Errorf("expected unique ids, both %q", a.ID)
	}
}
