package storage_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/ql/internal/storage"
)

func TestJSONKV_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "quicklinks.json")

	kv := storage.NewJSONKV(path)

	if err := kv.Set("quicklinks", []byte(`{"a":{"id":"a"}}`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("storage file was not created")
	}

	got, err := kv.Get("quicklinks")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}

	// The file is stored pretty-printed, so compare decoded values
	var decoded map[string]map[string]string
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("failed to decode value: %v", err)
	}
	if decoded["a"]["id"] != "a" {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestJSONKV_GetMissingKey(t *testing.T) {
	tmpDir := t.TempDir()
	kv := storage.NewJSONKV(filepath.Join(tmpDir, "quicklinks.json"))

	// Missing file
	got, err := kv.Get("quicklinks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing file, got %s", got)
	}

	// File exists, key does not
	if err := kv.Set("quicklinksorder", []byte(`[]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	got, err = kv.Get("quicklinks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing key, got %s", got)
	}
}

func TestJSONKV_KeysAreIndependent(t *testing.T) {
	tmpDir := t.TempDir()
	kv := storage.NewJSONKV(filepath.Join(tmpDir, "quicklinks.json"))

	if err := kv.Set("quicklinks", []byte(`{"a":{"id":"a"}}`)); err != nil {
		t.Fatalf("failed to set quicklinks: %v", err)
	}
	if err := kv.Set("quicklinksorder", []byte(`["a"]`)); err != nil {
		t.Fatalf("failed to set quicklinksorder: %v", err)
	}

	got, err := kv.Get("quicklinks")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	var records map[string]map[string]string
	if err := json.Unmarshal(got, &records); err != nil {
		t.Fatalf("failed to decode records: %v", err)
	}
	if len(records) != 1 || records["a"]["id"] != "a" {
		t.Errorf("quicklinks damaged by write to other key: %s", got)
	}
}

func TestJSONKV_LastWriteWins(t *testing.T) {
	tmpDir := t.TempDir()
	kv := storage.NewJSONKV(filepath.Join(tmpDir, "quicklinks.json"))

	if err := kv.Set("quicklinksorder", []byte(`["a"]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := kv.Set("quicklinksorder", []byte(`["b","a"]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	got, err := kv.Get("quicklinksorder")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	var order []string
	if err := json.Unmarshal(got, &order); err != nil {
		t.Fatalf("failed to decode order: %v", err)
	}
	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Errorf("expected last write to win, got %v", order)
	}
}
