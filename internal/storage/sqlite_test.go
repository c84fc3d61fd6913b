package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/nikbrunner/ql/internal/storage"
)

func newTestSQLiteKV(t *testing.T) *storage.SQLiteKV {
	t.Helper()
	tmpDir := t.TempDir()
	kv, err := storage.NewSQLiteKV(filepath.Join(tmpDir, "quicklinks.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite storage: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKV_SetAndGet(t *testing.T) {
	kv := newTestSQLiteKV(t)

	if err := kv.Set("quicklinks", []byte(`{"a":{"id":"a","name":"Mail"}}`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	got, err := kv.Get("quicklinks")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if string(got) != `{"a":{"id":"a","name":"Mail"}}` {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestSQLiteKV_GetMissingKey(t *testing.T) {
	kv := newTestSQLiteKV(t)

	got, err := kv.Get("quicklinks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing key, got %s", got)
	}
}

func TestSQLiteKV_Upsert(t *testing.T) {
	kv := newTestSQLiteKV(t)

	if err := kv.Set("quicklinksorder", []byte(`["a"]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := kv.Set("quicklinksorder", []byte(`["b","a"]`)); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}

	got, err := kv.Get("quicklinksorder")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if string(got) != `["b","a"]` {
		t.Errorf("expected overwritten value, got %s", got)
	}
}

func TestSQLiteKV_ReopenKeepsData(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "quicklinks.db")

	kv, err := storage.NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("failed to open sqlite storage: %v", err)
	}
	if err := kv.Set("quicklinks", []byte(`{}`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	reopened, err := storage.NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("quicklinks")
	if err != nil {
		t.Fatalf("failed to get after reopen: %v", err)
	}
	if string(got) != `{}` {
		t.Errorf("expected persisted value after reopen, got %s", got)
	}
}
