package progress

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteKV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	v, err := kv.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "v2" {
		t.Fatalf("expected v2, got %q", v)
	}

	if err := kv.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	kv.Close()

	kv2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv2.Close()

	v, err := kv2.Get("k")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if v != "v" {
		t.Fatalf("expected v, got %q", v)
	}
}
