package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTempJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "vitalflow.json"))
}

func TestJSONStoreInitAndReload(t *testing.T) {
	store := newTempJSONStore(t)

	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Set("greeting", "hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A second store against the same file sees the write.
	other := NewJSONStore(store.GetConfigPath())
	if err := other.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	value, ok, err := other.Get("greeting")
	if err != nil || !ok || value != "hello" {
		t.Fatalf("Get = (%q, %v, %v), want (hello, true, nil)", value, ok, err)
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	store := newTempJSONStore(t)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Init(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Init = %v, want ErrAlreadyInitialized", err)
	}
}

func TestJSONStoreLoadMissing(t *testing.T) {
	store := newTempJSONStore(t)
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load = %v, want ErrNotInitialized", err)
	}
}

func TestJSONStoreUseBeforeLoad(t *testing.T) {
	store := newTempJSONStore(t)

	if _, _, err := store.Get("k"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Get = %v, want ErrNotLoaded", err)
	}
	if err := store.Set("k", "v"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Set = %v, want ErrNotLoaded", err)
	}
	if err := store.Remove("k"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Remove = %v, want ErrNotLoaded", err)
	}
}

func TestJSONStoreGetMissingKey(t *testing.T) {
	store := newTempJSONStore(t)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	_, ok, err := store.Get("absent")
	if err != nil || ok {
		t.Errorf("Get = (_, %v, %v), want (false, nil)", ok, err)
	}
}

func TestJSONStoreRemove(t *testing.T) {
	store := newTempJSONStore(t)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key still present after Remove")
	}
	// Removing again is a no-op.
	if err := store.Remove("k"); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestJSONStoreOverwrite(t *testing.T) {
	store := newTempJSONStore(t)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Set("k", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set("k", "two"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, _, _ := store.Get("k")
	if value != "two" {
		t.Errorf("Get = %q, want two", value)
	}
}

func TestJSONStoreLeavesNoTempFile(t *testing.T) {
	store := newTempJSONStore(t)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(store.GetConfigPath() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}
