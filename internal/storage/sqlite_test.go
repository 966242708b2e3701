package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.aimtrainer/prefs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".aimtrainer", "prefs.db")); err != nil {
		t.Errorf("expected database under home directory: %v", err)
	}
}

func TestPreferenceMissing(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.Preference(LanguageKey)
	if err != nil {
		t.Fatalf("Preference() failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("Preference() on empty store = (%q, %v), expected (\"\", false)", value, ok)
	}
}

func TestPreferenceSetAndReplace(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetPreference(LanguageKey, "ar"); err != nil {
		t.Fatalf("SetPreference() failed: %v", err)
	}
	if err := store.SetPreference(LanguageKey, "en"); err != nil {
		t.Fatalf("SetPreference() replace failed: %v", err)
	}

	value, ok, err := store.Preference(LanguageKey)
	if err != nil || !ok || value != "en" {
		t.Errorf("Preference() = (%q, %v, %v), expected (\"en\", true, nil)", value, ok, err)
	}

	prefs, err := store.Preferences()
	if err != nil {
		t.Fatalf("Preferences() failed: %v", err)
	}
	if len(prefs) != 1 {
		t.Fatalf("Expected 1 preference after upsert, got %d", len(prefs))
	}
	if prefs[0].UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be parsed")
	}
}

func TestPreferencePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetPreference(LanguageKey, "ar"); err != nil {
		t.Fatalf("SetPreference() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if value, ok, _ := store.Preference(LanguageKey); !ok || value != "ar" {
		t.Errorf("after reopen Preference() = (%q, %v), expected (\"ar\", true)", value, ok)
	}
}

func TestDeletePreference(t *testing.T) {
	store := openTestStore(t)

	if err := store.DeletePreference("absent"); err != nil {
		t.Errorf("DeletePreference() on missing key failed: %v", err)
	}

	store.SetPreference("a", "1") //nolint:errcheck
	store.SetPreference("b", "2") //nolint:errcheck
	if err := store.DeletePreference("a"); err != nil {
		t.Fatalf("DeletePreference() failed: %v", err)
	}

	prefs, err := store.Preferences()
	if err != nil {
		t.Fatalf("Preferences() failed: %v", err)
	}
	if len(prefs) != 1 || prefs[0].Key != "b" {
		t.Errorf("Preferences() = %+v, expected only b", prefs)
	}
}
