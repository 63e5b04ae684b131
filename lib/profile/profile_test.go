// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return store
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	store := openTestStore(t)

	saved := &Profile{Name: "prod", URL: "http://quarry.example.com/api/2.0", APIKey: "key:secret"}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := store.Load("prod")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("Load() = %+v, want %+v", loaded, saved)
	}

	info, err := os.Stat(filepath.Join(store.Dir(), "prod.json"))
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("profile file mode = %o, want 0600", mode)
	}
}

func TestStore_LoadToleratesComments(t *testing.T) {
	store := openTestStore(t)

	annotated := `{
  // The staging region, torn down on weekends.
  "name": "staging",
  "url": "http://staging.example.com/api/2.0",
  "api_key": "key:staging",
}
`
	path := filepath.Join(store.Dir(), "staging.json")
	if err := os.WriteFile(path, []byte(annotated), 0600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	loaded, err := store.Load("staging")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.URL != "http://staging.example.com/api/2.0" {
		t.Errorf("URL = %q", loaded.URL)
	}
	if loaded.APIKey != "key:staging" {
		t.Errorf("APIKey = %q", loaded.APIKey)
	}
}

func TestStore_Save_RejectsBadNames(t *testing.T) {
	store := openTestStore(t)
	for _, name := range []string{"", ".", "..", "up/../and/out", `back\slash`} {
		err := store.Save(&Profile{Name: name, URL: "http://example.com/"})
		if err == nil {
			t.Errorf("Save(%q) = nil, want an error", name)
		}
	}
}

func TestStore_NamesSorted(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"zinc", "alpha", "mica"} {
		if err := store.Save(&Profile{Name: name, URL: "http://example.com"}); err != nil {
			t.Fatalf("Save(%q) error: %v", name, err)
		}
	}
	// The default link must not show up as a profile.
	if err := store.SetDefault("mica"); err != nil {
		t.Fatalf("SetDefault() error: %v", err)
	}

	names, err := store.Names()
	if err != nil {
		t.Fatalf("Names() error: %v", err)
	}
	want := []string{"alpha", "mica", "zinc"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestStore_DefaultViaSymlink(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(&Profile{Name: "prod", URL: "http://example.com"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// No default yet.
	defaultProfile, err := store.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if defaultProfile != nil {
		t.Fatalf("Default() = %+v, want nil before SetDefault", defaultProfile)
	}

	if err := store.SetDefault("prod"); err != nil {
		t.Fatalf("SetDefault() error: %v", err)
	}
	defaultProfile, err = store.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if defaultProfile == nil || defaultProfile.Name != "prod" {
		t.Errorf("Default() = %+v, want prod", defaultProfile)
	}

	// Re-pointing the link must not fail on the existing link.
	if err := store.Save(&Profile{Name: "lab", URL: "http://lab.example.com"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.SetDefault("lab"); err != nil {
		t.Fatalf("SetDefault(lab) error: %v", err)
	}
	name, err := store.DefaultName()
	if err != nil {
		t.Fatalf("DefaultName() error: %v", err)
	}
	if name != "lab" {
		t.Errorf("DefaultName() = %q, want %q", name, "lab")
	}
}

func TestStore_SetDefault_UnknownProfile(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetDefault("ghost"); err == nil {
		t.Error("SetDefault(\"ghost\") = nil, want error")
	}
}

func TestStore_DanglingDefaultLink(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(&Profile{Name: "prod", URL: "http://example.com"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.SetDefault("prod"); err != nil {
		t.Fatalf("SetDefault() error: %v", err)
	}
	// Delete the file behind the store's back, leaving the link dangling.
	if err := os.Remove(filepath.Join(store.Dir(), "prod.json")); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	defaultProfile, err := store.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if defaultProfile != nil {
		t.Errorf("Default() = %+v, want nil for a dangling link", defaultProfile)
	}
}

func TestStore_RemoveClearsDefault(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(&Profile{Name: "prod", URL: "http://example.com"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.SetDefault("prod"); err != nil {
		t.Fatalf("SetDefault() error: %v", err)
	}
	if err := store.Remove("prod"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	name, err := store.DefaultName()
	if err != nil {
		t.Fatalf("DefaultName() error: %v", err)
	}
	if name != "" {
		t.Errorf("DefaultName() = %q after removing the default, want \"\"", name)
	}
}

func TestStore_Remove_UnknownProfile(t *testing.T) {
	store := openTestStore(t)
	if err := store.Remove("ghost"); err == nil {
		t.Error("Remove(\"ghost\") = nil, want error")
	}
}

func TestStore_Resolve(t *testing.T) {
	store := openTestStore(t)

	names, defaultProfile, err := store.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(names) != 0 || defaultProfile != nil {
		t.Errorf("Resolve() on empty store = %v, %+v", names, defaultProfile)
	}

	if err := store.Save(&Profile{Name: "prod", URL: "http://example.com"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.SetDefault("prod"); err != nil {
		t.Fatalf("SetDefault() error: %v", err)
	}

	names, defaultProfile, err = store.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(names) != 1 || names[0] != "prod" {
		t.Errorf("Resolve() names = %v, want [prod]", names)
	}
	if defaultProfile == nil || defaultProfile.Name != "prod" {
		t.Errorf("Resolve() default = %+v, want prod", defaultProfile)
	}
}

func TestResolve_UsesEnvDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUARRY_PROFILE_DIR", dir)

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := store.Save(&Profile{Name: "env", URL: "http://example.com"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	names, _, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(names) != 1 || names[0] != "env" {
		t.Errorf("Resolve() names = %v, want [env]", names)
	}
}
