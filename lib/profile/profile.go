// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package profile stores named region connection profiles on disk.
//
// Each profile is one JSON file in the profile directory (comments
// and trailing commas are tolerated, so the files can be annotated by
// hand). The default profile is a "default" symlink pointing at one
// of them.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

// Profile is a named connection to a Quarry region.
type Profile struct {
	// Name identifies the profile in flags and listings.
	Name string `json:"name"`

	// URL is the base URL of the region API
	// (e.g., "http://quarry.example.com/api/2.0").
	URL string `json:"url"`

	// APIKey authenticates requests against the region.
	APIKey string `json:"api_key"`
}

// defaultLink is the symlink marking the default profile.
const defaultLink = "default"

// validName rejects names that would escape the profile directory or
// collide with its structure.
func validName(name string) error {
	if name == "" {
		return fmt.Errorf("profile has no name")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid profile name %q", name)
	}
	return nil
}

// Dir returns the profile directory. Checks QUARRY_PROFILE_DIR first,
// then falls back to ~/.config/quarry/profiles.
func Dir() string {
	if envDir := os.Getenv("QUARRY_PROFILE_DIR"); envDir != "" {
		return envDir
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Last resort when no home directory is known.
			return filepath.Join("/tmp", "quarry-profiles")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "quarry", "profiles")
}

// Store reads and writes profiles in a single directory.
type Store struct {
	dir string
}

// Open returns a store rooted at dir, creating the directory (mode
// 0700, profiles hold credentials) when it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating profile directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// OpenDefault opens the store at the well-known directory (see Dir).
func OpenDefault() (*Store, error) {
	return Open(Dir())
}

// Dir returns the directory the store reads from.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) linkPath() string {
	return filepath.Join(s.dir, defaultLink)
}

// Names returns the stored profile names, sorted.
func (s *Store) Names() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading profile directory %s: %w", s.dir, err)
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if name == defaultLink || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads the named profile.
func (s *Store) Load(name string) (*Profile, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no profile named %q (run \"quarry login\" first)", name)
		}
		return nil, fmt.Errorf("reading profile %s: %w", name, err)
	}

	var loaded Profile
	if err := json.Unmarshal(jsonc.ToJSON(data), &loaded); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", name, err)
	}
	if loaded.Name == "" {
		loaded.Name = name
	}
	if loaded.URL == "" {
		return nil, fmt.Errorf("profile %s has no url", name)
	}
	return &loaded, nil
}

// Save writes the profile to <name>.json with mode 0600.
func (s *Store) Save(saved *Profile) error {
	if err := validName(saved.Name); err != nil {
		return err
	}
	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling profile %s: %w", saved.Name, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path(saved.Name), data, 0600); err != nil {
		return fmt.Errorf("writing profile %s: %w", saved.Name, err)
	}
	return nil
}

// Remove deletes the named profile. When it was the default, the
// default marker is cleared first.
func (s *Store) Remove(name string) error {
	current, err := s.DefaultName()
	if err != nil {
		return err
	}
	if current == name {
		if err := s.ClearDefault(); err != nil {
			return err
		}
	}
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no profile named %q", name)
		}
		return fmt.Errorf("removing profile %s: %w", name, err)
	}
	return nil
}

// DefaultName returns the name the default link points at, or ""
// when no default is set.
func (s *Store) DefaultName() (string, error) {
	target, err := os.Readlink(s.linkPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading default profile link: %w", err)
	}
	return strings.TrimSuffix(filepath.Base(target), ".json"), nil
}

// Default loads the default profile. Returns nil without error when
// no default is set or the link dangles.
func (s *Store) Default() (*Profile, error) {
	name, err := s.DefaultName()
	if err != nil || name == "" {
		return nil, err
	}
	if _, err := os.Stat(s.path(name)); err != nil {
		// Dangling link: the profile it named is gone.
		return nil, nil
	}
	return s.Load(name)
}

// SetDefault points the default link at the named profile.
func (s *Store) SetDefault(name string) error {
	if _, err := os.Stat(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no profile named %q", name)
		}
		return fmt.Errorf("checking profile %s: %w", name, err)
	}
	if err := s.ClearDefault(); err != nil {
		return err
	}
	if err := os.Symlink(name+".json", s.linkPath()); err != nil {
		return fmt.Errorf("linking default profile: %w", err)
	}
	return nil
}

// ClearDefault removes the default link if present.
func (s *Store) ClearDefault() error {
	if err := os.Remove(s.linkPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing default profile link: %w", err)
	}
	return nil
}

// Resolve returns the stored profile names and the default profile
// (nil when none is set).
func (s *Store) Resolve() ([]string, *Profile, error) {
	names, err := s.Names()
	if err != nil {
		return nil, nil, err
	}
	defaultProfile, err := s.Default()
	if err != nil {
		return nil, nil, err
	}
	return names, defaultProfile, nil
}

// Resolve opens the default store and resolves it. This runs once at
// CLI startup, before the command tree declares any profile-dependent
// flags.
func Resolve() ([]string, *Profile, error) {
	store, err := OpenDefault()
	if err != nil {
		return nil, nil, err
	}
	return store.Resolve()
}
