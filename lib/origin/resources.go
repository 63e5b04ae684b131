// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package origin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/quarryhq/quarry/lib/remote"
)

// File is a file stored on the region.
type File struct {
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// FileSet operates on the region's stored files.
type FileSet struct {
	session *remote.Session
}

// List returns the files stored for the session's account.
func (s *FileSet) List(ctx context.Context) ([]File, error) {
	var files []File
	if err := s.session.Call(ctx, http.MethodGet, "/files/", nil, nil, &files); err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	return files, nil
}

// Tag is a label nodes can carry, used for constraint matching.
type Tag struct {
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	NodeCount int    `json:"node_count"`
}

// TagSet operates on the region's tags.
type TagSet struct {
	session *remote.Session
}

// List returns every tag defined on the region.
func (s *TagSet) List(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := s.session.Call(ctx, http.MethodGet, "/tags/", nil, nil, &tags); err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return tags, nil
}

// User is an account on the region.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Admin    bool   `json:"is_superuser"`
}

// UserSet operates on the region's user accounts.
type UserSet struct {
	session *remote.Session
}

// List returns the region's user accounts. Requires an administrator
// API key.
func (s *UserSet) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.session.Call(ctx, http.MethodGet, "/users/", nil, nil, &users); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
