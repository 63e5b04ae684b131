// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package origin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quarryhq/quarry/lib/remote"
)

// Node is a machine known to the region.
type Node struct {
	SystemID     string   `json:"system_id"`
	Hostname     string   `json:"hostname"`
	Status       string   `json:"status"`
	Architecture string   `json:"architecture"`
	CPUCount     int      `json:"cpu_count"`
	MemoryMB     int      `json:"memory_mb"`
	Tags         []string `json:"tags"`
}

// NodeSet operates on the region's nodes.
type NodeSet struct {
	session *remote.Session
}

// List returns every node visible to the session's account.
func (s *NodeSet) List(ctx context.Context) ([]Node, error) {
	var nodes []Node
	if err := s.session.Call(ctx, http.MethodGet, "/nodes/", nil, nil, &nodes); err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}
	return nodes, nil
}

// AcquireConstraints narrow which node the region may allocate. Zero
// fields leave the corresponding dimension unconstrained.
type AcquireConstraints struct {
	Hostname string   `json:"hostname,omitempty"`
	CPUCount int      `json:"cpu_count,omitempty"`
	MemoryMB int      `json:"memory_mb,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Acquire allocates a ready node matching the constraints and
// reserves it for the session's account.
func (s *NodeSet) Acquire(ctx context.Context, constraints AcquireConstraints) (*Node, error) {
	var node Node
	if err := s.session.Call(ctx, http.MethodPost, "/nodes/acquire/", nil, constraints, &node); err != nil {
		return nil, fmt.Errorf("acquiring node: %w", err)
	}
	return &node, nil
}

// Launch deploys an operating system onto an acquired node. An empty
// image selects the region default.
func (s *NodeSet) Launch(ctx context.Context, systemID, image string) (*Node, error) {
	payload := map[string]string{}
	if image != "" {
		payload["image"] = image
	}
	var node Node
	path := "/nodes/" + url.PathEscape(systemID) + "/launch/"
	if err := s.session.Call(ctx, http.MethodPost, path, nil, payload, &node); err != nil {
		return nil, fmt.Errorf("launching node %s: %w", systemID, err)
	}
	return &node, nil
}

// Release returns an allocated node to the ready pool.
func (s *NodeSet) Release(ctx context.Context, systemID string) (*Node, error) {
	var node Node
	path := "/nodes/" + url.PathEscape(systemID) + "/release/"
	if err := s.session.Call(ctx, http.MethodPost, path, nil, nil, &node); err != nil {
		return nil, fmt.Errorf("releasing node %s: %w", systemID, err)
	}
	return &node, nil
}
