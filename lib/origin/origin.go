// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

// Package origin exposes a region's resources as a typed object graph
// over a remote session.
package origin

import (
	"github.com/quarryhq/quarry/lib/remote"
)

// Origin is the root of the resource graph for one session. Commands
// receive an Origin rather than a raw session so they navigate typed
// resource sets instead of building request paths.
type Origin struct {
	session *remote.Session
}

// New wraps a connected session.
func New(session *remote.Session) *Origin {
	return &Origin{session: session}
}

// Session returns the underlying session.
func (o *Origin) Session() *remote.Session { return o.session }

// Nodes returns the node set.
func (o *Origin) Nodes() *NodeSet { return &NodeSet{session: o.session} }

// Files returns the stored-file set.
func (o *Origin) Files() *FileSet { return &FileSet{session: o.session} }

// Tags returns the tag set.
func (o *Origin) Tags() *TagSet { return &TagSet{session: o.session} }

// Users returns the user set.
func (o *Origin) Users() *UserSet { return &UserSet{session: o.session} }
