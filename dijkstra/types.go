// Package dijkstra: configuration types and sentinel errors.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/spantree/spantree"
)

// Sentinel errors returned by the shortest-path-tree implementation.
var (
	// ErrNoGraph indicates Compute was called before Bind. Unlike the MST
	// strategies, Dijkstra fails fast here instead of no-opping: a
	// shortest-path query against nothing is always a caller bug.
	ErrNoGraph = errors.New("dijkstra: no graph bound")

	// ErrNoSource indicates that no source node was configured.
	ErrNoSource = errors.New("dijkstra: no source node configured")

	// ErrSourceNotFound indicates the configured source node does not exist
	// in the bound graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeLength indicates a negative numeric length was found on a
	// contributing edge or node. Never clamped or ignored: the whole
	// computation fails before any distance is finalized.
	ErrNegativeLength = errors.New("dijkstra: negative length encountered")
)

// DefaultLengthUnit substitutes for every contributing element when no
// length label is configured, and for a missing or non-numeric property
// value when one is.
const DefaultLengthUnit = 1.0

// LengthModel selects which element kinds contribute to path length.
type LengthModel int

const (
	// EdgeLength counts edge lengths only (the classic formulation).
	EdgeLength LengthModel = iota

	// NodeLength counts node lengths only; traversed edges are free.
	NodeLength

	// EdgeAndNodeLength counts both: each relaxation step adds the edge's
	// length plus the entered node's length.
	EdgeAndNodeLength
)

// Options configures a ShortestPathTree before construction.
//
//	SourceID    - starting node; Compute fails with ErrNoSource when empty.
//	LengthLabel - numeric property holding lengths; empty means unit lengths.
//	Model       - which element kinds contribute (default EdgeLength).
//	Tag         - tree-membership tagging, as in spantree.
type Options struct {
	SourceID    string
	LengthLabel string
	Model       LengthModel
	Tag         spantree.TagConfig
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// Source returns an Option that sets the starting node ID.
func Source(id string) Option {
	return func(o *Options) { o.SourceID = id }
}

// WithLengthLabel returns an Option that sets the numeric property label
// consulted for edge/node lengths.
func WithLengthLabel(label string) Option {
	return func(o *Options) { o.LengthLabel = label }
}

// WithLengthModel returns an Option that selects the contributing element
// kinds.
func WithLengthModel(m LengthModel) Option {
	return func(o *Options) { o.Model = m }
}

// WithTagging returns an Option that sets the tree-membership tagging
// configuration. Instances sharing a graph must use distinct labels.
func WithTagging(cfg spantree.TagConfig) Option {
	return func(o *Options) { o.Tag = cfg }
}

// DefaultOptions returns Options with unit lengths, the EdgeLength model,
// no source, and tagging disabled.
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{Model: EdgeLength}
}
