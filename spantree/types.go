// Package spantree: configuration types, sentinel errors, and the lazy
// tree-edge sequence.
package spantree

import (
	"errors"

	"github.com/katalvlaran/spantree/core"
)

// ErrNilGraph indicates that Bind was given a nil graph.
var ErrNilGraph = errors.New("spantree: graph is nil")

// ErrRebind indicates that Bind was called on an algorithm that is already
// bound; an algorithm binds to exactly one graph for its lifetime.
var ErrRebind = errors.New("spantree: algorithm is already bound to a graph")

// ErrTaggingFrozen indicates an attempt to reconfigure tagging after Bind.
// Tagging configuration may only change while the algorithm is unbound.
var ErrTaggingFrozen = errors.New("spantree: tagging configuration is frozen once bound")

// DefaultWeightLabel is the edge property consulted for weights unless
// overridden with WithWeightLabel.
const DefaultWeightLabel = "weight"

// DefaultWeight substitutes for a missing or non-numeric weight property.
const DefaultWeight = 1.0

// TagConfig describes how tree membership is written onto edges.
//
//	Label - the edge property name; empty disables tagging entirely.
//	On    - value written to tree edges; nil means "remove the label".
//	Off   - value written to non-tree edges; nil means "remove the label".
type TagConfig struct {
	Label string
	On    any
	Off   any
}

// Enabled reports whether tagging is active at all.
func (c TagConfig) Enabled() bool { return c.Label != "" }

// TagSink receives each accepted tree edge as the strategy commits it.
// The lifecycle supplies one implementing the configured "on" semantics.
type TagSink func(e *core.Edge)

// onSink builds the sink applying this configuration's on-semantics.
func (c TagConfig) onSink() TagSink {
	if !c.Enabled() {
		return func(*core.Edge) {}
	}
	if c.On == nil {
		return func(e *core.Edge) { e.RemoveProperty(c.Label) }
	}

	return func(e *core.Edge) { e.SetProperty(c.Label, c.On) }
}

// Options configures an MST strategy before construction.
//
//	WeightLabel - numeric edge property holding weights (DefaultWeightLabel).
//	Tag         - tree-membership tagging; zero value disables tagging.
type Options struct {
	WeightLabel string
	Tag         TagConfig
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithWeightLabel returns an Option that sets the edge property consulted
// for weights.
func WithWeightLabel(label string) Option {
	return func(o *Options) { o.WeightLabel = label }
}

// WithTagging returns an Option that sets the tree-membership tagging
// configuration. Instances sharing a graph must use distinct labels, or
// their tags will overwrite each other.
func WithTagging(cfg TagConfig) Option {
	return func(o *Options) { o.Tag = cfg }
}

// DefaultOptions returns Options with the default weight label and tagging
// disabled.
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{WeightLabel: DefaultWeightLabel}
}

// EdgeSeq is a lazy, finite, single-use sequence of tree edges. Each Next
// call yields one edge; once exhausted it stays exhausted. The sequence is
// not restartable - TreeEdges hands out the same sequence until the next
// Compute replaces it.
type EdgeSeq struct {
	edges []*core.Edge
	pos   int
}

// Next returns the next tree edge, or (nil, false) once the sequence is
// exhausted. Safe to call on a nil sequence (reports exhausted).
// Complexity: O(1).
func (s *EdgeSeq) Next() (*core.Edge, bool) {
	if s == nil || s.pos >= len(s.edges) {
		return nil, false
	}
	e := s.edges[s.pos]
	s.pos++

	return e, true
}
