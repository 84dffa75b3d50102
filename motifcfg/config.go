// Package motifcfg holds the functional-options configuration surface for
// enumeration and canonicalization: the four switches of spec §6
// (vertex_colored, edge_colored, community_based, write_subgraphs) plus the
// non-truncated fingerprint verification mode spec §9 leaves as an open
// question.
//
// Config is resolved once via New(opts...) and passed by value down the
// call stack; there is no global configuration state, so nothing here
// prevents two roots from being enumerated concurrently with different
// configs (spec §5's "stack-scoped object" requirement).
package motifcfg

import "errors"

// ErrMutuallyExclusiveColoring is returned by New when both WithVertexColors
// and WithEdgeColors are requested; spec §6 requires they be mutually
// exclusive.
var ErrMutuallyExclusiveColoring = errors.New("motifcfg: vertex_colored and edge_colored are mutually exclusive")

// Config is the resolved, immutable set of enumeration switches.
type Config struct {
	VertexColored  bool
	EdgeColored    bool
	CommunityBased bool
	WriteSubgraphs bool
	NonTruncated   bool
}

// Option mutates a Config during resolution.
type Option func(*Config)

// WithVertexColors enables the vertex-color partition path of the encoder.
func WithVertexColors() Option { return func(c *Config) { c.VertexColored = true } }

// WithEdgeColors enables the color-layered encoding path of the encoder.
func WithEdgeColors() Option { return func(c *Config) { c.EdgeColored = true } }

// WithCommunityBased restricts neighbor expansion to vertices reachable
// through a same-community parent edge (spec §4.2 step 2d).
func WithCommunityBased() Option { return func(c *Config) { c.CommunityBased = true } }

// WithSubgraphWriting enables emission of the per-subgraph listing file
// alongside the certificates file (spec §6).
func WithSubgraphWriting() Option { return func(c *Config) { c.WriteSubgraphs = true } }

// WithNonTruncatedFingerprints keeps the full 8-byte canonical matrix words
// in fingerprints instead of sampling one byte per row (spec §9's open
// question). Collision detection (ErrFingerprintCollision from
// certificate.Aggregator.Add) runs with or without this option.
func WithNonTruncatedFingerprints() Option { return func(c *Config) { c.NonTruncated = true } }

// New resolves opts into a Config, in order, and validates the mutual
// exclusion of vertex and edge coloring.
func New(opts ...Option) (Config, error) {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.VertexColored && c.EdgeColored {
		return Config{}, ErrMutuallyExclusiveColoring
	}

	return c, nil
}
