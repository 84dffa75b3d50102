// Package certificate turns a canon.Certificate into the byte fingerprint
// used as an isomorphism-class key (spec §4.4), maintains the per-root
// fingerprint->count mapping (spec §4.5), and serializes both the
// certificates file and the optional subgraph listing in the exact line
// and file-path formats spec §6 defines.
package certificate
