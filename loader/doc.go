// Package loader decodes the bzip2-compressed, little-endian binary graph
// container spec §6 defines: a header, vertex records, edge records, and
// vertex-/edge-type name tables (names discarded; only the type counts are
// asserted against their bounds). The enumerator and canonicalizer are
// explicitly out of scope for this deserialization concern, but a runnable
// module needs a real reader for it, grounded on the wire layout the
// original Python dataIO.ReadGraph implements.
package loader
