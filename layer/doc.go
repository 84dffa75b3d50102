// Package layer encodes a connected induced subgraph into the uncolored,
// partitioned input the canon package's canonicalizer expects: a plain
// adjacency structure plus a cell partition that stands in for vertex and
// edge colors (spec §4.3).
//
// Three encodings exist, selected by motifcfg.Config:
//   - no coloring: the subgraph's own adjacency, one trivial partition cell.
//   - vertex coloring: same adjacency, partitioned by ascending color.
//   - edge coloring: an L*k-vertex layered digraph (L = ceil(log2(ntypes+1))),
//     one partition cell per layer.
package layer
