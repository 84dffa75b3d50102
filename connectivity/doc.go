// Package connectivity provides breadth-first reachability over a
// core.Graph, restricted to an arbitrary vertex subset.
//
// What
//
//   - Explore vertices reachable from a start vertex, visiting only
//     vertices that belong to a caller-supplied subset.
//   - Reports the visited set and whether every vertex in the subset was
//     reached, i.e. whether the subset induces a connected subgraph.
//
// Why
//
//   - motif enumeration only ever needs to confirm that a candidate
//     vertex set forms a single connected component in the full graph;
//     this package gives that check an independent implementation from
//     enumerate's own neighbor-expansion recursion, so property tests can
//     cross-check the enumerator's output without sharing its code path.
//
// Determinism
//
//	core.Graph.Neighbors returns ids in map iteration order, so the order
//	in which vertices are visited is not fixed; the returned set, and
//	therefore IsConnected's answer, does not depend on that order.
//
// Complexity (k = |subset|, D = sum of the full-graph degrees of members)
//
//   - Time:   O(k + D)
//   - Memory: O(k + max degree)
package connectivity
