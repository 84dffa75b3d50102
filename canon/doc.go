// Package canon computes canonical labelings of small, partitioned,
// uncolored directed graphs: the contract spec §9's "Canonicalizer
// abstraction" note describes — "given an uncolored directed graph with a
// cell-partition, return a canonical adjacency bitmatrix and the
// canonical-order permutation" — satisfied by any backend.
//
// No nauty/bliss/saucy binding exists anywhere in the retrieval pack, so
// canonical labeling here is an exhaustive backtracking search restricted to
// within-cell permutations, in the spirit of the teacher's own hand-rolled
// numeric algorithms (matrix's LU/QR/eigen, tsp's branch-and-bound engine):
// correctness first, admitted worst-case cost second. The search space is
// the product of each cell's factorial, which spec's k <= 8 bound keeps
// tractable for the no-coloring and vertex-coloring paths (a single cell of
// at most 8 elements); the edge-colored path's per-layer cells can compound
// across up to three layers, which is a known, accepted limitation of this
// brute-force backend for pathological all-one-color inputs.
package canon
