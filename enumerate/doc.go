// Package enumerate implements the rooted neighbor-expansion recursion:
// given a root vertex u and a target size k, it produces every connected
// induced k-vertex subgraph containing u exactly once (per vertex whose
// enumeration index is at least u's), by partitioning the remaining k-1
// vertices into depth-indexed layers S[1], S[2], ....
//
// State is bundled into an unexported engine value owned by one call to
// Enumerate, never shared across goroutines; parallelizing across roots
// means spawning more engines, not synchronizing one.
//
// Complexity: bounded by k and the sum of degrees of vertices visited;
// unbounded only in the adversarial sense that a dense graph has more
// candidates per layer, never in allocation shape (recursion depth ≤ k).
package enumerate
