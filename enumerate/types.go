package enumerate

// Subgraph is one connected induced k-vertex subgraph produced by Enumerate.
// Vertices holds the k member vertex indices in ascending order; Root is
// always Vertices' minimum under the enum_index ordering, i.e. the vertex
// Enumerate was called with.
type Subgraph struct {
	Root     int64
	Vertices []int64
}

// Visitor receives each subgraph Enumerate discovers, in recursion order.
// An error returned from Visitor aborts the remaining search and is
// propagated out of Enumerate unwrapped.
type Visitor func(sub *Subgraph) error
