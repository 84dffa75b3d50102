// Package fixture builds deterministic core.Graph instances for tests and
// demos, adapted from the teacher's builder package: a Constructor mutates
// a freshly created Graph, and Build composes any number of them in order.
//
// Unlike the teacher's builder, vertex ids here are always 0..n-1 int64
// with EnumIndex set equal to Index (the convention every spec scenario
// uses), since the enumerator's pruning is defined entirely in terms of
// enum_index. Colors and communities are set post-hoc with VertexColors
// and Communities, since they are cross-cutting concerns independent of
// topology. Edge colors are assigned directly through core.Graph.AddEdge
// by callers that need them — no generic edge-coloring constructor exists
// here because, unlike vertex colors, edge colors are inseparable from the
// topology constructor that creates the edge in the first place.
package fixture
