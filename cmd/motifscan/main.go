// Command motifscan loads one graph file and enumerates every connected
// induced k-vertex subgraph rooted at a single named vertex, writing the
// per-fingerprint certificate counts (and, optionally, the subgraph
// listing) to an output directory.
//
// It deliberately runs exactly one root per invocation: sharding roots
// across goroutines or processes is left to an external driver, which can
// invoke this binary once per root in parallel.
package main

func main() {
	Execute()
}
