package certificate

import (
	"encoding/binary"

	"github.com/motifscan/kavosh/canon"
	"github.com/motifscan/kavosh/core"
	"github.com/motifscan/kavosh/enumerate"
	"github.com/motifscan/kavosh/motifcfg"
)

// CanonicalVertexOrder returns sub's k member vertices ordered by their
// canonical position: cert.Lab's first k entries are always positions in
// [0,k), since the canonicalizer places every partition cell at a
// contiguous block and layer/vertex-coloring encoders always put the
// subgraph's own k positions first.
func CanonicalVertexOrder(cert *canon.Certificate, sub *enumerate.Subgraph) []int64 {
	k := len(sub.Vertices)
	out := make([]int64, k)
	for i := 0; i < k; i++ {
		out[i] = sub.Vertices[cert.Lab[i]]
	}

	return out
}

// Fingerprint builds the byte string spec §4.4 uses as the aggregation key:
// the canonical matrix's sampled (or, under cfg.NonTruncated, full) row
// bytes, followed by the edge-color or vertex-color appendix.
func Fingerprint(cert *canon.Certificate, sub *enumerate.Subgraph, g *core.Graph, cfg motifcfg.Config) []byte {
	var out []byte
	if cfg.NonTruncated {
		out = make([]byte, 0, len(cert.Matrix)*8)
		for _, row := range cert.Matrix {
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], row)
			out = append(out, buf[:]...)
		}
	} else {
		// cert.Matrix packs column j at bit j (canon.buildMatrix), so the
		// low byte holds columns 0-7 and the high byte is zero for N<=56.
		// For N>8 the columns from 8 up are not part of the base bytes.
		out = make([]byte, 0, len(cert.Matrix))
		for _, row := range cert.Matrix {
			out = append(out, byte(row))
		}
	}

	order := CanonicalVertexOrder(cert, sub)
	k := len(order)

	switch {
	case cfg.EdgeColored:
		for a := 0; a < k; a++ {
			for b := 0; b < k; b++ {
				if a == b {
					continue
				}
				if !g.HasDirectedEdgeFromTo(order[a], order[b]) {
					continue
				}
				e, ok := g.Edge(order[a], order[b])
				if !ok {
					continue
				}
				out = append(out, byte(e.Color))
			}
		}
	case cfg.VertexColored:
		for _, vid := range order {
			v, err := g.Vertex(vid)
			if err != nil {
				continue
			}
			var buf [2]byte
			binary.BigEndian.PutUint16(buf[:], uint16(v.Color))
			out = append(out, buf[:]...)
		}
	}

	return out
}
