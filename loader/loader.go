package loader

import (
	"bytes"
	"compress/bzip2"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/motifscan/kavosh/core"
)

const nameFieldLen = 128

// ReadGraph decompresses r as bzip2 and decodes the binary layout of spec
// §6: header, vertex records, edge records, then the vertex-/edge-type name
// tables (names discarded, counts bounds-checked).
func ReadGraph(r io.Reader) (*core.Graph, error) {
	return decodeGraph(bzip2.NewReader(r))
}

// decodeGraph reads the already-decompressed wire format; split out from
// ReadGraph so the binary layout can be exercised directly in tests without
// a bzip2 encoder, which the standard library does not provide.
func decodeGraph(dr io.Reader) (*core.Graph, error) {
	nvertices, err := readI64(dr)
	if err != nil {
		return nil, err
	}
	nedges, err := readI64(dr)
	if err != nil {
		return nil, err
	}

	directed, err := readBool(dr)
	if err != nil {
		return nil, err
	}
	vertexColored, err := readBool(dr)
	if err != nil {
		return nil, err
	}
	edgeColored, err := readBool(dr)
	if err != nil {
		return nil, err
	}

	prefixRaw, err := readFixed(dr, nameFieldLen)
	if err != nil {
		return nil, err
	}
	prefix := trimNulTail(prefixRaw)

	g, err := core.NewGraph(prefix, directed, vertexColored, edgeColored)
	if err != nil {
		return nil, fmt.Errorf("loader: building graph: %w", err)
	}

	for i := int64(0); i < nvertices; i++ {
		index, err := readI64(dr)
		if err != nil {
			return nil, err
		}
		enumIndex, err := readI64(dr)
		if err != nil {
			return nil, err
		}
		community, err := readI64(dr)
		if err != nil {
			return nil, err
		}
		color, err := readI16(dr)
		if err != nil {
			return nil, err
		}
		if err := g.AddVertex(index, enumIndex, community, color); err != nil {
			return nil, fmt.Errorf("loader: vertex %d: %w", index, err)
		}
	}

	for i := int64(0); i < nedges; i++ {
		source, err := readI64(dr)
		if err != nil {
			return nil, err
		}
		destination, err := readI64(dr)
		if err != nil {
			return nil, err
		}
		weight, err := readF64(dr)
		if err != nil {
			return nil, err
		}
		color, err := readI8(dr)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(source, destination, weight, color); err != nil {
			return nil, fmt.Errorf("loader: edge (%d,%d): %w", source, destination, err)
		}
	}

	nvertexTypes, err := readI64(dr)
	if err != nil {
		return nil, err
	}
	if nvertexTypes > 65536 {
		return nil, ErrTooManyVertexTypes
	}
	for i := int64(0); i < nvertexTypes; i++ {
		if _, err := readI64(dr); err != nil {
			return nil, err
		}
		if _, err := readFixed(dr, nameFieldLen); err != nil {
			return nil, err
		}
	}

	nedgeTypes, err := readI64(dr)
	if err != nil {
		return nil, err
	}
	if nedgeTypes > 7 {
		return nil, ErrTooManyEdgeTypes
	}
	for i := int64(0); i < nedgeTypes; i++ {
		if _, err := readI64(dr); err != nil {
			return nil, err
		}
		if _, err := readFixed(dr, nameFieldLen); err != nil {
			return nil, err
		}
	}
	g.NEdgeTypes = int(nedgeTypes)

	if err := expectEOF(dr); err != nil {
		return nil, err
	}

	return g, nil
}

// expectEOF asserts dr has no remaining bytes, per spec §6's requirement
// that end-of-stream land exactly after the last edge-type record: a
// truncated-then-padded or over-long stream must be rejected rather than
// silently accepted.
func expectEOF(dr io.Reader) error {
	var buf [1]byte
	if _, err := io.ReadFull(dr, buf[:]); err != io.EOF {
		if err == nil {
			return ErrTrailingData
		}

		return wrapTruncated(err)
	}

	return nil
}

func readFixed(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, wrapTruncated(err)
	}

	return buf, nil
}

func readI64(r io.Reader) (int64, error) {
	var v int64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, wrapTruncated(err)
	}

	return v, nil
}

func readI16(r io.Reader) (int16, error) {
	var v int16
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, wrapTruncated(err)
	}

	return v, nil
}

func readI8(r io.Reader) (int8, error) {
	var v int8
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, wrapTruncated(err)
	}

	return v, nil
}

func readF64(r io.Reader) (float64, error) {
	var v float64
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, wrapTruncated(err)
	}

	return v, nil
}

func readBool(r io.Reader) (bool, error) {
	b, err := readI8(r)
	if err != nil {
		return false, err
	}

	return b != 0, nil
}

func wrapTruncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncatedStream
	}

	return fmt.Errorf("loader: %w", err)
}

func trimNulTail(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}
