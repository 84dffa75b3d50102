package certificate

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

func hexKey(fp []byte) string { return hex.EncodeToString(fp) }

// WriteCertificates appends one root's block to w, per spec §6: one line
// per distinct fingerprint ("<hex>: <count>\n"), in ascending hex order for
// reproducibility, followed by the summary line.
func WriteCertificates(w io.Writer, agg *Aggregator, root int64, elapsed time.Duration) error {
	keys := make([]string, 0, agg.Len())
	for k := range agg.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s: %d\n", k, agg.counts[k]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Enumerated %d subgraphs for node %d in %0.6f seconds.\n", agg.Total(), root, elapsed.Seconds())

	return err
}

// WriteSubgraphLine appends one line to w for a single enumerated subgraph,
// per spec §6's subgraph-list format: hex fingerprint, ": ", space-separated
// vertex ids in canonical order, "\n".
func WriteSubgraphLine(w io.Writer, fp []byte, canonicalVertices []int64) error {
	ids := make([]string, len(canonicalVertices))
	for i, v := range canonicalVertices {
		ids[i] = strconv.FormatInt(v, 10)
	}

	_, err := fmt.Fprintf(w, "%s: %s\n", hexKey(fp), strings.Join(ids, " "))

	return err
}

// CertificatePath returns the sequential-mode output path of spec §6:
// <dir>/certificates/motif-size-<k:03>-certificates.txt.
func CertificatePath(dir string, k int) string {
	return fmt.Sprintf("%s/certificates/motif-size-%03d-certificates.txt", dir, k)
}

// CertificatePathForSuffix returns the node-list-mode output path of spec
// §6: <dir>/certificates/motif-size-<k:03>-output-<suffix:08>-certificates.txt.
func CertificatePathForSuffix(dir string, k int, suffix uint32) string {
	return fmt.Sprintf("%s/certificates/motif-size-%03d-output-%08d-certificates.txt", dir, k, suffix)
}

// SubgraphPath mirrors CertificatePath under subgraphs/.
func SubgraphPath(dir string, k int) string {
	return fmt.Sprintf("%s/subgraphs/motif-size-%03d-certificates.txt", dir, k)
}

// SubgraphPathForSuffix mirrors CertificatePathForSuffix under subgraphs/.
func SubgraphPathForSuffix(dir string, k int, suffix uint32) string {
	return fmt.Sprintf("%s/subgraphs/motif-size-%03d-output-%08d-certificates.txt", dir, k, suffix)
}
