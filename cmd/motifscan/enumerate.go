package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/motifscan/kavosh/canon"
	"github.com/motifscan/kavosh/certificate"
	"github.com/motifscan/kavosh/enumerate"
	"github.com/motifscan/kavosh/layer"
	"github.com/motifscan/kavosh/loader"
	"github.com/motifscan/kavosh/motifcfg"
)

type enumerateFlags struct {
	root           int64
	k              int
	outDir         string
	vertexColored  bool
	edgeColored    bool
	communityBased bool
	writeSubgraphs bool
	nonTruncated   bool
}

func newEnumerateCmd() *cobra.Command {
	var f enumerateFlags

	cmd := &cobra.Command{
		Use:   "enumerate <graph-file>",
		Short: "Enumerate one root at one motif size and write its certificates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnumerate(args[0], &f)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&f.root, "root", 0, "vertex index to root the enumeration at")
	flags.IntVar(&f.k, "k", 0, "motif size (number of vertices per subgraph)")
	flags.StringVar(&f.outDir, "out-dir", ".", "directory certificates/ and subgraphs/ are written under")
	flags.BoolVar(&f.vertexColored, "vertex-colored", false, "partition canonical labeling by vertex color")
	flags.BoolVar(&f.edgeColored, "edge-colored", false, "use the color-layered edge encoding")
	flags.BoolVar(&f.communityBased, "community-based", false, "restrict neighbor expansion to same-community parents")
	flags.BoolVar(&f.writeSubgraphs, "write-subgraphs", false, "also write the per-subgraph vertex listing")
	flags.BoolVar(&f.nonTruncated, "non-truncated", false, "keep full canonical matrix words in fingerprints")

	return cmd
}

func runEnumerate(graphPath string, f *enumerateFlags) error {
	opts := buildOptions(f)
	cfg, err := motifcfg.New(opts...)
	if err != nil {
		return fmt.Errorf("motifscan: %w", err)
	}

	info, err := os.Stat(f.outDir)
	if err != nil {
		return fmt.Errorf("motifscan: output directory %s: %w", f.outDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("motifscan: output directory %s is not a directory", f.outDir)
	}

	fh, err := os.Open(graphPath)
	if err != nil {
		return fmt.Errorf("motifscan: opening %s: %w", graphPath, err)
	}
	defer fh.Close()

	g, err := loader.ReadGraph(fh)
	if err != nil {
		return fmt.Errorf("motifscan: reading %s: %w", graphPath, err)
	}

	agg := certificate.NewAggregator()
	var subLines []string

	start := time.Now()
	err = enumerate.Enumerate(g, f.k, f.root, cfg, func(sub *enumerate.Subgraph) error {
		input, err := layer.Encode(sub, g, cfg)
		if err != nil {
			return fmt.Errorf("encoding subgraph rooted at %d: %w", sub.Root, err)
		}
		cert, err := canon.Canonicalize(input)
		if err != nil {
			return fmt.Errorf("canonicalizing subgraph rooted at %d: %w", sub.Root, err)
		}
		fp := certificate.Fingerprint(cert, sub, g, cfg)
		if err := agg.Add(fp, cert.Matrix); err != nil {
			return fmt.Errorf("aggregating subgraph rooted at %d: %w", sub.Root, err)
		}
		if f.writeSubgraphs {
			order := certificate.CanonicalVertexOrder(cert, sub)
			var line string
			if line, err = formatSubgraphLine(fp, order); err != nil {
				return err
			}
			subLines = append(subLines, line)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("motifscan: enumerating root %d: %w", f.root, err)
	}
	elapsed := time.Since(start)

	if err := writeCertificateFile(f, agg, elapsed); err != nil {
		return err
	}
	if f.writeSubgraphs {
		if err := writeSubgraphFile(f, subLines); err != nil {
			return err
		}
	}

	if verbose {
		log.WithFields(log.Fields{
			"root":    f.root,
			"k":       f.k,
			"count":   agg.Total(),
			"elapsed": elapsed,
		}).Info("motifscan: root enumerated")
	}

	return nil
}

func buildOptions(f *enumerateFlags) []motifcfg.Option {
	var opts []motifcfg.Option
	if f.vertexColored {
		opts = append(opts, motifcfg.WithVertexColors())
	}
	if f.edgeColored {
		opts = append(opts, motifcfg.WithEdgeColors())
	}
	if f.communityBased {
		opts = append(opts, motifcfg.WithCommunityBased())
	}
	if f.writeSubgraphs {
		opts = append(opts, motifcfg.WithSubgraphWriting())
	}
	if f.nonTruncated {
		opts = append(opts, motifcfg.WithNonTruncatedFingerprints())
	}

	return opts
}

func formatSubgraphLine(fp []byte, order []int64) (string, error) {
	var b bytes.Buffer
	if err := certificate.WriteSubgraphLine(&b, fp, order); err != nil {
		return "", fmt.Errorf("motifscan: formatting subgraph line: %w", err)
	}

	return b.String(), nil
}

func writeCertificateFile(f *enumerateFlags, agg *certificate.Aggregator, elapsed time.Duration) error {
	path := certificate.CertificatePath(f.outDir, f.k)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("motifscan: creating %s: %w", filepath.Dir(path), err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("motifscan: creating %s: %w", path, err)
	}
	defer out.Close()

	if err := certificate.WriteCertificates(out, agg, f.root, elapsed); err != nil {
		return fmt.Errorf("motifscan: writing %s: %w", path, err)
	}

	return nil
}

func writeSubgraphFile(f *enumerateFlags, lines []string) error {
	path := certificate.SubgraphPath(f.outDir, f.k)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("motifscan: creating %s: %w", filepath.Dir(path), err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("motifscan: creating %s: %w", path, err)
	}
	defer out.Close()

	for _, line := range lines {
		if _, err := out.WriteString(line); err != nil {
			return fmt.Errorf("motifscan: writing %s: %w", path, err)
		}
	}

	return nil
}
