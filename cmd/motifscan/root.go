package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// Execute builds the command tree and runs it, logging a single fatal
// line and exiting non-zero on any error — library packages never call
// os.Exit themselves, only this command layer does.
func Execute() {
	root := &cobra.Command{
		Use:          "motifscan",
		Short:        "Enumerate connected induced k-vertex subgraphs rooted at one vertex",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log a per-root summary line")
	root.AddCommand(newEnumerateCmd())

	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("motifscan: fatal error")
	}
}
