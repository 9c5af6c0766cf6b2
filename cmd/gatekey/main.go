// Package main is the entry point for the gatekey CLI, the operator tool
// for the tradegate credential gate.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gatekey",
		Short: "Manage the tradegate shared-secret gate",
		Long: `gatekey generates secrets for the tradegate credential gate,
prints setup instructions, and reports whether a deployment is running
in open (development) or enforced mode.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSetupCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
