package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketops/tradegate/gate"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Print gate authentication setup instructions",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), gate.SetupHelp())
		},
	}
}
