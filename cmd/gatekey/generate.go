package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketops/tradegate/gate"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a new cryptographically random gate secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := gate.GenerateSecret()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}
