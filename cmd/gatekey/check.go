package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketops/tradegate/config"
	"github.com/marketops/tradegate/gate"
)

func newCheckCmd() *cobra.Command {
	var (
		configPath    string
		envVar        string
		requireSecret bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether the gate is running open or enforced",
		Long: `check reads the gate configuration (a YAML file via --config, or the
secret environment variable directly) and reports the enforcement mode.
Open mode admits every call and is intended for development only; pass
--require-secret to fail when no secret is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var validator *gate.Validator

			if configPath != "" {
				cfg, err := config.Load(cmd.Context(), configPath)
				if err != nil {
					return err
				}
				validator = cfg.Validator()
			} else {
				validator = gate.NewValidator(gate.EnvSource{Name: envVar})
			}

			mode := validator.Mode()
			fmt.Fprintf(cmd.OutOrStdout(), "gate mode: %s\n", mode)

			if mode == gate.ModeOpen {
				fmt.Fprintln(cmd.OutOrStdout(), "warning: no secret configured; every call is admitted")
				if requireSecret {
					return fmt.Errorf("gate is open but --require-secret was given")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to tradegate YAML configuration")
	cmd.Flags().StringVar(&envVar, "env-var", gate.DefaultEnvVar, "Environment variable holding the secret")
	cmd.Flags().BoolVar(&requireSecret, "require-secret", false, "Fail when no secret is configured")

	return cmd
}
