package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashbust/hashbust/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Generate a config file with all defaults",
		Long: `Print a TOML configuration file showing every recognized option at its
default value. Use --write to save it as .hashbust.toml in the current
directory instead of printing it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateDefault()
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), string(content))
				return nil
			}

			if err := os.WriteFile(".hashbust.toml", content, 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote .hashbust.toml")
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "write .hashbust.toml instead of printing")

	return cmd
}
