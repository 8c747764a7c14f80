package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hashbust/hashbust/internal/version"
	"github.com/hashbust/hashbust/pkg/logging"
)

var (
	verbosity int
	cfgFile   string

	rootCmd = &cobra.Command{
		Use:   "hashbust",
		Short: "Content-addressed cache-busting for static assets",
		Long: `hashbust copies static assets to content-hashed filenames and records
the original-to-hashed mapping in a manifest, so asset URLs change
exactly when asset content changes and browser caches stay honest.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.hashbust.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newHashCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newGenConfigCmd())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for hashbust`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hashbust version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
