package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hashbust/hashbust/pkg/config"
	"github.com/hashbust/hashbust/pkg/filesystem"
	"github.com/hashbust/hashbust/pkg/manifest"
	"github.com/hashbust/hashbust/pkg/resolver"
)

func newResolveCmd() *cobra.Command {
	var (
		manifestPath string
		prefix       string
	)

	cmd := &cobra.Command{
		Use:   "resolve <asset-key> [<asset-key>...]",
		Short: "Resolve asset keys to their hashed URLs",
		Long: `Look up asset keys in the manifest and print the URL each resolves to.
Keys absent from the manifest fall back to the original path, so the
output is always a usable URL.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if manifestPath == "" {
				manifestPath = filepath.Join(config.DefaultResourcesDirTarget, config.DefaultManifestFile)
			}

			cache := manifest.NewCache(filesystem.NewOS(), manifestPath)
			res := resolver.NewWithPrefix(cache, prefix)

			for _, key := range args {
				fmt.Fprintln(cmd.OutOrStdout(), res.Asset(key))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "manifest path (default resources-hashed/manifest.json)")
	cmd.Flags().StringVar(&prefix, "prefix", resolver.DefaultPrefix, "URL prefix segment")

	return cmd
}
