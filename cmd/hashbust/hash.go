package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashbust/hashbust/pkg/config"
	"github.com/hashbust/hashbust/pkg/filesystem"
	"github.com/hashbust/hashbust/pkg/pipeline"
)

func newHashCmd() *cobra.Command {
	var (
		resourcesDir string
		publicDir    string
		targetDir    string
		manifestFile string
		includes     []string
		excludes     []string
	)

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash assets and update the manifest",
		Long: `Walk the source asset tree, copy every eligible file to a filename
embedding its content hash, and merge the resulting mapping into the
manifest. Entries from earlier runs that this run does not regenerate
are preserved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			// Flags override file and environment configuration
			if cmd.Flags().Changed("resources-dir") {
				opts.ResourcesDir = resourcesDir
			}
			if cmd.Flags().Changed("public-dir") {
				opts.PublicDir = publicDir
			}
			if cmd.Flags().Changed("target-dir") {
				opts.ResourcesDirTarget = targetDir
			}
			if cmd.Flags().Changed("manifest-file") {
				opts.ManifestFile = manifestFile
			}
			if cmd.Flags().Changed("include") {
				opts.IncludePatterns = includes
			}
			if cmd.Flags().Changed("exclude") {
				opts.ExcludePatterns = excludes
			}

			result, err := pipeline.New(filesystem.NewOS()).Run(opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Hashed %d asset(s); manifest at %s has %d entries\n",
				result.Hashed, result.ManifestPath, len(result.Manifest))
			return nil
		},
	}

	cmd.Flags().StringVar(&resourcesDir, "resources-dir", config.DefaultResourcesDir, "root of the source asset tree")
	cmd.Flags().StringVar(&publicDir, "public-dir", config.DefaultPublicDir, "subdirectory of resources-dir to scan")
	cmd.Flags().StringVar(&targetDir, "target-dir", config.DefaultResourcesDirTarget, "directory for hashed copies and the manifest")
	cmd.Flags().StringVar(&manifestFile, "manifest-file", config.DefaultManifestFile, "manifest filename under target-dir")
	cmd.Flags().StringSliceVar(&includes, "include", nil, "regex a path must match to be hashed (repeatable; empty = all)")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "regex that vetoes a path (repeatable)")

	return cmd
}
