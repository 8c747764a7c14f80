package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashbust/hashbust/pkg/config"
	"github.com/hashbust/hashbust/pkg/fetch"
	"github.com/hashbust/hashbust/pkg/filesystem"
)

func newFetchCmd() *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "fetch <url> <destination-relative-path>",
		Short: "Download a remote asset into the source tree",
		Long: `Download a remote asset with a single HTTP GET and save the response
bytes unchanged under the base directory. A non-2xx response is a fatal
error carrying the URL, status, and response body.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, dest := args[0], args[1]

			fetcher := fetch.New(filesystem.NewOS())
			if err := fetcher.Fetch(cmd.Context(), url, dest, baseDir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Fetched %s -> %s/%s\n", url, baseDir, dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-dir", config.DefaultResourcesDir, "directory the destination path is relative to")

	return cmd
}
