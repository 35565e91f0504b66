package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/setlist/internal/config"
	"github.com/ytget/setlist/internal/importer"
)

func newImportCmd(c *cli) *cobra.Command {
	var key string
	var timeout = importer.DefaultImportTimeout

	importCmd := &cobra.Command{
		Use:   "import <playlist-url>",
		Short: "Add every video of a YouTube playlist as a song",
		Long: `Reads the playlist with yt-dlp and splits each video title into
artist and title ("Artist - Title"). Videos already in the catalog are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			imp := importer.New(c.fetcher, c.catalog.Songs, c.logger)
			imp.SetTimeout(timeout)

			res, err := imp.Import(ctx, args[0], key)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range res.Added {
				fmt.Fprintln(out, s.Line())
			}
			fmt.Fprintf(out, "Imported %d songs, skipped %d\n", len(res.Added), res.Skipped)
			return nil
		},
	}
	importCmd.Flags().StringVar(&key, "key", config.DefaultImportKey, "Key given to imported songs")
	importCmd.Flags().DurationVar(&timeout, "fetch-timeout", importer.DefaultImportTimeout, "Playlist fetch timeout")

	return importCmd
}
