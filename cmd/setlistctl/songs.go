package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/setlist/internal/model"
)

func newSongsCmd(c *cli) *cobra.Command {
	songsCmd := &cobra.Command{
		Use:   "songs",
		Short: "List and edit the song catalog",
	}

	var search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List songs sorted by title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			songs, err := c.catalog.Songs.Search(ctx, search)
			if err != nil {
				return err
			}
			if len(songs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No Songs yet!")
				return nil
			}
			return printSongs(cmd.OutOrStdout(), songs)
		},
	}
	listCmd.Flags().StringVarP(&search, "search", "s", "", "Filter by title or artist")

	var song model.Song
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a song",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			added, err := c.catalog.Songs.Add(ctx, song)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), added.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&song.Title, "title", "", "Song title")
	addCmd.Flags().StringVar(&song.Artist, "artist", "", "Artist")
	addCmd.Flags().StringVar(&song.Key, "key", "", "Musical key, at most 2 characters")

	var edit model.Song
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a song; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			current, err := c.catalog.Songs.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				current.Title = edit.Title
			}
			if cmd.Flags().Changed("artist") {
				current.Artist = edit.Artist
			}
			if cmd.Flags().Changed("key") {
				current.Key = edit.Key
			}

			updated, err := c.catalog.Songs.Edit(ctx, current)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), updated.Line())
			return nil
		},
	}
	editCmd.Flags().StringVar(&edit.Title, "title", "", "Song title")
	editCmd.Flags().StringVar(&edit.Artist, "artist", "", "Artist")
	editCmd.Flags().StringVar(&edit.Key, "key", "", "Musical key")

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a song; schedules drop it when displayed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.catalog.Songs.Get(ctx, args[0]); err != nil {
				return err
			}
			return c.catalog.Songs.Delete(ctx, args[0])
		},
	}

	songsCmd.AddCommand(listCmd, addCmd, editCmd, rmCmd)
	return songsCmd
}

func printSongs(out io.Writer, songs []model.Song) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY\tTITLE\tARTIST")
	for _, s := range songs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Key, s.Title, s.Artist)
	}
	return w.Flush()
}
