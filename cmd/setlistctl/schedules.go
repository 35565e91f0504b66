package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ytget/setlist/internal/model"
)

func newSchedulesCmd(c *cli) *cobra.Command {
	schedulesCmd := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "List and edit service schedules",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List schedules with their resolved song count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			entries, err := c.catalog.Schedules.Board(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No schedules yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSERVICE\tSONGS")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d\n", e.Schedule.ID, e.Schedule.ServiceName, len(e.Songs))
			}
			return w.Flush()
		},
	}

	var add model.Schedule
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a schedule from song IDs in lineup order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			created, err := c.catalog.Schedules.Add(ctx, add)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), created.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&add.ServiceName, "name", "", "Service name")
	addCmd.Flags().StringArrayVar(&add.Songs, "song", nil, "Song ID; repeat to build the lineup")

	var edit model.Schedule
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a schedule; --song replaces the whole lineup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			current, err := c.catalog.Schedules.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				current.ServiceName = edit.ServiceName
			}
			if cmd.Flags().Changed("song") {
				current.Songs = edit.Songs
			}

			_, err = c.catalog.Schedules.Edit(ctx, current)
			return err
		},
	}
	editCmd.Flags().StringVar(&edit.ServiceName, "name", "", "Service name")
	editCmd.Flags().StringArrayVar(&edit.Songs, "song", nil, "Song ID; repeat to build the lineup")

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a schedule",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if _, err := c.catalog.Schedules.Get(ctx, args[0]); err != nil {
				return err
			}
			return c.catalog.Schedules.Delete(ctx, args[0])
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a schedule with its resolved lineup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			entry, err := c.catalog.Schedules.Resolved(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, entry.Schedule.ServiceName)
			fmt.Fprintln(out, strings.Repeat("-", len(entry.Schedule.ServiceName)))
			for i, s := range entry.Songs {
				fmt.Fprintf(out, "%d. %s\n", i+1, s.Line())
			}
			return nil
		},
	}

	var copyText bool
	exportCmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Print the shareable text of a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			text, err := c.catalog.Schedules.Export(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)

			if copyText {
				if err := clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied")
			}
			return nil
		},
	}
	exportCmd.Flags().BoolVar(&copyText, "copy", false, "Also copy the text to the system clipboard")

	schedulesCmd.AddCommand(listCmd, addCmd, editCmd, rmCmd, showCmd, exportCmd)
	return schedulesCmd
}
