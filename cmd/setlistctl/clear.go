package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(c *cli) *cobra.Command {
	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all songs and schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear without --yes")
			}
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.catalog.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting everything")
	return clearCmd
}
