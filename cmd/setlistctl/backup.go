package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ytget/setlist/internal/catalog"
)

// BackupFileMode is the permission of written backup files
const BackupFileMode = 0o644

func newBackupCmd(c *cli) *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Save or restore the whole catalog as YAML",
	}

	saveCmd := &cobra.Command{
		Use:   "save <file.yaml>",
		Short: "Write songs and schedules to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			snap, err := c.catalog.Snapshot(ctx)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(snap)
			if err != nil {
				return fmt.Errorf("failed to encode backup: %w", err)
			}
			if err := os.WriteFile(args[0], data, BackupFileMode); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d songs and %d schedules\n", len(snap.Songs), len(snap.Schedules))
			return nil
		},
	}

	loadCmd := &cobra.Command{
		Use:   "load <file.yaml>",
		Short: "Replace songs and schedules with the contents of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}
			var snap catalog.Snapshot
			if err := yaml.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("failed to decode backup: %w", err)
			}
			if err := c.catalog.Restore(ctx, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d songs and %d schedules\n", len(snap.Songs), len(snap.Schedules))
			return nil
		},
	}

	backupCmd.AddCommand(saveCmd, loadCmd)
	return backupCmd
}
