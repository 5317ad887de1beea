package main

import (
	"fmt"

	"github.com/702greens/farmos/internal/config"
	"github.com/702greens/farmos/internal/db"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the daily_logs table and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			gdb, err := db.Connect(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			if err := db.AutoMigrate(gdb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "database initialized")
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "farmos.yaml", "optional YAML config file")
	return cmd
}
