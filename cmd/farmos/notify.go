package main

import (
	"fmt"

	"github.com/702greens/farmos/internal/config"
	"github.com/702greens/farmos/internal/db"
	"github.com/702greens/farmos/internal/models"
	"github.com/702greens/farmos/internal/store"
	"github.com/spf13/cobra"
)

func newNotifyCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "notify [date]",
		Short: "Re-run the summary/SMS pipeline for one day's log",
		Long:  "Loads the log for the given date (default: today) and runs the summarize-then-send pipeline once, synchronously.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := models.Today()
			if len(args) == 1 {
				var err error
				if date, err = models.NormalizeDate(args[0]); err != nil {
					return err
				}
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			gdb, err := db.Connect(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			log, err := store.New(gdb).GetByDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			if log == nil {
				return fmt.Errorf("no log recorded for %s", date)
			}

			notifier := buildNotifier(cfg)
			notifier.Run(cmd.Context(), log)

			stats := notifier.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "pipeline finished: %d sent, %d failed\n",
				stats.Sends, stats.SendFailures)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "farmos.yaml", "optional YAML config file")
	return cmd
}
