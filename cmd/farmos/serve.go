package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/702greens/farmos/internal/config"
	"github.com/702greens/farmos/internal/db"
	"github.com/702greens/farmos/internal/notify"
	"github.com/702greens/farmos/internal/server"
	"github.com/702greens/farmos/internal/store"
	"github.com/702greens/farmos/internal/summary"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the farmos HTTP server",
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
			logrus.Info("database initialized")

			st := store.New(gdb)
			notifier := buildNotifier(cfg)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.ReminderCron != "" {
				rem, err := notify.NewReminder(cfg.ReminderCron, st, notifier)
				if err != nil {
					return err
				}
				go rem.Run(ctx)
				logrus.WithField("schedule", cfg.ReminderCron).Info("daily reminder enabled")
			}

			err = server.Start(ctx, server.Opts{
				Store:    st,
				Notifier: notifier,
				Port:     cfg.Port,
				Out:      cmd.OutOrStdout(),
			})

			stats := notifier.Stats()
			logrus.WithFields(logrus.Fields{
				"summaries":        stats.Summaries,
				"summary_failures": stats.SummaryFailures,
				"sends":            stats.Sends,
				"send_failures":    stats.SendFailures,
			}).Info("notifier stats at shutdown")

			return err
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "farmos.yaml", "optional YAML config file")
	return cmd
}

// buildNotifier wires the summarizer and every configured channel. SMS is
// always on (it degrades at send time when the key is missing); Slack and
// Discord join only when both a token and a channel are present.
func buildNotifier(cfg *config.Config) *notify.Notifier {
	adapters := []notify.Adapter{
		notify.NewSMS(notify.SMSOpts{APIKey: cfg.CloseAPIKey, Phone: cfg.Phone}),
	}

	if cfg.Slack.BotToken != "" && cfg.Slack.Channel != "" {
		a, err := notify.NewSlack(notify.SlackOpts{
			BotToken:  cfg.Slack.BotToken,
			ChannelID: cfg.Slack.Channel,
		})
		if err != nil {
			logrus.Warnf("slack channel disabled: %v", err)
		} else {
			adapters = append(adapters, a)
		}
	}

	if cfg.Discord.BotToken != "" && cfg.Discord.Channel != "" {
		a, err := notify.NewDiscord(notify.DiscordOpts{
			BotToken:  cfg.Discord.BotToken,
			ChannelID: cfg.Discord.Channel,
		})
		if err != nil {
			logrus.Warnf("discord channel disabled: %v", err)
		} else {
			adapters = append(adapters, a)
		}
	}

	summarizer := summary.NewClient(summary.Opts{
		APIKey: cfg.ClaudeAPIKey,
		Model:  cfg.Model,
	})
	return notify.New(summarizer, adapters...)
}
