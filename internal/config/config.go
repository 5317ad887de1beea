// Package config loads farmos configuration from the environment, with an
// optional YAML file for non-secret notification settings.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the full farmos runtime configuration. Secrets always come from
// the environment; the YAML file only carries channel wiring and schedules.
type Config struct {
	DatabaseURL  string `yaml:"-"`
	ClaudeAPIKey string `yaml:"-"`
	CloseAPIKey  string `yaml:"-"`

	Phone string `yaml:"phone"`
	Port  int    `yaml:"port"`
	Model string `yaml:"model"`

	Slack        SlackConfig   `yaml:"slack"`
	Discord      DiscordConfig `yaml:"discord"`
	ReminderCron string        `yaml:"reminder_cron"`
}

// SlackConfig wires the optional Slack notification channel.
type SlackConfig struct {
	BotToken string `yaml:"-"`
	Channel  string `yaml:"channel"`
}

// DiscordConfig wires the optional Discord notification channel.
type DiscordConfig struct {
	BotToken string `yaml:"-"`
	Channel  string `yaml:"channel"`
}

// Load reads the optional YAML file at path (skipped when path is empty or
// the file does not exist), then overlays environment variables. A .env file
// in the working directory is honored when present.
func Load(path string) (*Config, error) {
	// Best-effort: a missing .env file is the normal production case.
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg.fromEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.warnMissing()
	return &cfg, nil
}

// fromEnv overlays environment values onto the file-loaded config.
func (c *Config) fromEnv() {
	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	c.DatabaseURL = get("DATABASE_URL", c.DatabaseURL)
	c.ClaudeAPIKey = get("CLAUDE_API_KEY", c.ClaudeAPIKey)
	c.CloseAPIKey = get("CLOSE_API_KEY", c.CloseAPIKey)
	c.Phone = get("YOUR_PHONE", c.Phone)
	c.Slack.BotToken = get("SLACK_BOT_TOKEN", c.Slack.BotToken)
	c.Discord.BotToken = get("DISCORD_BOT_TOKEN", c.Discord.BotToken)
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
}

// applyDefaults fills in defaulted values.
func (c *Config) applyDefaults() {
	if c.Phone == "" {
		c.Phone = "2132215504"
	}
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.Model == "" {
		c.Model = "claude-3-5-sonnet-20241022"
	}
}

// validate checks the startup-fatal requirements.
func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	return nil
}

// warnMissing flags absent credentials. The process still starts; the
// notification pipeline degrades instead.
func (c *Config) warnMissing() {
	if c.ClaudeAPIKey == "" {
		logrus.Warn("CLAUDE_API_KEY not set; summaries will use fallback text")
	}
	if c.CloseAPIKey == "" {
		logrus.Warn("CLOSE_API_KEY not set; SMS dispatch will fail")
	}
}
