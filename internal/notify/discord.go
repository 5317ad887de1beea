package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// session abstracts the discordgo.Session method we use, enabling test mocks.
// Sending goes over plain REST; no gateway connection is opened.
type session interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordAdapter posts the daily status message to a fixed Discord channel.
type DiscordAdapter struct {
	sess      session
	channelID string
}

// DiscordOpts holds parameters for creating a DiscordAdapter. Session exists
// for tests; when nil, a real session is built from BotToken.
type DiscordOpts struct {
	BotToken  string
	ChannelID string
	Session   session
}

// NewDiscord creates a Discord adapter.
func NewDiscord(opts DiscordOpts) (*DiscordAdapter, error) {
	if opts.Session == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("notify: discord bot token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("notify: discord channel is required")
	}
	a := &DiscordAdapter{sess: opts.Session, channelID: opts.ChannelID}
	if a.sess == nil {
		s, err := discordgo.New("Bot " + opts.BotToken)
		if err != nil {
			return nil, fmt.Errorf("notify: discord session: %w", err)
		}
		a.sess = s
	}
	return a, nil
}

// Name implements Adapter.
func (a *DiscordAdapter) Name() string { return "discord" }

// Send implements Adapter.
func (a *DiscordAdapter) Send(ctx context.Context, text string) error {
	_, err := a.sess.ChannelMessageSend(a.channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("notify: discord post: %w", err)
	}
	return nil
}
