// Package notify delivers daily-log status messages to outside channels
// (SMS via Close CRM, optionally Slack and Discord) after summarization.
// Everything here is best-effort: failures are logged and counted, never
// returned to the request that triggered them.
package notify

import "context"

// Adapter is the interface a delivery channel must satisfy. Adapters are
// send-only; farmos never reads messages back from a channel.
type Adapter interface {
	// Name identifies the channel in logs and stats (e.g. "sms", "slack").
	Name() string

	// Send delivers text to the channel's fixed recipient.
	Send(ctx context.Context, text string) error
}
