package notify

import (
	"context"
	"sync/atomic"

	"github.com/702greens/farmos/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// header prefixes every outbound message with the farm identity.
	header = "702Greens Daily Log\n\n"
	// fallbackText replaces the summary when the analysis call fails. The
	// pipeline still proceeds to dispatch so the operator learns a log landed.
	fallbackText = "⚠️ Farm log received but analysis failed. Check logs."
)

// Summarizer produces the status text for one log. summary.Client satisfies
// this; tests substitute stubs.
type Summarizer interface {
	Summarize(ctx context.Context, log *models.DailyLog) (string, error)
}

// Stats counts pipeline outcomes over the process lifetime. Dispatch
// failures are otherwise invisible to API callers, so these counters are the
// operator's only in-process signal of a persistent channel outage.
type Stats struct {
	Summaries       int64
	SummaryFailures int64
	Sends           int64
	SendFailures    int64
}

// Notifier runs the two-stage pipeline: summarize the log (with a fixed
// degraded-mode fallback), then fan the text out to every configured
// channel. Neither stage's failure ever propagates to the caller.
type Notifier struct {
	summarizer Summarizer
	adapters   []Adapter
	logger     logrus.FieldLogger

	summaries       atomic.Int64
	summaryFailures atomic.Int64
	sends           atomic.Int64
	sendFailures    atomic.Int64
}

// New creates a Notifier over the given channels.
func New(summarizer Summarizer, adapters ...Adapter) *Notifier {
	return &Notifier{
		summarizer: summarizer,
		adapters:   adapters,
		logger:     logrus.StandardLogger(),
	}
}

// SetLogger overrides the default logger. For tests.
func (n *Notifier) SetLogger(l logrus.FieldLogger) { n.logger = l }

// Run executes the pipeline for one log snapshot. Safe to call from a
// goroutine after the database write has been acknowledged; it never returns
// an error and never panics the request path.
func (n *Notifier) Run(ctx context.Context, log *models.DailyLog) {
	text, err := n.summarizer.Summarize(ctx, log)
	if err != nil {
		n.summaryFailures.Add(1)
		n.logger.WithField("date", log.Date).Warnf("summary failed, using fallback: %v", err)
		text = fallbackText
	} else {
		n.summaries.Add(1)
	}
	n.Dispatch(ctx, text)
}

// Dispatch prefixes the farm header and sends text to every adapter.
// Best-effort: each channel failure is logged and counted, then skipped.
func (n *Notifier) Dispatch(ctx context.Context, text string) {
	msg := header + text
	for _, a := range n.adapters {
		if err := a.Send(ctx, msg); err != nil {
			n.sendFailures.Add(1)
			n.logger.WithField("adapter", a.Name()).Warnf("dispatch failed: %v", err)
			continue
		}
		n.sends.Add(1)
	}
}

// Stats returns a snapshot of the pipeline counters.
func (n *Notifier) Stats() Stats {
	return Stats{
		Summaries:       n.summaries.Load(),
		SummaryFailures: n.summaryFailures.Load(),
		Sends:           n.sends.Load(),
		SendFailures:    n.sendFailures.Load(),
	}
}
