package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/702greens/farmos/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// reminderText is dispatched when the schedule fires and no log exists yet.
const reminderText = "⏰ No daily log submitted yet for today. Submit before end of day."

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// todayChecker is the slice of the record store the reminder needs.
type todayChecker interface {
	GetByDate(ctx context.Context, date string) (*models.DailyLog, error)
}

// Reminder nags the operator on a cron schedule when the current date has no
// log yet. Optional; only constructed when a schedule is configured.
type Reminder struct {
	sched    cron.Schedule
	store    todayChecker
	notifier *Notifier
	logger   logrus.FieldLogger
}

// NewReminder validates expr and builds a Reminder.
func NewReminder(expr string, store todayChecker, notifier *Notifier) (*Reminder, error) {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("notify: reminder cron %q: %w", expr, err)
	}
	return &Reminder{
		sched:    sched,
		store:    store,
		notifier: notifier,
		logger:   logrus.StandardLogger(),
	}, nil
}

// Run blocks until ctx is cancelled, firing checkAndNag at each scheduled
// time. Intended to run in its own goroutine alongside the HTTP server.
func (r *Reminder) Run(ctx context.Context) {
	for {
		timer := time.NewTimer(time.Until(r.sched.Next(time.Now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			r.checkAndNag(ctx)
		}
	}
}

// checkAndNag dispatches the reminder when today's log is absent.
func (r *Reminder) checkAndNag(ctx context.Context) {
	today := models.Today()
	log, err := r.store.GetByDate(ctx, today)
	if err != nil {
		r.logger.Warnf("reminder check failed: %v", err)
		return
	}
	if log != nil {
		return
	}
	r.notifier.Dispatch(ctx, reminderText)
}
