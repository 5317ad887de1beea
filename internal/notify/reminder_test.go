package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/702greens/farmos/internal/models"
)

type fakeChecker struct {
	log *models.DailyLog
	err error
}

func (f *fakeChecker) GetByDate(ctx context.Context, date string) (*models.DailyLog, error) {
	return f.log, f.err
}

func TestNewReminder_BadExpression(t *testing.T) {
	n := testNotifier(&stubSummarizer{text: "ok"})
	if _, err := NewReminder("not a cron", &fakeChecker{}, n); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
	if _, err := NewReminder("30 19 * * *", &fakeChecker{}, n); err != nil {
		t.Fatalf("valid expression rejected: %v", err)
	}
}

func TestCheckAndNag_NoLogYet(t *testing.T) {
	mock := NewMockAdapter()
	n := testNotifier(&stubSummarizer{text: "ok"}, mock)
	r, err := NewReminder("30 19 * * *", &fakeChecker{}, n)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	r.logger = quietLogger()

	r.checkAndNag(context.Background())

	sent := mock.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(sent))
	}
	if !strings.Contains(sent[0], "No daily log submitted") {
		t.Errorf("message = %q", sent[0])
	}
}

func TestCheckAndNag_LogExists(t *testing.T) {
	mock := NewMockAdapter()
	n := testNotifier(&stubSummarizer{text: "ok"}, mock)
	r, err := NewReminder("30 19 * * *", &fakeChecker{log: &models.DailyLog{Date: models.Today()}}, n)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	r.logger = quietLogger()

	r.checkAndNag(context.Background())

	if len(mock.Sent()) != 0 {
		t.Error("reminder sent even though today's log exists")
	}
}

func TestCheckAndNag_StoreError(t *testing.T) {
	mock := NewMockAdapter()
	n := testNotifier(&stubSummarizer{text: "ok"}, mock)
	r, err := NewReminder("30 19 * * *", &fakeChecker{err: errors.New("db down")}, n)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	r.logger = quietLogger()

	r.checkAndNag(context.Background())

	if len(mock.Sent()) != 0 {
		t.Error("reminder sent despite store error")
	}
}
