package services

import (
	"context"
	"time"
)

type ReminderService interface {
	// RunOnce reminds about open tasks due within the window after now and
	// returns how many reminders were sent
	RunOnce(ctx context.Context, now time.Time) (int, error)
}
