package ports

import (
	"context"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Notifier Port - out-of-band alerts (Telegram)
// ═══════════════════════════════════════════════════════════════════════════════

// TaskReminder describes one task that is about to become due
type TaskReminder struct {
	TaskID   uint
	Title    string
	Priority string
	DueDate  time.Time
}

type NotifierPort interface {
	SendTaskReminder(ctx context.Context, reminder *TaskReminder) error

	// IsEnabled reports whether credentials are configured
	IsEnabled() bool
}
