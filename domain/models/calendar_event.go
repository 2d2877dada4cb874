package models

import "time"

const (
	EventTypeMeeting  = "meeting"
	EventTypeCall     = "call"
	EventTypeTask     = "task"
	EventTypeReminder = "reminder"
)

const (
	EventStatusScheduled  = "scheduled"
	EventStatusInProgress = "in_progress"
	EventStatusCompleted  = "completed"
	EventStatusCancelled  = "cancelled"
)

// CalendarEvent does not enforce EndTime >= StartTime
type CalendarEvent struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	StartTime   time.Time `gorm:"not null;index"`
	EndTime     time.Time `gorm:"not null"`
	EventType   string    `gorm:"size:20;default:'meeting'"`
	Location    string    `gorm:"size:200"`
	Status      string    `gorm:"size:20;default:'scheduled'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UserID      *uint     `gorm:"index"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
