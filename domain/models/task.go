package models

import "time"

const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
	TaskPriorityUrgent = "urgent"
)

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

var (
	TaskPriorities = []string{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent}
	TaskStatuses   = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled}
)

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Priority    string `gorm:"size:20;default:'medium';index"`
	Status      string `gorm:"size:20;default:'pending';index"`
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UserID      *uint     `gorm:"index"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

func (Task) TableName() string {
	return "tasks"
}

// IsOpen reports whether the task still needs attention
func (t *Task) IsOpen() bool {
	return t.Status != TaskStatusCompleted && t.Status != TaskStatusCancelled
}
