package serviceimpl

import (
	"context"
	"sync"
	"time"

	"bizmanager/domain/dto"
	"bizmanager/domain/ports"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
)

// ReminderServiceImpl remembers reminded task ids for the life of the
// process, so each due task is announced once per run of the server.
type ReminderServiceImpl struct {
	taskRepo  repositories.TaskRepository
	publisher ports.EventPublisher
	notifier  ports.NotifierPort
	window    time.Duration

	mu       sync.Mutex
	reminded map[uint]time.Time // task id -> due date it was reminded for
}

func NewReminderService(taskRepo repositories.TaskRepository, publisher ports.EventPublisher, notifier ports.NotifierPort, window time.Duration) services.ReminderService {
	return &ReminderServiceImpl{
		taskRepo:  taskRepo,
		publisher: publisher,
		notifier:  notifier,
		window:    window,
		reminded:  make(map[uint]time.Time),
	}
}

func (s *ReminderServiceImpl) RunOnce(ctx context.Context, now time.Time) (int, error) {
	now = now.UTC()
	tasks, err := s.taskRepo.ListDueBetween(ctx, now, now.Add(s.window))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load due tasks", "error", err)
		return 0, err
	}

	sent := 0
	for _, task := range tasks {
		// a rescheduled task is reminded again for its new due date
		s.mu.Lock()
		due, seen := s.reminded[task.ID]
		if seen && due.Equal(*task.DueDate) {
			s.mu.Unlock()
			continue
		}
		s.reminded[task.ID] = *task.DueDate
		s.mu.Unlock()

		publishChange(ctx, s.publisher, ports.EntityTask, ports.ActionDueSoon, task.ID, dto.TaskToTaskResponse(task))

		if s.notifier != nil && s.notifier.IsEnabled() {
			err := s.notifier.SendTaskReminder(ctx, &ports.TaskReminder{
				TaskID:   task.ID,
				Title:    task.Title,
				Priority: task.Priority,
				DueDate:  *task.DueDate,
			})
			if err != nil {
				logger.WarnContext(ctx, "Failed to send task reminder", "task_id", task.ID, "error", err)
			}
		}
		sent++
	}

	if sent > 0 {
		logger.InfoContext(ctx, "Task reminders sent", "count", sent)
	}
	return sent, nil
}
