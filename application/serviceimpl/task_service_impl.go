package serviceimpl

import (
	"context"
	"errors"
	"time"

	"bizmanager/domain/dto"
	"bizmanager/domain/models"
	"bizmanager/domain/ports"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	publisher ports.EventPublisher
	now       func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository, publisher ports.EventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func mapTaskErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return services.ErrTaskNotFound
	}
	return err
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, ownerID *uint, req *dto.CreateTaskRequest) (*models.Task, error) {
	task, err := dto.CreateTaskRequestToTask(req)
	if err != nil {
		return nil, err
	}
	task.UserID = ownerID
	if task.Status == models.TaskStatusCompleted {
		now := s.now()
		task.CompletedAt = &now
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID)
	publishChange(ctx, s.publisher, ports.EntityTask, ports.ActionCreated, task.ID, dto.TaskToTaskResponse(task))
	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTaskErr(err)
	}
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

// UpdateTask sets completed_at only on a transition into completed; a task
// that is already completed keeps its original timestamp.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", id)
		return nil, mapTaskErr(err)
	}

	previousStatus := task.Status
	if err := dto.ApplyTaskUpdate(task, req); err != nil {
		return nil, err
	}
	if task.Status == models.TaskStatusCompleted && previousStatus != models.TaskStatusCompleted {
		now := s.now()
		task.CompletedAt = &now
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id, "status", task.Status)
	publishChange(ctx, s.publisher, ports.EntityTask, ports.ActionUpdated, task.ID, dto.TaskToTaskResponse(task))
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id uint) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		}
		return mapTaskErr(err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	publishChange(ctx, s.publisher, ports.EntityTask, ports.ActionDeleted, id, nil)
	return nil
}
