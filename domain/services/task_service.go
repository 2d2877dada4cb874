package services

import (
	"context"

	"bizmanager/domain/dto"
	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
)

type TaskService interface {
	// CreateTask stamps ownerID as the owner when it is not nil
	CreateTask(ctx context.Context, ownerID *uint, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, id uint) (*models.Task, error)
	ListTasks(ctx context.Context, filter repositories.TaskFilter) ([]*models.Task, error)
	UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id uint) error
}
