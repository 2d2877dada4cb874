package dto

import (
	"bizmanager/domain/models"
	"bizmanager/pkg/utils"
)

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate     *string `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=200"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" validate:"omitnil,oneof=low medium high urgent"`
	Status      *string `json:"status" validate:"omitnil,oneof=pending in_progress completed cancelled"`
	DueDate     *string `json:"due_date"`
}

type TaskFilterRequest struct {
	Status   string `query:"status"`
	Priority string `query:"priority"`
	UserID   *uint  `query:"user_id"`
}

type TaskResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date"`
	CompletedAt *string `json:"completed_at"`
	CreatedAt   string  `json:"created_at"`
	UserID      *uint   `json:"user_id"`
}

func CreateTaskRequestToTask(req *CreateTaskRequest) (*models.Task, error) {
	dueDate, err := parseOptionalDateTime("due_date", req.DueDate)
	if err != nil {
		return nil, err
	}
	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     dueDate,
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	return task, nil
}

// ApplyTaskUpdate merges present fields into task; completed_at is left to the caller
func ApplyTaskUpdate(task *models.Task, req *UpdateTaskRequest) error {
	assign(&task.Title, req.Title)
	assign(&task.Description, req.Description)
	assign(&task.Priority, req.Priority)
	assign(&task.Status, req.Status)
	return updateDateTime(&task.DueDate, "due_date", req.DueDate)
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Status:      task.Status,
		DueDate:     utils.FormatOptionalDateTime(task.DueDate),
		CompletedAt: utils.FormatOptionalDateTime(task.CompletedAt),
		CreatedAt:   utils.FormatDateTime(task.CreatedAt),
		UserID:      task.UserID,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskToTaskResponse(t))
	}
	return out
}
