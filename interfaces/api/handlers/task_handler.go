package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bizmanager/domain/dto"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.taskService.CreateTask(ctx, ownerID(c), &req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrTaskNotFound.Error())
	}

	task, err := h.taskService.GetTask(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.TaskFilterRequest
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	tasks, err := h.taskService.ListTasks(ctx, repositories.TaskFilter{
		Status:   req.Status,
		Priority: req.Priority,
		UserID:   req.UserID,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrTaskNotFound.Error())
	}

	var req dto.UpdateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.taskService.UpdateTask(ctx, id, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, services.ErrTaskNotFound.Error())
	}

	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return utils.NoContentResponse(c)
}
