package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/scheduling"
	"github.com/tu-usuario/studio-pro/internal/domain"
)

// TaskHandler maneja las peticiones HTTP de tareas (cualquier rol autenticado).
type TaskHandler struct {
	uc *scheduling.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *scheduling.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	task, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return taskError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// List GET /api/tasks?mine=true
// Con mine=true devuelve solo las tareas asignadas al usuario de la sesión.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	var (
		list []dto.TaskResponse
		err  error
	)
	if c.QueryBool("mine") {
		list, err = h.uc.ListByAssignee(GetUserID(c))
	} else {
		list, err = h.uc.List()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	task, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(task)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return taskError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func taskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la tarea inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
