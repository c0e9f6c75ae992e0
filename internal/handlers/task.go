package handlers

import (
	"errors"
	"net/http"

	"github.com/ArtemTurin1/miniapp/internal/services"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type CreateTaskRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"Practice quadratic equations"`
}

// ListTasks godoc
// @Summary      List a telegram user's tasks, newest first
// @Description  An unknown user reads as an empty list
// @Tags         tasks
// @Produce      json
// @Param        X-Bot-API-Key header string true "Bot API Key"
// @Param        id path int true "Telegram ID"
// @Success      200 {array} Task
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tgID, err := parseInt64Param(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid telegram id"})
		return
	}

	tasks, err := h.taskService.ListByTelegramID(tgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary      Create a task for a telegram user
// @Description  The user is created on first contact
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        X-Bot-API-Key header string true "Bot API Key"
// @Param        id path int true "Telegram ID"
// @Param        request body CreateTaskRequest true "Task data"
// @Success      201 {object} Task
// @Failure      400 {object} ErrorResponse
// @Router       /api/tasks/{id} [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	tgID, err := parseInt64Param(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid telegram id"})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.Create(tgID, req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// CompleteTask godoc
// @Summary      Mark a task as completed
// @Description  Idempotent: completing a completed task returns it unchanged
// @Tags         tasks
// @Produce      json
// @Param        X-Bot-API-Key header string true "Bot API Key"
// @Param        id path int true "Task ID"
// @Success      200 {object} Task
// @Failure      404 {object} ErrorResponse
// @Router       /api/tasks/{id}/complete [post]
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, err := parseInt64Param(c, "id")
	if err != nil || taskID < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid task id"})
		return
	}

	task, err := h.taskService.Complete(uint(taskID))
	if errors.Is(err, services.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}
