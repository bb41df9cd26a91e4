package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/services"
)

type TaskTypeHandler struct {
	taskTypeService *services.TaskTypeService
}

func NewTaskTypeHandler(taskTypeService *services.TaskTypeService) *TaskTypeHandler {
	return &TaskTypeHandler{taskTypeService: taskTypeService}
}

func (h *TaskTypeHandler) ListTaskTypes(c *gin.Context) {
	search, params := listQuery(c, constants.SearchParamName)
	taskTypes, total, err := h.taskTypeService.List(search.Value, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(taskTypes, dto.ToTaskTypeDTO, search, params, total))
}

func (h *TaskTypeHandler) GetTaskType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	taskType, err := h.taskTypeService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskTypeDTO(*taskType))
}

func (h *TaskTypeHandler) CreateTaskType(c *gin.Context) {
	var req nameRequest
	if !bind(c, &req) {
		return
	}
	taskType, err := h.taskTypeService.Create(req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskTypeDTO(*taskType))
}

func (h *TaskTypeHandler) UpdateTaskType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req nameRequest
	if !bind(c, &req) {
		return
	}
	taskType, err := h.taskTypeService.Update(id, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskTypeDTO(*taskType))
}

func (h *TaskTypeHandler) DeleteTaskType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.taskTypeService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
