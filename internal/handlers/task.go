package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type taskRequest struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Deadline    string   `json:"deadline" form:"deadline"`
	Priority    string   `json:"priority" form:"priority"`
	TaskType    uint64   `json:"task_type" form:"task_type"`
	Project     *uint64  `json:"project" form:"project"`
	Assignees   []uint64 `json:"assignees" form:"assignees"`
	Tags        []uint64 `json:"tags" form:"tags"`
}

func (h *TaskHandler) input(req taskRequest) (services.TaskInput, error) {
	deadline, err := services.ParseDeadline(req.Deadline, h.taskService.Location())
	if err != nil {
		return services.TaskInput{}, err
	}
	return services.TaskInput{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    deadline,
		Priority:    models.TaskPriority(req.Priority),
		TaskTypeID:  req.TaskType,
		ProjectID:   req.Project,
		AssigneeIDs: req.Assignees,
		TagIDs:      req.Tags,
	}, nil
}

// ListTasks returns one page of tasks filtered by name
func (h *TaskHandler) ListTasks(c *gin.Context) {
	search, params := listQuery(c, constants.SearchParamName)
	tasks, total, err := h.taskService.List(search.Value, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(tasks, dto.ToTaskListItemDTO, search, params, total))
}

// GetTask returns a task with type, project, assignees and tags
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.taskService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req taskRequest
	if !bind(c, &req) {
		return
	}
	input, err := h.input(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	task, err := h.taskService.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask replaces the task's fields, assignees and tags
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req taskRequest
	if !bind(c, &req) {
		return
	}
	input, err := h.input(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	task, err := h.taskService.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// ToggleTask flips the completion flag
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.taskService.ToggleCompleted(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.taskService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
