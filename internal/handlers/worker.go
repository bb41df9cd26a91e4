package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/services"
)

type WorkerHandler struct {
	workerService *services.WorkerService
}

func NewWorkerHandler(workerService *services.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

type createWorkerRequest struct {
	Username  string `json:"username" form:"username"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Email     string `json:"email" form:"email"`
	Password1 string `json:"password1" form:"password1"`
	Password2 string `json:"password2" form:"password2"`
	Position  uint64 `json:"position" form:"position"`
}

type updateWorkerRequest struct {
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Email     string `json:"email" form:"email"`
	Position  uint64 `json:"position" form:"position"`
}

// ListWorkers returns one page of workers filtered by username
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	search, params := listQuery(c, constants.SearchParamUsername)
	workers, total, err := h.workerService.List(search.Value, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(workers, dto.ToWorkerDTO, search, params, total))
}

// GetWorker returns the worker with completed and incomplete tasks
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detail, err := h.workerService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerDetailDTO(*detail))
}

func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req createWorkerRequest
	if !bind(c, &req) {
		return
	}
	worker, err := h.workerService.Create(services.CreateWorkerInput{
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password1:  req.Password1,
		Password2:  req.Password2,
		PositionID: req.Position,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkerDTO(*worker))
}

func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateWorkerRequest
	if !bind(c, &req) {
		return
	}
	worker, err := h.workerService.Update(id, services.UpdateWorkerInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		PositionID: req.Position,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerDTO(*worker))
}

func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.workerService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
