package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/services"
)

type PositionHandler struct {
	positionService *services.PositionService
}

func NewPositionHandler(positionService *services.PositionService) *PositionHandler {
	return &PositionHandler{positionService: positionService}
}

// ListPositions returns one page of positions filtered by name
func (h *PositionHandler) ListPositions(c *gin.Context) {
	search, params := listQuery(c, constants.SearchParamName)
	positions, total, err := h.positionService.List(search.Value, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(positions, dto.ToPositionDTO, search, params, total))
}

// GetPosition returns a position with its worker count
func (h *PositionHandler) GetPosition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detail, err := h.positionService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPositionDetailDTO(detail.Position, detail.WorkerCount))
}

func (h *PositionHandler) CreatePosition(c *gin.Context) {
	var req nameRequest
	if !bind(c, &req) {
		return
	}
	position, err := h.positionService.Create(req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPositionDTO(*position))
}

func (h *PositionHandler) UpdatePosition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req nameRequest
	if !bind(c, &req) {
		return
	}
	position, err := h.positionService.Update(id, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPositionDTO(*position))
}

// DeletePosition deletes a position; 409 while workers still hold it
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.positionService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
