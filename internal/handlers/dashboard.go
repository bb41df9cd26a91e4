package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	apierrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Index returns the task and worker totals and counts this visit in the session.
func (h *DashboardHandler) Index(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	session := sessions.Default(c)
	visits, _ := session.Get(constants.SessionKeyVisits).(int)
	visits++
	session.Set(constants.SessionKeyVisits, visits)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.DashboardDTO{
		NumTasks:   stats.NumTasks,
		NumWorkers: stats.NumWorkers,
		NumVisits:  visits,
	})
}

// Health reports liveness without touching the session.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Task Manager is running",
	})
}
