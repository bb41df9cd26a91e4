package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type teamRequest struct {
	Name    string   `json:"name" form:"name"`
	Members []uint64 `json:"members" form:"members"`
}

func (r teamRequest) input() services.TeamInput {
	return services.TeamInput{Name: r.Name, MemberIDs: r.Members}
}

func (h *TeamHandler) ListTeams(c *gin.Context) {
	search, params := listQuery(c, constants.SearchParamName)
	teams, total, err := h.teamService.List(search.Value, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListResponse(teams, dto.ToTeamDTO, search, params, total))
}

// GetTeam returns a team with its members and projects
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	team, err := h.teamService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req teamRequest
	if !bind(c, &req) {
		return
	}
	team, err := h.teamService.Create(req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team))
}

// UpdateTeam renames the team and replaces its member set
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req teamRequest
	if !bind(c, &req) {
		return
	}
	team, err := h.teamService.Update(id, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.teamService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
