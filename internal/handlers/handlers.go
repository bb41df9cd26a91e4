package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/dto"
	apierrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/services"
	"github.com/yukikurage/task-manager/internal/utils"
)

// parseID reads the :id path parameter. Anything but a positive integer is a 404,
// as no record can live under it.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		apierrors.NotFound(c, "")
		return 0, false
	}
	return id, true
}

type nameRequest struct {
	Name string `json:"name" form:"name"`
}

// bind decodes a JSON or form body into req.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// listQuery reads the search parameter and page for list routes.
func listQuery(c *gin.Context, param string) (dto.SearchDTO, utils.PaginationParams) {
	search := dto.SearchDTO{
		Param: param,
		Value: strings.TrimSpace(c.Query(param)),
	}
	return search, utils.GetPaginationParams(c)
}

func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr) && errors.Is(err, services.ErrDuplicate):
		apierrors.AlreadyExists(c, validationErr.Field)
	case errors.As(err, &validationErr):
		apierrors.InvalidField(c, validationErr.Field, validationErr.Reason)
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrReferentialIntegrity):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	default:
		middleware.Logger(c).Error("request failed", "path", c.FullPath(), "error", err)
		apierrors.InternalError(c, "")
	}
}
