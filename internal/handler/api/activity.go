package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "pawhaven/internal/handler/dto/response"
	"pawhaven/internal/handler/middleware"
	"pawhaven/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityUseCase usecase.ActivityUseCase
}

func NewActivityHandler(activityUseCase usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{
		activityUseCase: activityUseCase,
	}
}

// @Summary Recent activity
// @Description Audit trail of lifecycle transitions, staff and admin only
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries to return"
// @Success 200 {array} resdto.ActivityEntryResponse
// @Failure 403 {object} map[string]string
// @Router /activity [get]
func (h *ActivityHandler) GetRecentActivity(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	entries, err := h.activityUseCase.ListRecentActivity(c.Request.Context(), role, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrActivityAccessDenied) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivityEntries(entries))
}
