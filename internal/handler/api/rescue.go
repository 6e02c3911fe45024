package api

import (
	"errors"
	"net/http"

	reqdto "pawhaven/internal/handler/dto/request"
	resdto "pawhaven/internal/handler/dto/response"
	"pawhaven/internal/handler/middleware"
	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RescueHandler struct {
	rescueUseCase usecase.RescueUseCase
}

func NewRescueHandler(rescueUseCase usecase.RescueUseCase) *RescueHandler {
	return &RescueHandler{
		rescueUseCase: rescueUseCase,
	}
}

// @Summary Create rescue campaign
// @Tags rescues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRescueRequest true "Rescue campaign"
// @Success 201 {object} resdto.RescueResponse
// @Failure 400 {object} map[string]string
// @Router /rescues [post]
func (h *RescueHandler) CreateRescue(c *gin.Context) {
	var req reqdto.CreateRescueRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rescueRM, err := h.rescueUseCase.CreateRescue(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRescue(rescueRM))
}

// @Summary List rescue campaigns
// @Tags rescues
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RescueResponse
// @Router /rescues [get]
func (h *RescueHandler) ListRescues(c *gin.Context) {
	rescues, err := h.rescueUseCase.ListRescues(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRescues(rescues))
}

// @Summary Get rescue campaign
// @Tags rescues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rescue ID"
// @Success 200 {object} resdto.RescueResponse
// @Failure 404 {object} map[string]string
// @Router /rescues/{id} [get]
func (h *RescueHandler) GetRescue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rescueRM, err := h.rescueUseCase.GetRescue(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRescue(rescueRM))
}

// @Summary List own rescue campaigns
// @Tags rescues
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RescueResponse
// @Router /rescues/mine [get]
func (h *RescueHandler) GetUserRescues(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	rescues, err := h.rescueUseCase.GetUserRescues(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRescues(rescues))
}

// @Summary Join rescue campaign
// @Tags rescues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rescue ID"
// @Param request body reqdto.AddParticipantRequest true "Participant"
// @Success 201 {object} resdto.RescueParticipantResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rescues/{id}/participants [post]
func (h *RescueHandler) AddParticipant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.AddParticipantRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	participant, err := h.rescueUseCase.AddParticipant(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromParticipant(participant))
}

// @Summary Leave rescue campaign
// @Tags rescues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rescue ID"
// @Param userId path string true "User ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /rescues/{id}/participants/{userId} [delete]
func (h *RescueHandler) RemoveParticipant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return
	}

	if err := h.rescueUseCase.RemoveParticipant(c.Request.Context(), id, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Attach report to campaign
// @Tags rescues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rescue ID"
// @Param request body reqdto.AddReportRequest true "Report link"
// @Success 201 {object} resdto.RescueReportLinkResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rescues/{id}/reports [post]
func (h *RescueHandler) AddReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.AddReportRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	link, err := h.rescueUseCase.AddReport(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReportLink(link))
}

// @Summary Detach report from campaign
// @Tags rescues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rescue ID"
// @Param reportId path string true "Report ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rescues/{id}/reports/{reportId} [delete]
func (h *RescueHandler) RemoveReport(c *gin.Context) {
	id, reportID, ok := parseIDPair(c, "reportId")
	if !ok {
		return
	}

	if err := h.rescueUseCase.RemoveReport(c.Request.Context(), id, reportID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update report progress
// @Tags rescues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rescue ID"
// @Param reportId path string true "Report ID"
// @Param request body reqdto.UpdateReportProgressRequest true "Progress"
// @Success 200 {object} resdto.RescueReportLinkResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rescues/{id}/reports/{reportId} [patch]
func (h *RescueHandler) UpdateReportProgress(c *gin.Context) {
	id, reportID, ok := parseIDPair(c, "reportId")
	if !ok {
		return
	}

	var req reqdto.UpdateReportProgressRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	link, err := h.rescueUseCase.UpdateReportProgress(c.Request.Context(), id, reportID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReportLink(link))
}

// @Summary Start rescue campaign
// @Tags rescues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rescue ID"
// @Success 200 {object} resdto.RescueResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rescues/{id}/start [post]
func (h *RescueHandler) StartRescue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rescueRM, err := h.rescueUseCase.StartRescue(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRescue(rescueRM))
}

// @Summary Complete rescue campaign
// @Tags rescues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rescue ID"
// @Success 200 {object} resdto.RescueResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rescues/{id}/complete [post]
func (h *RescueHandler) CompleteRescue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rescueRM, err := h.rescueUseCase.CompleteRescue(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRescue(rescueRM))
}

// @Summary Cancel rescue campaign
// @Tags rescues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rescue ID"
// @Param request body reqdto.CancelRescueRequest false "Cancellation reason"
// @Success 200 {object} resdto.RescueResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rescues/{id}/cancel [post]
func (h *RescueHandler) CancelRescue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.CancelRescueRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	rescueRM, err := h.rescueUseCase.CancelRescue(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRescue(rescueRM))
}

// @Summary Claim report
// @Description Turn a pending report into a running one-person campaign led by the caller
// @Tags rescues
// @Produce json
// @Security BearerAuth
// @Param reportId path string true "Report ID"
// @Success 201 {object} resdto.RescueResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reports/{reportId}/claim [post]
func (h *RescueHandler) ClaimReport(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reportID, err := uuid.Parse(c.Param("reportId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return
	}

	rescueRM, err := h.rescueUseCase.ClaimReport(c.Request.Context(), reportID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRescue(rescueRM))
}

func (h *RescueHandler) respondError(c *gin.Context, err error) {
	var transitionErr *errs.InvalidTransitionError
	var capacityErr *errs.CapacityExceededError
	switch {
	case errors.Is(err, usecase.ErrRescueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Rescue not found",
		})
	case errors.Is(err, usecase.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Report not found",
		})
	case errors.Is(err, usecase.ErrReportLinkNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Report is not linked to this rescue",
		})
	case errors.Is(err, usecase.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User is not a participant in this rescue",
		})
	case errors.Is(err, usecase.ErrReportNotPending):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Report is not pending",
		})
	case errors.Is(err, usecase.ErrAlreadyParticipant):
		c.JSON(http.StatusConflict, gin.H{
			"error": "User already participates in this rescue",
		})
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusConflict, gin.H{
			"error": capacityErr.Error(),
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": transitionErr.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidRequiredParticipants),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrInvalidReportProgress):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		_ = c.Error(err)
	}
}

func parseIDPair(c *gin.Context, second string) (uuid.UUID, uuid.UUID, bool) {
	first, ok := parseID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	secondID, err := uuid.Parse(c.Param(second))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return first, secondID, true
}
