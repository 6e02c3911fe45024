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

type AdoptionHandler struct {
	adoptionUseCase usecase.AdoptionUseCase
}

func NewAdoptionHandler(adoptionUseCase usecase.AdoptionUseCase) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionUseCase: adoptionUseCase,
	}
}

// @Summary Create adoption request
// @Description Open an adoption request for an available pet
// @Tags adoptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAdoptionRequest true "Adoption request"
// @Success 201 {object} resdto.AdoptionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /adoptions [post]
func (h *AdoptionHandler) CreateAdoption(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAdoptionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	adoptionRM, err := h.adoptionUseCase.CreateAdoption(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pet not found",
			})
		case errors.Is(err, usecase.ErrPetUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Pet is not available for adoption",
			})
		case errors.Is(err, usecase.ErrAdoptionExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Pet already has an active adoption request",
			})
		default:
			_ = c.Error(err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAdoption(adoptionRM))
}

// @Summary Get adoption
// @Tags adoptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Adoption ID"
// @Success 200 {object} resdto.AdoptionResponse
// @Failure 404 {object} map[string]string
// @Router /adoptions/{id} [get]
func (h *AdoptionHandler) GetAdoption(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	adoptionRM, err := h.adoptionUseCase.GetAdoption(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdoption(adoptionRM))
}

// @Summary List own adoptions
// @Tags adoptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AdoptionResponse
// @Router /adoptions [get]
func (h *AdoptionHandler) GetUserAdoptions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	adoptions, err := h.adoptionUseCase.GetUserAdoptions(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdoptions(adoptions))
}

// @Summary Send adoption confirmation
// @Description Move a pending adoption into the confirming state and start the 7 day window
// @Tags adoptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Adoption ID"
// @Success 200 {object} resdto.AdoptionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /adoptions/{id}/confirmation [post]
func (h *AdoptionHandler) SendConfirmation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	adoptionRM, err := h.adoptionUseCase.SendConfirmation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdoption(adoptionRM))
}

// @Summary Confirm adoption
// @Description Confirm within the window; a lapsed window cancels the adoption instead
// @Tags adoptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Adoption ID"
// @Success 200 {object} resdto.AdoptionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /adoptions/{id}/confirm [post]
func (h *AdoptionHandler) ConfirmAdoption(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	adoptionRM, err := h.adoptionUseCase.ConfirmAdoption(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdoption(adoptionRM))
}

// @Summary Cancel adoption
// @Tags adoptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Adoption ID"
// @Param request body reqdto.CancelAdoptionRequest false "Cancellation reason"
// @Success 200 {object} resdto.AdoptionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /adoptions/{id}/cancel [post]
func (h *AdoptionHandler) CancelAdoption(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.CancelAdoptionRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	adoptionRM, err := h.adoptionUseCase.CancelAdoption(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdoption(adoptionRM))
}

// @Summary Complete adoption
// @Tags adoptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Adoption ID"
// @Success 200 {object} resdto.AdoptionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /adoptions/{id}/complete [post]
func (h *AdoptionHandler) CompleteAdoption(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	adoptionRM, err := h.adoptionUseCase.CompleteAdoption(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdoption(adoptionRM))
}

func (h *AdoptionHandler) respondError(c *gin.Context, err error) {
	var transitionErr *errs.InvalidTransitionError
	switch {
	case errors.Is(err, usecase.ErrAdoptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Adoption not found",
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": transitionErr.Error(),
		})
	default:
		_ = c.Error(err)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
