package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/domain/port/usecase"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/api/dto"
)

// PlanHandler handles plan catalog HTTP requests
type PlanHandler struct {
	planUseCase usecase.PlanUseCase
	logger      coreport.Logger
}

// NewPlanHandler creates a new plan handler instance
func NewPlanHandler(planUseCase usecase.PlanUseCase, logger coreport.Logger) *PlanHandler {
	return &PlanHandler{
		planUseCase: planUseCase,
		logger:      logger,
	}
}

// List handles the GET /plans endpoint
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planUseCase.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing plans", map[string]any{"error": err.Error()})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlanResponses(plans))
}

// GetByID handles the GET /plans/:planId endpoint
func (h *PlanHandler) GetByID(c *gin.Context) {
	planID, ok := parseIDParam(c, "planId")
	if !ok {
		return
	}

	plan, err := h.planUseCase.GetByID(c.Request.Context(), planID)
	if err != nil {
		h.logger.Error("Error getting plan", map[string]any{
			"planId": planID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlanResponse(plan))
}

// Create handles the POST /admin/plans endpoint
func (h *PlanHandler) Create(c *gin.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	plan, err := h.planUseCase.Create(c.Request.Context(), usecase.CreatePlanRequest{
		Name:              req.Name,
		Price:             req.Price,
		RenewalPeriodDays: req.RenewalPeriodDays,
		Features:          req.Features,
	})
	if err != nil {
		h.logger.Error("Error creating plan", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPlanResponse(plan))
}

// Delete handles the DELETE /admin/plans/:planId endpoint
func (h *PlanHandler) Delete(c *gin.Context) {
	planID, ok := parseIDParam(c, "planId")
	if !ok {
		return
	}

	if err := h.planUseCase.Delete(c.Request.Context(), planID); err != nil {
		h.logger.Error("Error deleting plan", map[string]any{
			"planId": planID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
