package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/domain/port/usecase"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/api/dto"
)

// SubscriptionHandler handles subscription-related HTTP requests
type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              coreport.Logger
}

// NewSubscriptionHandler creates a new subscription handler instance
func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger coreport.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

// Purchase handles the POST /users/:userId/subscription/purchase endpoint.
// Insufficient funds is a 200 with paymentRequired set, not an error status:
// the client is expected to top up and retry.
func (h *SubscriptionHandler) Purchase(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.subscriptionUseCase.Purchase(c.Request.Context(), userID, req.PlanID)
	if err != nil {
		h.logger.Error("Error processing purchase", map[string]any{
			"userId": userID,
			"planId": req.PlanID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseResponse{
		Success:         result.Success,
		PaymentRequired: result.PaymentRequired,
		RequiredAmount:  result.RequiredAmount,
		Balance:         result.NewBalance,
		Subscription:    dto.NewSubscriptionView(result.Subscription),
		Transaction:     dto.NewTransactionView(result.Transaction),
	})
}

// History handles the GET /users/:userId/subscription/history endpoint
func (h *SubscriptionHandler) History(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	entries, err := h.subscriptionUseCase.History(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error getting subscription history", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		UserID:  userID,
		Entries: dto.NewHistoryEntryViews(entries),
	})
}

// AdminOverride handles the PATCH /admin/users/:userId/subscription endpoint
func (h *SubscriptionHandler) AdminOverride(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.AdminOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	cmd := usecase.SubscriptionUpdateCommand{
		PlanID:       req.PlanID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ClearEndDate: req.ClearEndDate,
		IsActive:     req.IsActive,
		AutoRenew:    req.AutoRenew,
		AdminNote:    req.AdminNote,
	}

	sub, err := h.subscriptionUseCase.ApplyAdminOverride(c.Request.Context(), userID, cmd)
	if err != nil {
		h.logger.Error("Error applying admin subscription override", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubscriptionView(sub))
}
