package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/Vergil4828/KinoService/internal/domain/error"
	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/domain/port/usecase"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/api/dto"
)

// WalletHandler handles wallet-related HTTP requests
type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// GetWallet handles the GET /users/:userId/wallet endpoint
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	view, err := h.walletUseCase.GetWallet(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error getting wallet", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WalletResponse{
		UserID:       userID,
		Balance:      view.Balance,
		Transactions: dto.NewTransactionViews(view.Transactions),
	})
}

// GetTransaction handles the GET /users/:userId/wallet/transactions/:reference endpoint
func (h *WalletHandler) GetTransaction(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	reference := c.Param("reference")

	txn, err := h.walletUseCase.GetTransaction(c.Request.Context(), userID, reference)
	if err != nil {
		h.logger.Error("Error getting transaction", map[string]any{
			"userId":    userID,
			"reference": reference,
			"error":     err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionView(txn))
}

// Deposit handles the POST /users/:userId/wallet/deposit endpoint
func (h *WalletHandler) Deposit(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.walletUseCase.Deposit(c.Request.Context(), userID, req.Amount, req.PaymentMethod)
	if err != nil {
		h.logger.Error("Error processing deposit", map[string]any{
			"userId": userID,
			"amount": req.Amount,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WalletOperationResponse{
		UserID:      userID,
		Balance:     result.NewBalance,
		Transaction: dto.NewTransactionView(result.Transaction),
	})
}

// Withdraw handles the POST /users/:userId/wallet/withdraw endpoint
func (h *WalletHandler) Withdraw(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.walletUseCase.Withdraw(c.Request.Context(), userID, req.Amount, req.Description)
	if err != nil {
		h.logger.Error("Error processing withdrawal", map[string]any{
			"userId": userID,
			"amount": req.Amount,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WalletOperationResponse{
		UserID:      userID,
		Balance:     result.NewBalance,
		Transaction: dto.NewTransactionView(result.Transaction),
	})
}
