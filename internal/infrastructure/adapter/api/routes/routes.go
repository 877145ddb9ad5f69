package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/Vergil4828/KinoService/internal/domain/port/core"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/api/handler"
	"github.com/Vergil4828/KinoService/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	walletHandler *handler.WalletHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	planHandler *handler.PlanHandler,
) {
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("/register", userHandler.Register)
		userRoutes.GET("/:userId", userHandler.GetByID)

		userRoutes.GET("/:userId/wallet", walletHandler.GetWallet)
		userRoutes.GET("/:userId/wallet/transactions/:reference", walletHandler.GetTransaction)
		userRoutes.POST("/:userId/wallet/deposit", walletHandler.Deposit)
		userRoutes.POST("/:userId/wallet/withdraw", walletHandler.Withdraw)

		userRoutes.POST("/:userId/subscription/purchase", subscriptionHandler.Purchase)
		userRoutes.GET("/:userId/subscription/history", subscriptionHandler.History)
	}

	planRoutes := router.Group("/plans")
	{
		planRoutes.GET("", planHandler.List)
		planRoutes.GET("/:planId", planHandler.GetByID)
	}

	adminRoutes := router.Group("/admin")
	{
		adminRoutes.POST("/plans", planHandler.Create)
		adminRoutes.DELETE("/plans/:planId", planHandler.Delete)
		adminRoutes.PATCH("/users/:userId/subscription", subscriptionHandler.AdminOverride)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
