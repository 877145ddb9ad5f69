package dto

import (
	"time"

	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// RegisterRequest represents the API request for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse represents the API shape of an account
type UserResponse struct {
	ID           uint64            `json:"id"`
	Email        string            `json:"email"`
	Username     string            `json:"username"`
	Role         string            `json:"role"`
	Balance      string            `json:"balance"`
	Subscription *SubscriptionView `json:"subscription"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// NewUserResponse maps a user to its API shape
func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		Role:         user.Role,
		Balance:      user.GetBalance(),
		Subscription: NewSubscriptionView(user.CurrentSubscription),
		CreatedAt:    user.CreatedAt,
	}
}
