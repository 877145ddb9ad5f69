package dto

import (
	"github.com/Vergil4828/KinoService/internal/domain/entity"
)

// CreatePlanRequest represents the API request for a new catalog entry
type CreatePlanRequest struct {
	Name              string   `json:"name" binding:"required"`
	Price             string   `json:"price" binding:"required"`
	RenewalPeriodDays int      `json:"renewalPeriodDays"`
	Features          []string `json:"features"`
}

// PlanResponse represents the API shape of one catalog entry
type PlanResponse struct {
	ID                uint64   `json:"id"`
	Name              string   `json:"name"`
	Price             string   `json:"price"`
	RenewalPeriodDays int      `json:"renewalPeriodDays"`
	Features          []string `json:"features"`
	IsFree            bool     `json:"isFree"`
}

// NewPlanResponse maps a catalog entry to its API shape
func NewPlanResponse(plan *entity.SubscriptionPlan) *PlanResponse {
	return &PlanResponse{
		ID:                plan.ID,
		Name:              plan.Name,
		Price:             plan.Price(),
		RenewalPeriodDays: plan.RenewalPeriod(),
		Features:          plan.Features,
		IsFree:            plan.IsFree(),
	}
}

// NewPlanResponses maps catalog entries to their API shape
func NewPlanResponses(plans []*entity.SubscriptionPlan) []*PlanResponse {
	responses := make([]*PlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, NewPlanResponse(plan))
	}
	return responses
}
