package dto

import (
	"time"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
)

// AuditResponse mirrors domain.AuditFields for API responses.
type AuditResponse struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToAuditResponse converts domain audit fields to the response DTO.
func ToAuditResponse(a domain.AuditFields) AuditResponse {
	return AuditResponse{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}
