package services

import (
	"context"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
)

// DashboardService builds the cross-entity KPI view.
type DashboardService interface {
	GetSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
