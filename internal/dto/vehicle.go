package dto

import (
	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVehicleRequest defines the data needed to register a vehicle.
type CreateVehicleRequest struct {
	VehicleNumber string          `json:"vehicleNumber" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Model         string          `json:"model"`
	SeatingCap    int             `json:"seatingCap"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	MonthlyRate   decimal.Decimal `json:"monthlyRate"`
}

// UpdateVehicleRequest defines a partial vehicle update.
type UpdateVehicleRequest struct {
	VehicleNumber *string          `json:"vehicleNumber"`
	Name          *string          `json:"name"`
	Model         *string          `json:"model"`
	SeatingCap    *int             `json:"seatingCap"`
	DailyRate     *decimal.Decimal `json:"dailyRate"`
	MonthlyRate   *decimal.Decimal `json:"monthlyRate"`
	IsActive      *bool            `json:"isActive"`
}

// VehicleResponse defines the data returned for a vehicle.
type VehicleResponse struct {
	VehicleID     string          `json:"vehicleID"`
	VehicleNumber string          `json:"vehicleNumber"`
	Name          string          `json:"name"`
	Model         string          `json:"model"`
	SeatingCap    int             `json:"seatingCap"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	MonthlyRate   decimal.Decimal `json:"monthlyRate"`
	IsActive      bool            `json:"isActive"`
	Audit         AuditResponse   `json:"audit"`
}

// ToVehicleResponse converts a domain.Vehicle to VehicleResponse.
func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:     v.VehicleID,
		VehicleNumber: v.VehicleNumber,
		Name:          v.Name,
		Model:         v.Model,
		SeatingCap:    v.SeatingCap,
		DailyRate:     v.DailyRate,
		MonthlyRate:   v.MonthlyRate,
		IsActive:      v.IsActive,
		Audit:         ToAuditResponse(v.AuditFields),
	}
}

// ToListVehicleResponse converts a slice of vehicles to response DTOs.
func ToListVehicleResponse(vehicles []domain.Vehicle) []VehicleResponse {
	res := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		res[i] = ToVehicleResponse(&vehicles[i])
	}
	return res
}
