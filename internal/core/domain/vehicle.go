package domain

import "github.com/shopspring/decimal"

// Vehicle is a rentable unit of the fleet. VehicleNumber is the natural key
// (registration plate or fleet code) and must be unique.
type Vehicle struct {
	VehicleID     string          `json:"vehicleID"`
	VehicleNumber string          `json:"vehicleNumber"` // natural key
	Name          string          `json:"name"`
	Model         string          `json:"model"`
	SeatingCap    int             `json:"seatingCap"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	MonthlyRate   decimal.Decimal `json:"monthlyRate"`
	IsActive      bool            `json:"isActive"`

	AuditFields
}
