package service

import (
	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/domain"
)

// AddVehicleRequest describes a vehicle to add to the fleet. Equipment names
// follow domain.Equipment flags for the vehicle's kind.
type AddVehicleRequest struct {
	ID            string
	Kind          string
	Model         string
	BaseDailyRate decimal.Decimal
	Equipment     map[string]bool
}

type RentalReceipt struct {
	VehicleID     string
	CustomerID    string
	Days          int
	Cost          decimal.Decimal
	PointsAwarded int
	LoyaltyPoints int
	LoyaltyTier   domain.LoyaltyTier
}

// ReturnReceipt reports a settled return. Returned is false when the vehicle
// was not rented and the request was ignored.
type ReturnReceipt struct {
	VehicleID  string
	CustomerID string
	Returned   bool
}

type RentalStats struct {
	TotalVehicles         int
	ActiveRentals         int
	Utilization           float64
	TotalRevenue          decimal.Decimal
	AverageRentalDuration float64
	PeakDemandKind        string
}

type ReportType string

const (
	ReportTypeFleet       ReportType = "fleet"
	ReportTypeActive      ReportType = "active"
	ReportTypeRevenue     ReportType = "revenue"
	ReportTypeCustomer    ReportType = "customer"
	ReportTypeUtilization ReportType = "utilization"
	ReportTypeDashboard   ReportType = "dashboard"
)

var ReportTypes = []ReportType{
	ReportTypeFleet,
	ReportTypeActive,
	ReportTypeRevenue,
	ReportTypeCustomer,
	ReportTypeUtilization,
	ReportTypeDashboard,
}
