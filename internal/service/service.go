package service

import (
	"context"

	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/utils"
)

type FleetService interface {
	ListVehicles(ctx context.Context, availableOnly bool) ([]agency.VehicleSummary, error)
	GetVehicle(ctx context.Context, id string) (agency.VehicleSummary, error)
	AddVehicle(ctx context.Context, req AddVehicleRequest) (agency.VehicleSummary, error)
	RemoveVehicle(ctx context.Context, id string) error
	AddFeature(ctx context.Context, vehicleID, name string, dailyCost decimal.Decimal) (agency.VehicleSummary, error)
	RateVehicle(ctx context.Context, id string, rating int) (agency.VehicleSummary, bool, error) // returns summary, accepted, error
	QuoteRental(ctx context.Context, id string, days int) (utils.RentalCostBreakdown, error)
	QuoteRentalForDates(ctx context.Context, id, pickup, dropoff string) (utils.RentalCostBreakdown, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]agency.CustomerSummary, error)
	GetCustomer(ctx context.Context, id string) (agency.CustomerSummary, error)
	AddCustomer(ctx context.Context, id, name string) (agency.CustomerSummary, error)
	RemoveCustomer(ctx context.Context, id string) error
	RateCustomer(ctx context.Context, id string, rating int) (agency.CustomerSummary, bool, error) // returns summary, accepted, error
	AddLoyaltyPoints(ctx context.Context, id string, points int) (agency.CustomerSummary, error)
}

type RentalService interface {
	ListActiveRentals(ctx context.Context) ([]agency.ActiveRental, error)
	RentVehicle(ctx context.Context, vehicleID, customerID string, days int) (*RentalReceipt, error)
	ReturnVehicle(ctx context.Context, vehicleID string) (*ReturnReceipt, error)
	GetStats(ctx context.Context) (*RentalStats, error)
}

type ReportService interface {
	GenerateReport(ctx context.Context, reportType ReportType) (agency.Report, error)
}
