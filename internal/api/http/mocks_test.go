package http

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/utils"
)

type MockFleetService struct {
	mock.Mock
}

func (m *MockFleetService) ListVehicles(ctx context.Context, availableOnly bool) ([]agency.VehicleSummary, error) {
	args := m.Called(ctx, availableOnly)
	return args.Get(0).([]agency.VehicleSummary), args.Error(1)
}

func (m *MockFleetService) GetVehicle(ctx context.Context, id string) (agency.VehicleSummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(agency.VehicleSummary), args.Error(1)
}

func (m *MockFleetService) AddVehicle(ctx context.Context, req service.AddVehicleRequest) (agency.VehicleSummary, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(agency.VehicleSummary), args.Error(1)
}

func (m *MockFleetService) RemoveVehicle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFleetService) AddFeature(ctx context.Context, vehicleID, name string, dailyCost decimal.Decimal) (agency.VehicleSummary, error) {
	args := m.Called(ctx, vehicleID, name, dailyCost)
	return args.Get(0).(agency.VehicleSummary), args.Error(1)
}

func (m *MockFleetService) RateVehicle(ctx context.Context, id string, rating int) (agency.VehicleSummary, bool, error) {
	args := m.Called(ctx, id, rating)
	return args.Get(0).(agency.VehicleSummary), args.Bool(1), args.Error(2)
}

func (m *MockFleetService) QuoteRental(ctx context.Context, id string, days int) (utils.RentalCostBreakdown, error) {
	args := m.Called(ctx, id, days)
	return args.Get(0).(utils.RentalCostBreakdown), args.Error(1)
}

func (m *MockFleetService) QuoteRentalForDates(ctx context.Context, id, pickup, dropoff string) (utils.RentalCostBreakdown, error) {
	args := m.Called(ctx, id, pickup, dropoff)
	return args.Get(0).(utils.RentalCostBreakdown), args.Error(1)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]agency.CustomerSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]agency.CustomerSummary), args.Error(1)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, id string) (agency.CustomerSummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(agency.CustomerSummary), args.Error(1)
}

func (m *MockCustomerService) AddCustomer(ctx context.Context, id, name string) (agency.CustomerSummary, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(agency.CustomerSummary), args.Error(1)
}

func (m *MockCustomerService) RemoveCustomer(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerService) RateCustomer(ctx context.Context, id string, rating int) (agency.CustomerSummary, bool, error) {
	args := m.Called(ctx, id, rating)
	return args.Get(0).(agency.CustomerSummary), args.Bool(1), args.Error(2)
}

func (m *MockCustomerService) AddLoyaltyPoints(ctx context.Context, id string, points int) (agency.CustomerSummary, error) {
	args := m.Called(ctx, id, points)
	return args.Get(0).(agency.CustomerSummary), args.Error(1)
}

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) ListActiveRentals(ctx context.Context) ([]agency.ActiveRental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]agency.ActiveRental), args.Error(1)
}

func (m *MockRentalService) RentVehicle(ctx context.Context, vehicleID, customerID string, days int) (*service.RentalReceipt, error) {
	args := m.Called(ctx, vehicleID, customerID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalReceipt), args.Error(1)
}

func (m *MockRentalService) ReturnVehicle(ctx context.Context, vehicleID string) (*service.ReturnReceipt, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReturnReceipt), args.Error(1)
}

func (m *MockRentalService) GetStats(ctx context.Context) (*service.RentalStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalStats), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateReport(ctx context.Context, reportType service.ReportType) (agency.Report, error) {
	args := m.Called(ctx, reportType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(agency.Report), args.Error(1)
}
