package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/utils"
)

type testServices struct {
	fleet     *MockFleetService
	customers *MockCustomerService
	rentals   *MockRentalService
	reports   *MockReportService
	router    *mux.Router
}

func newTestServices() *testServices {
	ts := &testServices{
		fleet:     new(MockFleetService),
		customers: new(MockCustomerService),
		rentals:   new(MockRentalService),
		reports:   new(MockReportService),
	}
	ts.router = mux.NewRouter()
	RegisterRoutes(ts.router, Services{
		Fleet:     ts.fleet,
		Customers: ts.customers,
		Rentals:   ts.rentals,
		Reports:   ts.reports,
	})
	return ts
}

func (ts *testServices) do(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func camrySummary() agency.VehicleSummary {
	return agency.VehicleSummary{
		ID:            "CAR001",
		Kind:          domain.VehicleKindCar,
		Model:         "Toyota Camry",
		BaseDailyRate: decimal.NewFromInt(45),
		FeatureCost:   decimal.NewFromInt(5),
		DailyRate:     decimal.NewFromInt(50),
		Features:      []agency.FeatureSummary{{Name: "GPS Navigation", DailyCost: decimal.NewFromInt(5)}},
		Equipment:     domain.CarEquipment{GPS: true}.Flags(),
		Available:     true,
		AverageRating: 4.5,
		RatingCount:   2,
	}
}

func TestVehicleHandler_ListVehicles(t *testing.T) {
	ts := newTestServices()

	t.Run("Success", func(t *testing.T) {
		ts.fleet.On("ListVehicles", mock.Anything, true).Return([]agency.VehicleSummary{camrySummary()}, nil).Once()

		rec, body := ts.do(http.MethodGet, "/vehicles?available=true", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])

		vehicles := body["vehicles"].([]any)
		require.Len(t, vehicles, 1)
		v := vehicles[0].(map[string]any)
		assert.Equal(t, "CAR001", v["id"])
		assert.Equal(t, "Car", v["type"])
		assert.Equal(t, 45.0, v["rate"])
		assert.Equal(t, 50.0, v["dailyRate"])
		assert.Equal(t, true, v["isAvailable"])
		assert.Equal(t, 4.5, v["rating"])
		assert.Equal(t, true, v["equipment"].(map[string]any)["gps"])
	})

	t.Run("Invalid filter", func(t *testing.T) {
		rec, body := ts.do(http.MethodGet, "/vehicles?available=maybe", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid available parameter", body["error"])
	})

	ts.fleet.AssertExpectations(t)
}

func TestVehicleHandler_AddVehicle(t *testing.T) {
	ts := newTestServices()

	t.Run("Success", func(t *testing.T) {
		ts.fleet.On("AddVehicle", mock.Anything, mock.MatchedBy(func(req service.AddVehicleRequest) bool {
			return req.ID == "CAR001" && req.Kind == "car" && req.BaseDailyRate.Equal(decimal.NewFromInt(45)) && req.Equipment["gps"]
		})).Return(camrySummary(), nil).Once()

		rec, body := ts.do(http.MethodPost, "/vehicles",
			`{"id":"CAR001","type":"car","model":"Toyota Camry","rate":45,"equipment":{"gps":true}}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Vehicle added successfully", body["message"])
	})

	t.Run("Malformed body", func(t *testing.T) {
		rec, body := ts.do(http.MethodPost, "/vehicles", `{"id":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", body["error"])
	})

	t.Run("Duplicate", func(t *testing.T) {
		ts.fleet.On("AddVehicle", mock.Anything, mock.MatchedBy(func(req service.AddVehicleRequest) bool {
			return req.ID == "car001"
		})).Return(agency.VehicleSummary{}, fmt.Errorf("%w: duplicate vehicle id", domain.ErrInvalidOperation)).Once()

		rec, _ := ts.do(http.MethodPost, "/vehicles", `{"id":"car001","type":"car","model":"Mini","rate":"30.50"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	ts.fleet.AssertExpectations(t)
}

func TestVehicleHandler_QuoteRental(t *testing.T) {
	ts := newTestServices()

	t.Run("Success", func(t *testing.T) {
		ts.fleet.On("QuoteRental", mock.Anything, "CAR001", 3).Return(utils.RentalCostBreakdown{
			VehicleID:         "CAR001",
			Days:              3,
			BaseDailyRate:     decimal.NewFromInt(45),
			FeaturesDailyCost: decimal.NewFromInt(5),
			DailyRate:         decimal.NewFromInt(50),
			BaseCost:          decimal.NewFromInt(135),
			FeaturesCost:      decimal.NewFromInt(15),
			Total:             decimal.NewFromInt(150),
		}, nil).Once()

		rec, body := ts.do(http.MethodGet, "/vehicles/CAR001/quote?days=3", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		quote := body["quote"].(map[string]any)
		assert.Equal(t, 150.0, quote["total"])
		assert.Equal(t, 135.0, quote["baseCost"])
	})

	t.Run("Bad days", func(t *testing.T) {
		rec, body := ts.do(http.MethodGet, "/vehicles/CAR001/quote?days=abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid number format", body["error"])
	})

	t.Run("Out of range days", func(t *testing.T) {
		ts.fleet.On("QuoteRental", mock.Anything, "CAR001", 0).
			Return(utils.RentalCostBreakdown{}, fmt.Errorf("%w: 0 days", domain.ErrInvalidRentalPeriod)).Once()

		rec, _ := ts.do(http.MethodGet, "/vehicles/CAR001/quote?days=0", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("By dates", func(t *testing.T) {
		ts.fleet.On("QuoteRentalForDates", mock.Anything, "CAR001", "2024-03-01", "2024-03-03").Return(utils.RentalCostBreakdown{
			VehicleID: "CAR001",
			Days:      3,
			DailyRate: decimal.NewFromInt(50),
			Total:     decimal.NewFromInt(150),
		}, nil).Once()

		rec, body := ts.do(http.MethodGet, "/vehicles/CAR001/quote?pickup=2024-03-01&dropoff=2024-03-03", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		quote := body["quote"].(map[string]any)
		assert.Equal(t, 3.0, quote["days"])
		assert.Equal(t, 150.0, quote["total"])
	})

	t.Run("Malformed date", func(t *testing.T) {
		ts.fleet.On("QuoteRentalForDates", mock.Anything, "CAR001", "03/01/2024", "").
			Return(utils.RentalCostBreakdown{}, fmt.Errorf("%w: bad date", domain.ErrInvalidArgument)).Once()

		rec, _ := ts.do(http.MethodGet, "/vehicles/CAR001/quote?pickup=03/01/2024", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVehicleHandler_RateAndRemove(t *testing.T) {
	ts := newTestServices()

	ts.fleet.On("RateVehicle", mock.Anything, "CAR001", 9).Return(camrySummary(), false, nil).Once()
	rec, body := ts.do(http.MethodPost, "/vehicles/CAR001/ratings", `{"rating":9}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["accepted"])

	ts.fleet.On("RemoveVehicle", mock.Anything, "CAR404").Return(fmt.Errorf("%w: vehicle CAR404", domain.ErrNotFound)).Once()
	rec, body = ts.do(http.MethodDelete, "/vehicles/CAR404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body["error"], "CAR404")

	ts.fleet.On("AddFeature", mock.Anything, "CAR001", "GPS Navigation", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(5))
	})).Return(camrySummary(), nil).Once()
	rec, _ = ts.do(http.MethodPost, "/vehicles/CAR001/features", `{"name":"GPS Navigation","dailyCost":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	ts.fleet.AssertExpectations(t)
}

func TestCustomerHandler(t *testing.T) {
	ts := newTestServices()
	john := agency.CustomerSummary{
		ID:            "C001",
		Name:          "John Doe",
		LoyaltyPoints: 75,
		LoyaltyTier:   domain.LoyaltyTierSilver,
		Eligible:      true,
	}

	t.Run("Add", func(t *testing.T) {
		ts.customers.On("AddCustomer", mock.Anything, "C001", "John Doe").Return(john, nil).Once()

		rec, body := ts.do(http.MethodPost, "/customers", `{"id":"C001","name":"John Doe"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		c := body["customer"].(map[string]any)
		assert.Equal(t, 75.0, c["loyaltyPoints"])
		assert.Equal(t, "Silver", c["loyaltyTier"])
		assert.Equal(t, []any{}, c["rentalHistory"])
	})

	t.Run("Unknown field", func(t *testing.T) {
		rec, _ := ts.do(http.MethodPost, "/customers", `{"id":"C001","fullName":"John Doe"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Remove while renting", func(t *testing.T) {
		ts.customers.On("RemoveCustomer", mock.Anything, "C001").
			Return(fmt.Errorf("%w: customer holds rentals", domain.ErrInvalidOperation)).Once()

		rec, _ := ts.do(http.MethodDelete, "/customers/C001", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Loyalty", func(t *testing.T) {
		ts.customers.On("AddLoyaltyPoints", mock.Anything, "C001", 25).Return(john, nil).Once()

		rec, body := ts.do(http.MethodPost, "/customers/C001/loyalty", `{"points":25}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Loyalty points added", body["message"])
	})

	t.Run("List", func(t *testing.T) {
		ts.customers.On("ListCustomers", mock.Anything).Return([]agency.CustomerSummary{john}, nil).Once()

		rec, body := ts.do(http.MethodGet, "/customers", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, body["customers"], 1)
	})

	ts.customers.AssertExpectations(t)
}

func TestRentalHandler(t *testing.T) {
	ts := newTestServices()

	t.Run("Rent", func(t *testing.T) {
		ts.rentals.On("RentVehicle", mock.Anything, "CAR001", "C001", 3).Return(&service.RentalReceipt{
			VehicleID:     "CAR001",
			CustomerID:    "C001",
			Days:          3,
			Cost:          decimal.NewFromInt(150),
			PointsAwarded: 30,
			LoyaltyPoints: 30,
			LoyaltyTier:   domain.LoyaltyTierBronze,
		}, nil).Once()

		rec, body := ts.do(http.MethodPost, "/rentals", `{"vehicle":"CAR001","customer":"C001","days":3}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		rental := body["rental"].(map[string]any)
		assert.Equal(t, 150.0, rental["cost"])
		assert.Equal(t, 30.0, rental["pointsAwarded"])
	})

	t.Run("Rejections map to bad request", func(t *testing.T) {
		for _, kind := range []error{domain.ErrVehicleNotAvailable, domain.ErrCustomerNotEligible, domain.ErrInvalidRentalPeriod} {
			ts.rentals.On("RentVehicle", mock.Anything, "CAR002", "C001", 2).Return(nil, kind).Once()

			rec, body := ts.do(http.MethodPost, "/rentals", `{"vehicle":"CAR002","customer":"C001","days":2}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code, kind.Error())
			assert.Equal(t, kind.Error(), body["error"])
		}
	})

	t.Run("Return no-op", func(t *testing.T) {
		ts.rentals.On("ReturnVehicle", mock.Anything, "CAR001").
			Return(&service.ReturnReceipt{VehicleID: "CAR001"}, nil).Once()

		rec, body := ts.do(http.MethodPost, "/rentals/CAR001/return", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Vehicle was not rented", body["message"])
	})

	t.Run("Stats", func(t *testing.T) {
		ts.rentals.On("GetStats", mock.Anything).Return(&service.RentalStats{
			TotalVehicles:  4,
			ActiveRentals:  1,
			Utilization:    25,
			TotalRevenue:   decimal.NewFromInt(150),
			PeakDemandKind: "Car",
		}, nil).Once()

		rec, body := ts.do(http.MethodGet, "/rentals/stats", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		stats := body["stats"].(map[string]any)
		assert.Equal(t, 25.0, stats["utilization"])
		assert.Equal(t, "Car", stats["peakDemandType"])
	})

	t.Run("Unexpected error", func(t *testing.T) {
		ts.rentals.On("ListActiveRentals", mock.Anything).Return([]agency.ActiveRental(nil), fmt.Errorf("boom")).Once()

		rec, _ := ts.do(http.MethodGet, "/rentals", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	ts.rentals.AssertExpectations(t)
}

func TestReportHandler(t *testing.T) {
	ts := newTestServices()
	dashboard := agency.Dashboard{VehicleCount: 4, CustomerCount: 3, ActiveRentals: 1, Revenue: decimal.NewFromInt(150)}

	t.Run("JSON", func(t *testing.T) {
		ts.reports.On("GenerateReport", mock.Anything, service.ReportTypeDashboard).Return(dashboard, nil).Once()

		rec, body := ts.do(http.MethodGet, "/reports/dashboard", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dashboard", body["type"])
		report := body["report"].(map[string]any)
		assert.Equal(t, 4.0, report["vehicleCount"])
		assert.Equal(t, 150.0, report["revenue"])
	})

	t.Run("Text", func(t *testing.T) {
		ts.reports.On("GenerateReport", mock.Anything, service.ReportTypeDashboard).Return(dashboard, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/reports/Dashboard?format=text", nil)
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "$150.00")
	})

	t.Run("Unknown type", func(t *testing.T) {
		rec, body := ts.do(http.MethodGet, "/reports/weekly", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid report type", body["error"])
	})

	ts.reports.AssertExpectations(t)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidArgument, http.StatusBadRequest},
		{domain.ErrInvalidRentalPeriod, http.StatusBadRequest},
		{domain.ErrVehicleNotAvailable, http.StatusBadRequest},
		{domain.ErrCustomerNotEligible, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrInvalidOperation, http.StatusConflict},
		{fmt.Errorf("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForError(tt.err), tt.err.Error())
	}
}
