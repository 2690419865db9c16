package agency

import (
	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/domain"
)

// FeatureSummary is a read-only copy of a vehicle feature.
type FeatureSummary struct {
	Name      string
	DailyCost decimal.Decimal
}

// VehicleSummary is a point-in-time copy of a vehicle's read accessors. It is
// safe to use after the agency lock has been released.
type VehicleSummary struct {
	ID            string
	Kind          domain.VehicleKind
	Model         string
	BaseDailyRate decimal.Decimal
	FeatureCost   decimal.Decimal
	DailyRate     decimal.Decimal
	Features      []FeatureSummary
	Equipment     []domain.EquipmentFlag
	Available     bool
	RenterID      string
	AverageRating float64
	RatingCount   int
}

// RentalSummary is one held vehicle of a customer.
type RentalSummary struct {
	VehicleID string
	Days      int
}

// CustomerSummary is a point-in-time copy of a customer's read accessors.
type CustomerSummary struct {
	ID             string
	Name           string
	LoyaltyPoints  int
	LoyaltyTier    domain.LoyaltyTier
	Eligible       bool
	AverageRating  float64
	RatingCount    int
	CurrentRentals []RentalSummary
	RentalHistory  []string
}

// ActiveRental is one vehicle currently held by a registered customer.
type ActiveRental struct {
	CustomerID   string
	CustomerName string
	VehicleID    string
	VehicleModel string
	VehicleKind  domain.VehicleKind
	Days         int
	Cost         decimal.Decimal
}

func SummarizeVehicle(v *domain.Vehicle) VehicleSummary {
	features := v.Features()
	fs := make([]FeatureSummary, 0, len(features))
	for _, f := range features {
		fs = append(fs, FeatureSummary{Name: f.Name(), DailyCost: f.DailyCost()})
	}
	return VehicleSummary{
		ID:            v.ID(),
		Kind:          v.Kind(),
		Model:         v.Model(),
		BaseDailyRate: v.BaseDailyRate(),
		FeatureCost:   v.TotalFeatureCost(),
		DailyRate:     v.DailyRate(),
		Features:      fs,
		Equipment:     v.Equipment().Flags(),
		Available:     v.IsAvailable(),
		RenterID:      v.RenterID(),
		AverageRating: v.AverageRating(),
		RatingCount:   len(v.Ratings()),
	}
}

func SummarizeCustomer(c *domain.Customer) CustomerSummary {
	rentals := c.CurrentRentals()
	rs := make([]RentalSummary, 0, len(rentals))
	for _, r := range rentals {
		rs = append(rs, RentalSummary{VehicleID: r.Vehicle.ID(), Days: r.Days})
	}
	history := c.RentalHistory()
	hs := make([]string, 0, len(history))
	for _, v := range history {
		hs = append(hs, v.ID())
	}
	return CustomerSummary{
		ID:             c.ID(),
		Name:           c.Name(),
		LoyaltyPoints:  c.LoyaltyPoints(),
		LoyaltyTier:    c.LoyaltyTier(),
		Eligible:       c.IsEligibleForRental(),
		AverageRating:  c.AverageRating(),
		RatingCount:    len(c.Ratings()),
		CurrentRentals: rs,
		RentalHistory:  hs,
	}
}

// SummarizeFleet returns summaries for every vehicle, optionally only the available ones.
func (a *RentalAgency) SummarizeFleet(availableOnly bool) []VehicleSummary {
	out := make([]VehicleSummary, 0, len(a.fleet))
	for _, v := range a.fleet {
		if availableOnly && !v.IsAvailable() {
			continue
		}
		out = append(out, SummarizeVehicle(v))
	}
	return out
}

func (a *RentalAgency) SummarizeCustomers() []CustomerSummary {
	out := make([]CustomerSummary, 0, len(a.customers))
	for _, c := range a.customers {
		out = append(out, SummarizeCustomer(c))
	}
	return out
}

// ActiveRentals lists every vehicle held by a registered customer, in
// registry order and then rental order.
func (a *RentalAgency) ActiveRentals() []ActiveRental {
	var out []ActiveRental
	for _, c := range a.customers {
		for _, r := range c.CurrentRentals() {
			// Days were validated at rent time, so the cost cannot fail.
			cost, _ := r.Vehicle.CalculateRentalCost(r.Days)
			out = append(out, ActiveRental{
				CustomerID:   c.ID(),
				CustomerName: c.Name(),
				VehicleID:    r.Vehicle.ID(),
				VehicleModel: r.Vehicle.Model(),
				VehicleKind:  r.Vehicle.Kind(),
				Days:         r.Days,
				Cost:         cost,
			})
		}
	}
	return out
}
