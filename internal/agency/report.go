package agency

import (
	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/domain"
)

// KindBreakdown counts fleet vehicles of one kind.
type KindBreakdown struct {
	Kind   domain.VehicleKind
	Total  int
	Rented int
}

type FleetReport struct {
	TotalVehicles int
	Available     int
	Rented        int
	// Utilization is the rented share of the fleet in percent.
	Utilization float64
	// AverageRating is the mean of the per-vehicle average ratings.
	AverageRating float64
	// DailyRevenuePotential is the summed daily rate of the whole fleet.
	DailyRevenuePotential decimal.Decimal
	ByKind                []KindBreakdown
	Vehicles              []VehicleSummary
}

type ActiveRentalsReport struct {
	Rentals      []ActiveRental
	TotalRevenue decimal.Decimal
	AverageDays  float64
}

type RevenueReport struct {
	TotalRevenue     decimal.Decimal
	TotalRentals     int
	AveragePerRental decimal.Decimal
}

type CustomerReport struct {
	TotalCustomers int
	GoldMembers    int
	SilverMembers  int
	BronzeMembers  int
	AverageRating  float64
	// RetentionRate is the percentage of customers holding any loyalty points.
	RetentionRate float64
}

type UtilizationReport struct {
	Utilization           float64
	AverageRentalDuration float64
	TotalRentalDays       int
	// PeakDemandKind is the kind with the most active rentals, "None" without rentals.
	PeakDemandKind     string
	TotalActiveRentals int
}

type Dashboard struct {
	VehicleCount  int
	CustomerCount int
	ActiveRentals int
	Revenue       decimal.Decimal
}

var kindOrder = []domain.VehicleKind{domain.VehicleKindCar, domain.VehicleKindMotorcycle, domain.VehicleKindTruck}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func (a *RentalAgency) GenerateFleetReport() FleetReport {
	r := FleetReport{
		TotalVehicles:         len(a.fleet),
		DailyRevenuePotential: decimal.Zero,
		Vehicles:              a.SummarizeFleet(false),
	}
	byKind := make(map[domain.VehicleKind]*KindBreakdown, len(kindOrder))
	for _, k := range kindOrder {
		byKind[k] = &KindBreakdown{Kind: k}
	}

	ratingSum := 0.0
	for _, v := range a.fleet {
		kb := byKind[v.Kind()]
		kb.Total++
		if v.IsAvailable() {
			r.Available++
		} else {
			r.Rented++
			kb.Rented++
		}
		ratingSum += v.AverageRating()
		r.DailyRevenuePotential = r.DailyRevenuePotential.Add(v.DailyRate())
	}
	for _, k := range kindOrder {
		r.ByKind = append(r.ByKind, *byKind[k])
	}

	r.Utilization = percent(r.Rented, r.TotalVehicles)
	if r.TotalVehicles > 0 {
		r.AverageRating = ratingSum / float64(r.TotalVehicles)
	}
	return r
}

func (a *RentalAgency) GenerateActiveRentalsReport() ActiveRentalsReport {
	r := ActiveRentalsReport{Rentals: a.ActiveRentals(), TotalRevenue: decimal.Zero}
	totalDays := 0
	for _, ar := range r.Rentals {
		r.TotalRevenue = r.TotalRevenue.Add(ar.Cost)
		totalDays += ar.Days
	}
	if len(r.Rentals) > 0 {
		r.AverageDays = float64(totalDays) / float64(len(r.Rentals))
	}
	return r
}

func (a *RentalAgency) GenerateRevenueReport() RevenueReport {
	active := a.GenerateActiveRentalsReport()
	r := RevenueReport{
		TotalRevenue:     active.TotalRevenue,
		TotalRentals:     len(active.Rentals),
		AveragePerRental: decimal.Zero,
	}
	if r.TotalRentals > 0 {
		r.AveragePerRental = r.TotalRevenue.Div(decimal.NewFromInt(int64(r.TotalRentals)))
	}
	return r
}

func (a *RentalAgency) GenerateCustomerReport() CustomerReport {
	r := CustomerReport{TotalCustomers: len(a.customers)}
	ratingSum := 0.0
	returning := 0
	for _, c := range a.customers {
		switch c.LoyaltyTier() {
		case domain.LoyaltyTierGold:
			r.GoldMembers++
		case domain.LoyaltyTierSilver:
			r.SilverMembers++
		default:
			r.BronzeMembers++
		}
		ratingSum += c.AverageRating()
		if c.LoyaltyPoints() > 0 {
			returning++
		}
	}
	if r.TotalCustomers > 0 {
		r.AverageRating = ratingSum / float64(r.TotalCustomers)
	}
	r.RetentionRate = percent(returning, r.TotalCustomers)
	return r
}

func (a *RentalAgency) GenerateUtilizationReport() UtilizationReport {
	rented := 0
	for _, v := range a.fleet {
		if !v.IsAvailable() {
			rented++
		}
	}

	r := UtilizationReport{Utilization: percent(rented, len(a.fleet)), PeakDemandKind: "None"}
	demand := make(map[domain.VehicleKind]int)
	for _, ar := range a.ActiveRentals() {
		r.TotalRentalDays += ar.Days
		r.TotalActiveRentals++
		demand[ar.VehicleKind]++
	}
	if r.TotalActiveRentals > 0 {
		r.AverageRentalDuration = float64(r.TotalRentalDays) / float64(r.TotalActiveRentals)
	}

	best := 0
	for _, k := range kindOrder {
		if demand[k] > best {
			best = demand[k]
			r.PeakDemandKind = k.DisplayName()
		}
	}
	return r
}

func (a *RentalAgency) GenerateDashboard() Dashboard {
	active := a.GenerateActiveRentalsReport()
	return Dashboard{
		VehicleCount:  len(a.fleet),
		CustomerCount: len(a.customers),
		ActiveRentals: len(active.Rentals),
		Revenue:       active.TotalRevenue,
	}
}
