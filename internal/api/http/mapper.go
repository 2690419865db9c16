package http

import (
	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/utils"
)

type FeatureDTO struct {
	Name      string  `json:"name"`
	DailyCost float64 `json:"dailyCost"`
}

type VehicleDTO struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Model       string          `json:"model"`
	Rate        float64         `json:"rate"`
	FeatureCost float64         `json:"featureCost"`
	DailyRate   float64         `json:"dailyRate"`
	IsAvailable bool            `json:"isAvailable"`
	RenterID    string          `json:"renterId,omitempty"`
	Rating      float64         `json:"rating"`
	RatingCount int             `json:"ratingCount"`
	Features    []FeatureDTO    `json:"features"`
	Equipment   map[string]bool `json:"equipment"`
}

type RentalDTO struct {
	VehicleID string `json:"vehicleId"`
	Days      int    `json:"days"`
}

type CustomerDTO struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	LoyaltyPoints  int         `json:"loyaltyPoints"`
	LoyaltyTier    string      `json:"loyaltyTier"`
	Benefits       string      `json:"benefits"`
	Eligible       bool        `json:"eligible"`
	Rating         float64     `json:"rating"`
	RatingCount    int         `json:"ratingCount"`
	CurrentRentals []RentalDTO `json:"currentRentals"`
	RentalHistory  []string    `json:"rentalHistory"`
}

type ActiveRentalDTO struct {
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	VehicleID    string  `json:"vehicleId"`
	VehicleModel string  `json:"vehicleModel"`
	VehicleType  string  `json:"vehicleType"`
	Days         int     `json:"days"`
	Cost         float64 `json:"cost"`
}

type QuoteDTO struct {
	VehicleID         string  `json:"vehicleId"`
	Days              int     `json:"days"`
	BaseDailyRate     float64 `json:"baseDailyRate"`
	FeaturesDailyCost float64 `json:"featuresDailyCost"`
	DailyRate         float64 `json:"dailyRate"`
	BaseCost          float64 `json:"baseCost"`
	FeaturesCost      float64 `json:"featuresCost"`
	Total             float64 `json:"total"`
}

type RentalReceiptDTO struct {
	VehicleID     string  `json:"vehicleId"`
	CustomerID    string  `json:"customerId"`
	Days          int     `json:"days"`
	Cost          float64 `json:"cost"`
	PointsAwarded int     `json:"pointsAwarded"`
	LoyaltyPoints int     `json:"loyaltyPoints"`
	LoyaltyTier   string  `json:"loyaltyTier"`
}

type ReturnReceiptDTO struct {
	VehicleID  string `json:"vehicleId"`
	CustomerID string `json:"customerId,omitempty"`
	Returned   bool   `json:"returned"`
}

type RentalStatsDTO struct {
	TotalVehicles         int     `json:"totalVehicles"`
	ActiveRentals         int     `json:"activeRentals"`
	Utilization           float64 `json:"utilization"`
	TotalRevenue          float64 `json:"totalRevenue"`
	AverageRentalDuration float64 `json:"averageRentalDuration"`
	PeakDemandType        string  `json:"peakDemandType"`
}

type KindBreakdownDTO struct {
	Type   string `json:"type"`
	Total  int    `json:"total"`
	Rented int    `json:"rented"`
}

type FleetReportDTO struct {
	TotalVehicles         int                `json:"totalVehicles"`
	Available             int                `json:"available"`
	Rented                int                `json:"rented"`
	Utilization           float64            `json:"utilization"`
	AverageRating         float64            `json:"averageRating"`
	DailyRevenuePotential float64            `json:"dailyRevenuePotential"`
	ByType                []KindBreakdownDTO `json:"byType"`
	Vehicles              []VehicleDTO       `json:"vehicles"`
}

type ActiveRentalsReportDTO struct {
	Rentals      []ActiveRentalDTO `json:"rentals"`
	TotalRevenue float64           `json:"totalRevenue"`
	AverageDays  float64           `json:"averageDays"`
}

type RevenueReportDTO struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalRentals     int     `json:"totalRentals"`
	AveragePerRental float64 `json:"averagePerRental"`
}

type CustomerReportDTO struct {
	TotalCustomers int     `json:"totalCustomers"`
	GoldMembers    int     `json:"goldMembers"`
	SilverMembers  int     `json:"silverMembers"`
	BronzeMembers  int     `json:"bronzeMembers"`
	AverageRating  float64 `json:"averageRating"`
	RetentionRate  float64 `json:"retentionRate"`
}

type UtilizationReportDTO struct {
	Utilization           float64 `json:"utilization"`
	AverageRentalDuration float64 `json:"averageRentalDuration"`
	TotalRentalDays       int     `json:"totalRentalDays"`
	PeakDemandType        string  `json:"peakDemandType"`
	TotalActiveRentals    int     `json:"totalActiveRentals"`
}

type DashboardDTO struct {
	VehicleCount  int     `json:"vehicleCount"`
	CustomerCount int     `json:"customerCount"`
	ActiveRentals int     `json:"activeRentals"`
	Revenue       float64 `json:"revenue"`
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func MapVehicleToDTO(v agency.VehicleSummary) VehicleDTO {
	features := make([]FeatureDTO, 0, len(v.Features))
	for _, f := range v.Features {
		features = append(features, FeatureDTO{Name: f.Name, DailyCost: money(f.DailyCost)})
	}
	equipment := make(map[string]bool, len(v.Equipment))
	for _, e := range v.Equipment {
		equipment[e.Name] = e.Enabled
	}
	return VehicleDTO{
		ID:          v.ID,
		Type:        v.Kind.DisplayName(),
		Model:       v.Model,
		Rate:        money(v.BaseDailyRate),
		FeatureCost: money(v.FeatureCost),
		DailyRate:   money(v.DailyRate),
		IsAvailable: v.Available,
		RenterID:    v.RenterID,
		Rating:      v.AverageRating,
		RatingCount: v.RatingCount,
		Features:    features,
		Equipment:   equipment,
	}
}

func MapVehiclesToDTO(vs []agency.VehicleSummary) []VehicleDTO {
	out := make([]VehicleDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, MapVehicleToDTO(v))
	}
	return out
}

func MapCustomerToDTO(c agency.CustomerSummary) CustomerDTO {
	rentals := make([]RentalDTO, 0, len(c.CurrentRentals))
	for _, r := range c.CurrentRentals {
		rentals = append(rentals, RentalDTO{VehicleID: r.VehicleID, Days: r.Days})
	}
	history := c.RentalHistory
	if history == nil {
		history = []string{}
	}
	return CustomerDTO{
		ID:             c.ID,
		Name:           c.Name,
		LoyaltyPoints:  c.LoyaltyPoints,
		LoyaltyTier:    string(c.LoyaltyTier),
		Benefits:       c.LoyaltyTier.Benefits(),
		Eligible:       c.Eligible,
		Rating:         c.AverageRating,
		RatingCount:    c.RatingCount,
		CurrentRentals: rentals,
		RentalHistory:  history,
	}
}

func MapCustomersToDTO(cs []agency.CustomerSummary) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, MapCustomerToDTO(c))
	}
	return out
}

func MapActiveRentalsToDTO(rs []agency.ActiveRental) []ActiveRentalDTO {
	out := make([]ActiveRentalDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ActiveRentalDTO{
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			VehicleID:    r.VehicleID,
			VehicleModel: r.VehicleModel,
			VehicleType:  r.VehicleKind.DisplayName(),
			Days:         r.Days,
			Cost:         money(r.Cost),
		})
	}
	return out
}

func MapQuoteToDTO(q utils.RentalCostBreakdown) QuoteDTO {
	return QuoteDTO{
		VehicleID:         q.VehicleID,
		Days:              q.Days,
		BaseDailyRate:     money(q.BaseDailyRate),
		FeaturesDailyCost: money(q.FeaturesDailyCost),
		DailyRate:         money(q.DailyRate),
		BaseCost:          money(q.BaseCost),
		FeaturesCost:      money(q.FeaturesCost),
		Total:             money(q.Total),
	}
}

func MapRentalReceiptToDTO(r *service.RentalReceipt) RentalReceiptDTO {
	return RentalReceiptDTO{
		VehicleID:     r.VehicleID,
		CustomerID:    r.CustomerID,
		Days:          r.Days,
		Cost:          money(r.Cost),
		PointsAwarded: r.PointsAwarded,
		LoyaltyPoints: r.LoyaltyPoints,
		LoyaltyTier:   string(r.LoyaltyTier),
	}
}

func MapReturnReceiptToDTO(r *service.ReturnReceipt) ReturnReceiptDTO {
	return ReturnReceiptDTO{VehicleID: r.VehicleID, CustomerID: r.CustomerID, Returned: r.Returned}
}

func MapRentalStatsToDTO(s *service.RentalStats) RentalStatsDTO {
	return RentalStatsDTO{
		TotalVehicles:         s.TotalVehicles,
		ActiveRentals:         s.ActiveRentals,
		Utilization:           s.Utilization,
		TotalRevenue:          money(s.TotalRevenue),
		AverageRentalDuration: s.AverageRentalDuration,
		PeakDemandType:        s.PeakDemandKind,
	}
}

// MapReportToDTO converts any agency report to its JSON shape. Unknown report
// types map to nil.
func MapReportToDTO(report agency.Report) any {
	switch r := report.(type) {
	case agency.FleetReport:
		byType := make([]KindBreakdownDTO, 0, len(r.ByKind))
		for _, kb := range r.ByKind {
			byType = append(byType, KindBreakdownDTO{Type: kb.Kind.DisplayName(), Total: kb.Total, Rented: kb.Rented})
		}
		return FleetReportDTO{
			TotalVehicles:         r.TotalVehicles,
			Available:             r.Available,
			Rented:                r.Rented,
			Utilization:           r.Utilization,
			AverageRating:         r.AverageRating,
			DailyRevenuePotential: money(r.DailyRevenuePotential),
			ByType:                byType,
			Vehicles:              MapVehiclesToDTO(r.Vehicles),
		}
	case agency.ActiveRentalsReport:
		return ActiveRentalsReportDTO{
			Rentals:      MapActiveRentalsToDTO(r.Rentals),
			TotalRevenue: money(r.TotalRevenue),
			AverageDays:  r.AverageDays,
		}
	case agency.RevenueReport:
		return RevenueReportDTO{
			TotalRevenue:     money(r.TotalRevenue),
			TotalRentals:     r.TotalRentals,
			AveragePerRental: money(r.AveragePerRental),
		}
	case agency.CustomerReport:
		return CustomerReportDTO{
			TotalCustomers: r.TotalCustomers,
			GoldMembers:    r.GoldMembers,
			SilverMembers:  r.SilverMembers,
			BronzeMembers:  r.BronzeMembers,
			AverageRating:  r.AverageRating,
			RetentionRate:  r.RetentionRate,
		}
	case agency.UtilizationReport:
		return UtilizationReportDTO{
			Utilization:           r.Utilization,
			AverageRentalDuration: r.AverageRentalDuration,
			TotalRentalDays:       r.TotalRentalDays,
			PeakDemandType:        r.PeakDemandKind,
			TotalActiveRentals:    r.TotalActiveRentals,
		}
	case agency.Dashboard:
		return DashboardDTO{
			VehicleCount:  r.VehicleCount,
			CustomerCount: r.CustomerCount,
			ActiveRentals: r.ActiveRentals,
			Revenue:       money(r.Revenue),
		}
	default:
		return nil
	}
}
