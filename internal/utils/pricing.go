package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// RentalCostBreakdown provides detailed cost breakdown
type RentalCostBreakdown struct {
	VehicleID         string
	Days              int
	BaseDailyRate     decimal.Decimal
	FeaturesDailyCost decimal.Decimal
	DailyRate         decimal.Decimal
	BaseCost          decimal.Decimal
	FeaturesCost      decimal.Decimal
	Total             decimal.Decimal
}

// ParseDate converts a yyyy-mm-dd formatted string into a time at UTC midnight
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %w", domain.ErrInvalidArgument)
	}
	return t, nil
}

// RentalDaysBetween counts billable days from pickup to drop-off.
// Both ends are included, so a same-day rental is one day.
func RentalDaysBetween(pickup, dropoff time.Time) (int, error) {
	start := truncateToDate(pickup)
	end := truncateToDate(dropoff)
	if end.Before(start) {
		return 0, fmt.Errorf("drop-off %s before pickup %s: %w",
			end.Format(dateLayout), start.Format(dateLayout), domain.ErrInvalidRentalPeriod)
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if err := domain.ValidateRentalPeriod(days); err != nil {
		return 0, err
	}
	return days, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Quote prices a rental of v for the given days without renting it.
// Total always matches v.CalculateRentalCost(days).
func Quote(v *domain.Vehicle, days int) (RentalCostBreakdown, error) {
	if v == nil {
		return RentalCostBreakdown{}, fmt.Errorf("vehicle is required: %w", domain.ErrInvalidArgument)
	}
	if err := domain.ValidateRentalPeriod(days); err != nil {
		return RentalCostBreakdown{}, err
	}

	total, err := v.CalculateRentalCost(days)
	if err != nil {
		return RentalCostBreakdown{}, err
	}

	n := decimal.NewFromInt(int64(days))
	return RentalCostBreakdown{
		VehicleID:         v.ID(),
		Days:              days,
		BaseDailyRate:     v.BaseDailyRate(),
		FeaturesDailyCost: v.TotalFeatureCost(),
		DailyRate:         v.DailyRate(),
		BaseCost:          v.BaseDailyRate().Mul(n),
		FeaturesCost:      v.TotalFeatureCost().Mul(n),
		Total:             total,
	}, nil
}

// QuoteForDates prices a rental between two yyyy-mm-dd dates, inclusive.
func QuoteForDates(v *domain.Vehicle, pickup, dropoff string) (RentalCostBreakdown, error) {
	start, err := ParseDate(pickup)
	if err != nil {
		return RentalCostBreakdown{}, fmt.Errorf("invalid pickup date: %w", err)
	}
	end, err := ParseDate(dropoff)
	if err != nil {
		return RentalCostBreakdown{}, fmt.Errorf("invalid drop-off date: %w", err)
	}
	days, err := RentalDaysBetween(start, end)
	if err != nil {
		return RentalCostBreakdown{}, err
	}
	return Quote(v, days)
}
