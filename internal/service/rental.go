package service

import (
	"context"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/logger"
)

type rentalService struct {
	pointsPerDay int
}

// NewRentalService creates the rental service. Every successful rental awards
// the customer pointsPerDay loyalty points per rented day.
func NewRentalService(pointsPerDay int) RentalService {
	if pointsPerDay < 0 {
		pointsPerDay = 0
	}
	return &rentalService{pointsPerDay: pointsPerDay}
}

func (s *rentalService) ListActiveRentals(ctx context.Context) ([]agency.ActiveRental, error) {
	var out []agency.ActiveRental
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		out = a.ActiveRentals()
		return nil
	})
	return out, err
}

func (s *rentalService) RentVehicle(ctx context.Context, vehicleID, customerID string, days int) (*RentalReceipt, error) {
	logger.EnterMethod("rentalService.RentVehicle", "vehicleID", vehicleID, "customerID", customerID, "days", days)

	var receipt *RentalReceipt
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		v, err := a.FindVehicle(vehicleID)
		if err != nil {
			return err
		}
		c, err := a.FindCustomer(customerID)
		if err != nil {
			return err
		}
		if err := a.RentVehicle(v, c, days); err != nil {
			return err
		}

		cost, err := v.CalculateRentalCost(days)
		if err != nil {
			return err
		}
		points := days * s.pointsPerDay
		if err := c.AddLoyaltyPoints(points); err != nil {
			return err
		}

		receipt = &RentalReceipt{
			VehicleID:     v.ID(),
			CustomerID:    c.ID(),
			Days:          days,
			Cost:          cost,
			PointsAwarded: points,
			LoyaltyPoints: c.LoyaltyPoints(),
			LoyaltyTier:   c.LoyaltyTier(),
		}
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("rentalService.RentVehicle", err, "vehicleID", vehicleID, "customerID", customerID)
		return nil, err
	}

	logger.ExitMethod("rentalService.RentVehicle", "vehicleID", receipt.VehicleID, "cost", receipt.Cost.String(), "pointsAwarded", receipt.PointsAwarded)
	return receipt, nil
}

func (s *rentalService) ReturnVehicle(ctx context.Context, vehicleID string) (*ReturnReceipt, error) {
	logger.EnterMethod("rentalService.ReturnVehicle", "vehicleID", vehicleID)

	var receipt *ReturnReceipt
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		v, err := a.FindVehicle(vehicleID)
		if err != nil {
			return err
		}
		renterID := v.RenterID()
		if err := a.ProcessReturn(v); err != nil {
			return err
		}
		receipt = &ReturnReceipt{VehicleID: v.ID(), CustomerID: renterID, Returned: renterID != ""}
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("rentalService.ReturnVehicle", err, "vehicleID", vehicleID)
		return nil, err
	}

	logger.ExitMethod("rentalService.ReturnVehicle", "vehicleID", receipt.VehicleID, "returned", receipt.Returned)
	return receipt, nil
}

func (s *rentalService) GetStats(ctx context.Context) (*RentalStats, error) {
	var stats *RentalStats
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		revenue := a.GenerateRevenueReport()
		util := a.GenerateUtilizationReport()
		stats = &RentalStats{
			TotalVehicles:         len(a.Fleet()),
			ActiveRentals:         util.TotalActiveRentals,
			Utilization:           util.Utilization,
			TotalRevenue:          revenue.TotalRevenue,
			AverageRentalDuration: util.AverageRentalDuration,
			PeakDemandKind:        util.PeakDemandKind,
		}
		return nil
	})
	return stats, err
}
