package service

import (
	"context"

	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/utils"
)

type fleetService struct{}

func NewFleetService() FleetService {
	return &fleetService{}
}

func (s *fleetService) ListVehicles(ctx context.Context, availableOnly bool) ([]agency.VehicleSummary, error) {
	var out []agency.VehicleSummary
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		out = a.SummarizeFleet(availableOnly)
		return nil
	})
	return out, err
}

func (s *fleetService) GetVehicle(ctx context.Context, id string) (agency.VehicleSummary, error) {
	var out agency.VehicleSummary
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		v, err := a.FindVehicle(id)
		if err != nil {
			return err
		}
		out = agency.SummarizeVehicle(v)
		return nil
	})
	return out, err
}

func (s *fleetService) AddVehicle(ctx context.Context, req AddVehicleRequest) (agency.VehicleSummary, error) {
	logger.EnterMethod("fleetService.AddVehicle", "vehicleID", req.ID, "kind", req.Kind)

	kind, err := domain.ParseVehicleKind(req.Kind)
	if err != nil {
		logger.ExitMethodWithError("fleetService.AddVehicle", err)
		return agency.VehicleSummary{}, err
	}
	equipment, err := domain.EquipmentFromFlags(kind, req.Equipment)
	if err != nil {
		logger.ExitMethodWithError("fleetService.AddVehicle", err)
		return agency.VehicleSummary{}, err
	}
	v, err := domain.NewVehicleWithEquipment(req.ID, req.Model, req.BaseDailyRate, equipment)
	if err != nil {
		logger.ExitMethodWithError("fleetService.AddVehicle", err)
		return agency.VehicleSummary{}, err
	}

	var out agency.VehicleSummary
	err = withAgency(ctx, func(a *agency.RentalAgency) error {
		if err := a.AddVehicleToFleet(v); err != nil {
			return err
		}
		out = agency.SummarizeVehicle(v)
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("fleetService.AddVehicle", err, "vehicleID", req.ID)
		return agency.VehicleSummary{}, err
	}

	logger.ExitMethod("fleetService.AddVehicle", "vehicleID", out.ID)
	return out, nil
}

func (s *fleetService) RemoveVehicle(ctx context.Context, id string) error {
	logger.EnterMethod("fleetService.RemoveVehicle", "vehicleID", id)

	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		v, err := a.FindVehicle(id)
		if err != nil {
			return err
		}
		return a.RemoveVehicleFromFleet(v)
	})
	if err != nil {
		logger.ExitMethodWithError("fleetService.RemoveVehicle", err, "vehicleID", id)
		return err
	}

	logger.ExitMethod("fleetService.RemoveVehicle", "vehicleID", id)
	return nil
}

func (s *fleetService) AddFeature(ctx context.Context, vehicleID, name string, dailyCost decimal.Decimal) (agency.VehicleSummary, error) {
	f, err := domain.NewFeature(name, dailyCost)
	if err != nil {
		return agency.VehicleSummary{}, err
	}

	var out agency.VehicleSummary
	err = withAgency(ctx, func(a *agency.RentalAgency) error {
		v, err := a.FindVehicle(vehicleID)
		if err != nil {
			return err
		}
		v.AddFeature(f)
		out = agency.SummarizeVehicle(v)
		return nil
	})
	return out, err
}

func (s *fleetService) RateVehicle(ctx context.Context, id string, rating int) (agency.VehicleSummary, bool, error) {
	var (
		out      agency.VehicleSummary
		accepted bool
	)
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		v, err := a.FindVehicle(id)
		if err != nil {
			return err
		}
		accepted = a.RateVehicle(v, rating)
		out = agency.SummarizeVehicle(v)
		return nil
	})
	return out, accepted, err
}

func (s *fleetService) QuoteRental(ctx context.Context, id string, days int) (utils.RentalCostBreakdown, error) {
	var out utils.RentalCostBreakdown
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		v, err := a.FindVehicle(id)
		if err != nil {
			return err
		}
		out, err = utils.Quote(v, days)
		return err
	})
	return out, err
}

func (s *fleetService) QuoteRentalForDates(ctx context.Context, id, pickup, dropoff string) (utils.RentalCostBreakdown, error) {
	var out utils.RentalCostBreakdown
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		v, err := a.FindVehicle(id)
		if err != nil {
			return err
		}
		out, err = utils.QuoteForDates(v, pickup, dropoff)
		return err
	})
	return out, err
}
