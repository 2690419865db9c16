package service

import (
	"context"
	"fmt"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
)

type customerService struct{}

func NewCustomerService() CustomerService {
	return &customerService{}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]agency.CustomerSummary, error) {
	var out []agency.CustomerSummary
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		out = a.SummarizeCustomers()
		return nil
	})
	return out, err
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (agency.CustomerSummary, error) {
	var out agency.CustomerSummary
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		c, err := a.FindCustomer(id)
		if err != nil {
			return err
		}
		out = agency.SummarizeCustomer(c)
		return nil
	})
	return out, err
}

// AddCustomer registers a new customer. Ids must be unique within the session.
func (s *customerService) AddCustomer(ctx context.Context, id, name string) (agency.CustomerSummary, error) {
	logger.EnterMethod("customerService.AddCustomer", "customerID", id)

	c, err := domain.NewCustomer(id, name)
	if err != nil {
		logger.ExitMethodWithError("customerService.AddCustomer", err)
		return agency.CustomerSummary{}, err
	}

	var out agency.CustomerSummary
	err = withAgency(ctx, func(a *agency.RentalAgency) error {
		if _, err := a.FindCustomer(c.ID()); err == nil {
			return fmt.Errorf("%w: customer %s already exists", domain.ErrInvalidOperation, c.ID())
		}
		if err := a.AddCustomer(c); err != nil {
			return err
		}
		out = agency.SummarizeCustomer(c)
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("customerService.AddCustomer", err, "customerID", id)
		return agency.CustomerSummary{}, err
	}

	logger.ExitMethod("customerService.AddCustomer", "customerID", out.ID)
	return out, nil
}

func (s *customerService) RemoveCustomer(ctx context.Context, id string) error {
	logger.EnterMethod("customerService.RemoveCustomer", "customerID", id)

	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		c, err := a.FindCustomer(id)
		if err != nil {
			return err
		}
		return a.RemoveCustomer(c)
	})
	if err != nil {
		logger.ExitMethodWithError("customerService.RemoveCustomer", err, "customerID", id)
		return err
	}

	logger.ExitMethod("customerService.RemoveCustomer", "customerID", id)
	return nil
}

func (s *customerService) RateCustomer(ctx context.Context, id string, rating int) (agency.CustomerSummary, bool, error) {
	var (
		out      agency.CustomerSummary
		accepted bool
	)
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		c, err := a.FindCustomer(id)
		if err != nil {
			return err
		}
		accepted = a.RateCustomer(c, rating)
		out = agency.SummarizeCustomer(c)
		return nil
	})
	return out, accepted, err
}

func (s *customerService) AddLoyaltyPoints(ctx context.Context, id string, points int) (agency.CustomerSummary, error) {
	var out agency.CustomerSummary
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		c, err := a.FindCustomer(id)
		if err != nil {
			return err
		}
		if err := c.AddLoyaltyPoints(points); err != nil {
			return err
		}
		out = agency.SummarizeCustomer(c)
		return nil
	})
	return out, err
}
