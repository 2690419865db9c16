// Package agency orchestrates the fleet and customer registry of one rental
// agency and enforces the rules that span vehicles and customers.
//
// An agency is not safe for concurrent use. Callers sharing one agency across
// goroutines must serialize every call, including direct calls on the
// vehicles and customers it holds.
package agency

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
)

var vehicleIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{3,20}$`)

type RentalAgency struct {
	fleet     []*domain.Vehicle
	customers []*domain.Customer
	// holders remembers who rented each vehicle through the agency, so a
	// return can be settled even when the renter is not in the registry.
	holders map[*domain.Vehicle]*domain.Customer
	log     *slog.Logger
}

func New() *RentalAgency {
	return &RentalAgency{
		holders: make(map[*domain.Vehicle]*domain.Customer),
		log:     logger.WithService("agency"),
	}
}

// WithLogger replaces the agency logger, typically with a session-scoped one.
func (a *RentalAgency) WithLogger(l *slog.Logger) *RentalAgency {
	if l != nil {
		a.log = l.With("service", "agency")
	}
	return a
}

// ValidateVehicleID checks the fleet id format: 3 to 20 ASCII letters or digits.
func ValidateVehicleID(id string) error {
	if !vehicleIDPattern.MatchString(id) {
		return fmt.Errorf("%w: vehicle id must be 3-20 alphanumeric characters, got %q", domain.ErrInvalidArgument, id)
	}
	return nil
}

// AddVehicleToFleet appends v to the fleet. Ids are unique ignoring case.
func (a *RentalAgency) AddVehicleToFleet(v *domain.Vehicle) error {
	if v == nil {
		return fmt.Errorf("%w: vehicle is required", domain.ErrInvalidArgument)
	}
	if err := ValidateVehicleID(v.ID()); err != nil {
		return err
	}
	if existing := a.findVehicle(v.ID()); existing != nil {
		return fmt.Errorf("%w: vehicle id %s already exists", domain.ErrInvalidOperation, existing.ID())
	}

	a.fleet = append(a.fleet, v)
	a.log.Info("Vehicle added to fleet", "vehicle_id", v.ID(), "kind", v.Kind(), "model", v.Model())
	return nil
}

// RemoveVehicleFromFleet drops v from the fleet. Rented vehicles cannot be removed.
func (a *RentalAgency) RemoveVehicleFromFleet(v *domain.Vehicle) error {
	if v == nil {
		return fmt.Errorf("%w: vehicle is required", domain.ErrInvalidArgument)
	}
	idx := a.fleetIndex(v)
	if idx < 0 {
		return fmt.Errorf("%w: vehicle %s is not in the fleet", domain.ErrNotFound, v.ID())
	}
	if !v.IsAvailable() {
		return fmt.Errorf("%w: vehicle %s is currently rented", domain.ErrInvalidOperation, v.ID())
	}

	a.fleet = append(a.fleet[:idx], a.fleet[idx+1:]...)
	a.log.Info("Vehicle removed from fleet", "vehicle_id", v.ID())
	return nil
}

// AddCustomer appends c to the registry. Ids are not deduplicated here.
func (a *RentalAgency) AddCustomer(c *domain.Customer) error {
	if c == nil {
		return fmt.Errorf("%w: customer is required", domain.ErrInvalidArgument)
	}
	a.customers = append(a.customers, c)
	a.log.Info("Customer registered", "customer_id", c.ID(), "name", c.Name())
	return nil
}

// RemoveCustomer drops c from the registry. Customers holding vehicles stay.
func (a *RentalAgency) RemoveCustomer(c *domain.Customer) error {
	if c == nil {
		return fmt.Errorf("%w: customer is required", domain.ErrInvalidArgument)
	}
	idx := -1
	for i, existing := range a.customers {
		if existing == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: customer %s is not registered", domain.ErrNotFound, c.ID())
	}
	if n := len(c.CurrentRentals()); n > 0 {
		return fmt.Errorf("%w: customer %s still holds %d vehicles", domain.ErrInvalidOperation, c.ID(), n)
	}

	a.customers = append(a.customers[:idx], a.customers[idx+1:]...)
	a.log.Info("Customer removed", "customer_id", c.ID())
	return nil
}

// RentVehicle checks the rental period first and then delegates to the
// vehicle, which checks availability and customer eligibility. The two layers
// report distinct error kinds so callers can tell the failure reasons apart.
func (a *RentalAgency) RentVehicle(v *domain.Vehicle, c *domain.Customer, days int) error {
	if err := domain.ValidateRentalPeriod(days); err != nil {
		a.log.Warn("Rental rejected", "reason", "period", "days", days)
		return err
	}
	if v == nil {
		return fmt.Errorf("%w: vehicle is required", domain.ErrInvalidArgument)
	}
	if err := v.Rent(c, days); err != nil {
		a.log.Warn("Rental rejected", "vehicle_id", v.ID(), "days", days, "error", err)
		return err
	}

	a.holders[v] = c
	a.log.Info("Vehicle rented", "vehicle_id", v.ID(), "customer_id", c.ID(), "days", days)
	return nil
}

// ProcessReturn settles the return of v. Returning an available vehicle is
// logged and ignored.
func (a *RentalAgency) ProcessReturn(v *domain.Vehicle) error {
	if v == nil {
		return fmt.Errorf("%w: vehicle is required", domain.ErrInvalidArgument)
	}
	if v.IsAvailable() {
		a.log.Info("Return ignored, vehicle is not rented", "vehicle_id", v.ID())
		return nil
	}

	renter := a.resolveHolder(v)
	if err := v.ReturnVehicle(renter); err != nil {
		return err
	}
	delete(a.holders, v)
	a.log.Info("Vehicle returned", "vehicle_id", v.ID(), "customer_id", renter.ID())
	return nil
}

// RateVehicle records a rating for v. Invalid ratings are logged and dropped;
// the result only reports whether the rating was accepted.
func (a *RentalAgency) RateVehicle(v *domain.Vehicle, rating int) bool {
	if v == nil {
		a.log.Warn("Vehicle rating ignored", "reason", "no vehicle")
		return false
	}
	if err := v.AddRating(rating); err != nil {
		a.log.Warn("Vehicle rating ignored", "vehicle_id", v.ID(), "rating", rating, "error", err)
		return false
	}
	return true
}

// RateCustomer is the customer counterpart of RateVehicle.
func (a *RentalAgency) RateCustomer(c *domain.Customer, rating int) bool {
	if c == nil {
		a.log.Warn("Customer rating ignored", "reason", "no customer")
		return false
	}
	if err := c.AddRating(rating); err != nil {
		a.log.Warn("Customer rating ignored", "customer_id", c.ID(), "rating", rating, "error", err)
		return false
	}
	return true
}

// Fleet returns the vehicles in insertion order.
func (a *RentalAgency) Fleet() []*domain.Vehicle {
	out := make([]*domain.Vehicle, len(a.fleet))
	copy(out, a.fleet)
	return out
}

// AvailableVehicles returns the vehicles that are not rented, in fleet order.
func (a *RentalAgency) AvailableVehicles() []*domain.Vehicle {
	var out []*domain.Vehicle
	for _, v := range a.fleet {
		if v.IsAvailable() {
			out = append(out, v)
		}
	}
	return out
}

// Customers returns the registry in insertion order.
func (a *RentalAgency) Customers() []*domain.Customer {
	out := make([]*domain.Customer, len(a.customers))
	copy(out, a.customers)
	return out
}

// FindVehicle looks a fleet vehicle up by id, ignoring case.
func (a *RentalAgency) FindVehicle(id string) (*domain.Vehicle, error) {
	if v := a.findVehicle(id); v != nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, id)
}

// FindCustomer returns the first registered customer with exactly this id.
func (a *RentalAgency) FindCustomer(id string) (*domain.Customer, error) {
	id = strings.TrimSpace(id)
	for _, c := range a.customers {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: customer %s", domain.ErrNotFound, id)
}

// Holder returns the customer currently holding v, if it can be resolved.
func (a *RentalAgency) Holder(v *domain.Vehicle) (*domain.Customer, error) {
	if v == nil || v.IsAvailable() {
		return nil, fmt.Errorf("%w: vehicle is not rented", domain.ErrInvalidOperation)
	}
	if c := a.resolveHolder(v); c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("%w: renter %s of vehicle %s", domain.ErrNotFound, v.RenterID(), v.ID())
}

func (a *RentalAgency) findVehicle(id string) *domain.Vehicle {
	id = strings.TrimSpace(id)
	for _, v := range a.fleet {
		if strings.EqualFold(v.ID(), id) {
			return v
		}
	}
	return nil
}

func (a *RentalAgency) fleetIndex(v *domain.Vehicle) int {
	for i, existing := range a.fleet {
		if existing == v {
			return i
		}
	}
	return -1
}

// resolveHolder prefers the customer recorded at rent time and falls back to
// a registry customer whose rental set contains v, which covers vehicles
// rented through a direct Vehicle.Rent call.
func (a *RentalAgency) resolveHolder(v *domain.Vehicle) *domain.Customer {
	if c, ok := a.holders[v]; ok {
		if _, held := c.RentalDays(v); held {
			return c
		}
		delete(a.holders, v)
	}
	for _, c := range a.customers {
		if _, ok := c.RentalDays(v); ok {
			return c
		}
	}
	return nil
}
