package domain

import (
	"fmt"
	"strings"
)

// Rental is one entry of a customer's current rentals: the vehicle held and
// the contracted duration in days.
type Rental struct {
	Vehicle *Vehicle
	Days    int
}

// Customer is a registered renter. Its current rentals are the authoritative
// record of which vehicles it holds.
type Customer struct {
	id            string
	name          string
	loyaltyPoints int
	rentals       []Rental
	history       []*Vehicle
	ratings       Ratings
}

func NewCustomer(id, name string) (*Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: customer id is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidArgument)
	}
	return &Customer{id: strings.TrimSpace(id), name: name}, nil
}

func (c *Customer) ID() string         { return c.id }
func (c *Customer) Name() string       { return c.name }
func (c *Customer) LoyaltyPoints() int { return c.loyaltyPoints }

// LoyaltyTier is recomputed from the point balance on every call.
func (c *Customer) LoyaltyTier() LoyaltyTier {
	return TierForPoints(c.loyaltyPoints)
}

// AddLoyaltyPoints increases the balance. Negative deltas are rejected.
func (c *Customer) AddLoyaltyPoints(delta int) error {
	if delta < 0 {
		return fmt.Errorf("%w: loyalty points cannot be negative, got %d", ErrInvalidArgument, delta)
	}
	c.loyaltyPoints += delta
	return nil
}

// IsEligibleForRental reports whether the customer is below the concurrent rental cap.
func (c *Customer) IsEligibleForRental() bool {
	return len(c.rentals) < MaxConcurrentRentals
}

// CurrentRentals returns a copy of the held vehicles in rental order.
func (c *Customer) CurrentRentals() []Rental {
	out := make([]Rental, len(c.rentals))
	copy(out, c.rentals)
	return out
}

// RentalDays returns the contracted duration for v if the customer holds it.
func (c *Customer) RentalDays(v *Vehicle) (int, bool) {
	if idx := c.rentalIndex(v); idx >= 0 {
		return c.rentals[idx].Days, true
	}
	return 0, false
}

// RentalHistory lists every vehicle the customer has returned, oldest first.
// Vehicles are appended on return only.
func (c *Customer) RentalHistory() []*Vehicle {
	out := make([]*Vehicle, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Customer) AddRating(value int) error {
	return c.ratings.Add(value)
}

func (c *Customer) AverageRating() float64 {
	return c.ratings.Average()
}

func (c *Customer) Ratings() []int {
	return c.ratings.Values()
}

func (c *Customer) rentalIndex(v *Vehicle) int {
	for i, r := range c.rentals {
		if r.Vehicle == v {
			return i
		}
	}
	return -1
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s (%s) %s, %d points", c.name, c.id, c.LoyaltyTier(), c.loyaltyPoints)
}
