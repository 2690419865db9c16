package domain

import "errors"

// Error kinds raised by the rental core. Detailed errors wrap one of these,
// so callers should match with errors.Is.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidRentalPeriod = errors.New("invalid rental period")
	ErrVehicleNotAvailable = errors.New("vehicle not available")
	ErrCustomerNotEligible = errors.New("customer not eligible for rental")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrNotFound            = errors.New("not found")
)
