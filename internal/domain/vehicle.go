package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinRentalDays        = 1
	MaxRentalDays        = 365
	MaxConcurrentRentals = 2
)

type VehicleKind string

const (
	VehicleKindCar        VehicleKind = "car"
	VehicleKindMotorcycle VehicleKind = "motorcycle"
	VehicleKindTruck      VehicleKind = "truck"
)

// ParseVehicleKind accepts a kind name in any letter case.
func ParseVehicleKind(s string) (VehicleKind, error) {
	switch k := VehicleKind(strings.ToLower(strings.TrimSpace(s))); k {
	case VehicleKindCar, VehicleKindMotorcycle, VehicleKindTruck:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown vehicle type: %s", ErrInvalidArgument, s)
	}
}

// DisplayName is the capitalised kind used in reports ("Car", "Truck").
func (k VehicleKind) DisplayName() string {
	switch k {
	case VehicleKindCar:
		return "Car"
	case VehicleKindMotorcycle:
		return "Motorcycle"
	case VehicleKindTruck:
		return "Truck"
	default:
		return "Unknown"
	}
}

// EquipmentFlag is a single descriptive on/off attribute of a vehicle.
type EquipmentFlag struct {
	Name    string
	Enabled bool
}

// Equipment is the kind-specific set of equipment flags. Flags are purely
// descriptive and never influence pricing.
type Equipment interface {
	Kind() VehicleKind
	Flags() []EquipmentFlag
}

type CarEquipment struct {
	GPS       bool
	ChildSeat bool
	Sunroof   bool
}

func (CarEquipment) Kind() VehicleKind { return VehicleKindCar }

func (e CarEquipment) Flags() []EquipmentFlag {
	return []EquipmentFlag{{"gps", e.GPS}, {"childSeat", e.ChildSeat}, {"sunroof", e.Sunroof}}
}

type MotorcycleEquipment struct {
	Helmet      bool
	LuggageRack bool
}

func (MotorcycleEquipment) Kind() VehicleKind { return VehicleKindMotorcycle }

func (e MotorcycleEquipment) Flags() []EquipmentFlag {
	return []EquipmentFlag{{"helmet", e.Helmet}, {"luggageRack", e.LuggageRack}}
}

type TruckEquipment struct {
	CargoLift     bool
	Refrigeration bool
}

func (TruckEquipment) Kind() VehicleKind { return VehicleKindTruck }

func (e TruckEquipment) Flags() []EquipmentFlag {
	return []EquipmentFlag{{"cargoLift", e.CargoLift}, {"refrigeration", e.Refrigeration}}
}

// Vehicle is a rentable unit of the fleet. It is available exactly when it has
// no renter; the renter is kept as a customer id only; the customer's rental
// set is the source of truth for who holds what.
type Vehicle struct {
	id            string
	model         string
	baseDailyRate decimal.Decimal
	equipment     Equipment
	features      []Feature
	renterID      string
	ratings       Ratings
}

func NewCar(id, model string, baseDailyRate decimal.Decimal, equipment CarEquipment) (*Vehicle, error) {
	return newVehicle(id, model, baseDailyRate, equipment)
}

func NewMotorcycle(id, model string, baseDailyRate decimal.Decimal, equipment MotorcycleEquipment) (*Vehicle, error) {
	return newVehicle(id, model, baseDailyRate, equipment)
}

func NewTruck(id, model string, baseDailyRate decimal.Decimal, equipment TruckEquipment) (*Vehicle, error) {
	return newVehicle(id, model, baseDailyRate, equipment)
}

// NewVehicle builds a vehicle of the given kind with all equipment flags off.
func NewVehicle(kind VehicleKind, id, model string, baseDailyRate decimal.Decimal) (*Vehicle, error) {
	switch kind {
	case VehicleKindCar:
		return NewCar(id, model, baseDailyRate, CarEquipment{})
	case VehicleKindMotorcycle:
		return NewMotorcycle(id, model, baseDailyRate, MotorcycleEquipment{})
	case VehicleKindTruck:
		return NewTruck(id, model, baseDailyRate, TruckEquipment{})
	default:
		return nil, fmt.Errorf("%w: unknown vehicle type: %s", ErrInvalidArgument, kind)
	}
}

// NewVehicleWithEquipment builds a vehicle whose kind is taken from equipment.
func NewVehicleWithEquipment(id, model string, baseDailyRate decimal.Decimal, equipment Equipment) (*Vehicle, error) {
	if equipment == nil {
		return nil, fmt.Errorf("%w: vehicle equipment is required", ErrInvalidArgument)
	}
	return newVehicle(id, model, baseDailyRate, equipment)
}

// EquipmentFromFlags builds the equipment of kind from named flags as returned
// by Equipment.Flags. Flags not named stay off; unknown names are rejected.
func EquipmentFromFlags(kind VehicleKind, flags map[string]bool) (Equipment, error) {
	var known []string
	var eq Equipment
	switch kind {
	case VehicleKindCar:
		eq = CarEquipment{GPS: flags["gps"], ChildSeat: flags["childSeat"], Sunroof: flags["sunroof"]}
	case VehicleKindMotorcycle:
		eq = MotorcycleEquipment{Helmet: flags["helmet"], LuggageRack: flags["luggageRack"]}
	case VehicleKindTruck:
		eq = TruckEquipment{CargoLift: flags["cargoLift"], Refrigeration: flags["refrigeration"]}
	default:
		return nil, fmt.Errorf("%w: unknown vehicle type: %s", ErrInvalidArgument, kind)
	}
	for _, f := range eq.Flags() {
		known = append(known, f.Name)
	}
	for name := range flags {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("%w: unknown %s equipment %q", ErrInvalidArgument, kind, name)
		}
	}
	return eq, nil
}

func newVehicle(id, model string, baseDailyRate decimal.Decimal, equipment Equipment) (*Vehicle, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: vehicle id is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: vehicle model is required", ErrInvalidArgument)
	}
	if !baseDailyRate.IsPositive() {
		return nil, fmt.Errorf("%w: base daily rate must be positive", ErrInvalidArgument)
	}
	return &Vehicle{
		id:            strings.TrimSpace(id),
		model:         model,
		baseDailyRate: baseDailyRate,
		equipment:     equipment,
	}, nil
}

func (v *Vehicle) ID() string                     { return v.id }
func (v *Vehicle) Model() string                  { return v.model }
func (v *Vehicle) Kind() VehicleKind              { return v.equipment.Kind() }
func (v *Vehicle) Equipment() Equipment           { return v.equipment }
func (v *Vehicle) BaseDailyRate() decimal.Decimal { return v.baseDailyRate }

// IsAvailable reports whether the vehicle is free to rent.
func (v *Vehicle) IsAvailable() bool {
	return v.renterID == ""
}

// RenterID is the id of the customer holding the vehicle, or "" when available.
func (v *Vehicle) RenterID() string {
	return v.renterID
}

// AddFeature appends f. Duplicates are allowed.
func (v *Vehicle) AddFeature(f Feature) {
	v.features = append(v.features, f)
}

func (v *Vehicle) Features() []Feature {
	out := make([]Feature, len(v.features))
	copy(out, v.features)
	return out
}

// TotalFeatureCost is the sum of all feature daily costs.
func (v *Vehicle) TotalFeatureCost() decimal.Decimal {
	total := decimal.Zero
	for _, f := range v.features {
		total = total.Add(f.DailyCost())
	}
	return total
}

// DailyRate is the base rate plus every feature surcharge.
func (v *Vehicle) DailyRate() decimal.Decimal {
	return v.baseDailyRate.Add(v.TotalFeatureCost())
}

// CalculateRentalCost is (base rate + feature costs) * days. Pricing is linear:
// no tiers, no proration, no loyalty discount.
func (v *Vehicle) CalculateRentalCost(days int) (decimal.Decimal, error) {
	if days <= 0 {
		return decimal.Zero, fmt.Errorf("%w: rental days must be positive, got %d", ErrInvalidArgument, days)
	}
	return v.DailyRate().Mul(decimal.NewFromInt(int64(days))), nil
}

// ValidateRentalPeriod checks days against [MinRentalDays, MaxRentalDays].
func ValidateRentalPeriod(days int) error {
	if days < MinRentalDays || days > MaxRentalDays {
		return fmt.Errorf("%w: rental period must be between %d and %d days, got %d", ErrInvalidRentalPeriod, MinRentalDays, MaxRentalDays, days)
	}
	return nil
}

// Rent hands the vehicle to c for days. Both sides are validated before
// either is touched, so a failed call leaves vehicle and customer unchanged.
func (v *Vehicle) Rent(c *Customer, days int) error {
	if !v.IsAvailable() {
		return fmt.Errorf("%w: vehicle %s is already rented", ErrVehicleNotAvailable, v.id)
	}
	if err := ValidateRentalPeriod(days); err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: customer is required", ErrInvalidArgument)
	}
	if !c.IsEligibleForRental() {
		return fmt.Errorf("%w: customer %s already holds %d vehicles", ErrCustomerNotEligible, c.ID(), len(c.rentals))
	}

	v.renterID = c.ID()
	c.rentals = append(c.rentals, Rental{Vehicle: v, Days: days})
	return nil
}

// ReturnVehicle releases the vehicle from renter. Returning an available
// vehicle is a no-op. renter must be the customer currently holding it.
func (v *Vehicle) ReturnVehicle(renter *Customer) error {
	if v.IsAvailable() {
		return nil
	}
	if renter == nil || renter.ID() != v.renterID {
		return fmt.Errorf("%w: vehicle %s is held by customer %s", ErrInvalidOperation, v.id, v.renterID)
	}
	idx := renter.rentalIndex(v)
	if idx < 0 {
		return fmt.Errorf("%w: customer %s has no rental record for vehicle %s", ErrInvalidOperation, renter.ID(), v.id)
	}

	v.renterID = ""
	renter.rentals = append(renter.rentals[:idx], renter.rentals[idx+1:]...)
	renter.history = append(renter.history, v)
	return nil
}

// AddRating records a rating in [1,5].
func (v *Vehicle) AddRating(value int) error {
	return v.ratings.Add(value)
}

func (v *Vehicle) AverageRating() float64 {
	return v.ratings.Average()
}

func (v *Vehicle) Ratings() []int {
	return v.ratings.Values()
}

func (v *Vehicle) String() string {
	status := "Available"
	if !v.IsAvailable() {
		status = "Rented"
	}
	return fmt.Sprintf("%s %s (%s) $%s/day [%s]", v.Kind().DisplayName(), v.model, v.id, v.baseDailyRate.StringFixed(2), status)
}
