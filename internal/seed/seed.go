// Package seed fills an agency with the sample fleet and customers used by the
// demo and, when enabled, by every new server session.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/domain"
)

type sampleVehicle struct {
	id        string
	model     string
	rate      int64
	equipment domain.Equipment
	features  []sampleFeature
	ratings   []int
}

type sampleFeature struct {
	name string
	cost int64
}

type sampleCustomer struct {
	id     string
	name   string
	points int
}

var sampleVehicles = []sampleVehicle{
	{
		id: "CAR001", model: "Toyota Camry", rate: 45,
		equipment: domain.CarEquipment{GPS: true, ChildSeat: true},
		features:  []sampleFeature{{"GPS Navigation", 5}, {"Child Seat", 3}},
		ratings:   []int{5, 4},
	},
	{
		id: "CAR002", model: "Honda Accord", rate: 40,
		equipment: domain.CarEquipment{GPS: true, Sunroof: true},
		features:  []sampleFeature{{"GPS Navigation", 5}},
		ratings:   []int{4, 5},
	},
	{
		id: "MOTO001", model: "Harley Davidson", rate: 60,
		equipment: domain.MotorcycleEquipment{Helmet: true, LuggageRack: true},
		features:  []sampleFeature{{"Extra Helmet", 2}},
		ratings:   []int{5},
	},
	{
		id: "TRUCK001", model: "Ford F-150", rate: 80,
		equipment: domain.TruckEquipment{CargoLift: true},
		features:  []sampleFeature{{"Cargo Lift", 15}},
		ratings:   []int{4},
	},
}

var sampleCustomers = []sampleCustomer{
	{"CUST001", "John Smith", 120},
	{"CUST002", "Sarah Johnson", 85},
	{"CUST003", "Mike Davis", 45},
}

// Populate adds the sample fleet and customers to a.
func Populate(a *agency.RentalAgency) error {
	for _, sv := range sampleVehicles {
		v, err := domain.NewVehicleWithEquipment(sv.id, sv.model, decimal.NewFromInt(sv.rate), sv.equipment)
		if err != nil {
			return fmt.Errorf("failed to build sample vehicle %s: %w", sv.id, err)
		}
		for _, sf := range sv.features {
			f, err := domain.NewFeature(sf.name, decimal.NewFromInt(sf.cost))
			if err != nil {
				return fmt.Errorf("failed to build feature for %s: %w", sv.id, err)
			}
			v.AddFeature(f)
		}
		if err := a.AddVehicleToFleet(v); err != nil {
			return fmt.Errorf("failed to add sample vehicle %s: %w", sv.id, err)
		}
		for _, r := range sv.ratings {
			a.RateVehicle(v, r)
		}
	}

	for _, sc := range sampleCustomers {
		c, err := domain.NewCustomer(sc.id, sc.name)
		if err != nil {
			return fmt.Errorf("failed to build sample customer %s: %w", sc.id, err)
		}
		if err := c.AddLoyaltyPoints(sc.points); err != nil {
			return err
		}
		if err := a.AddCustomer(c); err != nil {
			return fmt.Errorf("failed to add sample customer %s: %w", sc.id, err)
		}
	}
	return nil
}

// NewSampleAgency returns a fresh agency holding the sample data.
func NewSampleAgency() (*agency.RentalAgency, error) {
	a := agency.New()
	if err := Populate(a); err != nil {
		return nil, err
	}
	return a, nil
}
