// Command demo drives the rental services through scripted scenarios and prints
// the resulting reports.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/seed"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/session"
)

const defaultPointsPerDay = 10

type demo struct {
	out       io.Writer
	fleet     service.FleetService
	customers service.CustomerService
	rentals   service.RentalService
	reports   service.ReportService
}

type scenario struct {
	name  string
	title string
	run   func(d *demo, ctx context.Context) error
}

var scenarios = []scenario{
	{"business-day", "Business day with the sample fleet", (*demo).businessDay},
	{"journey", "Customer journey through the loyalty tiers", (*demo).customerJourney},
	{"errors", "Rejected operations", (*demo).errorRecovery},
}

func main() {
	which := flag.String("scenario", "all", "Scenario to run: all, business-day, journey or errors")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	logger.InitializeWithWriter(os.Stderr, *logLevel, "text")

	if err := run(os.Stdout, *which); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

func run(out io.Writer, which string) error {
	d := &demo{
		out:       out,
		fleet:     service.NewFleetService(),
		customers: service.NewCustomerService(),
		rentals:   service.NewRentalService(defaultPointsPerDay),
		reports:   service.NewReportService(),
	}

	ran := 0
	for _, sc := range scenarios {
		if which != "all" && which != sc.name {
			continue
		}
		ran++
		d.heading(sc.title)
		if err := sc.run(d, context.Background()); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.name, err)
		}
	}
	if ran == 0 {
		return fmt.Errorf("unknown scenario %q", which)
	}
	return nil
}

func newSessionContext(ctx context.Context, name string, a *agency.RentalAgency) context.Context {
	return session.NewContext(ctx, session.New(name, a))
}

func (d *demo) heading(title string) {
	fmt.Fprintf(d.out, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}

func (d *demo) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

func (d *demo) report(ctx context.Context, rt service.ReportType) error {
	r, err := d.reports.GenerateReport(ctx, rt)
	if err != nil {
		return err
	}
	d.printf("\n-- %s report --\n", rt)
	return r.Render(d.out)
}

func (d *demo) rent(ctx context.Context, vehicleID, customerID string, days int) error {
	receipt, err := d.rentals.RentVehicle(ctx, vehicleID, customerID, days)
	if err != nil {
		return err
	}
	d.printf("Rented %s to %s for %d days: $%s, +%d points (%d, %s)\n",
		receipt.VehicleID, receipt.CustomerID, receipt.Days, receipt.Cost.StringFixed(2),
		receipt.PointsAwarded, receipt.LoyaltyPoints, receipt.LoyaltyTier)
	return nil
}

func (d *demo) giveBack(ctx context.Context, vehicleID string) error {
	receipt, err := d.rentals.ReturnVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}
	if receipt.Returned {
		d.printf("Returned %s from %s\n", receipt.VehicleID, receipt.CustomerID)
	} else {
		d.printf("Return of %s ignored, it was not rented\n", receipt.VehicleID)
	}
	return nil
}

func (d *demo) businessDay(ctx context.Context) error {
	a, err := seed.NewSampleAgency()
	if err != nil {
		return err
	}
	ctx = newSessionContext(ctx, "business-day", a)

	if err := d.report(ctx, service.ReportTypeFleet); err != nil {
		return err
	}

	q, err := d.fleet.QuoteRental(ctx, "CAR001", 3)
	if err != nil {
		return err
	}
	d.printf("\nQuote for CAR001, %d days: base $%s + features $%s = $%s\n",
		q.Days, q.BaseCost.StringFixed(2), q.FeaturesCost.StringFixed(2), q.Total.StringFixed(2))

	d.printf("\nMorning rentals\n")
	for _, r := range []struct {
		vehicle, customer string
		days              int
	}{
		{"CAR001", "CUST001", 3},
		{"MOTO001", "CUST002", 2},
		{"TRUCK001", "CUST003", 1},
	} {
		if err := d.rent(ctx, r.vehicle, r.customer, r.days); err != nil {
			return err
		}
	}
	if err := d.report(ctx, service.ReportTypeActive); err != nil {
		return err
	}

	d.printf("\nAfternoon returns\n")
	for _, id := range []string{"TRUCK001", "MOTO001"} {
		if err := d.giveBack(ctx, id); err != nil {
			return err
		}
	}

	for _, rt := range []service.ReportType{service.ReportTypeUtilization, service.ReportTypeRevenue, service.ReportTypeDashboard} {
		if err := d.report(ctx, rt); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) customerJourney(ctx context.Context) error {
	ctx = newSessionContext(ctx, "journey", agency.New())

	vehicles := []service.AddVehicleRequest{
		{ID: "CAR001", Kind: "car", Model: "Toyota Camry", BaseDailyRate: decimal.NewFromInt(45), Equipment: map[string]bool{"gps": true, "sunroof": true}},
		{ID: "CAR002", Kind: "car", Model: "Nissan Altima", BaseDailyRate: decimal.NewFromInt(42), Equipment: map[string]bool{"childSeat": true}},
		{ID: "BIKE001", Kind: "motorcycle", Model: "Kawasaki Ninja", BaseDailyRate: decimal.NewFromInt(38), Equipment: map[string]bool{"helmet": true}},
	}
	for _, req := range vehicles {
		if _, err := d.fleet.AddVehicle(ctx, req); err != nil {
			return err
		}
	}
	if _, err := d.customers.AddCustomer(ctx, "LOYAL001", "Jennifer Frequent"); err != nil {
		return err
	}

	trips := []struct {
		vehicle string
		days    int
		rating  int
	}{
		{"CAR001", 2, 5},
		{"BIKE001", 3, 4},
		{"CAR002", 1, 4},
		{"CAR001", 4, 5},
	}
	for _, trip := range trips {
		if err := d.rent(ctx, trip.vehicle, "LOYAL001", trip.days); err != nil {
			return err
		}
		if err := d.giveBack(ctx, trip.vehicle); err != nil {
			return err
		}
		if _, _, err := d.fleet.RateVehicle(ctx, trip.vehicle, trip.rating); err != nil {
			return err
		}
	}

	c, err := d.customers.GetCustomer(ctx, "LOYAL001")
	if err != nil {
		return err
	}
	d.printf("\n%s: %d points, %s tier (%s)\n", c.Name, c.LoyaltyPoints, c.LoyaltyTier, c.LoyaltyTier.Benefits())
	d.printf("Rental history: %s\n", strings.Join(c.RentalHistory, ", "))

	return d.report(ctx, service.ReportTypeCustomer)
}

func (d *demo) errorRecovery(ctx context.Context) error {
	a, err := seed.NewSampleAgency()
	if err != nil {
		return err
	}
	ctx = newSessionContext(ctx, "errors", a)

	expect := func(what string, err error) {
		if err == nil {
			d.printf("%s: unexpectedly succeeded\n", what)
			return
		}
		d.printf("%s: rejected (%v)\n", what, err)
	}

	if err := d.rent(ctx, "CAR001", "CUST002", 2); err != nil {
		return err
	}
	if err := d.rent(ctx, "CAR002", "CUST002", 2); err != nil {
		return err
	}
	_, err = d.rentals.RentVehicle(ctx, "MOTO001", "CUST002", 2)
	expect("Third concurrent rental", err)

	_, err = d.rentals.RentVehicle(ctx, "CAR001", "CUST001", 2)
	expect("Renting a rented vehicle", err)

	_, err = d.rentals.RentVehicle(ctx, "MOTO001", "CUST001", 0)
	expect("Zero-day rental", err)

	_, err = d.rentals.RentVehicle(ctx, "MOTO001", "CUST001", 400)
	expect("400-day rental", err)

	_, err = d.fleet.AddVehicle(ctx, service.AddVehicleRequest{ID: "car001", Kind: "car", Model: "Duplicate", BaseDailyRate: decimal.NewFromInt(10)})
	expect("Duplicate vehicle id", err)

	err = d.customers.RemoveCustomer(ctx, "CUST002")
	expect("Removing a customer holding vehicles", err)

	_, accepted, err := d.fleet.RateVehicle(ctx, "MOTO001", 10)
	if err != nil {
		return err
	}
	d.printf("Rating of 10 accepted: %t\n", accepted)

	if err := d.giveBack(ctx, "MOTO001"); err != nil {
		return err
	}

	_, err = d.rentals.ReturnVehicle(ctx, "NOPE001")
	expect("Returning an unknown vehicle", err)

	return d.report(ctx, service.ReportTypeDashboard)
}
