package agency

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func availability(available bool) string {
	if available {
		return "Available"
	}
	return "Rented"
}

// Render writes the fleet report as a plain-text table.
func (r FleetReport) Render(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total vehicles:\t%d\n", r.TotalVehicles)
	fmt.Fprintf(tw, "Available:\t%d\n", r.Available)
	fmt.Fprintf(tw, "Rented:\t%d\n", r.Rented)
	fmt.Fprintf(tw, "Utilization:\t%.1f%%\n", r.Utilization)
	fmt.Fprintf(tw, "Average rating:\t%.1f/5\n", r.AverageRating)
	fmt.Fprintf(tw, "Daily revenue potential:\t$%s\n", r.DailyRevenuePotential.StringFixed(2))
	for _, kb := range r.ByKind {
		fmt.Fprintf(tw, "%ss:\t%d (%d rented)\n", kb.Kind.DisplayName(), kb.Total, kb.Rented)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ID\tTYPE\tMODEL\tRATE/DAY\tFEATURES/DAY\tSTATUS\tRATING")
	for _, v := range r.Vehicles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t$%s\t$%s\t%s\t%.1f\n",
			v.ID, v.Kind.DisplayName(), v.Model,
			v.BaseDailyRate.StringFixed(2), v.FeatureCost.StringFixed(2),
			availability(v.Available), v.AverageRating)
	}
	return tw.Flush()
}

func (r ActiveRentalsReport) Render(w io.Writer) error {
	tw := newTable(w)
	if len(r.Rentals) == 0 {
		fmt.Fprintln(tw, "No active rentals.")
		return tw.Flush()
	}
	fmt.Fprintln(tw, "CUSTOMER\tVEHICLE\tMODEL\tDAYS\tCOST")
	for _, ar := range r.Rentals {
		fmt.Fprintf(tw, "%s (%s)\t%s\t%s\t%d\t$%s\n",
			ar.CustomerName, ar.CustomerID, ar.VehicleID, ar.VehicleModel, ar.Days, ar.Cost.StringFixed(2))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Total revenue:\t$%s\n", r.TotalRevenue.StringFixed(2))
	fmt.Fprintf(tw, "Average rental:\t%.1f days\n", r.AverageDays)
	return tw.Flush()
}

func (r RevenueReport) Render(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total revenue:\t$%s\n", r.TotalRevenue.StringFixed(2))
	fmt.Fprintf(tw, "Rentals:\t%d\n", r.TotalRentals)
	fmt.Fprintf(tw, "Average per rental:\t$%s\n", r.AveragePerRental.StringFixed(2))
	return tw.Flush()
}

func (r CustomerReport) Render(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total customers:\t%d\n", r.TotalCustomers)
	fmt.Fprintf(tw, "Gold:\t%d\n", r.GoldMembers)
	fmt.Fprintf(tw, "Silver:\t%d\n", r.SilverMembers)
	fmt.Fprintf(tw, "Bronze:\t%d\n", r.BronzeMembers)
	fmt.Fprintf(tw, "Average rating:\t%.1f/5\n", r.AverageRating)
	fmt.Fprintf(tw, "Retention:\t%.1f%%\n", r.RetentionRate)
	return tw.Flush()
}

func (r UtilizationReport) Render(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Utilization:\t%.1f%%\n", r.Utilization)
	fmt.Fprintf(tw, "Average duration:\t%.1f days\n", r.AverageRentalDuration)
	fmt.Fprintf(tw, "Total rental days:\t%d\n", r.TotalRentalDays)
	fmt.Fprintf(tw, "Peak demand:\t%s\n", r.PeakDemandKind)
	fmt.Fprintf(tw, "Active rentals:\t%d\n", r.TotalActiveRentals)
	return tw.Flush()
}

func (d Dashboard) Render(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Vehicles:\t%d\n", d.VehicleCount)
	fmt.Fprintf(tw, "Customers:\t%d\n", d.CustomerCount)
	fmt.Fprintf(tw, "Active rentals:\t%d\n", d.ActiveRentals)
	fmt.Fprintf(tw, "Revenue:\t$%s\n", d.Revenue.StringFixed(2))
	return tw.Flush()
}

// Report is any report that can print itself for the CLI.
type Report interface {
	Render(w io.Writer) error
}
