package service

import (
	"context"
	"fmt"
	"strings"

	"vehicle-rental-backend/internal/agency"
	"vehicle-rental-backend/internal/domain"
)

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

// ParseReportType accepts a report type name case-insensitively.
func ParseReportType(s string) (ReportType, error) {
	t := ReportType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ReportTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown report type %q", domain.ErrInvalidArgument, s)
}

func (s *reportService) GenerateReport(ctx context.Context, reportType ReportType) (agency.Report, error) {
	var report agency.Report
	err := withAgency(ctx, func(a *agency.RentalAgency) error {
		switch reportType {
		case ReportTypeFleet:
			report = a.GenerateFleetReport()
		case ReportTypeActive:
			report = a.GenerateActiveRentalsReport()
		case ReportTypeRevenue:
			report = a.GenerateRevenueReport()
		case ReportTypeCustomer:
			report = a.GenerateCustomerReport()
		case ReportTypeUtilization:
			report = a.GenerateUtilizationReport()
		case ReportTypeDashboard:
			report = a.GenerateDashboard()
		default:
			return fmt.Errorf("%w: unknown report type %q", domain.ErrInvalidArgument, reportType)
		}
		return nil
	})
	return report, err
}
