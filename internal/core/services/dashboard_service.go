package services

import (
	"context"
	"time"

	"github.com/roadstead/vehicle_rental_app/internal/core/domain"
	portsrepo "github.com/roadstead/vehicle_rental_app/internal/core/ports/repositories"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
	"github.com/roadstead/vehicle_rental_app/internal/utils/calendar"
)

const (
	topCustomersLimit   = 5
	recentActivityLimit = 10
)

// dashboardService implements the DashboardService interface. The headline
// totals are load-bearing and propagate errors; the ranked and feed sections
// degrade to empty with a logged warning so the page still renders.
type dashboardService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(reportingRepo portsrepo.ReportingRepository) portssvc.DashboardService {
	return &dashboardService{reportingRepo: reportingRepo}
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

func (s *dashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	month := calendar.Key(time.Now())

	invoiced, err := s.reportingRepo.InvoicedTotalForMonth(ctx, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum invoiced total for month")
		return nil, err
	}

	revenue, expenses, err := s.reportingRepo.TransactionTotalsForMonth(ctx, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum transaction totals for month")
		return nil, err
	}

	outstanding, err := s.reportingRepo.OutstandingBalance(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum outstanding balance")
		return nil, err
	}

	summary := &domain.DashboardSummary{
		Month:              month,
		MonthInvoicedTotal: invoiced,
		MonthRevenue:       revenue,
		MonthExpenses:      expenses,
		OutstandingBalance: outstanding,
		TopCustomers:       []domain.CustomerTotal{},
		RecentActivity:     []domain.ActivityEntry{},
	}

	if top, err := s.reportingRepo.TopCustomersByInvoicedTotal(ctx, topCustomersLimit); err != nil {
		s.LogWarn(ctx, "Top customers unavailable, serving empty section", "error", err.Error())
	} else if top != nil {
		summary.TopCustomers = top
	}

	if activity, err := s.reportingRepo.RecentActivity(ctx, recentActivityLimit); err != nil {
		s.LogWarn(ctx, "Recent activity unavailable, serving empty section", "error", err.Error())
	} else if activity != nil {
		summary.RecentActivity = activity
	}

	return summary, nil
}
