package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/partner"
	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/domain/trade"
)

// DashboardCache stores rendered dashboard payloads per shop and viewer.
// A miss is (nil, nil). Implementations must be safe to call with a nil
// receiver guard on the service side absent; the service treats every cache
// error as a miss.
type DashboardCache interface {
	GetStats(ctx context.Context, shopID uuid.UUID, viewerKey string) (*StatsResponse, error)
	SetStats(ctx context.Context, shopID uuid.UUID, viewerKey string, stats *StatsResponse) error
	GetAlerts(ctx context.Context, shopID uuid.UUID, viewerKey string) ([]Alert, error)
	SetAlerts(ctx context.Context, shopID uuid.UUID, viewerKey string, alerts []Alert) error
	Invalidate(ctx context.Context, shopID uuid.UUID) error
}

// DashboardService assembles the dashboard alerts and stats. It only reads:
// every number is derived from the current state of the orders, projects,
// ledger and client collections, so a partially cascaded write simply shows
// up as-is here.
type DashboardService struct {
	orderRepo   trade.OrderRepository
	projectRepo trade.ProjectRepository
	salaryRepo  payroll.SalaryRepository
	clientRepo  partner.ClientRepository
	userRepo    identity.UserRepository
	cache       DashboardCache
	logger      *zap.Logger
}

// NewDashboardService creates a new DashboardService. cache may be nil, in
// which case every request recomputes.
func NewDashboardService(
	orderRepo trade.OrderRepository,
	projectRepo trade.ProjectRepository,
	salaryRepo payroll.SalaryRepository,
	clientRepo partner.ClientRepository,
	userRepo identity.UserRepository,
	cache DashboardCache,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		projectRepo: projectRepo,
		salaryRepo:  salaryRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Stats returns the dashboard counters for the viewer
func (s *DashboardService) Stats(ctx context.Context, shopID uuid.UUID, viewer Viewer) (*StatsResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetStats(ctx, shopID, viewer.CacheKey()); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn("dashboard stats cache read failed", zap.Error(err))
		}
	}

	var stats *StatsResponse
	var err error
	if viewer.IsOwner() {
		stats, err = s.ownerStats(ctx, shopID)
	} else {
		stats, err = s.assigneeStats(ctx, shopID, viewer)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetStats(ctx, shopID, viewer.CacheKey(), stats); err != nil {
			s.logger.Warn("dashboard stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

// Alerts returns the dashboard alerts for the viewer
func (s *DashboardService) Alerts(ctx context.Context, shopID uuid.UUID, viewer Viewer) ([]Alert, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAlerts(ctx, shopID, viewer.CacheKey()); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn("dashboard alerts cache read failed", zap.Error(err))
		}
	}

	var alerts []Alert
	var err error
	if viewer.IsOwner() {
		alerts, err = s.ownerAlerts(ctx, shopID)
	} else {
		alerts, err = s.assigneeAlerts(ctx, shopID, viewer)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAlerts(ctx, shopID, viewer.CacheKey(), alerts); err != nil {
			s.logger.Warn("dashboard alerts cache write failed", zap.Error(err))
		}
	}
	return alerts, nil
}

func (s *DashboardService) ownerStats(ctx context.Context, shopID uuid.UUID) (*StatsResponse, error) {
	clients, err := s.clientRepo.CountForShop(ctx, shopID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	employees, err := s.userRepo.CountForShop(ctx, shopID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	orders, err := s.ownerOrderStats(ctx, shopID)
	if err != nil {
		return nil, err
	}
	projects, err := s.ownerProjectStats(ctx, shopID)
	if err != nil {
		return nil, err
	}

	unpaid, err := s.salaryRepo.FindUnpaidForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	pending, err := s.clientRepo.FindWithPendingBalance(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		Scope:       "owner",
		Clients:     clients,
		Employees:   employees,
		Orders:      orders,
		Projects:    &projects,
		Salaries:    sumUnpaid(unpaid),
		Receivables: sumReceivables(pending),
	}, nil
}

func (s *DashboardService) ownerOrderStats(ctx context.Context, shopID uuid.UUID) (OrderStats, error) {
	var stats OrderStats
	total, err := s.orderRepo.CountForShop(ctx, shopID, shared.DefaultFilter())
	if err != nil {
		return stats, err
	}
	stats.Total = total

	for status, target := range map[trade.Status]*int64{
		trade.StatusPending:    &stats.Pending,
		trade.StatusInProgress: &stats.InProgress,
		trade.StatusCompleted:  &stats.Completed,
	} {
		count, err := s.orderRepo.CountByStatusForShop(ctx, shopID, status)
		if err != nil {
			return stats, err
		}
		*target = count
	}

	lastWeek, err := s.orderRepo.CountCreatedSince(ctx, shopID, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return stats, err
	}
	stats.LastWeek = lastWeek
	return stats, nil
}

func (s *DashboardService) ownerProjectStats(ctx context.Context, shopID uuid.UUID) (ProjectStats, error) {
	var stats ProjectStats
	total, err := s.projectRepo.CountForShop(ctx, shopID, shared.DefaultFilter())
	if err != nil {
		return stats, err
	}
	stats.Total = total

	for status, target := range map[trade.Status]*int64{
		trade.StatusPending:    &stats.Pending,
		trade.StatusInProgress: &stats.InProgress,
		trade.StatusCompleted:  &stats.Completed,
	} {
		count, err := s.projectRepo.CountByStatusForShop(ctx, shopID, status)
		if err != nil {
			return stats, err
		}
		*target = count
	}
	return stats, nil
}

func (s *DashboardService) assigneeStats(ctx context.Context, shopID uuid.UUID, viewer Viewer) (*StatsResponse, error) {
	stats := &StatsResponse{Scope: "assignee"}

	orders, err := s.orderRepo.FindByAssignee(ctx, shopID, viewer.UserID)
	if err != nil {
		return nil, err
	}
	stats.Orders = reduceOrderStats(orders)

	if viewer.Role == identity.RoleEditor {
		projects, err := s.projectRepo.FindByEditor(ctx, shopID, viewer.UserID)
		if err != nil {
			return nil, err
		}
		projectStats := reduceProjectStats(projects)
		stats.Projects = &projectStats
	}

	unpaid, err := s.salaryRepo.FindUnpaidByUser(ctx, shopID, viewer.UserID)
	if err != nil {
		return nil, err
	}
	stats.Salaries = sumUnpaid(unpaid)
	return stats, nil
}

func (s *DashboardService) ownerAlerts(ctx context.Context, shopID uuid.UUID) ([]Alert, error) {
	alerts := []Alert{}

	unpaid, err := s.salaryRepo.FindUnpaidForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if len(unpaid) > 0 {
		totals := sumUnpaid(unpaid)
		alerts = append(alerts, Alert{
			Type:    AlertTypeUrgent,
			Title:   "Unpaid salaries",
			Message: fmt.Sprintf("%d salary entries totalling %s await payout", totals.UnpaidCount, totals.UnpaidAmount.StringFixed(2)),
			Icon:    "salary",
			Count:   totals.UnpaidCount,
		})
	}

	pending, err := s.clientRepo.FindWithPendingBalance(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		receivables := sumReceivables(pending)
		alerts = append(alerts, Alert{
			Type:    AlertTypeUrgent,
			Title:   "Outstanding client balances",
			Message: fmt.Sprintf("%d clients owe %s in total", receivables.Clients, receivables.PendingAmount.StringFixed(2)),
			Icon:    "payment",
			Count:   receivables.Clients,
		})
	}

	pendingOrders, err := s.orderRepo.CountByStatusForShop(ctx, shopID, trade.StatusPending)
	if err != nil {
		return nil, err
	}
	if pendingOrders > 0 {
		alerts = append(alerts, Alert{
			Type:    AlertTypeInfo,
			Title:   "Orders awaiting work",
			Message: fmt.Sprintf("%d orders have not been started", pendingOrders),
			Icon:    "order",
			Count:   int(pendingOrders),
		})
	}

	recent, err := s.orderRepo.CountCreatedSince(ctx, shopID, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	if recent > 0 {
		alerts = append(alerts, Alert{
			Type:    AlertTypeInfo,
			Title:   "New orders this week",
			Message: fmt.Sprintf("%d orders came in over the last 7 days", recent),
			Icon:    "trend",
			Count:   int(recent),
		})
	}

	return alerts, nil
}

func (s *DashboardService) assigneeAlerts(ctx context.Context, shopID uuid.UUID, viewer Viewer) ([]Alert, error) {
	alerts := []Alert{}

	unpaid, err := s.salaryRepo.FindUnpaidByUser(ctx, shopID, viewer.UserID)
	if err != nil {
		return nil, err
	}
	if len(unpaid) > 0 {
		totals := sumUnpaid(unpaid)
		alerts = append(alerts, Alert{
			Type:    AlertTypeUrgent,
			Title:   "Pending salary",
			Message: fmt.Sprintf("%s earned across %d entries has not been paid out yet", totals.UnpaidAmount.StringFixed(2), totals.UnpaidCount),
			Icon:    "salary",
			Count:   totals.UnpaidCount,
		})
	}

	orders, err := s.orderRepo.FindByAssignee(ctx, shopID, viewer.UserID)
	if err != nil {
		return nil, err
	}
	inProgress := 0
	for i := range orders {
		if orders[i].Status == trade.StatusInProgress {
			inProgress++
		}
	}
	if inProgress > 0 {
		alerts = append(alerts, Alert{
			Type:    AlertTypeInfo,
			Title:   "Assignments in progress",
			Message: fmt.Sprintf("%d of your orders are currently in progress", inProgress),
			Icon:    "order",
			Count:   inProgress,
		})
	}

	if viewer.Role == identity.RoleEditor {
		projects, err := s.projectRepo.FindByEditor(ctx, shopID, viewer.UserID)
		if err != nil {
			return nil, err
		}
		open := 0
		for i := range projects {
			if projects[i].Status != trade.StatusCompleted {
				open++
			}
		}
		if open > 0 {
			alerts = append(alerts, Alert{
				Type:    AlertTypeInfo,
				Title:   "Open editing projects",
				Message: fmt.Sprintf("%d of your projects are still open", open),
				Icon:    "project",
				Count:   open,
			})
		}
	}

	return alerts, nil
}

func sumUnpaid(entries []payroll.Salary) SalaryStats {
	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].Amount)
	}
	return SalaryStats{UnpaidCount: len(entries), UnpaidAmount: total}
}

func sumReceivables(clients []partner.Client) *ReceivableStats {
	total := decimal.Zero
	for i := range clients {
		total = total.Add(clients[i].PendingPayments())
	}
	return &ReceivableStats{Clients: len(clients), PendingAmount: total}
}

func reduceOrderStats(orders []trade.Order) OrderStats {
	stats := OrderStats{Total: int64(len(orders))}
	for i := range orders {
		switch orders[i].Status {
		case trade.StatusPending:
			stats.Pending++
		case trade.StatusInProgress:
			stats.InProgress++
		case trade.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

func reduceProjectStats(projects []trade.EditingProject) ProjectStats {
	stats := ProjectStats{Total: int64(len(projects))}
	for i := range projects {
		switch projects[i].Status {
		case trade.StatusPending:
			stats.Pending++
		case trade.StatusInProgress:
			stats.InProgress++
		case trade.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
