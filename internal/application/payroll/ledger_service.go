package payroll

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/domain/trade"
)

// LedgerService derives salary ledger entries from orders and keeps the
// employees' running earnings counters in step with the ledger. All counter
// updates go through UserRepository.AdjustSalary, a single-statement atomic
// increment.
//
// The order-facing operations are deliberately not transactional: when one
// fails partway through, the entries and increments already written stay
// written. Callers log the failure and keep the primary write.
type LedgerService struct {
	salaryRepo     payroll.SalaryRepository
	userRepo       identity.UserRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(salaryRepo payroll.SalaryRepository, userRepo identity.UserRepository, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		salaryRepo: salaryRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *LedgerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateEntriesForOrder writes one unpaid ledger entry per assignment with a
// positive payment: order_work for workers, transport_work for transporters,
// work date taken from the order. Each entry is followed by an atomic
// increment of the employee's total earnings. Returns the entries created
// before the first failure.
func (s *LedgerService) CreateEntriesForOrder(ctx context.Context, order *trade.Order) ([]payroll.Salary, error) {
	created := make([]payroll.Salary, 0, len(order.PaidAssignments()))

	for _, assignment := range order.PaidAssignments() {
		salaryType := payroll.SalaryTypeOrderWork
		if assignment.Role == trade.AssignmentRoleTransporter {
			salaryType = payroll.SalaryTypeTransportWork
		}

		entry, err := payroll.NewOrderSalary(order.ShopID, assignment.UserID, assignment.UserName,
			assignment.Payment, salaryType, order.ID, order.OrderDate)
		if err != nil {
			return created, err
		}

		if err := s.salaryRepo.Save(ctx, entry); err != nil {
			return created, err
		}

		if err := s.userRepo.AdjustSalary(ctx, order.ShopID, assignment.UserID, assignment.Payment, decimal.Zero); err != nil {
			s.logger.Error("Failed to increment employee earnings after ledger write",
				zap.String("order_id", order.ID.String()),
				zap.String("user_id", assignment.UserID.String()),
				zap.Error(err))
			return created, err
		}

		s.publishEntryEvents(ctx, entry)
		created = append(created, *entry)
	}

	return created, nil
}

// PayoutOrder marks every unpaid ledger entry referencing the order as paid
// and increments each employee's paid salary. The unpaid filter is the guard
// that makes a repeated payout a no-op instead of a double payment. Returns
// the entries paid out.
func (s *LedgerService) PayoutOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error) {
	unpaid, err := s.salaryRepo.FindUnpaidByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	paid := make([]payroll.Salary, 0, len(unpaid))
	for i := range unpaid {
		entry := &unpaid[i]
		if err := entry.MarkPaid(); err != nil {
			// Raced with another payout; skip, never double-count.
			s.logger.Warn("Skipping salary entry already paid",
				zap.String("salary_id", entry.ID.String()),
				zap.Error(err))
			continue
		}

		if err := s.salaryRepo.Save(ctx, entry); err != nil {
			return paid, err
		}

		if err := s.userRepo.AdjustSalary(ctx, entry.ShopID, entry.UserID, decimal.Zero, entry.Amount); err != nil {
			s.logger.Error("Failed to increment employee paid salary",
				zap.String("salary_id", entry.ID.String()),
				zap.String("user_id", entry.UserID.String()),
				zap.Error(err))
			return paid, err
		}

		s.publishEntryEvents(ctx, entry)
		paid = append(paid, *entry)
	}

	return paid, nil
}

// ReverseOrder deletes every ledger entry referencing the order and
// subtracts each entry's amount from the employee's counters: total
// earnings always, paid salary only when the entry had been paid out.
// Returns the deleted entries.
func (s *LedgerService) ReverseOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error) {
	deleted, err := s.salaryRepo.DeleteByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	for i := range deleted {
		entry := &deleted[i]
		deltaPaid := decimal.Zero
		if entry.IsPaid {
			deltaPaid = entry.Amount.Neg()
		}

		if err := s.userRepo.AdjustSalary(ctx, entry.ShopID, entry.UserID, entry.Amount.Neg(), deltaPaid); err != nil {
			s.logger.Error("Failed to reverse employee earnings",
				zap.String("salary_id", entry.ID.String()),
				zap.String("user_id", entry.UserID.String()),
				zap.Error(err))
			return deleted, err
		}

		s.publishEvent(ctx, payroll.NewSalaryDeletedEvent(entry))
	}

	return deleted, nil
}

// CreateEntryForProject writes one unpaid editing_work entry for the
// project's editor over the commission amount and increments the editor's
// total earnings. A project without commission leaves no ledger footprint.
func (s *LedgerService) CreateEntryForProject(ctx context.Context, project *trade.EditingProject) (*payroll.Salary, error) {
	if project.CommissionAmount.LessThanOrEqual(decimal.Zero) {
		return nil, nil
	}

	workDate := project.StartDate
	if project.EndDate != nil {
		workDate = *project.EndDate
	}

	entry, err := payroll.NewProjectSalary(project.ShopID, project.EditorID, project.EditorName,
		project.CommissionAmount, project.ID, workDate)
	if err != nil {
		return nil, err
	}

	if err := s.salaryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.userRepo.AdjustSalary(ctx, project.ShopID, project.EditorID, entry.Amount, decimal.Zero); err != nil {
		s.logger.Error("Failed to increment editor earnings after ledger write",
			zap.String("project_id", project.ID.String()),
			zap.String("user_id", project.EditorID.String()),
			zap.Error(err))
		return entry, err
	}

	s.publishEntryEvents(ctx, entry)
	return entry, nil
}

// ReverseProject deletes every ledger entry referencing the project and
// unwinds the editor's counters the same way ReverseOrder does for orders.
func (s *LedgerService) ReverseProject(ctx context.Context, projectID uuid.UUID) ([]payroll.Salary, error) {
	deleted, err := s.salaryRepo.DeleteByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	for i := range deleted {
		entry := &deleted[i]
		deltaPaid := decimal.Zero
		if entry.IsPaid {
			deltaPaid = entry.Amount.Neg()
		}

		if err := s.userRepo.AdjustSalary(ctx, entry.ShopID, entry.UserID, entry.Amount.Neg(), deltaPaid); err != nil {
			s.logger.Error("Failed to reverse editor earnings",
				zap.String("salary_id", entry.ID.String()),
				zap.String("user_id", entry.UserID.String()),
				zap.Error(err))
			return deleted, err
		}

		s.publishEvent(ctx, payroll.NewSalaryDeletedEvent(entry))
	}

	return deleted, nil
}

// publishEntryEvents drains the entry's pending aggregate events to the
// bus, log-and-continue per event.
func (s *LedgerService) publishEntryEvents(ctx context.Context, entry *payroll.Salary) {
	if s.eventPublisher == nil {
		entry.ClearDomainEvents()
		return
	}
	for _, event := range entry.GetDomainEvents() {
		s.publishEvent(ctx, event)
	}
	entry.ClearDomainEvents()
}

func (s *LedgerService) publishEvent(ctx context.Context, event shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish domain event",
			zap.String("event_type", event.EventType()),
			zap.Error(err))
	}
}

// RecalculateUserEarnings recomputes an employee's counters by summing the
// ledger and overwrites the stored values. The reconciliation path: slower,
// race-prone (read-compute-write), but authoritative when the incremental
// increments have drifted.
func (s *LedgerService) RecalculateUserEarnings(ctx context.Context, shopID, userID uuid.UUID) (*identity.User, error) {
	user, err := s.userRepo.FindByIDForShop(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}

	totals, err := s.salaryRepo.SumByUser(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}

	if err := user.ApplyRecalculatedEarnings(totals.TotalEarnings, totals.PaidSalary); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
