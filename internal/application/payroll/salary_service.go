package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/shared"
)

// SalaryService handles the HTTP-facing ledger operations: listing, manual
// bonus entries, releasing a single entry and the employee summary.
type SalaryService struct {
	salaryRepo       payroll.SalaryRepository
	userRepo         identity.UserRepository
	notificationRepo identity.NotificationRepository
	eventPublisher   shared.EventPublisher
	logger           *zap.Logger
}

// NewSalaryService creates a new SalaryService
func NewSalaryService(salaryRepo payroll.SalaryRepository, userRepo identity.UserRepository, notificationRepo identity.NotificationRepository, logger *zap.Logger) *SalaryService {
	return &SalaryService{
		salaryRepo:       salaryRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *SalaryService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// List retrieves ledger entries for a shop with filtering and pagination
func (s *SalaryService) List(ctx context.Context, shopID uuid.UUID, filter SalaryListFilter) ([]SalaryResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	if filter.Unpaid {
		domainFilter.Filters["is_paid"] = false
	}

	var entries []payroll.Salary
	var err error
	if filter.UserID != nil {
		entries, err = s.salaryRepo.FindByUser(ctx, shopID, *filter.UserID, domainFilter)
	} else {
		entries, err = s.salaryRepo.FindAllForShop(ctx, shopID, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.salaryRepo.CountForShop(ctx, shopID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSalaryResponses(entries), total, nil
}

// CreateBonus writes a manual bonus entry and increments the employee's
// total earnings
func (s *SalaryService) CreateBonus(ctx context.Context, shopID uuid.UUID, req CreateBonusRequest) (*SalaryResponse, error) {
	user, err := s.userRepo.FindByIDForShop(ctx, shopID, req.UserID)
	if err != nil {
		return nil, err
	}

	workDate := time.Now()
	if req.WorkDate != nil {
		workDate = *req.WorkDate
	}

	entry, err := payroll.NewSalary(shopID, user.ID, user.Name, req.Amount, payroll.SalaryTypeBonus, workDate)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		entry.SetNotes(req.Notes)
	}

	if err := s.salaryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.userRepo.AdjustSalary(ctx, shopID, user.ID, req.Amount, decimal.Zero); err != nil {
		s.logger.Error("Failed to increment earnings for bonus entry",
			zap.String("salary_id", entry.ID.String()),
			zap.Error(err))
	}

	s.publishEntryEvents(ctx, entry)

	response := ToSalaryResponse(entry)
	return &response, nil
}

// Pay releases a single ledger entry: marks it paid, increments the
// employee's paid salary and appends an inbox notification. An entry that
// is already paid is rejected before any counter is touched.
func (s *SalaryService) Pay(ctx context.Context, shopID, salaryID uuid.UUID) (*SalaryResponse, error) {
	entry, err := s.salaryRepo.FindByIDForShop(ctx, shopID, salaryID)
	if err != nil {
		return nil, err
	}

	if err := entry.MarkPaid(); err != nil {
		return nil, err
	}

	if err := s.salaryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.userRepo.AdjustSalary(ctx, shopID, entry.UserID, decimal.Zero, entry.Amount); err != nil {
		s.logger.Error("Failed to increment paid salary",
			zap.String("salary_id", entry.ID.String()),
			zap.Error(err))
	}

	s.publishEntryEvents(ctx, entry)

	// Best-effort notification; failure never fails the payout.
	notification, err := identity.NewNotification(entry.UserID, identity.NotificationKindSalaryPaid,
		"Salary paid", "Your salary of "+entry.Amount.String()+" has been paid")
	if err == nil {
		if err := s.notificationRepo.Save(ctx, notification); err != nil {
			s.logger.Warn("Failed to append salary notification",
				zap.String("salary_id", entry.ID.String()),
				zap.Error(err))
		}
	}

	response := ToSalaryResponse(entry)
	return &response, nil
}

// EmployeeSummary returns the employee's counters together with their
// ledger slice
func (s *SalaryService) EmployeeSummary(ctx context.Context, shopID, userID uuid.UUID) (*EmployeeSummaryResponse, error) {
	user, err := s.userRepo.FindByIDForShop(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}

	filter := shared.DefaultFilter()
	filter.PageSize = 100
	entries, err := s.salaryRepo.FindByUser(ctx, shopID, userID, filter)
	if err != nil {
		return nil, err
	}

	return &EmployeeSummaryResponse{
		UserID:          user.ID,
		UserName:        user.Name,
		Role:            string(user.Role),
		TotalEarnings:   user.TotalEarnings,
		PaidSalary:      user.PaidSalary,
		RemainingSalary: user.RemainingSalary(),
		Entries:         ToSalaryResponses(entries),
	}, nil
}

// publishEntryEvents drains the entry's pending aggregate events to the
// bus, log-and-continue per event.
func (s *SalaryService) publishEntryEvents(ctx context.Context, entry *payroll.Salary) {
	if s.eventPublisher == nil {
		entry.ClearDomainEvents()
		return
	}
	for _, event := range entry.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
	entry.ClearDomainEvents()
}
