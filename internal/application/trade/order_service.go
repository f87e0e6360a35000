package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/partner"
	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/domain/trade"
)

// SalaryLedger is the slice of the payroll ledger the cascade needs.
type SalaryLedger interface {
	CreateEntriesForOrder(ctx context.Context, order *trade.Order) ([]payroll.Salary, error)
	PayoutOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error)
	ReverseOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error)
}

// OrderService orchestrates order operations and their cascading side
// effects on the salary ledger and the client balance counters.
//
// The cascade policy is best-effort by design: once the primary write has
// succeeded, a failing side-effect step is logged and recorded in the
// returned CascadeResult, and the remaining steps still run. Nothing is
// rolled back and nothing is retried. The system prefers a persisted but
// partially-cascaded order over losing the user's primary action.
type OrderService struct {
	orderRepo        trade.OrderRepository
	clientRepo       partner.ClientRepository
	userRepo         identity.UserRepository
	notificationRepo identity.NotificationRepository
	ledger           SalaryLedger
	eventPublisher   shared.EventPublisher
	logger           *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	clientRepo partner.ClientRepository,
	userRepo identity.UserRepository,
	notificationRepo identity.NotificationRepository,
	ledger SalaryLedger,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		clientRepo:       clientRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		ledger:           ledger,
		logger:           logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create validates the request, persists the order, then runs the creation
// cascade: ledger entry derivation, client balance increment and the
// lifetime order counter. Validation and reference resolution happen before
// the primary write; nothing is mutated when they fail.
func (s *OrderService) Create(ctx context.Context, shopID uuid.UUID, req CreateOrderRequest) (*OrderCascadeResponse, error) {
	var client *partner.Client
	if req.ClientID != nil {
		found, err := s.clientRepo.FindByIDForShop(ctx, shopID, *req.ClientID)
		if err != nil {
			return nil, err
		}
		client = found
	}

	orderDate := timeOrZero(req.OrderDate)
	order, err := trade.NewOrder(shopID, req.Name, req.TotalAmount, orderDate)
	if err != nil {
		return nil, err
	}
	order.Description = req.Description

	if client != nil {
		if err := order.LinkClient(client.ID, client.Name); err != nil {
			return nil, err
		}
	}

	if !req.ReceivedPayment.IsZero() {
		if err := order.RecordPayment(req.ReceivedPayment); err != nil {
			return nil, err
		}
	}

	if err := s.addAssignments(ctx, shopID, order, req.Workers, trade.AssignmentRoleWorker); err != nil {
		return nil, err
	}
	if err := s.addAssignments(ctx, shopID, order, req.Transporters, trade.AssignmentRoleTransporter); err != nil {
		return nil, err
	}

	// Primary write. Everything after this point is best-effort.
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	var cascade CascadeResult

	_, err = s.ledger.CreateEntriesForOrder(ctx, order)
	cascade.Record(CascadeStepLedgerEntries, err)

	if order.ClientID != nil {
		err = s.clientRepo.AdjustBalance(ctx, shopID, *order.ClientID, order.TotalAmount, order.ReceivedPayment)
		cascade.Record(CascadeStepClientBalance, err)

		err = s.clientRepo.AdjustLifetimeOrders(ctx, shopID, *order.ClientID, 1)
		cascade.Record(CascadeStepClientCounter, err)
	}

	cascade.Record(CascadeStepEvents, s.publishEvents(ctx, order))
	s.logCascade("order create", order.ID, cascade)

	return &OrderCascadeResponse{Order: ToOrderResponse(order), Cascade: cascade}, nil
}

func (s *OrderService) addAssignments(ctx context.Context, shopID uuid.UUID, order *trade.Order, reqs []AssignmentRequest, role trade.AssignmentRole) error {
	for _, req := range reqs {
		user, err := s.userRepo.FindByIDForShop(ctx, shopID, req.UserID)
		if err != nil {
			return err
		}
		if !user.IsEmployee() {
			return shared.NewDomainError("INVALID_ASSIGNEE", "Only employees can be assigned to orders")
		}

		if role == trade.AssignmentRoleWorker {
			_, err = order.AssignWorker(user.ID, user.Name, req.Payment)
		} else {
			_, err = order.AssignTransporter(user.ID, user.Name, req.Payment)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, shopID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForShop(ctx, shopID, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders for a shop with filtering and pagination
func (s *OrderService) List(ctx context.Context, shopID uuid.UUID, filter OrderListFilter) ([]OrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	if filter.AssigneeID != nil {
		orders, err := s.orderRepo.FindByAssignee(ctx, shopID, *filter.AssigneeID)
		if err != nil {
			return nil, 0, err
		}
		return ToOrderResponses(orders), int64(len(orders)), nil
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}

	orders, err := s.orderRepo.FindAllForShop(ctx, shopID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.CountForShop(ctx, shopID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// UpdateStatus transitions the order. Moving to completed triggers the
// payout cascade; moving to in_progress is a plain transition.
func (s *OrderService) UpdateStatus(ctx context.Context, shopID, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderCascadeResponse, error) {
	switch trade.Status(req.Status) {
	case trade.StatusCompleted:
		return s.complete(ctx, shopID, orderID)
	case trade.StatusInProgress:
		order, err := s.orderRepo.FindByIDForShop(ctx, shopID, orderID)
		if err != nil {
			return nil, err
		}
		if err := order.Start(); err != nil {
			return nil, err
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return nil, err
		}
		return &OrderCascadeResponse{Order: ToOrderResponse(order)}, nil
	default:
		return nil, shared.NewDomainError("INVALID_STATE", "Orders only move forward to in_progress or completed")
	}
}

// complete runs the completion cascade: the precondition check (not already
// completed) is the idempotency guard; the ledger's unpaid filter backs it
// up. Each paid entry yields a notification to its employee.
func (s *OrderService) complete(ctx context.Context, shopID, orderID uuid.UUID) (*OrderCascadeResponse, error) {
	order, err := s.orderRepo.FindByIDForShop(ctx, shopID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Complete(); err != nil {
		return nil, err
	}

	// Primary write.
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	var cascade CascadeResult

	paid, err := s.ledger.PayoutOrder(ctx, orderID)
	cascade.Record(CascadeStepLedgerPayout, err)

	cascade.Record(CascadeStepNotifications, s.notifyPayout(ctx, paid))
	cascade.Record(CascadeStepEvents, s.publishEvents(ctx, order))
	s.logCascade("order completion", order.ID, cascade)

	return &OrderCascadeResponse{Order: ToOrderResponse(order), Cascade: cascade}, nil
}

func (s *OrderService) notifyPayout(ctx context.Context, paid []payroll.Salary) error {
	var firstErr error
	for i := range paid {
		entry := &paid[i]
		notification, err := identity.NewNotification(entry.UserID, identity.NotificationKindSalaryPaid,
			"Salary paid", "Your salary of "+entry.Amount.String()+" has been paid")
		if err == nil {
			err = s.notificationRepo.Save(ctx, notification)
		}
		if err != nil {
			s.logger.Warn("Failed to deliver payout notification",
				zap.String("salary_id", entry.ID.String()),
				zap.String("user_id", entry.UserID.String()),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// UpdatePayment sets the order's received payment. The remaining payment is
// recomputed from the stored amounts; no client-balance cascade runs on
// this path. Client totals are refreshed separately through the client
// payment endpoint's full recalculation.
//
// This is a read-compute-write path: two concurrent updates to the same
// order can lose one write. Accepted limitation.
func (s *OrderService) UpdatePayment(ctx context.Context, shopID, orderID uuid.UUID, req UpdatePaymentRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForShop(ctx, shopID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.RecordPayment(req.ReceivedPayment); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete removes the order after unwinding its financial footprint: ledger
// entries deleted and their earnings increments reversed, then the client's
// balance and lifetime counter decremented, then the order itself. Earlier
// steps are not compensated when a later one fails.
func (s *OrderService) Delete(ctx context.Context, shopID, orderID uuid.UUID) (*DeleteOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForShop(ctx, shopID, orderID)
	if err != nil {
		return nil, err
	}

	var cascade CascadeResult

	_, err = s.ledger.ReverseOrder(ctx, orderID)
	cascade.Record(CascadeStepLedgerReversal, err)

	if order.ClientID != nil {
		err = s.clientRepo.AdjustBalance(ctx, shopID, *order.ClientID,
			order.TotalAmount.Neg(), order.ReceivedPayment.Neg())
		cascade.Record(CascadeStepClientBalance, err)

		err = s.clientRepo.AdjustLifetimeOrders(ctx, shopID, *order.ClientID, -1)
		cascade.Record(CascadeStepClientCounter, err)
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		s.logCascade("order delete", orderID, cascade)
		return nil, err
	}

	order.AddDomainEvent(trade.NewOrderDeletedEvent(order))
	cascade.Record(CascadeStepEvents, s.publishEvents(ctx, order))
	s.logCascade("order delete", orderID, cascade)

	return &DeleteOrderResponse{OrderID: orderID, Cascade: cascade}, nil
}

// publishEvents pushes the aggregate's domain events to the bus,
// log-and-continue per event.
func (s *OrderService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) error {
	if s.eventPublisher == nil {
		return nil
	}

	var firstErr error
	for _, event := range aggregate.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	aggregate.ClearDomainEvents()
	return firstErr
}

func (s *OrderService) logCascade(operation string, orderID uuid.UUID, cascade CascadeResult) {
	failed := cascade.Failed()
	if len(failed) == 0 {
		s.logger.Debug("Cascade completed",
			zap.String("operation", operation),
			zap.String("order_id", orderID.String()))
		return
	}
	for _, step := range failed {
		s.logger.Error("Cascade step failed; primary write kept",
			zap.String("operation", operation),
			zap.String("order_id", orderID.String()),
			zap.String("step", step.Step),
			zap.String("error", step.Error))
	}
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
