package partner

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/partner"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/domain/trade"
)

// ClientService handles client registration, the payment endpoints and the
// combined work history. Client payments go through the full-recalculation
// path: rather than trusting the incremental counters, the service re-sums
// the client's orders and projects and overwrites the stored totals. That
// makes it the reconciliation of last resort for drifted counters, at the
// cost of a read-compute-write race window.
type ClientService struct {
	clientRepo     partner.ClientRepository
	orderRepo      trade.OrderRepository
	projectRepo    trade.ProjectRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository, orderRepo trade.OrderRepository, projectRepo trade.ProjectRepository, logger *zap.Logger) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		orderRepo:   orderRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ClientService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new client
func (s *ClientService) Create(ctx context.Context, shopID uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	if req.Phone != "" {
		exists, err := s.clientRepo.ExistsByPhone(ctx, shopID, req.Phone)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this phone already exists")
		}
	}

	client, err := partner.NewClient(shopID, req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := client.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" {
		if err := client.SetAddress(req.Address); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		client.SetNotes(req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, client)

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client with their payment history
func (s *ClientService) GetByID(ctx context.Context, shopID, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForShop(ctx, shopID, clientID)
	if err != nil {
		return nil, err
	}

	history, err := s.clientRepo.FindPaymentRecords(ctx, clientID)
	if err != nil {
		return nil, err
	}
	client.PaymentHistory = history

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients for a shop with filtering and pagination
func (s *ClientService) List(ctx context.Context, shopID uuid.UUID, filter ClientListFilter) ([]ClientResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	domainFilter.Search = filter.Search

	clients, err := s.clientRepo.FindAllForShop(ctx, shopID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.CountForShop(ctx, shopID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := ToClientResponses(clients)

	// Payment status is derived, so the filter applies after the read.
	if filter.Status != "" {
		filtered := responses[:0]
		for _, r := range responses {
			if r.PaymentStatus == filter.Status {
				filtered = append(filtered, r)
			}
		}
		responses = filtered
	}

	return responses, total, nil
}

// Update updates a client's details
func (s *ClientService) Update(ctx context.Context, shopID, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForShop(ctx, shopID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := client.Update(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName := client.ContactName
		phone := client.Phone
		email := client.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := client.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}

	if req.Address != nil {
		if err := client.SetAddress(*req.Address); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		client.SetNotes(*req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, client)

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client. Deliberately no cascade: the client's orders,
// projects and ledger entries stay behind with dangling references.
func (s *ClientService) Delete(ctx context.Context, shopID, clientID uuid.UUID) error {
	client, err := s.clientRepo.FindByIDForShop(ctx, shopID, clientID)
	if err != nil {
		return err
	}
	if err := s.clientRepo.DeleteForShop(ctx, shopID, clientID); err != nil {
		return err
	}

	client.AddDomainEvent(partner.NewClientDeletedEvent(client))
	s.publishEvents(ctx, client)

	return nil
}

// RecordPayment appends a payment history entry and then reconciles the
// client's counters from the store: due and received are re-summed over all
// of the client's orders and projects and the stored totals overwritten.
func (s *ClientService) RecordPayment(ctx context.Context, shopID, clientID uuid.UUID, req RecordClientPaymentRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForShop(ctx, shopID, clientID)
	if err != nil {
		return nil, err
	}

	record, err := partner.NewPaymentRecord(clientID, timeOrNow(req.Date), req.Amount, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.clientRepo.AppendPaymentRecord(ctx, record); err != nil {
		return nil, err
	}

	if err := s.recalculateBalance(ctx, client); err != nil {
		return nil, err
	}

	history, err := s.clientRepo.FindPaymentRecords(ctx, clientID)
	if err == nil {
		client.PaymentHistory = history
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Recalculate re-derives a client's counters from their orders and
// projects without recording a payment
func (s *ClientService) Recalculate(ctx context.Context, shopID, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForShop(ctx, shopID, clientID)
	if err != nil {
		return nil, err
	}

	if err := s.recalculateBalance(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

func (s *ClientService) recalculateBalance(ctx context.Context, client *partner.Client) error {
	orderTotals, err := s.orderRepo.SumPaymentsByClient(ctx, client.ID)
	if err != nil {
		return err
	}
	projectTotals, err := s.projectRepo.SumPaymentsByClient(ctx, client.ID)
	if err != nil {
		return err
	}

	totals := orderTotals.Add(projectTotals)
	if err := client.ApplyRecalculatedTotals(totals.TotalAmount, totals.ReceivedPayment); err != nil {
		return err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return err
	}

	s.publishEvents(ctx, client)
	return nil
}

// WorkHistory returns the client's orders and projects as one list of work
// items, newest first
func (s *ClientService) WorkHistory(ctx context.Context, shopID, clientID uuid.UUID) (*WorkHistoryResponse, error) {
	if _, err := s.clientRepo.FindByIDForShop(ctx, shopID, clientID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := make([]trade.WorkItem, 0, len(orders)+len(projects))
	for i := range orders {
		items = append(items, orders[i].WorkItem())
	}
	for i := range projects {
		items = append(items, projects[i].WorkItem())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	return &WorkHistoryResponse{ClientID: clientID, Items: items}, nil
}

// UpdateWorkPayment updates the received payment on one of the client's
// work items and then reconciles the client's counters.
func (s *ClientService) UpdateWorkPayment(ctx context.Context, shopID, clientID, workID uuid.UUID, req UpdateWorkPaymentRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForShop(ctx, shopID, clientID)
	if err != nil {
		return nil, err
	}

	switch trade.WorkItemKind(req.Kind) {
	case trade.WorkItemKindOrder:
		order, err := s.orderRepo.FindByIDForShop(ctx, shopID, workID)
		if err != nil {
			return nil, err
		}
		if order.ClientID == nil || *order.ClientID != clientID {
			return nil, shared.NewDomainError("INVALID_CLIENT", "Order does not belong to this client")
		}
		if err := order.RecordPayment(req.ReceivedPayment); err != nil {
			return nil, err
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return nil, err
		}
	case trade.WorkItemKindProject:
		project, err := s.projectRepo.FindByIDForShop(ctx, shopID, workID)
		if err != nil {
			return nil, err
		}
		if project.ClientID == nil || *project.ClientID != clientID {
			return nil, shared.NewDomainError("INVALID_CLIENT", "Project does not belong to this client")
		}
		if err := project.RecordPayment(req.ReceivedPayment); err != nil {
			return nil, err
		}
		if err := s.projectRepo.Save(ctx, project); err != nil {
			return nil, err
		}
	default:
		return nil, shared.NewDomainError("INVALID_KIND", "Work item kind must be order or project")
	}

	if err := s.recalculateBalance(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

func timeOrNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now()
	}
	return *t
}

// publishEvents drains the client's pending aggregate events to the bus,
// log-and-continue per event.
func (s *ClientService) publishEvents(ctx context.Context, client *partner.Client) {
	if s.eventPublisher == nil {
		client.ClearDomainEvents()
		return
	}
	for _, event := range client.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
	client.ClearDomainEvents()
}
