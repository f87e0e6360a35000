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

// ProjectLedger is the slice of the payroll ledger the project cascade
// needs: the commission entry written at completion and its reversal when
// the project is removed.
type ProjectLedger interface {
	CreateEntryForProject(ctx context.Context, project *trade.EditingProject) (*payroll.Salary, error)
	ReverseProject(ctx context.Context, projectID uuid.UUID) ([]payroll.Salary, error)
}

// ProjectService handles editing project operations. The editor's
// commission is a derived field recomputed by the aggregate on every
// mutating write; completion turns it into an editing_work ledger entry.
type ProjectService struct {
	projectRepo    trade.ProjectRepository
	clientRepo     partner.ClientRepository
	userRepo       identity.UserRepository
	ledger         ProjectLedger
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo trade.ProjectRepository, clientRepo partner.ClientRepository, userRepo identity.UserRepository, ledger ProjectLedger, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		ledger:      ledger,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ProjectService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create validates references and persists a new project
func (s *ProjectService) Create(ctx context.Context, shopID uuid.UUID, req CreateProjectRequest) (*ProjectResponse, error) {
	editor, err := s.userRepo.FindByIDForShop(ctx, shopID, req.EditorID)
	if err != nil {
		return nil, err
	}
	if editor.Role != identity.RoleEditor && editor.Role != identity.RoleOwner {
		return nil, shared.NewDomainError("INVALID_EDITOR", "Projects can only be assigned to editors")
	}

	var client *partner.Client
	if req.ClientID != nil {
		client, err = s.clientRepo.FindByIDForShop(ctx, shopID, *req.ClientID)
		if err != nil {
			return nil, err
		}
	}

	startDate := time.Time{}
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	project, err := trade.NewEditingProject(shopID, editor.ID, editor.Name, req.Name,
		req.TotalAmount, req.CommissionPercentage, startDate)
	if err != nil {
		return nil, err
	}
	project.Description = req.Description

	if client != nil {
		if err := project.LinkClient(client.ID, client.Name); err != nil {
			return nil, err
		}
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, project)

	response := ToProjectResponse(project)
	return &response, nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(ctx context.Context, shopID, projectID uuid.UUID) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForShop(ctx, shopID, projectID)
	if err != nil {
		return nil, err
	}

	response := ToProjectResponse(project)
	return &response, nil
}

// List retrieves projects for a shop with filtering and pagination
func (s *ProjectService) List(ctx context.Context, shopID uuid.UUID, filter ProjectListFilter) ([]ProjectResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	if filter.EditorID != nil {
		projects, err := s.projectRepo.FindByEditor(ctx, shopID, *filter.EditorID)
		if err != nil {
			return nil, 0, err
		}
		return ToProjectResponses(projects), int64(len(projects)), nil
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}

	projects, err := s.projectRepo.FindAllForShop(ctx, shopID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.projectRepo.CountForShop(ctx, shopID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProjectResponses(projects), total, nil
}

// Update updates a project's details. The aggregate recomputes the
// commission before the save.
func (s *ProjectService) Update(ctx context.Context, shopID, projectID uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForShop(ctx, shopID, projectID)
	if err != nil {
		return nil, err
	}

	name := project.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := project.Description
	if req.Description != nil {
		description = *req.Description
	}
	totalAmount := project.TotalAmount
	if req.TotalAmount != nil {
		totalAmount = *req.TotalAmount
	}
	commission := project.CommissionPercentage
	if req.CommissionPercentage != nil {
		commission = *req.CommissionPercentage
	}

	if err := project.Update(name, description, totalAmount, commission); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, project)

	response := ToProjectResponse(project)
	return &response, nil
}

// UpdatePayment sets the project's received payment
func (s *ProjectService) UpdatePayment(ctx context.Context, shopID, projectID uuid.UUID, req UpdatePaymentRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForShop(ctx, shopID, projectID)
	if err != nil {
		return nil, err
	}

	if err := project.RecordPayment(req.ReceivedPayment); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, project)

	response := ToProjectResponse(project)
	return &response, nil
}

// UpdateStatus transitions the project. Completion additionally writes the
// editor's commission to the salary ledger; the Complete guard on the
// aggregate makes sure that happens at most once.
func (s *ProjectService) UpdateStatus(ctx context.Context, shopID, projectID uuid.UUID, req UpdateOrderStatusRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForShop(ctx, shopID, projectID)
	if err != nil {
		return nil, err
	}

	completed := false
	switch trade.Status(req.Status) {
	case trade.StatusInProgress:
		err = project.Start()
	case trade.StatusCompleted:
		err = project.Complete()
		completed = err == nil
	default:
		err = shared.NewDomainError("INVALID_STATE", "Projects only move forward to in_progress or completed")
	}
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	if completed {
		// Best effort, same policy as the order cascade: the completed
		// project stays completed even when the ledger write fails.
		if _, err := s.ledger.CreateEntryForProject(ctx, project); err != nil {
			s.logger.Error("Failed to write commission ledger entry",
				zap.String("project_id", project.ID.String()),
				zap.Error(err))
		}
	}

	s.publishEvents(ctx, project)

	response := ToProjectResponse(project)
	return &response, nil
}

// Delete removes a project and unwinds the commission ledger entry a
// completed project left behind.
func (s *ProjectService) Delete(ctx context.Context, shopID, projectID uuid.UUID) error {
	project, err := s.projectRepo.FindByIDForShop(ctx, shopID, projectID)
	if err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}

	if _, err := s.ledger.ReverseProject(ctx, projectID); err != nil {
		s.logger.Error("Failed to reverse commission ledger entries",
			zap.String("project_id", projectID.String()),
			zap.Error(err))
	}

	project.AddDomainEvent(trade.NewProjectDeletedEvent(project))
	s.publishEvents(ctx, project)

	return nil
}

func (s *ProjectService) publishEvents(ctx context.Context, project *trade.EditingProject) {
	if s.eventPublisher == nil {
		project.ClearDomainEvents()
		return
	}
	for _, event := range project.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
	project.ClearDomainEvents()
}
