package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/shared"
)

// UserService handles shop member management and the notification inbox
type UserService struct {
	userRepo         identity.UserRepository
	notificationRepo identity.NotificationRepository
	eventPublisher   shared.EventPublisher
	logger           *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, notificationRepo identity.NotificationRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *UserService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new shop member
func (s *UserService) Create(ctx context.Context, shopID uuid.UUID, req CreateUserRequest) (*UserResponse, error) {
	if req.Phone != "" {
		existing, err := s.userRepo.FindByPhone(ctx, shopID, req.Phone)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this phone already exists")
		}
	}

	user, err := identity.NewUser(shopID, req.Name, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if req.Phone != "" || req.Email != "" {
		if err := user.SetContact(req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return nil, err
		}
	}
	if req.ExternalUID != "" {
		if err := user.LinkExternalUID(req.ExternalUID); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, user)

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a shop member by ID
func (s *UserService) GetByID(ctx context.Context, shopID, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForShop(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves shop members with filtering and pagination
func (s *UserService) List(ctx context.Context, shopID uuid.UUID, filter UserListFilter) ([]UserResponse, int64, error) {
	if filter.Role != "" {
		users, err := s.userRepo.FindByRoleForShop(ctx, shopID, identity.Role(filter.Role))
		if err != nil {
			return nil, 0, err
		}
		return ToUserResponses(users), int64(len(users)), nil
	}

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

	users, err := s.userRepo.FindAllForShop(ctx, shopID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.CountForShop(ctx, shopID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToUserResponses(users), total, nil
}

// Update updates a shop member's details
func (s *UserService) Update(ctx context.Context, shopID, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForShop(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}

	name := user.Name
	role := user.Role
	if req.Name != nil {
		name = *req.Name
	}
	if req.Role != nil {
		role = identity.Role(*req.Role)
	}
	if err := user.Update(name, role); err != nil {
		return nil, err
	}

	if req.Phone != nil || req.Email != nil {
		phone := user.Phone
		email := user.Email
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := user.SetContact(phone, email); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, user)

	response := ToUserResponse(user)
	return &response, nil
}

// Deactivate disables a shop member without deleting their ledger history
func (s *UserService) Deactivate(ctx context.Context, shopID, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForShop(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}

	user.Deactivate()

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, user)

	response := ToUserResponse(user)
	return &response, nil
}

// ResolveExternalUID resolves an identity-provider UID to a shop member.
// The UID lookup is global; membership of the given shop is enforced here.
func (s *UserService) ResolveExternalUID(ctx context.Context, shopID uuid.UUID, externalUID string) (*UserResponse, error) {
	user, err := s.userRepo.FindByExternalUID(ctx, externalUID)
	if err != nil {
		return nil, err
	}
	if user.ShopID != shopID {
		return nil, shared.ErrNotFound
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Notifications lists a user's inbox, newest first
func (s *UserService) Notifications(ctx context.Context, userID uuid.UUID, filter NotificationListFilter) ([]NotificationResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize

	notifications, err := s.notificationRepo.FindForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.notificationRepo.CountUnreadForUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return ToNotificationResponses(notifications), unread, nil
}

// MarkNotificationRead marks one inbox entry as read
func (s *UserService) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

func (s *UserService) publishEvents(ctx context.Context, user *identity.User) {
	if s.eventPublisher == nil {
		user.ClearDomainEvents()
		return
	}
	for _, event := range user.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
	user.ClearDomainEvents()
}
