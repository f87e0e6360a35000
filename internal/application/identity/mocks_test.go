package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/shared"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, shopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRoleForShop(ctx context.Context, shopID uuid.UUID, role identity.Role) ([]identity.User, error) {
	args := m.Called(ctx, shopID, role)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByExternalUID(ctx context.Context, externalUID string) (*identity.User, error) {
	args := m.Called(ctx, externalUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, shopID uuid.UUID, phone string) (*identity.User, error) {
	args := m.Called(ctx, shopID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteForShop(ctx context.Context, shopID, id uuid.UUID) error {
	args := m.Called(ctx, shopID, id)
	return args.Error(0)
}

func (m *MockUserRepository) AdjustSalary(ctx context.Context, shopID, userID uuid.UUID, deltaEarnings, deltaPaid decimal.Decimal) error {
	args := m.Called(ctx, shopID, userID, deltaEarnings, deltaPaid)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of identity.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Save(ctx context.Context, notification *identity.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]identity.Notification, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]identity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnreadForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}
