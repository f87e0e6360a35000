package payroll

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/shared"
)

// MockSalaryRepository is a mock implementation of payroll.SalaryRepository
type MockSalaryRepository struct {
	mock.Mock
}

func (m *MockSalaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.Salary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*payroll.Salary, error) {
	args := m.Called(ctx, shopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]payroll.Salary, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).([]payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) FindByUser(ctx context.Context, shopID, userID uuid.UUID, filter shared.Filter) ([]payroll.Salary, error) {
	args := m.Called(ctx, shopID, userID, filter)
	return args.Get(0).([]payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) FindUnpaidByOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) FindUnpaidByUser(ctx context.Context, shopID, userID uuid.UUID) ([]payroll.Salary, error) {
	args := m.Called(ctx, shopID, userID)
	return args.Get(0).([]payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) FindUnpaidForShop(ctx context.Context, shopID uuid.UUID) ([]payroll.Salary, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalaryRepository) Save(ctx context.Context, salary *payroll.Salary) error {
	args := m.Called(ctx, salary)
	return args.Error(0)
}

func (m *MockSalaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSalaryRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) ([]payroll.Salary, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]payroll.Salary), args.Error(1)
}

func (m *MockSalaryRepository) SumByUser(ctx context.Context, shopID, userID uuid.UUID) (payroll.EarningsTotals, error) {
	args := m.Called(ctx, shopID, userID)
	return args.Get(0).(payroll.EarningsTotals), args.Error(1)
}

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

// MockNotificationRepository is a mock implementation of
// identity.NotificationRepository
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

// RecordingPublisher captures every published event.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *RecordingPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *RecordingPublisher) EventTypesSeen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, event := range p.events {
		types[i] = event.EventType()
	}
	return types
}
