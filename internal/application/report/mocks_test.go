package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/partner"
	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/domain/trade"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, shopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]trade.Order, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByAssignee(ctx context.Context, shopID, userID uuid.UUID) ([]trade.Order, error) {
	args := m.Called(ctx, shopID, userID)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.Status) ([]trade.Order, error) {
	args := m.Called(ctx, shopID, status)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.Status) (int64, error) {
	args := m.Called(ctx, shopID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountCreatedSince(ctx context.Context, shopID uuid.UUID, since time.Time) (int64, error) {
	args := m.Called(ctx, shopID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) SumPaymentsByClient(ctx context.Context, clientID uuid.UUID) (trade.PaymentTotals, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(trade.PaymentTotals), args.Error(1)
}

// MockProjectRepository is a mock implementation of trade.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.EditingProject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.EditingProject), args.Error(1)
}

func (m *MockProjectRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*trade.EditingProject, error) {
	args := m.Called(ctx, shopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.EditingProject), args.Error(1)
}

func (m *MockProjectRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]trade.EditingProject, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).([]trade.EditingProject), args.Error(1)
}

func (m *MockProjectRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]trade.EditingProject, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]trade.EditingProject), args.Error(1)
}

func (m *MockProjectRepository) FindByEditor(ctx context.Context, shopID, editorID uuid.UUID) ([]trade.EditingProject, error) {
	args := m.Called(ctx, shopID, editorID)
	return args.Get(0).([]trade.EditingProject), args.Error(1)
}

func (m *MockProjectRepository) FindByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.Status) ([]trade.EditingProject, error) {
	args := m.Called(ctx, shopID, status)
	return args.Get(0).([]trade.EditingProject), args.Error(1)
}

func (m *MockProjectRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) CountByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.Status) (int64, error) {
	args := m.Called(ctx, shopID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, project *trade.EditingProject) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) SumPaymentsByClient(ctx context.Context, clientID uuid.UUID) (trade.PaymentTotals, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(trade.PaymentTotals), args.Error(1)
}

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

// MockClientRepository is a mock implementation of partner.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, shopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, shopID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) ExistsByPhone(ctx context.Context, shopID uuid.UUID, phone string) (bool, error) {
	args := m.Called(ctx, shopID, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) FindWithPendingBalance(ctx context.Context, shopID uuid.UUID) ([]partner.Client, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteForShop(ctx context.Context, shopID, id uuid.UUID) error {
	args := m.Called(ctx, shopID, id)
	return args.Error(0)
}

func (m *MockClientRepository) AdjustBalance(ctx context.Context, shopID, clientID uuid.UUID, deltaDue, deltaReceived decimal.Decimal) error {
	args := m.Called(ctx, shopID, clientID, deltaDue, deltaReceived)
	return args.Error(0)
}

func (m *MockClientRepository) AdjustLifetimeOrders(ctx context.Context, shopID, clientID uuid.UUID, delta int) error {
	args := m.Called(ctx, shopID, clientID, delta)
	return args.Error(0)
}

func (m *MockClientRepository) AppendPaymentRecord(ctx context.Context, record *partner.PaymentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockClientRepository) FindPaymentRecords(ctx context.Context, clientID uuid.UUID) ([]partner.PaymentRecord, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]partner.PaymentRecord), args.Error(1)
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

// MockDashboardCache is a mock implementation of DashboardCache
type MockDashboardCache struct {
	mock.Mock
}

func (m *MockDashboardCache) GetStats(ctx context.Context, shopID uuid.UUID, viewerKey string) (*StatsResponse, error) {
	args := m.Called(ctx, shopID, viewerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StatsResponse), args.Error(1)
}

func (m *MockDashboardCache) SetStats(ctx context.Context, shopID uuid.UUID, viewerKey string, stats *StatsResponse) error {
	args := m.Called(ctx, shopID, viewerKey, stats)
	return args.Error(0)
}

func (m *MockDashboardCache) GetAlerts(ctx context.Context, shopID uuid.UUID, viewerKey string) ([]Alert, error) {
	args := m.Called(ctx, shopID, viewerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Alert), args.Error(1)
}

func (m *MockDashboardCache) SetAlerts(ctx context.Context, shopID uuid.UUID, viewerKey string, alerts []Alert) error {
	args := m.Called(ctx, shopID, viewerKey, alerts)
	return args.Error(0)
}

func (m *MockDashboardCache) Invalidate(ctx context.Context, shopID uuid.UUID) error {
	args := m.Called(ctx, shopID)
	return args.Error(0)
}
