package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/trade"
)

type projectServiceFixture struct {
	projectRepo *MockProjectRepository
	clientRepo  *MockClientRepository
	userRepo    *MockUserRepository
	ledger      *MockProjectLedger
	service     *ProjectService
}

func newProjectServiceFixture() *projectServiceFixture {
	f := &projectServiceFixture{
		projectRepo: new(MockProjectRepository),
		clientRepo:  new(MockClientRepository),
		userRepo:    new(MockUserRepository),
		ledger:      new(MockProjectLedger),
	}
	f.service = NewProjectService(f.projectRepo, f.clientRepo, f.userRepo, f.ledger, zap.NewNop())
	return f
}

func newShopEditor(t *testing.T, shopID uuid.UUID) *identity.User {
	t.Helper()
	editor, err := identity.NewUser(shopID, "Sam", identity.RoleEditor)
	require.NoError(t, err)
	return editor
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()

	t.Run("creates project with derived commission", func(t *testing.T) {
		f := newProjectServiceFixture()
		editor := newShopEditor(t, shopID)

		f.userRepo.On("FindByIDForShop", ctx, shopID, editor.ID).Return(editor, nil)
		f.projectRepo.On("Save", ctx, mock.AnythingOfType("*trade.EditingProject")).Return(nil)

		response, err := f.service.Create(ctx, shopID, CreateProjectRequest{
			Name:                 "Album edit",
			EditorID:             editor.ID,
			TotalAmount:          decimal.NewFromInt(1000),
			CommissionPercentage: decimal.NewFromInt(15),
		})
		require.NoError(t, err)

		assert.True(t, response.CommissionAmount.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, "pending", response.Status)
	})

	t.Run("rejects a worker as editor", func(t *testing.T) {
		f := newProjectServiceFixture()
		worker, err := identity.NewUser(shopID, "Joseph", identity.RoleWorker)
		require.NoError(t, err)

		f.userRepo.On("FindByIDForShop", ctx, shopID, worker.ID).Return(worker, nil)

		_, err = f.service.Create(ctx, shopID, CreateProjectRequest{
			Name:        "Album edit",
			EditorID:    worker.ID,
			TotalAmount: decimal.NewFromInt(1000),
		})
		assert.Error(t, err)
		f.projectRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()

	t.Run("partial update recomputes commission before save", func(t *testing.T) {
		f := newProjectServiceFixture()
		editor := newShopEditor(t, shopID)

		project, err := trade.NewEditingProject(shopID, editor.ID, editor.Name, "Album edit",
			decimal.NewFromInt(1000), decimal.NewFromInt(15), timeOrZero(nil))
		require.NoError(t, err)

		f.projectRepo.On("FindByIDForShop", ctx, shopID, project.ID).Return(project, nil)
		f.projectRepo.On("Save", ctx, project).Return(nil)

		newTotal := decimal.NewFromInt(2000)
		response, err := f.service.Update(ctx, shopID, project.ID, UpdateProjectRequest{
			TotalAmount: &newTotal,
		})
		require.NoError(t, err)

		// Commission follows the new total at the unchanged percentage.
		assert.True(t, response.CommissionAmount.Equal(decimal.NewFromInt(300)))
	})
}

func TestProjectService_UpdatePayment(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()

	f := newProjectServiceFixture()
	editor := newShopEditor(t, shopID)

	project, err := trade.NewEditingProject(shopID, editor.ID, editor.Name, "Album edit",
		decimal.NewFromInt(1000), decimal.NewFromInt(15), timeOrZero(nil))
	require.NoError(t, err)

	f.projectRepo.On("FindByIDForShop", ctx, shopID, project.ID).Return(project, nil)
	f.projectRepo.On("Save", ctx, project).Return(nil)

	response, err := f.service.UpdatePayment(ctx, shopID, project.ID,
		UpdatePaymentRequest{ReceivedPayment: decimal.NewFromInt(1000)})
	require.NoError(t, err)

	assert.True(t, response.RemainingPayment.IsZero())
	assert.True(t, response.CommissionAmount.Equal(decimal.NewFromInt(150)))
}

func TestProjectService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()

	f := newProjectServiceFixture()
	editor := newShopEditor(t, shopID)

	project, err := trade.NewEditingProject(shopID, editor.ID, editor.Name, "Album edit",
		decimal.NewFromInt(1000), decimal.NewFromInt(15), timeOrZero(nil))
	require.NoError(t, err)

	f.projectRepo.On("FindByIDForShop", ctx, shopID, project.ID).Return(project, nil)
	f.projectRepo.On("Save", ctx, project).Return(nil)
	f.ledger.On("CreateEntryForProject", ctx, project).Return(nil, nil)

	response, err := f.service.UpdateStatus(ctx, shopID, project.ID,
		UpdateOrderStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", response.Status)
	require.NotNil(t, response.EndDate)

	f.ledger.AssertCalled(t, "CreateEntryForProject", ctx, project)
}

func TestProjectService_CompletionWritesCommissionOnlyOnce(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()

	f := newProjectServiceFixture()
	editor := newShopEditor(t, shopID)

	project, err := trade.NewEditingProject(shopID, editor.ID, editor.Name, "Album edit",
		decimal.NewFromInt(1000), decimal.NewFromInt(15), timeOrZero(nil))
	require.NoError(t, err)

	f.projectRepo.On("FindByIDForShop", ctx, shopID, project.ID).Return(project, nil)
	f.projectRepo.On("Save", ctx, project).Return(nil)
	f.ledger.On("CreateEntryForProject", ctx, project).Return(nil, nil)

	_, err = f.service.UpdateStatus(ctx, shopID, project.ID,
		UpdateOrderStatusRequest{Status: "completed"})
	require.NoError(t, err)

	// Repeating the completion is rejected by the aggregate before the
	// ledger is touched again.
	_, err = f.service.UpdateStatus(ctx, shopID, project.ID,
		UpdateOrderStatusRequest{Status: "completed"})
	require.Error(t, err)

	f.ledger.AssertNumberOfCalls(t, "CreateEntryForProject", 1)
}

func TestProjectService_DeleteReversesLedger(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()

	f := newProjectServiceFixture()
	editor := newShopEditor(t, shopID)

	project, err := trade.NewEditingProject(shopID, editor.ID, editor.Name, "Album edit",
		decimal.NewFromInt(1000), decimal.NewFromInt(15), timeOrZero(nil))
	require.NoError(t, err)

	f.projectRepo.On("FindByIDForShop", ctx, shopID, project.ID).Return(project, nil)
	f.projectRepo.On("Delete", ctx, project.ID).Return(nil)
	f.ledger.On("ReverseProject", ctx, project.ID).Return([]payroll.Salary{}, nil)

	require.NoError(t, f.service.Delete(ctx, shopID, project.ID))

	f.ledger.AssertCalled(t, "ReverseProject", ctx, project.ID)
}
