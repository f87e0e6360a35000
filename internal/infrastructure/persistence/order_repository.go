package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/domain/trade"
	"github.com/shopworks/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements OrderRepository using GORM. The assignment
// lists are stored in their own table and written together with the order.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID, including its assignment lists
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	order := model.ToDomain()
	if err := r.loadAssignments(ctx, []*trade.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

// FindByIDForShop finds an order by ID within a shop, including its assignment lists
func (r *GormOrderRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND id = ?", shopID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	order := model.ToDomain()
	if err := r.loadAssignments(ctx, []*trade.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

// FindAllForShop finds all orders of a shop matching the filter
func (r *GormOrderRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	var orderModels []models.OrderModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("shop_id = ?", shopID), filter)
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainSlice(ctx, orderModels)
}

// FindByClient returns all orders linked to the client
func (r *GormOrderRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]trade.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("order_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainSlice(ctx, orderModels)
}

// FindByAssignee returns orders where the user appears in either assignment list
func (r *GormOrderRepository) FindByAssignee(ctx context.Context, shopID, userID uuid.UUID) ([]trade.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND id IN (?)", shopID,
			r.db.Model(&models.AssignmentModel{}).Select("order_id").Where("user_id = ?", userID)).
		Order("order_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainSlice(ctx, orderModels)
}

// FindByStatusForShop returns the shop's orders with the given status
func (r *GormOrderRepository) FindByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.Status) ([]trade.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND status = ?", shopID, status).
		Order("order_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainSlice(ctx, orderModels)
}

// CountForShop counts the shop's orders matching the filter
func (r *GormOrderRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("shop_id = ?", shopID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatusForShop counts the shop's orders with the given status
func (r *GormOrderRepository) CountByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("shop_id = ? AND status = ?", shopID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountCreatedSince counts the shop's orders created at or after the given time
func (r *GormOrderRepository) CountCreatedSince(ctx context.Context, shopID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("shop_id = ? AND created_at >= ?", shopID, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists an order together with its assignment lists. The stored
// assignments are replaced wholesale so the table always mirrors the
// aggregate's lists.
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.OrderModelFromDomain(order)
		if err := tx.Save(model).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.AssignmentModel{}, "order_id = ?", order.ID).Error; err != nil {
			return err
		}

		assignments := order.Assignments()
		if len(assignments) == 0 {
			return nil
		}
		assignmentModels := make([]*models.AssignmentModel, len(assignments))
		for i := range assignments {
			assignmentModels[i] = models.AssignmentModelFromDomain(&assignments[i])
		}
		return tx.Create(assignmentModels).Error
	})
}

// Delete removes an order and its assignments
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.AssignmentModel{}, "order_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.OrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// SumPaymentsByClient aggregates totalAmount and receivedPayment over all of
// the client's orders
func (r *GormOrderRepository) SumPaymentsByClient(ctx context.Context, clientID uuid.UUID) (trade.PaymentTotals, error) {
	var row struct {
		TotalAmount     decimal.Decimal
		ReceivedPayment decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_amount, COALESCE(SUM(received_payment), 0) AS received_payment").
		Where("client_id = ?", clientID).
		Scan(&row).Error; err != nil {
		return trade.PaymentTotals{}, err
	}
	return trade.PaymentTotals{
		TotalAmount:     row.TotalAmount,
		ReceivedPayment: row.ReceivedPayment,
	}, nil
}

// loadAssignments fills the assignment lists of the given orders with one query
func (r *GormOrderRepository) loadAssignments(ctx context.Context, orders []*trade.Order) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]uuid.UUID, len(orders))
	byID := make(map[uuid.UUID]*trade.Order, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID
		byID[o.ID] = o
	}

	var assignmentModels []models.AssignmentModel
	if err := r.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("created_at ASC").
		Find(&assignmentModels).Error; err != nil {
		return err
	}

	for _, m := range assignmentModels {
		order, ok := byID[m.OrderID]
		if !ok {
			continue
		}
		assignment := m.ToDomain()
		switch assignment.Role {
		case trade.AssignmentRoleWorker:
			order.Workers = append(order.Workers, assignment)
		case trade.AssignmentRoleTransporter:
			order.Transporters = append(order.Transporters, assignment)
		}
	}
	return nil
}

func (r *GormOrderRepository) toDomainSlice(ctx context.Context, orderModels []models.OrderModel) ([]trade.Order, error) {
	pointers := make([]*trade.Order, len(orderModels))
	for i, m := range orderModels {
		pointers[i] = m.ToDomain()
	}
	if err := r.loadAssignments(ctx, pointers); err != nil {
		return nil, err
	}

	orders := make([]trade.Order, len(pointers))
	for i, o := range pointers {
		orders[i] = *o
	}
	return orders, nil
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply pagination
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	// Apply ordering
	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("order_date DESC")
	}

	return query
}

func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	// Apply search
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR client_name ILIKE ?", searchPattern, searchPattern)
	}

	// Apply additional filters
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		}
	}

	return query
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
