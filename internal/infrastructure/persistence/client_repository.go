package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopworks/backend/internal/domain/partner"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/infrastructure/persistence/models"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForShop finds a client by ID within a shop
func (r *GormClientRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND id = ?", shopID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForShop finds all clients of a shop matching the filter
func (r *GormClientRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]partner.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("shop_id = ?", shopID), filter)
	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]partner.Client, len(clientModels))
	for i, m := range clientModels {
		clients[i] = *m.ToDomain()
	}
	return clients, nil
}

// CountForShop counts the shop's clients matching the filter
func (r *GormClientRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("shop_id = ?", shopID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByPhone reports whether the shop already has a client with the phone
func (r *GormClientRepository) ExistsByPhone(ctx context.Context, shopID uuid.UUID, phone string) (bool, error) {
	if phone == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("shop_id = ? AND phone = ?", shopID, phone).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindWithPendingBalance finds the shop's clients whose received payments
// trail their payments due
func (r *GormClientRepository) FindWithPendingBalance(ctx context.Context, shopID uuid.UUID) ([]partner.Client, error) {
	var clientModels []models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND received_payments < total_payments_due", shopID).
		Order("created_at DESC").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]partner.Client, len(clientModels))
	for i, m := range clientModels {
		clients[i] = *m.ToDomain()
	}
	return clients, nil
}

// Save persists a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	model := models.ClientModelFromDomain(client)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForShop deletes a client within a shop
func (r *GormClientRepository) DeleteForShop(ctx context.Context, shopID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, "shop_id = ? AND id = ?", shopID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AdjustBalance increments the client's running payment counters in a single
// UPDATE statement. There is no read-modify-write window.
func (r *GormClientRepository) AdjustBalance(ctx context.Context, shopID, clientID uuid.UUID, deltaDue, deltaReceived decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("shop_id = ? AND id = ?", shopID, clientID).
		Updates(map[string]interface{}{
			"total_payments_due": gorm.Expr("total_payments_due + ?", deltaDue),
			"received_payments":  gorm.Expr("received_payments + ?", deltaReceived),
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AdjustLifetimeOrders increments the client's lifetime order counter in a
// single UPDATE statement
func (r *GormClientRepository) AdjustLifetimeOrders(ctx context.Context, shopID, clientID uuid.UUID, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("shop_id = ? AND id = ?", shopID, clientID).
		Updates(map[string]interface{}{
			"lifetime_orders": gorm.Expr("lifetime_orders + ?", delta),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AppendPaymentRecord appends one entry to the client's payment history
func (r *GormClientRepository) AppendPaymentRecord(ctx context.Context, record *partner.PaymentRecord) error {
	model := models.PaymentRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindPaymentRecords returns the client's payment history, newest first
func (r *GormClientRepository) FindPaymentRecords(ctx context.Context, clientID uuid.UUID) ([]partner.PaymentRecord, error) {
	var recordModels []models.PaymentRecordModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date DESC, created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]partner.PaymentRecord, len(recordModels))
	for i, m := range recordModels {
		records[i] = m.ToDomain()
	}
	return records, nil
}

func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("created_at DESC")
	}

	return query
}

func (r *GormClientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	// Apply search
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR contact_name ILIKE ? OR phone ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}

	// Apply additional filters
	for key, value := range filter.Filters {
		switch key {
		case "payment_status":
			switch value {
			case string(partner.PaymentStatusPaid):
				query = query.Where("total_payments_due > 0 AND received_payments >= total_payments_due")
			case string(partner.PaymentStatusPartial):
				query = query.Where("received_payments > 0 AND received_payments < total_payments_due")
			case string(partner.PaymentStatusPending):
				query = query.Where("received_payments = 0")
			}
		case "has_pending":
			if value == true {
				query = query.Where("received_payments < total_payments_due")
			} else {
				query = query.Where("received_payments >= total_payments_due")
			}
		}
	}

	return query
}

// Ensure GormClientRepository implements ClientRepository
var _ partner.ClientRepository = (*GormClientRepository)(nil)
