package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForShop finds a user by ID within a shop
func (r *GormUserRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
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

// FindAllForShop finds all users of a shop matching the filter
func (r *GormUserRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]identity.User, error) {
	var userModels []models.UserModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.UserModel{}).Where("shop_id = ?", shopID), filter)
	if err := query.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]identity.User, len(userModels))
	for i, m := range userModels {
		users[i] = *m.ToDomain()
	}
	return users, nil
}

// FindByRoleForShop finds the shop's users with the given role
func (r *GormUserRepository) FindByRoleForShop(ctx context.Context, shopID uuid.UUID, role identity.Role) ([]identity.User, error) {
	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND role = ?", shopID, role).
		Order("name ASC").
		Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]identity.User, len(userModels))
	for i, m := range userModels {
		users[i] = *m.ToDomain()
	}
	return users, nil
}

// CountForShop counts the shop's users matching the filter
func (r *GormUserRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("shop_id = ?", shopID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByExternalUID resolves an identity-provider UID to a user
func (r *GormUserRepository) FindByExternalUID(ctx context.Context, externalUID string) (*identity.User, error) {
	if externalUID == "" {
		return nil, shared.NewDomainError("INVALID_EXTERNAL_UID", "External UID cannot be empty")
	}
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("external_uid = ?", externalUID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPhone finds a user by phone number within a shop
func (r *GormUserRepository) FindByPhone(ctx context.Context, shopID uuid.UUID, phone string) (*identity.User, error) {
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone cannot be empty")
	}
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND phone = ?", shopID, phone).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForShop deletes a user within a shop
func (r *GormUserRepository) DeleteForShop(ctx context.Context, shopID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, "shop_id = ? AND id = ?", shopID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AdjustSalary increments the user's earnings counters in a single UPDATE
// statement. There is no read-modify-write window.
func (r *GormUserRepository) AdjustSalary(ctx context.Context, shopID, userID uuid.UUID, deltaEarnings, deltaPaid decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("shop_id = ? AND id = ?", shopID, userID).
		Updates(map[string]interface{}{
			"total_earnings": gorm.Expr("total_earnings + ?", deltaEarnings),
			"paid_salary":    gorm.Expr("paid_salary + ?", deltaPaid),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormUserRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

func (r *GormUserRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	// Apply search
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	// Apply additional filters
	for key, value := range filter.Filters {
		switch key {
		case "role":
			query = query.Where("role = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)

// GormNotificationRepository implements NotificationRepository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Save persists a notification
func (r *GormNotificationRepository) Save(ctx context.Context, notification *identity.Notification) error {
	model := models.NotificationModelFromDomain(notification)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindForUser returns the user's inbox, newest first
func (r *GormNotificationRepository) FindForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]identity.Notification, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if unread, ok := filter.Filters["is_read"]; ok {
		query = query.Where("is_read = ?", unread)
	}

	var notificationModels []models.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]identity.Notification, len(notificationModels))
	for i, m := range notificationModels {
		notifications[i] = m.ToDomain()
	}
	return notifications, nil
}

// CountUnreadForUser counts the user's unread inbox entries
func (r *GormNotificationRepository) CountUnreadForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead marks one of the user's notifications as read
func (r *GormNotificationRepository) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND id = ?", userID, notificationID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormNotificationRepository implements NotificationRepository
var _ identity.NotificationRepository = (*GormNotificationRepository)(nil)
