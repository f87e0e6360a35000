package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/domain/trade"
	"github.com/shopworks/backend/internal/infrastructure/persistence/models"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByID finds an editing project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.EditingProject, error) {
	var model models.EditingProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForShop finds an editing project by ID within a shop
func (r *GormProjectRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*trade.EditingProject, error) {
	var model models.EditingProjectModel
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

// FindAllForShop finds all editing projects of a shop matching the filter
func (r *GormProjectRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]trade.EditingProject, error) {
	var projectModels []models.EditingProjectModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.EditingProjectModel{}).Where("shop_id = ?", shopID), filter)
	if err := query.Find(&projectModels).Error; err != nil {
		return nil, err
	}
	return toProjectSlice(projectModels), nil
}

// FindByClient returns all editing projects linked to the client
func (r *GormProjectRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]trade.EditingProject, error) {
	var projectModels []models.EditingProjectModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("start_date DESC").
		Find(&projectModels).Error; err != nil {
		return nil, err
	}
	return toProjectSlice(projectModels), nil
}

// FindByEditor returns the shop's editing projects handled by the editor
func (r *GormProjectRepository) FindByEditor(ctx context.Context, shopID, editorID uuid.UUID) ([]trade.EditingProject, error) {
	var projectModels []models.EditingProjectModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND editor_id = ?", shopID, editorID).
		Order("start_date DESC").
		Find(&projectModels).Error; err != nil {
		return nil, err
	}
	return toProjectSlice(projectModels), nil
}

// FindByStatusForShop returns the shop's editing projects with the given status
func (r *GormProjectRepository) FindByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.Status) ([]trade.EditingProject, error) {
	var projectModels []models.EditingProjectModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND status = ?", shopID, status).
		Order("start_date DESC").
		Find(&projectModels).Error; err != nil {
		return nil, err
	}
	return toProjectSlice(projectModels), nil
}

// CountForShop counts the shop's editing projects matching the filter
func (r *GormProjectRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.EditingProjectModel{}).Where("shop_id = ?", shopID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatusForShop counts the shop's editing projects with the given status
func (r *GormProjectRepository) CountByStatusForShop(ctx context.Context, shopID uuid.UUID, status trade.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EditingProjectModel{}).
		Where("shop_id = ? AND status = ?", shopID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists an editing project
func (r *GormProjectRepository) Save(ctx context.Context, project *trade.EditingProject) error {
	model := models.EditingProjectModelFromDomain(project)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an editing project
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EditingProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SumPaymentsByClient aggregates totalAmount and receivedPayment over all of
// the client's editing projects
func (r *GormProjectRepository) SumPaymentsByClient(ctx context.Context, clientID uuid.UUID) (trade.PaymentTotals, error) {
	var row struct {
		TotalAmount     decimal.Decimal
		ReceivedPayment decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.EditingProjectModel{}).
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

func toProjectSlice(projectModels []models.EditingProjectModel) []trade.EditingProject {
	projects := make([]trade.EditingProject, len(projectModels))
	for i, m := range projectModels {
		projects[i] = *m.ToDomain()
	}
	return projects
}

func (r *GormProjectRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("start_date DESC")
	}

	return query
}

func (r *GormProjectRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	// Apply search
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR client_name ILIKE ? OR editor_name ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	// Apply additional filters
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "editor_id":
			query = query.Where("editor_id = ?", value)
		}
	}

	return query
}

// Ensure GormProjectRepository implements ProjectRepository
var _ trade.ProjectRepository = (*GormProjectRepository)(nil)
