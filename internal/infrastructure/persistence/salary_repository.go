package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/infrastructure/persistence/models"
)

// GormSalaryRepository implements SalaryRepository using GORM
type GormSalaryRepository struct {
	db *gorm.DB
}

// NewGormSalaryRepository creates a new GormSalaryRepository
func NewGormSalaryRepository(db *gorm.DB) *GormSalaryRepository {
	return &GormSalaryRepository{db: db}
}

// FindByID finds a ledger entry by its ID
func (r *GormSalaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.Salary, error) {
	var model models.SalaryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForShop finds a ledger entry by ID within a shop
func (r *GormSalaryRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*payroll.Salary, error) {
	var model models.SalaryModel
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

// FindAllForShop finds all ledger entries of a shop matching the filter
func (r *GormSalaryRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]payroll.Salary, error) {
	var salaryModels []models.SalaryModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SalaryModel{}).Where("shop_id = ?", shopID), filter)
	if err := query.Find(&salaryModels).Error; err != nil {
		return nil, err
	}
	return toSalarySlice(salaryModels), nil
}

// FindByUser finds the user's ledger entries matching the filter
func (r *GormSalaryRepository) FindByUser(ctx context.Context, shopID, userID uuid.UUID, filter shared.Filter) ([]payroll.Salary, error) {
	var salaryModels []models.SalaryModel
	query := r.applyFilter(r.db.WithContext(ctx).
		Model(&models.SalaryModel{}).
		Where("shop_id = ? AND user_id = ?", shopID, userID), filter)
	if err := query.Find(&salaryModels).Error; err != nil {
		return nil, err
	}
	return toSalarySlice(salaryModels), nil
}

// FindByOrder returns all ledger entries referencing the order
func (r *GormSalaryRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error) {
	var salaryModels []models.SalaryModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&salaryModels).Error; err != nil {
		return nil, err
	}
	return toSalarySlice(salaryModels), nil
}

// FindUnpaidByOrder returns the unpaid entries referencing the order. The
// unpaid filter keeps a repeated payout from double-counting.
func (r *GormSalaryRepository) FindUnpaidByOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error) {
	var salaryModels []models.SalaryModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND is_paid = ?", orderID, false).
		Order("created_at ASC").
		Find(&salaryModels).Error; err != nil {
		return nil, err
	}
	return toSalarySlice(salaryModels), nil
}

// FindUnpaidByUser returns the user's unpaid ledger entries
func (r *GormSalaryRepository) FindUnpaidByUser(ctx context.Context, shopID, userID uuid.UUID) ([]payroll.Salary, error) {
	var salaryModels []models.SalaryModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND user_id = ? AND is_paid = ?", shopID, userID, false).
		Order("work_date ASC").
		Find(&salaryModels).Error; err != nil {
		return nil, err
	}
	return toSalarySlice(salaryModels), nil
}

// FindUnpaidForShop returns all unpaid ledger entries of a shop
func (r *GormSalaryRepository) FindUnpaidForShop(ctx context.Context, shopID uuid.UUID) ([]payroll.Salary, error) {
	var salaryModels []models.SalaryModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND is_paid = ?", shopID, false).
		Order("work_date ASC").
		Find(&salaryModels).Error; err != nil {
		return nil, err
	}
	return toSalarySlice(salaryModels), nil
}

// CountForShop counts the shop's ledger entries matching the filter
func (r *GormSalaryRepository) CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SalaryModel{}).Where("shop_id = ?", shopID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a ledger entry
func (r *GormSalaryRepository) Save(ctx context.Context, salary *payroll.Salary) error {
	model := models.SalaryModelFromDomain(salary)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a ledger entry
func (r *GormSalaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SalaryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByOrder removes every entry referencing the order and returns the
// deleted entries so the caller can reverse their counter increments
func (r *GormSalaryRepository) DeleteByOrder(ctx context.Context, orderID uuid.UUID) ([]payroll.Salary, error) {
	var deleted []payroll.Salary
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var salaryModels []models.SalaryModel
		if err := tx.Where("order_id = ?", orderID).Find(&salaryModels).Error; err != nil {
			return err
		}
		if len(salaryModels) == 0 {
			return nil
		}
		if err := tx.Delete(&models.SalaryModel{}, "order_id = ?", orderID).Error; err != nil {
			return err
		}
		deleted = toSalarySlice(salaryModels)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// DeleteByProject removes every entry referencing the project and returns
// the deleted entries so the caller can reverse their counter increments
func (r *GormSalaryRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) ([]payroll.Salary, error) {
	var deleted []payroll.Salary
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var salaryModels []models.SalaryModel
		if err := tx.Where("project_id = ?", projectID).Find(&salaryModels).Error; err != nil {
			return err
		}
		if len(salaryModels) == 0 {
			return nil
		}
		if err := tx.Delete(&models.SalaryModel{}, "project_id = ?", projectID).Error; err != nil {
			return err
		}
		deleted = toSalarySlice(salaryModels)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// SumByUser aggregates the user's total and paid ledger amounts
func (r *GormSalaryRepository) SumByUser(ctx context.Context, shopID, userID uuid.UUID) (payroll.EarningsTotals, error) {
	var row struct {
		TotalEarnings decimal.Decimal
		PaidSalary    decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.SalaryModel{}).
		Select("COALESCE(SUM(amount), 0) AS total_earnings, COALESCE(SUM(CASE WHEN is_paid THEN amount ELSE 0 END), 0) AS paid_salary").
		Where("shop_id = ? AND user_id = ?", shopID, userID).
		Scan(&row).Error; err != nil {
		return payroll.EarningsTotals{}, err
	}
	return payroll.EarningsTotals{
		TotalEarnings: row.TotalEarnings,
		PaidSalary:    row.PaidSalary,
	}, nil
}

func toSalarySlice(salaryModels []models.SalaryModel) []payroll.Salary {
	salaries := make([]payroll.Salary, len(salaryModels))
	for i, m := range salaryModels {
		salaries[i] = *m.ToDomain()
	}
	return salaries
}

func (r *GormSalaryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("work_date DESC")
	}

	return query
}

func (r *GormSalaryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	// Apply search
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("user_name ILIKE ? OR notes ILIKE ?", searchPattern, searchPattern)
	}

	// Apply additional filters
	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "is_paid":
			query = query.Where("is_paid = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "order_id":
			query = query.Where("order_id = ?", value)
		}
	}

	return query
}

// Ensure GormSalaryRepository implements SalaryRepository
var _ payroll.SalaryRepository = (*GormSalaryRepository)(nil)
