package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	domainRepo "github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/pkg/pagination"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

// Update persists every column except the dues balance, which only the
// guarded increment and decrement operations may touch
func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Omit("dues").Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

func (r *customerRepository) ListWithDues(ctx context.Context, params *pagination.PaginationParams) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("dues > 0")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("dues DESC").
		Find(&customers).Error

	return customers, total, err
}

// CountReferences totals the orders, sales and due entries that point at
// the customer. A non-zero result blocks deletion.
func (r *customerRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var orders, sales, dues int64

	if err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("customer_id = ?", id).Count(&orders).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("customer_id = ?", id).Count(&sales).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.CustomerDue{}).
		Where("customer_id = ?", id).Count(&dues).Error; err != nil {
		return 0, err
	}

	return orders + sales + dues, nil
}

func (r *customerRepository) IncrementDues(ctx context.Context, id uuid.UUID, amount int64) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).
		Update("dues", gorm.Expr("dues + ?", amount)).Error
}

// DecrementDuesFloored subtracts amount from the balance without ever
// letting it go negative, matching the ledger reversal rule
func (r *customerRepository) DecrementDuesFloored(ctx context.Context, id uuid.UUID, amount int64) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).
		Update("dues", gorm.Expr("GREATEST(dues - ?, 0)", amount)).Error
}

type customerDueRepository struct {
	db *gorm.DB
}

// NewCustomerDueRepository creates a new customer due repository
func NewCustomerDueRepository(db *gorm.DB) domainRepo.CustomerDueRepository {
	return &customerDueRepository{db: db}
}

func (r *customerDueRepository) Create(ctx context.Context, due *entity.CustomerDue) error {
	return r.db.WithContext(ctx).Create(due).Error
}

func (r *customerDueRepository) GetActiveBySale(ctx context.Context, saleID uuid.UUID) ([]entity.CustomerDue, error) {
	var dues []entity.CustomerDue
	err := r.db.WithContext(ctx).
		Where("sale_id = ? AND status = ?", saleID, enum.DueStatusActive).
		Find(&dues).Error
	return dues, err
}

func (r *customerDueRepository) MarkReversedBySale(ctx context.Context, saleID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.CustomerDue{}).
		Where("sale_id = ? AND status = ?", saleID, enum.DueStatusActive).
		Update("status", enum.DueStatusReversed).Error
}

func (r *customerDueRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.CustomerDue, int64, error) {
	var dues []entity.CustomerDue
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CustomerDue{}).
		Where("customer_id = ?", customerID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&dues).Error

	return dues, total, err
}
