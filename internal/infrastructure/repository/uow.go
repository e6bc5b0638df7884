package repository

import (
	"context"

	domainRepo "github.com/restoflow/restoflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

// gormRepositories binds every repository to one *gorm.DB handle, which
// is either the plain connection or an open transaction
type gormRepositories struct {
	db *gorm.DB
}

func (r *gormRepositories) Products() domainRepo.ProductRepository {
	return NewProductRepository(r.db)
}

func (r *gormRepositories) Categories() domainRepo.CategoryRepository {
	return NewCategoryRepository(r.db)
}

func (r *gormRepositories) Customers() domainRepo.CustomerRepository {
	return NewCustomerRepository(r.db)
}

func (r *gormRepositories) CustomerDues() domainRepo.CustomerDueRepository {
	return NewCustomerDueRepository(r.db)
}

func (r *gormRepositories) Orders() domainRepo.OrderRepository {
	return NewOrderRepository(r.db)
}

func (r *gormRepositories) OrderLines() domainRepo.OrderLineRepository {
	return NewOrderLineRepository(r.db)
}

func (r *gormRepositories) Sales() domainRepo.SaleRepository {
	return NewSaleRepository(r.db)
}

func (r *gormRepositories) SaleLines() domainRepo.SaleLineRepository {
	return NewSaleLineRepository(r.db)
}

func (r *gormRepositories) Payments() domainRepo.PaymentRepository {
	return NewPaymentRepository(r.db)
}

func (r *gormRepositories) Receipts() domainRepo.ReceiptRepository {
	return NewReceiptRepository(r.db)
}

func (r *gormRepositories) Tickets() domainRepo.KotBotRepository {
	return NewKotBotRepository(r.db)
}

func (r *gormRepositories) TicketItems() domainRepo.KotBotItemRepository {
	return NewKotBotItemRepository(r.db)
}

func (r *gormRepositories) Suppliers() domainRepo.SupplierRepository {
	return NewSupplierRepository(r.db)
}

func (r *gormRepositories) Purchases() domainRepo.PurchaseRepository {
	return NewPurchaseRepository(r.db)
}

func (r *gormRepositories) PurchaseDetails() domainRepo.PurchaseDetailRepository {
	return NewPurchaseDetailRepository(r.db)
}

func (r *gormRepositories) Counters() domainRepo.CounterRepository {
	return NewCounterRepository(r.db)
}

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work over the given connection
func NewUnitOfWork(db *gorm.DB) domainRepo.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do runs fn with repositories scoped to a single database transaction.
// Any error rolls back every write made inside fn.
func (u *unitOfWork) Do(ctx context.Context, fn func(r domainRepo.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositories{db: tx})
	})
}

// Repos returns repositories bound to the plain connection
func (u *unitOfWork) Repos() domainRepo.Repositories {
	return &gormRepositories{db: u.db}
}
