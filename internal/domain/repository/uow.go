package repository

import "context"

// Repositories bundles every repository the engine touches. Inside
// UnitOfWork.Do all of them are scoped to the same database transaction;
// outside, they run against the plain connection.
type Repositories interface {
	Products() ProductRepository
	Categories() CategoryRepository
	Customers() CustomerRepository
	CustomerDues() CustomerDueRepository
	Orders() OrderRepository
	OrderLines() OrderLineRepository
	Sales() SaleRepository
	SaleLines() SaleLineRepository
	Payments() PaymentRepository
	Receipts() ReceiptRepository
	Tickets() KotBotRepository
	TicketItems() KotBotItemRepository
	Suppliers() SupplierRepository
	Purchases() PurchaseRepository
	PurchaseDetails() PurchaseDetailRepository
	Counters() CounterRepository
}

// UnitOfWork runs a function with transaction-scoped repositories.
// Returning an error from fn rolls back everything; nil commits.
// The engine never hands out a process-global handle: every mutating
// operation receives its repositories through Do.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r Repositories) error) error
	// Repos returns repositories bound to the plain connection,
	// for reads that need no transaction
	Repos() Repositories
}
