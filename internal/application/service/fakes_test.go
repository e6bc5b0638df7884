package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

// memStore is a hand-written in-memory backend shared by all fake
// repositories. Tests seed it directly and assert on its state after
// the service call returns.
type memStore struct {
	products        map[uuid.UUID]*entity.Product
	categories      map[uuid.UUID]*entity.Category
	customers       map[uuid.UUID]*entity.Customer
	dues            []*entity.CustomerDue
	orders          map[uuid.UUID]*entity.Order
	orderLines      []*entity.OrderLine
	sales           map[uuid.UUID]*entity.Sale
	saleLines       []*entity.SaleLine
	payments        []*entity.Payment
	receipts        []*entity.Receipt
	tickets         map[uuid.UUID]*entity.KotBot
	ticketItems     []*entity.KotBotItem
	suppliers       map[uuid.UUID]*entity.Supplier
	purchases       map[uuid.UUID]*entity.Purchase
	purchaseDetails []*entity.PurchaseDetail
	counters        map[string]int
}

func newUserID() uuid.UUID { return uuid.New() }

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[uuid.UUID]*entity.Product),
		categories: make(map[uuid.UUID]*entity.Category),
		customers:  make(map[uuid.UUID]*entity.Customer),
		orders:     make(map[uuid.UUID]*entity.Order),
		sales:      make(map[uuid.UUID]*entity.Sale),
		tickets:    make(map[uuid.UUID]*entity.KotBot),
		suppliers:  make(map[uuid.UUID]*entity.Supplier),
		purchases:  make(map[uuid.UUID]*entity.Purchase),
		counters:   make(map[string]int),
	}
}

func (m *memStore) seedProduct(name string, priceCents int64, quantity int) *entity.Product {
	p := &entity.Product{ID: uuid.New(), Name: name, Code: name, Price: priceCents, Quantity: quantity}
	m.products[p.ID] = p
	return p
}

func (m *memStore) seedCustomer(name string) *entity.Customer {
	c := &entity.Customer{ID: uuid.New(), Name: name}
	m.customers[c.ID] = c
	return c
}

func (m *memStore) seedSupplier(name string) *entity.Supplier {
	s := &entity.Supplier{ID: uuid.New(), Name: name}
	m.suppliers[s.ID] = s
	return s
}

// fakeUOW runs the callback against the shared store with no real
// transaction. Assertions on error paths therefore check only the error,
// never the rolled-back state.
type fakeUOW struct {
	store *memStore
}

func newFakeUOW(store *memStore) *fakeUOW {
	return &fakeUOW{store: store}
}

func (u *fakeUOW) Do(ctx context.Context, fn func(r repository.Repositories) error) error {
	return fn(&fakeRepos{store: u.store})
}

func (u *fakeUOW) Repos() repository.Repositories {
	return &fakeRepos{store: u.store}
}

type fakeRepos struct {
	store *memStore
}

func (f *fakeRepos) Products() repository.ProductRepository     { return &fakeProducts{f.store} }
func (f *fakeRepos) Categories() repository.CategoryRepository  { return &fakeCategories{f.store} }
func (f *fakeRepos) Customers() repository.CustomerRepository   { return &fakeCustomers{f.store} }
func (f *fakeRepos) CustomerDues() repository.CustomerDueRepository {
	return &fakeCustomerDues{f.store}
}
func (f *fakeRepos) Orders() repository.OrderRepository         { return &fakeOrders{f.store} }
func (f *fakeRepos) OrderLines() repository.OrderLineRepository { return &fakeOrderLines{f.store} }
func (f *fakeRepos) Sales() repository.SaleRepository           { return &fakeSales{f.store} }
func (f *fakeRepos) SaleLines() repository.SaleLineRepository   { return &fakeSaleLines{f.store} }
func (f *fakeRepos) Payments() repository.PaymentRepository     { return &fakePayments{f.store} }
func (f *fakeRepos) Receipts() repository.ReceiptRepository     { return &fakeReceipts{f.store} }
func (f *fakeRepos) Tickets() repository.KotBotRepository       { return &fakeTickets{f.store} }
func (f *fakeRepos) TicketItems() repository.KotBotItemRepository {
	return &fakeTicketItems{f.store}
}
func (f *fakeRepos) Suppliers() repository.SupplierRepository   { return &fakeSuppliers{f.store} }
func (f *fakeRepos) Purchases() repository.PurchaseRepository   { return &fakePurchases{f.store} }
func (f *fakeRepos) PurchaseDetails() repository.PurchaseDetailRepository {
	return &fakePurchaseDetails{f.store}
}
func (f *fakeRepos) Counters() repository.CounterRepository { return &fakeCounters{f.store} }

type fakeProducts struct{ store *memStore }

func (f *fakeProducts) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.store.products[product.ID] = product
	return nil
}

func (f *fakeProducts) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.store.products[id], nil
}

func (f *fakeProducts) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.store.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	for _, p := range f.store.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Update(ctx context.Context, product *entity.Product) error {
	f.store.products[product.ID] = product
	return nil
}

func (f *fakeProducts) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.products, id)
	return nil
}

func (f *fakeProducts) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.store.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProducts) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.store.products {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) ApplyStockDelta(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	p, ok := f.store.products[id]
	if !ok {
		return false, nil
	}
	if p.Quantity+delta < 0 {
		return false, nil
	}
	p.Quantity += delta
	return true, nil
}

type fakeCategories struct{ store *memStore }

func (f *fakeCategories) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.store.categories[category.ID] = category
	return nil
}

func (f *fakeCategories) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return f.store.categories[id], nil
}

func (f *fakeCategories) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, c := range f.store.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategories) Update(ctx context.Context, category *entity.Category) error {
	f.store.categories[category.ID] = category
	return nil
}

func (f *fakeCategories) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.categories, id)
	return nil
}

func (f *fakeCategories) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Category, int64, error) {
	var out []entity.Category
	for _, c := range f.store.categories {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeCustomers struct{ store *memStore }

func (f *fakeCustomers) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.store.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomers) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.store.customers[id], nil
}

func (f *fakeCustomers) Update(ctx context.Context, customer *entity.Customer) error {
	f.store.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomers) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.customers, id)
	return nil
}

func (f *fakeCustomers) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range f.store.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomers) ListWithDues(ctx context.Context, params *pagination.PaginationParams) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range f.store.customers {
		if c.Dues > 0 {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomers) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	for _, o := range f.store.orders {
		if o.CustomerID != nil && *o.CustomerID == id {
			count++
		}
	}
	for _, s := range f.store.sales {
		if s.CustomerID != nil && *s.CustomerID == id {
			count++
		}
	}
	for _, d := range f.store.dues {
		if d.CustomerID == id {
			count++
		}
	}
	return count, nil
}

func (f *fakeCustomers) IncrementDues(ctx context.Context, id uuid.UUID, amount int64) error {
	f.store.customers[id].Dues += amount
	return nil
}

func (f *fakeCustomers) DecrementDuesFloored(ctx context.Context, id uuid.UUID, amount int64) error {
	c := f.store.customers[id]
	c.Dues -= amount
	if c.Dues < 0 {
		c.Dues = 0
	}
	return nil
}

type fakeCustomerDues struct{ store *memStore }

func (f *fakeCustomerDues) Create(ctx context.Context, due *entity.CustomerDue) error {
	if due.ID == uuid.Nil {
		due.ID = uuid.New()
	}
	f.store.dues = append(f.store.dues, due)
	return nil
}

func (f *fakeCustomerDues) GetActiveBySale(ctx context.Context, saleID uuid.UUID) ([]entity.CustomerDue, error) {
	var out []entity.CustomerDue
	for _, d := range f.store.dues {
		if d.SaleID == saleID && d.Status == enum.DueStatusActive {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeCustomerDues) MarkReversedBySale(ctx context.Context, saleID uuid.UUID) error {
	for _, d := range f.store.dues {
		if d.SaleID == saleID && d.Status == enum.DueStatusActive {
			d.Status = enum.DueStatusReversed
		}
	}
	return nil
}

func (f *fakeCustomerDues) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.CustomerDue, int64, error) {
	var out []entity.CustomerDue
	for _, d := range f.store.dues {
		if d.CustomerID == customerID {
			out = append(out, *d)
		}
	}
	return out, int64(len(out)), nil
}

type fakeOrders struct{ store *memStore }

func (f *fakeOrders) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.store.orders[order.ID] = order
	return nil
}

func (f *fakeOrders) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.store.orders[id], nil
}

func (f *fakeOrders) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	o, ok := f.store.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *o
	copied.Lines = nil
	for _, l := range f.store.orderLines {
		if l.OrderID == id {
			copied.Lines = append(copied.Lines, *l)
		}
	}
	return &copied, nil
}

func (f *fakeOrders) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	for _, o := range f.store.orders {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.Order, error) {
	for _, o := range f.store.orders {
		if o.SaleID != nil && *o.SaleID == saleID {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) Update(ctx context.Context, order *entity.Order) error {
	f.store.orders[order.ID] = order
	return nil
}

func (f *fakeOrders) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.orders, id)
	return nil
}

func (f *fakeOrders) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range f.store.orders {
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrders) SetKotSent(ctx context.Context, id uuid.UUID, sent bool) error {
	if o, ok := f.store.orders[id]; ok {
		o.KotSent = sent
	}
	return nil
}

type fakeOrderLines struct{ store *memStore }

func (f *fakeOrderLines) CreateBatch(ctx context.Context, lines []entity.OrderLine) error {
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
		l := lines[i]
		f.store.orderLines = append(f.store.orderLines, &l)
	}
	return nil
}

func (f *fakeOrderLines) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error) {
	var out []entity.OrderLine
	for _, l := range f.store.orderLines {
		if l.OrderID == orderID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeOrderLines) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	kept := f.store.orderLines[:0]
	for _, l := range f.store.orderLines {
		if l.OrderID != orderID {
			kept = append(kept, l)
		}
	}
	f.store.orderLines = kept
	return nil
}

func (f *fakeOrderLines) MarkKotSelected(ctx context.Context, lineIDs []uuid.UUID) error {
	ids := make(map[uuid.UUID]bool, len(lineIDs))
	for _, id := range lineIDs {
		ids[id] = true
	}
	for _, l := range f.store.orderLines {
		if ids[l.ID] {
			l.KotSelected = true
		}
	}
	return nil
}

type fakeSales struct{ store *memStore }

func (f *fakeSales) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	f.store.sales[sale.ID] = sale
	return nil
}

func (f *fakeSales) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.store.sales[id], nil
}

func (f *fakeSales) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	s, ok := f.store.sales[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	copied.Lines = nil
	copied.Payments = nil
	for _, l := range f.store.saleLines {
		if l.SaleID == id {
			copied.Lines = append(copied.Lines, *l)
		}
	}
	for _, p := range f.store.payments {
		if p.SaleID == id {
			copied.Payments = append(copied.Payments, *p)
		}
	}
	return &copied, nil
}

func (f *fakeSales) Update(ctx context.Context, sale *entity.Sale) error {
	f.store.sales[sale.ID] = sale
	return nil
}

func (f *fakeSales) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.sales, id)
	return nil
}

func (f *fakeSales) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range f.store.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeSaleLines struct{ store *memStore }

func (f *fakeSaleLines) CreateBatch(ctx context.Context, lines []entity.SaleLine) error {
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
		l := lines[i]
		f.store.saleLines = append(f.store.saleLines, &l)
	}
	return nil
}

func (f *fakeSaleLines) GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleLine, error) {
	var out []entity.SaleLine
	for _, l := range f.store.saleLines {
		if l.SaleID == saleID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeSaleLines) DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error {
	kept := f.store.saleLines[:0]
	for _, l := range f.store.saleLines {
		if l.SaleID != saleID {
			kept = append(kept, l)
		}
	}
	f.store.saleLines = kept
	return nil
}

type fakePayments struct{ store *memStore }

func (f *fakePayments) CreateBatch(ctx context.Context, payments []entity.Payment) error {
	for i := range payments {
		if payments[i].ID == uuid.Nil {
			payments[i].ID = uuid.New()
		}
		p := payments[i]
		f.store.payments = append(f.store.payments, &p)
	}
	return nil
}

func (f *fakePayments) GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range f.store.payments {
		if p.SaleID == saleID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePayments) DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error {
	kept := f.store.payments[:0]
	for _, p := range f.store.payments {
		if p.SaleID != saleID {
			kept = append(kept, p)
		}
	}
	f.store.payments = kept
	return nil
}

type fakeReceipts struct{ store *memStore }

func (f *fakeReceipts) Create(ctx context.Context, receipt *entity.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	f.store.receipts = append(f.store.receipts, receipt)
	return nil
}

func (f *fakeReceipts) GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	for _, r := range f.store.receipts {
		if r.SaleID == saleID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReceipts) Update(ctx context.Context, receipt *entity.Receipt) error {
	for i, r := range f.store.receipts {
		if r.ID == receipt.ID {
			f.store.receipts[i] = receipt
		}
	}
	return nil
}

func (f *fakeReceipts) DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error {
	kept := f.store.receipts[:0]
	for _, r := range f.store.receipts {
		if r.SaleID != saleID {
			kept = append(kept, r)
		}
	}
	f.store.receipts = kept
	return nil
}

type fakeTickets struct{ store *memStore }

func (f *fakeTickets) Create(ctx context.Context, ticket *entity.KotBot) error {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	f.store.tickets[ticket.ID] = ticket
	return nil
}

func (f *fakeTickets) GetByID(ctx context.Context, id uuid.UUID) (*entity.KotBot, error) {
	return f.store.tickets[id], nil
}

func (f *fakeTickets) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.KotBot, error) {
	t, ok := f.store.tickets[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	copied.Items = nil
	for _, it := range f.store.ticketItems {
		if it.KotBotID == id {
			copied.Items = append(copied.Items, *it)
		}
	}
	return &copied, nil
}

func (f *fakeTickets) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TicketStatus) error {
	if t, ok := f.store.tickets[id]; ok {
		t.Status = status
	}
	return nil
}

func (f *fakeTickets) List(ctx context.Context, params *repository.TicketFilterParams) ([]entity.KotBot, int64, error) {
	var out []entity.KotBot
	for _, t := range f.store.tickets {
		if params.Type != nil && t.Type != *params.Type {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

type fakeTicketItems struct{ store *memStore }

func (f *fakeTicketItems) CreateBatch(ctx context.Context, items []entity.KotBotItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		it := items[i]
		f.store.ticketItems = append(f.store.ticketItems, &it)
	}
	return nil
}

func (f *fakeTicketItems) GetByID(ctx context.Context, id uuid.UUID) (*entity.KotBotItem, error) {
	for _, it := range f.store.ticketItems {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeTicketItems) SetPrepared(ctx context.Context, id uuid.UUID, prepared bool) error {
	for _, it := range f.store.ticketItems {
		if it.ID == id {
			it.Prepared = prepared
		}
	}
	return nil
}

type fakeSuppliers struct{ store *memStore }

func (f *fakeSuppliers) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	f.store.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSuppliers) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	return f.store.suppliers[id], nil
}

func (f *fakeSuppliers) Update(ctx context.Context, supplier *entity.Supplier) error {
	f.store.suppliers[supplier.ID] = supplier
	return nil
}

func (f *fakeSuppliers) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.suppliers, id)
	return nil
}

func (f *fakeSuppliers) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var out []entity.Supplier
	for _, s := range f.store.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSuppliers) IncrementDues(ctx context.Context, id uuid.UUID, amount int64) error {
	f.store.suppliers[id].Dues += amount
	return nil
}

func (f *fakeSuppliers) DecrementDuesFloored(ctx context.Context, id uuid.UUID, amount int64) error {
	s := f.store.suppliers[id]
	s.Dues -= amount
	if s.Dues < 0 {
		s.Dues = 0
	}
	return nil
}

type fakePurchases struct{ store *memStore }

func (f *fakePurchases) Create(ctx context.Context, purchase *entity.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	f.store.purchases[purchase.ID] = purchase
	return nil
}

func (f *fakePurchases) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	return f.store.purchases[id], nil
}

func (f *fakePurchases) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	p, ok := f.store.purchases[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	copied.Details = nil
	for _, d := range f.store.purchaseDetails {
		if d.PurchaseID == id {
			detail := *d
			if prod, ok := f.store.products[d.ProductID]; ok {
				detail.Product = *prod
			}
			copied.Details = append(copied.Details, detail)
		}
	}
	return &copied, nil
}

func (f *fakePurchases) Update(ctx context.Context, purchase *entity.Purchase) error {
	f.store.purchases[purchase.ID] = purchase
	return nil
}

func (f *fakePurchases) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseStatus) error {
	if p, ok := f.store.purchases[id]; ok {
		p.Status = status
	}
	return nil
}

func (f *fakePurchases) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.purchases, id)
	return nil
}

func (f *fakePurchases) List(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var out []entity.Purchase
	for _, p := range f.store.purchases {
		if params.Status != nil && p.Status != *params.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakePurchaseDetails struct{ store *memStore }

func (f *fakePurchaseDetails) CreateBatch(ctx context.Context, details []entity.PurchaseDetail) error {
	for i := range details {
		if details[i].ID == uuid.Nil {
			details[i].ID = uuid.New()
		}
		d := details[i]
		f.store.purchaseDetails = append(f.store.purchaseDetails, &d)
	}
	return nil
}

func (f *fakePurchaseDetails) Update(ctx context.Context, detail *entity.PurchaseDetail) error {
	for i, d := range f.store.purchaseDetails {
		if d.ID == detail.ID {
			copied := *detail
			f.store.purchaseDetails[i] = &copied
		}
	}
	return nil
}

func (f *fakePurchaseDetails) DeleteByPurchaseID(ctx context.Context, purchaseID uuid.UUID) error {
	kept := f.store.purchaseDetails[:0]
	for _, d := range f.store.purchaseDetails {
		if d.PurchaseID != purchaseID {
			kept = append(kept, d)
		}
	}
	f.store.purchaseDetails = kept
	return nil
}

type fakeCounters struct{ store *memStore }

func (f *fakeCounters) Next(ctx context.Context, prefix, day string) (int, error) {
	key := prefix + "|" + day
	f.store.counters[key]++
	return f.store.counters[key], nil
}
