package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/restoflow/restoflow-api/internal/domain/entity"
	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/internal/domain/repository"
	"github.com/restoflow/restoflow-api/pkg/apperror"
	"github.com/restoflow/restoflow-api/pkg/money"
	"github.com/restoflow/restoflow-api/pkg/pagination"
	"github.com/restoflow/restoflow-api/pkg/printer"
)

// PrefixInvoice is the document prefix for sale invoices
const PrefixInvoice = "INV"

// SaleService handles settlement: turning a cart or a held order into an
// immutable sale with stock decrements, payments, credit entries and a
// receipt, all in one transaction. Receipt printing happens after commit.
type SaleService struct {
	uow       repository.UnitOfWork
	numbering *NumberingService
	printer   printer.Printer
	logger    *zap.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(uow repository.UnitOfWork, numbering *NumberingService, p printer.Printer, logger *zap.Logger) *SaleService {
	return &SaleService{uow: uow, numbering: numbering, printer: p, logger: logger}
}

// PaymentInput is one tendered payment
type PaymentInput struct {
	Method    string
	Amount    float64
	Reference *string
}

// CreateSaleInput represents a direct cart checkout
type CreateSaleInput struct {
	UserID           uuid.UUID
	CustomerID       *uuid.UUID
	Lines            []OrderLineInput
	CartDiscount     float64
	CartDiscountType enum.DiscountType
	TaxRate          float64
	Payments         []PaymentInput
}

// paymentSplit is the classified result of validating tendered payments
type paymentSplit struct {
	cash    int64
	cheque  int64
	card    int64
	voucher int64
	credit  int64
	rows    []entity.Payment
}

// classifyPayments validates each tendered payment and buckets it by
// method. The sum must reconcile exactly with total; credit needs a
// customer; gift vouchers need a voucher number.
func classifyPayments(payments []PaymentInput, total int64, hasCustomer bool) (*paymentSplit, error) {
	if len(payments) == 0 {
		return nil, apperror.NewBadRequestError("At least one payment is required")
	}

	split := &paymentSplit{}
	var sum int64
	for _, p := range payments {
		method, err := enum.ParsePaymentMethod(p.Method)
		if err != nil {
			return nil, apperror.NewBadRequestError("Unknown payment method " + p.Method)
		}
		amount := money.FromDecimal(p.Amount)
		if amount <= 0 {
			return nil, apperror.NewBadRequestError("Payment amount must be positive")
		}

		switch method {
		case enum.PaymentMethodCash:
			split.cash += amount
		case enum.PaymentMethodCheque:
			split.cheque += amount
		case enum.PaymentMethodCard:
			split.card += amount
		case enum.PaymentMethodGiftVoucher:
			if p.Reference == nil || *p.Reference == "" {
				return nil, apperror.NewBadRequestError("Gift voucher number is required")
			}
			split.voucher += amount
		case enum.PaymentMethodCredit:
			if !hasCustomer {
				return nil, apperror.NewBadRequestError("Credit payment requires a customer")
			}
			split.credit += amount
		}

		sum += amount
		split.rows = append(split.rows, entity.Payment{
			Method:    method,
			Amount:    amount,
			Reference: p.Reference,
		})
	}

	if sum != total {
		return nil, apperror.NewBadRequestError(fmt.Sprintf(
			"Payments (%.2f) do not reconcile with total (%.2f)",
			money.ToDecimal(sum), money.ToDecimal(total)))
	}
	return split, nil
}

// applyStockDecrements batches line quantities per product and applies
// them as guarded deltas. A rejected decrement aborts with the current
// stock level in the error detail.
func applyStockDecrements(ctx context.Context, r repository.Repositories, lines []entity.SaleLine) error {
	perProduct := make(map[uuid.UUID]int)
	names := make(map[uuid.UUID]string)
	for _, l := range lines {
		perProduct[l.ProductID] += l.Quantity
		names[l.ProductID] = l.Name
	}

	for productID, qty := range perProduct {
		ok, err := r.Products().ApplyStockDelta(ctx, productID, -qty)
		if err != nil {
			return err
		}
		if !ok {
			current := 0
			if p, err := r.Products().GetByID(ctx, productID); err == nil && p != nil {
				current = p.Quantity
			}
			return apperror.NewInsufficientStockError(productID.String(), names[productID], current, qty)
		}
	}
	return nil
}

// restoreStock puts line quantities back, batched per product
func restoreStock(ctx context.Context, r repository.Repositories, lines []entity.SaleLine) error {
	perProduct := make(map[uuid.UUID]int)
	for _, l := range lines {
		perProduct[l.ProductID] += l.Quantity
	}
	for productID, qty := range perProduct {
		if _, err := r.Products().ApplyStockDelta(ctx, productID, qty); err != nil {
			return err
		}
	}
	return nil
}

// recordCredit writes an active due entry and bumps the customer balance
func recordCredit(ctx context.Context, r repository.Repositories, customerID, saleID uuid.UUID, amount int64) error {
	due := &entity.CustomerDue{
		CustomerID: customerID,
		SaleID:     saleID,
		Amount:     amount,
		Status:     enum.DueStatusActive,
	}
	if err := r.CustomerDues().Create(ctx, due); err != nil {
		return err
	}
	return r.Customers().IncrementDues(ctx, customerID, amount)
}

// reverseCredit marks a sale's active due entries reversed and takes the
// amounts back out of the customer balance, floored at zero. No active
// entries means nothing to do.
func reverseCredit(ctx context.Context, r repository.Repositories, saleID uuid.UUID) error {
	dues, err := r.CustomerDues().GetActiveBySale(ctx, saleID)
	if err != nil {
		return err
	}
	if len(dues) == 0 {
		return nil
	}
	if err := r.CustomerDues().MarkReversedBySale(ctx, saleID); err != nil {
		return err
	}
	for _, due := range dues {
		if err := r.Customers().DecrementDuesFloored(ctx, due.CustomerID, due.Amount); err != nil {
			return err
		}
	}
	return nil
}

// buildReceipt snapshots the sale into its printable form
func buildReceipt(sale *entity.Sale, customerName string) *entity.Receipt {
	items := make([]entity.ReceiptItem, 0, len(sale.Lines))
	for _, l := range sale.Lines {
		items = append(items, entity.ReceiptItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: money.ToDecimal(l.UnitPrice),
			Total:     money.ToDecimal(l.LineTotal),
		})
	}
	return &entity.Receipt{
		SaleID:       sale.ID,
		InvoiceNo:    sale.InvoiceNo,
		CustomerName: customerName,
		Items:        items,
		SubTotal:     money.ToDecimal(sale.SubTotal),
		CartDiscount: money.ToDecimal(sale.CartDiscount),
		TaxAmount:    money.ToDecimal(sale.TaxAmount),
		Total:        money.ToDecimal(sale.Total),
		Paid:         money.ToDecimal(sale.PaidTotal()),
		Credit:       money.ToDecimal(sale.CreditTotal),
		IssuedAt:     time.Now(),
	}
}

// CreateSale settles a direct cart checkout
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one line")
	}
	for _, l := range input.Lines {
		if l.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
	}

	var sale *entity.Sale
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		customerName := ""
		if input.CustomerID != nil {
			customer, err := r.Customers().GetByID(ctx, *input.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return apperror.NewNotFoundError("Customer")
			}
			customerName = customer.Name
		}

		orderLines, breakdown, err := buildOrderLines(ctx, r, input.Lines, input.CartDiscount, input.CartDiscountType, input.TaxRate)
		if err != nil {
			return err
		}
		saleLines := saleLinesFromOrderLines(orderLines)

		split, err := classifyPayments(input.Payments, breakdown.GrandTotal, input.CustomerID != nil)
		if err != nil {
			return err
		}

		invoiceNo, err := s.numbering.Next(ctx, r, PrefixInvoice)
		if err != nil {
			return err
		}

		sale, err = s.writeSale(ctx, r, &entity.Sale{
			InvoiceNo:    invoiceNo,
			CustomerID:   input.CustomerID,
			SubTotal:     breakdown.Subtotal,
			ItemDiscount: breakdown.ItemDiscount,
			CartDiscount: breakdown.CartDiscount,
			TaxAmount:    breakdown.Tax,
			Total:        breakdown.GrandTotal,
			CreatedByID:  input.UserID,
		}, saleLines, split, customerName)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.printReceipt(sale)
	return sale, nil
}

// SettleOrderInput represents the settle order input
type SettleOrderInput struct {
	UserID   uuid.UUID
	Payments []PaymentInput
}

// SettleOrder converts a held order into a sale using the order's stored
// lines and totals, then binds the order to the sale and marks it settled
func (s *SaleService) SettleOrder(ctx context.Context, orderID uuid.UUID, input *SettleOrderInput) (*entity.Sale, error) {
	var sale *entity.Sale
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		order, err := r.Orders().GetWithLines(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		if order.Status != enum.OrderStatusHeld {
			return apperror.NewConflictError("Order is already " + order.Status.String())
		}
		if len(order.Lines) == 0 {
			return apperror.NewBadRequestError("Order has no lines")
		}

		customerName := ""
		if order.CustomerID != nil {
			customer, err := r.Customers().GetByID(ctx, *order.CustomerID)
			if err != nil {
				return err
			}
			if customer != nil {
				customerName = customer.Name
			}
		}

		saleLines := make([]entity.SaleLine, 0, len(order.Lines))
		var itemDiscount int64
		for _, l := range order.Lines {
			gross := int64(l.Quantity) * l.UnitPrice
			if gross > l.LineTotal {
				itemDiscount += gross - l.LineTotal
			}
			saleLines = append(saleLines, entity.SaleLine{
				ProductID:    l.ProductID,
				Name:         l.Name,
				Quantity:     l.Quantity,
				UnitPrice:    l.UnitPrice,
				Discount:     l.Discount,
				DiscountType: l.DiscountType,
				LineTotal:    l.LineTotal,
			})
		}

		split, err := classifyPayments(input.Payments, order.Total, order.CustomerID != nil)
		if err != nil {
			return err
		}

		invoiceNo, err := s.numbering.Next(ctx, r, PrefixInvoice)
		if err != nil {
			return err
		}

		cartDiscountCents := money.CartDiscount(order.SubTotal, money.Discount{
			Type:  order.CartDiscountType,
			Value: order.CartDiscount,
		})

		sale, err = s.writeSale(ctx, r, &entity.Sale{
			InvoiceNo:    invoiceNo,
			CustomerID:   order.CustomerID,
			SubTotal:     order.SubTotal,
			ItemDiscount: itemDiscount,
			CartDiscount: cartDiscountCents,
			TaxAmount:    order.TaxAmount,
			Total:        order.Total,
			CreatedByID:  input.UserID,
		}, saleLines, split, customerName)
		if err != nil {
			return err
		}

		order.SaleID = &sale.ID
		order.Status = enum.OrderStatusSettled
		return r.Orders().Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.printReceipt(sale)
	return sale, nil
}

// writeSale performs the shared middle of every settlement: header, line
// snapshots, stock decrements, payment rows, credit entry, receipt
func (s *SaleService) writeSale(ctx context.Context, r repository.Repositories, sale *entity.Sale, lines []entity.SaleLine, split *paymentSplit, customerName string) (*entity.Sale, error) {
	sale.PaidCash = split.cash
	sale.PaidCheque = split.cheque
	sale.PaidCard = split.card
	sale.PaidVoucher = split.voucher
	sale.CreditTotal = split.credit

	if err := r.Sales().Create(ctx, sale); err != nil {
		return nil, err
	}

	for i := range lines {
		lines[i].SaleID = sale.ID
	}
	if err := r.SaleLines().CreateBatch(ctx, lines); err != nil {
		return nil, err
	}
	sale.Lines = lines

	if err := applyStockDecrements(ctx, r, lines); err != nil {
		return nil, err
	}

	payments := make([]entity.Payment, len(split.rows))
	copy(payments, split.rows)
	for i := range payments {
		payments[i].SaleID = sale.ID
	}
	if err := r.Payments().CreateBatch(ctx, payments); err != nil {
		return nil, err
	}
	sale.Payments = payments

	if split.credit > 0 {
		if err := recordCredit(ctx, r, *sale.CustomerID, sale.ID, split.credit); err != nil {
			return nil, err
		}
	}

	receipt := buildReceipt(sale, customerName)
	if err := r.Receipts().Create(ctx, receipt); err != nil {
		return nil, err
	}
	sale.Receipt = receipt

	return sale, nil
}

// UpdateSaleInput represents the update sale input: a full replacement
// cart and payment set
type UpdateSaleInput struct {
	CustomerID       *uuid.UUID
	Lines            []OrderLineInput
	CartDiscount     float64
	CartDiscountType enum.DiscountType
	TaxRate          float64
	Payments         []PaymentInput
}

// UpdateSale reverses the stock and credit effects of the existing sale,
// then replays settlement with the new input under the same invoice number
func (s *SaleService) UpdateSale(ctx context.Context, id uuid.UUID, input *UpdateSaleInput) (*entity.Sale, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one line")
	}
	for _, l := range input.Lines {
		if l.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}
	}

	var sale *entity.Sale
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		existing, err := r.Sales().GetWithDetails(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperror.NewNotFoundError("Sale")
		}

		// Reverse the old effects
		if err := restoreStock(ctx, r, existing.Lines); err != nil {
			return err
		}
		if err := reverseCredit(ctx, r, existing.ID); err != nil {
			return err
		}
		if err := r.SaleLines().DeleteBySaleID(ctx, existing.ID); err != nil {
			return err
		}
		if err := r.Payments().DeleteBySaleID(ctx, existing.ID); err != nil {
			return err
		}
		if err := r.Receipts().DeleteBySaleID(ctx, existing.ID); err != nil {
			return err
		}

		// Replay with the new cart
		customerName := ""
		if input.CustomerID != nil {
			customer, err := r.Customers().GetByID(ctx, *input.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return apperror.NewNotFoundError("Customer")
			}
			customerName = customer.Name
		}

		orderLines, breakdown, err := buildOrderLines(ctx, r, input.Lines, input.CartDiscount, input.CartDiscountType, input.TaxRate)
		if err != nil {
			return err
		}
		saleLines := saleLinesFromOrderLines(orderLines)

		split, err := classifyPayments(input.Payments, breakdown.GrandTotal, input.CustomerID != nil)
		if err != nil {
			return err
		}

		existing.CustomerID = input.CustomerID
		existing.SubTotal = breakdown.Subtotal
		existing.ItemDiscount = breakdown.ItemDiscount
		existing.CartDiscount = breakdown.CartDiscount
		existing.TaxAmount = breakdown.Tax
		existing.Total = breakdown.GrandTotal
		existing.PaidCash = split.cash
		existing.PaidCheque = split.cheque
		existing.PaidCard = split.card
		existing.PaidVoucher = split.voucher
		existing.CreditTotal = split.credit
		if err := r.Sales().Update(ctx, existing); err != nil {
			return err
		}

		for i := range saleLines {
			saleLines[i].SaleID = existing.ID
		}
		if err := r.SaleLines().CreateBatch(ctx, saleLines); err != nil {
			return err
		}
		existing.Lines = saleLines

		if err := applyStockDecrements(ctx, r, saleLines); err != nil {
			return err
		}

		payments := make([]entity.Payment, len(split.rows))
		copy(payments, split.rows)
		for i := range payments {
			payments[i].SaleID = existing.ID
		}
		if err := r.Payments().CreateBatch(ctx, payments); err != nil {
			return err
		}
		existing.Payments = payments

		if split.credit > 0 {
			if err := recordCredit(ctx, r, *existing.CustomerID, existing.ID, split.credit); err != nil {
				return err
			}
		}

		receipt := buildReceipt(existing, customerName)
		if err := r.Receipts().Create(ctx, receipt); err != nil {
			return err
		}
		existing.Receipt = receipt

		sale = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.printReceipt(sale)
	return sale, nil
}

// DeleteSale undoes a settlement: stock comes back, credit is reversed,
// and the sale with its lines, payments and receipt is removed. An order
// bound to the sale returns to held so it can be corrected and resettled.
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(r repository.Repositories) error {
		sale, err := r.Sales().GetWithDetails(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return apperror.NewNotFoundError("Sale")
		}

		if err := restoreStock(ctx, r, sale.Lines); err != nil {
			return err
		}
		if err := reverseCredit(ctx, r, sale.ID); err != nil {
			return err
		}
		if err := r.SaleLines().DeleteBySaleID(ctx, sale.ID); err != nil {
			return err
		}
		if err := r.Payments().DeleteBySaleID(ctx, sale.ID); err != nil {
			return err
		}
		if err := r.Receipts().DeleteBySaleID(ctx, sale.ID); err != nil {
			return err
		}

		order, err := r.Orders().GetBySaleID(ctx, sale.ID)
		if err != nil {
			return err
		}
		if order != nil {
			order.SaleID = nil
			order.Status = enum.OrderStatusHeld
			if err := r.Orders().Update(ctx, order); err != nil {
				return err
			}
		}

		return r.Sales().Delete(ctx, sale.ID)
	})
}

// GetSale retrieves a sale with lines, payments and customer
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.uow.Repos().Sales().GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering and pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.uow.Repos().Sales().List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// saleLinesFromOrderLines converts resolved cart lines to sale snapshots
func saleLinesFromOrderLines(lines []entity.OrderLine) []entity.SaleLine {
	out := make([]entity.SaleLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.SaleLine{
			ProductID:    l.ProductID,
			Name:         l.Name,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			Discount:     l.Discount,
			DiscountType: l.DiscountType,
			LineTotal:    l.LineTotal,
		})
	}
	return out
}

// printReceipt renders and sends the receipt after commit. Printing is
// best effort: a failure is logged, never returned to the caller.
func (s *SaleService) printReceipt(sale *entity.Sale) {
	if sale == nil || sale.Receipt == nil {
		return
	}
	doc := printer.NewDocument(32)
	doc.SetAlign(printer.AlignCenter).SetBold(true).Text("RESTOFLOW").SetBold(false)
	doc.Text(sale.Receipt.InvoiceNo)
	doc.SetAlign(printer.AlignLeft).Separator('-')
	for _, item := range sale.Receipt.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
	}
	doc.Separator('-')
	doc.KeyValue("Subtotal", fmt.Sprintf("%.2f", sale.Receipt.SubTotal))
	if sale.Receipt.CartDiscount > 0 {
		doc.KeyValue("Discount", fmt.Sprintf("-%.2f", sale.Receipt.CartDiscount))
	}
	doc.KeyValue("Tax", fmt.Sprintf("%.2f", sale.Receipt.TaxAmount))
	doc.SetBold(true).KeyValue("TOTAL", fmt.Sprintf("%.2f", sale.Receipt.Total)).SetBold(false)
	doc.KeyValue("Paid", fmt.Sprintf("%.2f", sale.Receipt.Paid))
	if sale.Receipt.Credit > 0 {
		doc.KeyValue("On credit", fmt.Sprintf("%.2f", sale.Receipt.Credit))
	}
	doc.FeedLines(3).Cut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		s.logger.Warn("receipt print failed",
			zap.String("invoice_no", sale.InvoiceNo),
			zap.Error(err))
	}
}
