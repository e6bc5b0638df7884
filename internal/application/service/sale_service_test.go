package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/pkg/apperror"
	"github.com/restoflow/restoflow-api/pkg/printer"
)

func ref(s string) *string { return &s }

// fixedNumbering issues numbers against a frozen clock so ticket and
// invoice formats are assertable
func fixedNumbering() *NumberingService {
	return &NumberingService{now: func() time.Time {
		return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	}}
}

func newTestSaleService(store *memStore) *SaleService {
	return NewSaleService(newFakeUOW(store), fixedNumbering(), printer.NewNullPrinter(), zap.NewNop())
}

func TestCreateSaleCashHappyPath(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	cake := store.seedProduct("Cake", 250, 5)
	svc := newTestSaleService(store)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID: newUserID(),
		Lines: []OrderLineInput{
			{ProductID: coffee.ID, Quantity: 2},
			{ProductID: cake.ID, Quantity: 1},
		},
		Payments: []PaymentInput{{Method: "cash", Amount: 12.50}},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-20260314-0001", sale.InvoiceNo)
	assert.Equal(t, int64(1250), sale.Total)
	assert.Equal(t, int64(1250), sale.PaidCash)
	assert.Equal(t, 8, store.products[coffee.ID].Quantity)
	assert.Equal(t, 4, store.products[cake.ID].Quantity)
	assert.Len(t, store.saleLines, 2)
	assert.Len(t, store.payments, 1)

	require.Len(t, store.receipts, 1)
	assert.Equal(t, sale.ID, store.receipts[0].SaleID)
	assert.InDelta(t, 12.50, store.receipts[0].Total, 0.001)
}

func TestCreateSalePaymentsMustReconcile(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	svc := newTestSaleService(store)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:   newUserID(),
		Lines:    []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
		Payments: []PaymentInput{{Method: "cash", Amount: 9.00}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Contains(t, err.Error(), "reconcile")
}

func TestCreateSaleCreditRequiresCustomer(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	svc := newTestSaleService(store)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:   newUserID(),
		Lines:    []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
		Payments: []PaymentInput{{Method: "credit", Amount: 10.00}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a customer")
}

func TestCreateSaleGiftVoucherNeedsReference(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	svc := newTestSaleService(store)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:   newUserID(),
		Lines:    []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
		Payments: []PaymentInput{{Method: "gift_voucher", Amount: 10.00}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "voucher number is required")

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:   newUserID(),
		Lines:    []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
		Payments: []PaymentInput{{Method: "gift_voucher", Amount: 10.00, Reference: ref("GV-77")}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), sale.PaidVoucher)
}

func TestCreateSaleCreditRecordsDue(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	guest := store.seedCustomer("Alex")
	svc := newTestSaleService(store)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:     newUserID(),
		CustomerID: &guest.ID,
		Lines:      []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
		Payments: []PaymentInput{
			{Method: "cash", Amount: 6.00},
			{Method: "credit", Amount: 4.00},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(400), sale.CreditTotal)
	assert.Equal(t, int64(400), store.customers[guest.ID].Dues)
	require.Len(t, store.dues, 1)
	assert.Equal(t, enum.DueStatusActive, store.dues[0].Status)
	assert.Equal(t, sale.ID, store.dues[0].SaleID)
	assert.Equal(t, int64(400), store.dues[0].Amount)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 1)
	svc := newTestSaleService(store)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:   newUserID(),
		Lines:    []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
		Payments: []PaymentInput{{Method: "cash", Amount: 10.00}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))

	detail := apperror.GetAppError(err).Details.(apperror.StockDetail)
	assert.Equal(t, 1, detail.CurrentStock)
	assert.Equal(t, 2, detail.RequestedQuantity)
}

func TestSettleOrder(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	uow := newFakeUOW(store)
	orderSvc := NewOrderService(uow, fixedNumbering())
	saleSvc := NewSaleService(uow, fixedNumbering(), printer.NewNullPrinter(), zap.NewNop())

	order, err := orderSvc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: newUserID(),
		Lines:  []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	// Holding an order never touches stock
	assert.Equal(t, 10, store.products[coffee.ID].Quantity)

	sale, err := saleSvc.SettleOrder(context.Background(), order.ID, &SettleOrderInput{
		UserID:   newUserID(),
		Payments: []PaymentInput{{Method: "cash", Amount: 10.00}},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, store.products[coffee.ID].Quantity)
	settled := store.orders[order.ID]
	assert.Equal(t, enum.OrderStatusSettled, settled.Status)
	require.NotNil(t, settled.SaleID)
	assert.Equal(t, sale.ID, *settled.SaleID)

	// Settling twice is a conflict
	_, err = saleSvc.SettleOrder(context.Background(), order.ID, &SettleOrderInput{
		UserID:   newUserID(),
		Payments: []PaymentInput{{Method: "cash", Amount: 10.00}},
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeleteSaleRestoresStockAndReversesCredit(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	guest := store.seedCustomer("Alex")
	svc := newTestSaleService(store)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:     newUserID(),
		CustomerID: &guest.ID,
		Lines:      []OrderLineInput{{ProductID: coffee.ID, Quantity: 3}},
		Payments:   []PaymentInput{{Method: "credit", Amount: 15.00}},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, store.products[coffee.ID].Quantity)
	assert.Equal(t, int64(1500), store.customers[guest.ID].Dues)

	require.NoError(t, svc.DeleteSale(context.Background(), sale.ID))

	assert.Equal(t, 10, store.products[coffee.ID].Quantity)
	assert.Equal(t, int64(0), store.customers[guest.ID].Dues)
	require.Len(t, store.dues, 1)
	assert.Equal(t, enum.DueStatusReversed, store.dues[0].Status)
	assert.Empty(t, store.saleLines)
	assert.Empty(t, store.payments)
	assert.Empty(t, store.receipts)
	assert.NotContains(t, store.sales, sale.ID)
}

func TestDeleteSaleUnbindsSettledOrder(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	uow := newFakeUOW(store)
	orderSvc := NewOrderService(uow, fixedNumbering())
	saleSvc := NewSaleService(uow, fixedNumbering(), printer.NewNullPrinter(), zap.NewNop())

	order, err := orderSvc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: newUserID(),
		Lines:  []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	sale, err := saleSvc.SettleOrder(context.Background(), order.ID, &SettleOrderInput{
		UserID:   newUserID(),
		Payments: []PaymentInput{{Method: "cash", Amount: 10.00}},
	})
	require.NoError(t, err)

	require.NoError(t, saleSvc.DeleteSale(context.Background(), sale.ID))

	reopened := store.orders[order.ID]
	assert.Equal(t, enum.OrderStatusHeld, reopened.Status)
	assert.Nil(t, reopened.SaleID)
	assert.Equal(t, 10, store.products[coffee.ID].Quantity)
}

func TestUpdateSaleReplaysUnderSameInvoice(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	svc := newTestSaleService(store)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:   newUserID(),
		Lines:    []OrderLineInput{{ProductID: coffee.ID, Quantity: 4}},
		Payments: []PaymentInput{{Method: "cash", Amount: 20.00}},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, store.products[coffee.ID].Quantity)

	updated, err := svc.UpdateSale(context.Background(), sale.ID, &UpdateSaleInput{
		Lines:    []OrderLineInput{{ProductID: coffee.ID, Quantity: 1}},
		Payments: []PaymentInput{{Method: "card", Amount: 5.00, Reference: ref("C-1")}},
	})
	require.NoError(t, err)

	assert.Equal(t, sale.InvoiceNo, updated.InvoiceNo)
	assert.Equal(t, int64(500), updated.Total)
	assert.Equal(t, int64(500), updated.PaidCard)
	assert.Equal(t, int64(0), updated.PaidCash)
	// Old decrement of 4 restored, then 1 taken back out
	assert.Equal(t, 9, store.products[coffee.ID].Quantity)
	assert.Len(t, store.saleLines, 1)
	assert.Len(t, store.payments, 1)
	assert.Len(t, store.receipts, 1)
}

func TestSaleInvoiceNumbersAreSequential(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 100)
	svc := newTestSaleService(store)

	for i, want := range []string{"INV-20260314-0001", "INV-20260314-0002", "INV-20260314-0003"} {
		sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
			UserID:   newUserID(),
			Lines:    []OrderLineInput{{ProductID: coffee.ID, Quantity: 1}},
			Payments: []PaymentInput{{Method: "cash", Amount: 5.00}},
		})
		require.NoError(t, err, "sale %d", i)
		assert.Equal(t, want, sale.InvoiceNo)
	}
}
