package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/pkg/apperror"
)

func newTestOrderService(store *memStore) *OrderService {
	return NewOrderService(newFakeUOW(store), fixedNumbering())
}

func TestCreateOrderSnapshotsProducts(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	cake := store.seedProduct("Cake", 250, 5)
	svc := newTestOrderService(store)

	table := "T4"
	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:  newUserID(),
		TableNo: &table,
		Lines: []OrderLineInput{
			{ProductID: coffee.ID, Quantity: 2, Instructions: "extra hot"},
			{ProductID: cake.ID, Quantity: 1, Discount: 10, DiscountType: enum.DiscountTypePercentage},
		},
		TaxRate: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-20260314-0001", order.OrderNo)
	assert.Equal(t, enum.OrderStatusHeld, order.Status)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "Coffee", order.Lines[0].Name)
	assert.Equal(t, int64(500), order.Lines[0].UnitPrice)
	assert.Equal(t, "extra hot", order.Lines[0].Instructions)
	assert.Equal(t, int64(1000), order.Lines[0].LineTotal)
	// 250 less 10% = 225
	assert.Equal(t, int64(225), order.Lines[1].LineTotal)
	assert.Equal(t, int64(1225), order.SubTotal)
	// 5% of 1225 rounded half up
	assert.Equal(t, int64(61), order.TaxAmount)
	assert.Equal(t, int64(1286), order.Total)

	// Holding never moves stock
	assert.Equal(t, 10, store.products[coffee.ID].Quantity)
	assert.Equal(t, 5, store.products[cake.ID].Quantity)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	store := newMemStore()
	svc := newTestOrderService(store)

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: newUserID(),
		Lines:  []OrderLineInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsEmptyAndNonPositive(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	svc := newTestOrderService(store)

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{UserID: newUserID()})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: newUserID(),
		Lines:  []OrderLineInput{{ProductID: coffee.ID, Quantity: 0}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateOrderReplacesLinesWholesale(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	cake := store.seedProduct("Cake", 250, 5)
	svc := newTestOrderService(store)

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: newUserID(),
		Lines:  []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateOrder(context.Background(), order.ID, &UpdateOrderInput{
		Lines: []OrderLineInput{{ProductID: cake.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	require.Len(t, updated.Lines, 1)
	assert.Equal(t, "Cake", updated.Lines[0].Name)
	assert.Equal(t, int64(750), updated.Total)

	// Old lines are gone from the store, not merged
	lines, err := newFakeUOW(store).Repos().OrderLines().GetByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, cake.ID, lines[0].ProductID)
}

func TestUpdateOrderRejectsTerminal(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	svc := newTestOrderService(store)

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: newUserID(),
		Lines:  []OrderLineInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	store.orders[order.ID].Status = enum.OrderStatusSettled

	_, err = svc.UpdateOrder(context.Background(), order.ID, &UpdateOrderInput{
		Lines: []OrderLineInput{{ProductID: coffee.ID, Quantity: 2}},
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeleteOrder(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	svc := newTestOrderService(store)

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: newUserID(),
		Lines:  []OrderLineInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), order.ID))
	assert.NotContains(t, store.orders, order.ID)
	assert.Empty(t, store.orderLines)
}

func TestDeleteOrderRejectsSettled(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	svc := newTestOrderService(store)

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID: newUserID(),
		Lines:  []OrderLineInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	store.orders[order.ID].Status = enum.OrderStatusSettled

	err = svc.DeleteOrder(context.Background(), order.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	svc := newTestOrderService(store)

	ghost := uuid.New()
	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     newUserID(),
		CustomerID: &ghost,
		Lines:      []OrderLineInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
