package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoflow/restoflow-api/pkg/apperror"
	"github.com/restoflow/restoflow-api/pkg/pagination"
)

func newTestCustomerService(store *memStore) *CustomerService {
	return NewCustomerService(newFakeUOW(store))
}

func TestDeleteCustomerWithoutHistory(t *testing.T) {
	store := newMemStore()
	customer := store.seedCustomer("Walk-in")
	svc := newTestCustomerService(store)

	require.NoError(t, svc.DeleteCustomer(context.Background(), customer.ID))
	assert.NotContains(t, store.customers, customer.ID)
}

func TestDeleteCustomerWithHistoryIsRejected(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	customer := store.seedCustomer("Regular")

	orders := newTestOrderService(store)
	_, err := orders.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:     newUserID(),
		CustomerID: &customer.ID,
		Lines:      []OrderLineInput{{ProductID: coffee.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	svc := newTestCustomerService(store)
	err = svc.DeleteCustomer(context.Background(), customer.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	assert.Contains(t, store.customers, customer.ID)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	store := newMemStore()
	svc := newTestCustomerService(store)

	err := svc.DeleteCustomer(context.Background(), newUserID())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListCustomerDues(t *testing.T) {
	store := newMemStore()
	coffee := store.seedProduct("Coffee", 500, 10)
	customer := store.seedCustomer("Regular")

	sales := newTestSaleService(store)
	_, err := sales.CreateSale(context.Background(), &CreateSaleInput{
		UserID:     newUserID(),
		CustomerID: &customer.ID,
		Lines:      []OrderLineInput{{ProductID: coffee.ID, Quantity: 1}},
		Payments:   []PaymentInput{{Method: "credit", Amount: 5.00}},
	})
	require.NoError(t, err)

	svc := newTestCustomerService(store)
	result, err := svc.ListCustomerDues(context.Background(), customer.ID, &pagination.PaginationParams{Page: 1, PerPage: 20})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(500), result.Items[0].Amount)

	_, err = svc.ListCustomerDues(context.Background(), newUserID(), &pagination.PaginationParams{Page: 1, PerPage: 20})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateCustomerContactDetails(t *testing.T) {
	store := newMemStore()
	customer := store.seedCustomer("Regular")
	svc := newTestCustomerService(store)

	name := "Regular Plus"
	phone := "0700123456"
	updated, err := svc.UpdateCustomer(context.Background(), customer.ID, &UpdateCustomerInput{
		Name:  &name,
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Regular Plus", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "0700123456", *updated.Phone)
}
