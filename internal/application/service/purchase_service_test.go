package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoflow/restoflow-api/internal/domain/enum"
	"github.com/restoflow/restoflow-api/pkg/apperror"
)

func newTestPurchaseService(store *memStore) *PurchaseService {
	return NewPurchaseService(newFakeUOW(store), fixedNumbering())
}

func TestCreatePurchasePendingDoesNotMoveStock(t *testing.T) {
	store := newMemStore()
	flour := store.seedProduct("Flour", 200, 3)
	svc := newTestPurchaseService(store)

	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		UserID:     newUserID(),
		PurchaseNo: "PO-1001",
		Items:      []PurchaseItemInput{{ProductID: flour.ID, Quantity: 20, UnitCost: 2.00}},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PurchaseStatusPending, purchase.Status)
	assert.Equal(t, int64(4000), purchase.TotalAmount)
	assert.Equal(t, 3, store.products[flour.ID].Quantity)
	require.Len(t, store.purchaseDetails, 1)
	assert.Equal(t, int64(200), store.purchaseDetails[0].UnitCost)
}

func TestCreatePurchaseOnCredit(t *testing.T) {
	store := newMemStore()
	flour := store.seedProduct("Flour", 200, 3)
	vendor := store.seedSupplier("Mills Co")
	svc := newTestPurchaseService(store)

	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		UserID:     newUserID(),
		SupplierID: &vendor.ID,
		PurchaseNo: "PO-1002",
		OnCredit:   true,
		Items:      []PurchaseItemInput{{ProductID: flour.ID, Quantity: 10, UnitCost: 2.50}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2500), store.suppliers[vendor.ID].Dues)
}

func TestCreatePurchaseCreditNeedsSupplier(t *testing.T) {
	store := newMemStore()
	flour := store.seedProduct("Flour", 200, 3)
	svc := newTestPurchaseService(store)

	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		UserID:     newUserID(),
		PurchaseNo: "PO-1003",
		OnCredit:   true,
		Items:      []PurchaseItemInput{{ProductID: flour.ID, Quantity: 10, UnitCost: 2.50}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestApprovePurchaseStocksIn(t *testing.T) {
	store := newMemStore()
	flour := store.seedProduct("Flour", 200, 3)
	svc := newTestPurchaseService(store)

	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		UserID:     newUserID(),
		PurchaseNo: "PO-1004",
		Items:      []PurchaseItemInput{{ProductID: flour.ID, Quantity: 20, UnitCost: 2.00}},
	})
	require.NoError(t, err)

	approved, err := svc.ApprovePurchase(context.Background(), purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusApproved, approved.Status)
	assert.Equal(t, 23, store.products[flour.ID].Quantity)

	_, err = svc.ApprovePurchase(context.Background(), purchase.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreatePurchaseReturn(t *testing.T) {
	store := newMemStore()
	flour := store.seedProduct("Flour", 200, 0)
	vendor := store.seedSupplier("Mills Co")
	svc := newTestPurchaseService(store)

	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		UserID:     newUserID(),
		SupplierID: &vendor.ID,
		PurchaseNo: "PO-1005",
		OnCredit:   true,
		Items:      []PurchaseItemInput{{ProductID: flour.ID, Quantity: 20, UnitCost: 2.00}},
	})
	require.NoError(t, err)
	_, err = svc.ApprovePurchase(context.Background(), purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, store.products[flour.ID].Quantity)
	assert.Equal(t, int64(4000), store.suppliers[vendor.ID].Dues)

	detailID := store.purchaseDetails[0].ID
	returned, err := svc.CreatePurchaseReturn(context.Background(), purchase.ID, []ReturnItemInput{
		{DetailID: detailID, Quantity: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 15, store.products[flour.ID].Quantity)
	assert.Equal(t, 5, store.purchaseDetails[0].ReturnedQty)
	assert.Equal(t, int64(1000), returned.ReturnedAmount)
	require.NotNil(t, returned.ReturnInvoiceNo)
	assert.Equal(t, "RET-20260314-001", *returned.ReturnInvoiceNo)
	assert.Equal(t, int64(3000), store.suppliers[vendor.ID].Dues)
}

func TestPurchaseReturnExceedsReturnable(t *testing.T) {
	store := newMemStore()
	flour := store.seedProduct("Flour", 200, 0)
	svc := newTestPurchaseService(store)

	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		UserID:     newUserID(),
		PurchaseNo: "PO-1006",
		Items:      []PurchaseItemInput{{ProductID: flour.ID, Quantity: 4, UnitCost: 2.00}},
	})
	require.NoError(t, err)
	_, err = svc.ApprovePurchase(context.Background(), purchase.ID)
	require.NoError(t, err)

	detailID := store.purchaseDetails[0].ID
	_, err = svc.CreatePurchaseReturn(context.Background(), purchase.ID, []ReturnItemInput{
		{DetailID: detailID, Quantity: 3},
	})
	require.NoError(t, err)

	// Only one unit left returnable
	_, err = svc.CreatePurchaseReturn(context.Background(), purchase.ID, []ReturnItemInput{
		{DetailID: detailID, Quantity: 2},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Contains(t, err.Error(), "returnable")
}

func TestPurchaseReturnRequiresApproved(t *testing.T) {
	store := newMemStore()
	flour := store.seedProduct("Flour", 200, 0)
	svc := newTestPurchaseService(store)

	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		UserID:     newUserID(),
		PurchaseNo: "PO-1007",
		Items:      []PurchaseItemInput{{ProductID: flour.ID, Quantity: 4, UnitCost: 2.00}},
	})
	require.NoError(t, err)

	_, err = svc.CreatePurchaseReturn(context.Background(), purchase.ID, []ReturnItemInput{
		{DetailID: store.purchaseDetails[0].ID, Quantity: 1},
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestPurchaseReturnGuardedByStock(t *testing.T) {
	store := newMemStore()
	flour := store.seedProduct("Flour", 200, 0)
	svc := newTestPurchaseService(store)

	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		UserID:     newUserID(),
		PurchaseNo: "PO-1008",
		Items:      []PurchaseItemInput{{ProductID: flour.ID, Quantity: 10, UnitCost: 2.00}},
	})
	require.NoError(t, err)
	_, err = svc.ApprovePurchase(context.Background(), purchase.ID)
	require.NoError(t, err)

	// Sell the stock out from under the return
	store.products[flour.ID].Quantity = 2

	_, err = svc.CreatePurchaseReturn(context.Background(), purchase.ID, []ReturnItemInput{
		{DetailID: store.purchaseDetails[0].ID, Quantity: 5},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))
}
