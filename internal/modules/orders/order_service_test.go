package orders

import (
	"context"
	"testing"
	"time"

	"vendee/internal/models"
	"vendee/internal/modules/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, catalog.RepositoryInterface, *fakeScheduler) {
	t.Helper()
	repo := catalog.NewRepository()
	require.NoError(t, repo.Insert(&models.Vendor{
		ID:   "V100",
		Name: "Priya Sharma",
		Type: models.VendorTypeStationary,
		Location: models.Coordinate{
			Latitude:  28.7039,
			Longitude: 77.1028,
		},
		Status: models.VendorStatusActive,
		Items: []models.Item{
			{Name: "Mango", PricePerUnit: 80, Unit: "kg", Quantity: "20 kg"},
			{Name: "Banana", PricePerUnit: 40, Unit: "dozen", Quantity: "15 dozen"},
		},
	}))
	require.NoError(t, repo.Insert(movingVendor()))

	sched := newFakeScheduler()
	svc := NewService(repo, &simulatedGateway{accept: func() bool { return true }}, sched, DefaultTimings())
	return svc, repo, sched
}

func TestPlaceOrderCapturesTotal(t *testing.T) {
	svc, _, _ := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID: "V100",
		Items: []models.RequestedItem{
			{Name: "Mango", Quantity: 2, Unit: "kg"},
		},
		Destination: custLoc,
	})
	require.NoError(t, err)

	assert.Equal(t, 160.0, order.Total)
	assert.Equal(t, models.OrderPending, order.Status)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 80.0, order.Lines[0].UnitPrice)
	assert.Contains(t, order.ID, "O-")
}

func TestPlaceOrderTotalImmuneToPriceEdits(t *testing.T) {
	svc, repo, _ := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID:    "V100",
		Items:       []models.RequestedItem{{Name: "Mango", Quantity: 2, Unit: "kg"}},
		Destination: custLoc,
	})
	require.NoError(t, err)
	require.Equal(t, 160.0, order.Total)

	// The vendor raises the price after the order is placed.
	require.NoError(t, repo.UpdateItemPrice("V100", "Mango", 90))

	got, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 160.0, got.Total, "placed orders keep the price at selection time")
	assert.Equal(t, 80.0, got.Lines[0].UnitPrice)
}

func TestPlaceOrderMixedBasket(t *testing.T) {
	svc, _, _ := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID: "V100",
		Items: []models.RequestedItem{
			{Name: "mango", Quantity: 1.5, Unit: "kg"},
			{Name: "Banana", Quantity: 2, Unit: "dozen"},
		},
		Destination: custLoc,
	})
	require.NoError(t, err)
	assert.Equal(t, 80*1.5+40*2, order.Total)
}

func TestPlaceOrderRejectsUnknownItem(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID:    "V100",
		Items:       []models.RequestedItem{{Name: "Durian", Quantity: 1}},
		Destination: custLoc,
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestPlaceOrderRejectsBadQuantity(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID:    "V100",
		Items:       []models.RequestedItem{{Name: "Mango", Quantity: 0}},
		Destination: custLoc,
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestPlaceOrderRejectsMissingDestination(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID: "V100",
		Items:    []models.RequestedItem{{Name: "Mango", Quantity: 1}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestPlaceOrderUnknownVendor(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID:    "V999",
		Items:       []models.RequestedItem{{Name: "Mango", Quantity: 1}},
		Destination: custLoc,
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrderProgressesThroughService(t *testing.T) {
	svc, _, sched := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID:    "V100",
		Items:       []models.RequestedItem{{Name: "Mango", Quantity: 1}},
		Destination: custLoc,
	})
	require.NoError(t, err)

	sched.Advance(3 * time.Second)
	got, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderAccepted, got.Status)
}

func TestCancelOrder(t *testing.T) {
	svc, _, sched := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID:    "V100",
		Items:       []models.RequestedItem{{Name: "Mango", Quantity: 1}},
		Destination: custLoc,
	})
	require.NoError(t, err)

	require.NoError(t, svc.CancelOrder(context.Background(), order.ID))

	got, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, got.Status)

	// Cancelled orders never progress, even as timers elapse.
	sched.Advance(time.Minute)
	got, err = svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, got.Status)

	assert.ErrorIs(t, svc.CancelOrder(context.Background(), order.ID), models.ErrOrderTerminal)
}

func TestCancelUnknownOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	assert.ErrorIs(t, svc.CancelOrder(context.Background(), "O-missing"), models.ErrNotFound)
}

func TestGetUnknownOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.GetOrder(context.Background(), "O-missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSubscribeReceivesUpdates(t *testing.T) {
	svc, _, sched := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		VendorID:    "V100",
		Items:       []models.RequestedItem{{Name: "Mango", Quantity: 1}},
		Destination: custLoc,
	})
	require.NoError(t, err)

	rec := &updateRecorder{}
	require.NoError(t, svc.Subscribe(order.ID, rec.record))

	sched.Advance(5 * time.Second)
	assert.Equal(t, []models.OrderStatus{
		models.OrderAccepted,
		models.OrderPreparing,
	}, rec.statuses())
}

func TestRequestMovingVendor(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.RequestMovingVendor(context.Background(), models.MovingVendorRequest{
		VendorID: "V002",
		Items:    []models.RequestedItem{{Name: "Mango", Quantity: 1}},
		Location: custLoc,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.VendorAccepted)
}

func TestRequestMovingVendorRejectsStationary(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.RequestMovingVendor(context.Background(), models.MovingVendorRequest{
		VendorID: "V100",
		Items:    []models.RequestedItem{{Name: "Mango", Quantity: 1}},
		Location: custLoc,
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRequestMovingVendorUnknownVendor(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.RequestMovingVendor(context.Background(), models.MovingVendorRequest{
		VendorID: "V404",
		Items:    []models.RequestedItem{{Name: "Mango", Quantity: 1}},
		Location: custLoc,
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
