package discovery

import (
	"context"
	"testing"

	"vendee/internal/models"
	"vendee/internal/modules/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDemand captures unmet-demand reports for assertions.
type recordingDemand struct {
	recorded [][]string
}

func (r *recordingDemand) Record(items []string, _ models.Coordinate) {
	r.recorded = append(r.recorded, items)
}

func (r *recordingDemand) TopSuggestions(int) []models.DemandSuggestion { return nil }

func newTestService(t *testing.T, vendors ...*models.Vendor) (ServiceInterface, *recordingDemand) {
	t.Helper()
	repo := catalog.NewRepository()
	for _, v := range vendors {
		require.NoError(t, repo.Insert(v))
	}
	demand := &recordingDemand{}
	return NewService(repo, NewEngine(), NewInterpreter(), demand, 2.0), demand
}

func TestSmartBuySplitsVendorTypes(t *testing.T) {
	svc, _ := newTestService(t,
		vendorFixture("S1", "Rajesh Kumar", models.VendorTypeStationary, 28.7041, 77.1025,
			models.Item{Name: "Banana", PricePerUnit: 60, Unit: "kg"}),
		vendorFixture("M1", "Amit Singh", models.VendorTypeMoving, 28.7045, 77.1030,
			models.Item{Name: "Banana", PricePerUnit: 65, Unit: "kg"}),
		vendorFixture("M2", "Suresh Patel", models.VendorTypeMoving, 28.7048, 77.1028,
			models.Item{Name: "Banana", PricePerUnit: 70, Unit: "kg"}),
	)

	resp, err := svc.SmartBuy(context.Background(), models.SmartBuyRequest{
		RequestText: "I want bananas delivered to my home",
		Location:    center,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Recommendations)

	// Delivery requested: up to two moving vendors shown.
	assert.Len(t, resp.Recommendations.MovingVendors, 2)
	assert.Len(t, resp.Recommendations.StationaryVendors, 1)
	assert.True(t, resp.Intent.DeliveryRequested)
	assert.NotEmpty(t, resp.Message)
}

func TestSmartBuyPickupShowsOneMovingVendor(t *testing.T) {
	svc, _ := newTestService(t,
		vendorFixture("M1", "Amit Singh", models.VendorTypeMoving, 28.7045, 77.1030,
			models.Item{Name: "Banana", PricePerUnit: 65, Unit: "kg"}),
		vendorFixture("M2", "Suresh Patel", models.VendorTypeMoving, 28.7048, 77.1028,
			models.Item{Name: "Banana", PricePerUnit: 70, Unit: "kg"}),
	)

	resp, err := svc.SmartBuy(context.Background(), models.SmartBuyRequest{
		RequestText: "I want to buy bananas",
		Location:    center,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Len(t, resp.Recommendations.MovingVendors, 1)
}

func TestSmartBuyClarifyPath(t *testing.T) {
	svc, demand := newTestService(t)

	resp, err := svc.SmartBuy(context.Background(), models.SmartBuyRequest{
		RequestText: "xyz nonsense",
		Location:    center,
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
	assert.NotEmpty(t, resp.Suggestions)
	assert.Empty(t, demand.recorded)
}

func TestSmartBuyMealChecklist(t *testing.T) {
	svc, demand := newTestService(t)

	resp, err := svc.SmartBuy(context.Background(), models.SmartBuyRequest{
		RequestText: "I want to make biryani",
		Location:    center,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	require.Len(t, resp.Checklist, 9)
	assert.Equal(t, "Basmati Rice", resp.Checklist[0].Name)
	assert.True(t, resp.Checklist[0].Required)
	assert.Contains(t, resp.Message, "ingredients")

	// The meal plan itself names no catalog items, so nothing counts as
	// unmet demand.
	assert.Empty(t, demand.recorded)
}

func TestSmartBuyRecordsUnmetDemand(t *testing.T) {
	// Catalog has vendors but none sells cucumbers.
	svc, demand := newTestService(t,
		vendorFixture("S1", "Rajesh Kumar", models.VendorTypeStationary, 28.7041, 77.1025,
			models.Item{Name: "Mango", PricePerUnit: 80, Unit: "kg"}),
	)

	resp, err := svc.SmartBuy(context.Background(), models.SmartBuyRequest{
		RequestText: "I want cucumber",
		Location:    center,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Empty(t, resp.Recommendations.MovingVendors)
	assert.Empty(t, resp.Recommendations.StationaryVendors)
	assert.Contains(t, resp.Message, "couldn't find any vendors")

	require.Len(t, demand.recorded, 1)
	assert.Contains(t, demand.recorded[0], "cucumber")
}

func TestSmartBuyRequiresLocation(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.SmartBuy(context.Background(), models.SmartBuyRequest{RequestText: "bananas"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestSearchSortsByDistanceThenRating(t *testing.T) {
	near := vendorFixture("A", "Near", models.VendorTypeStationary, 28.7042, 77.1026,
		models.Item{Name: "Banana", PricePerUnit: 60, Unit: "kg"})
	near.Rating = 4.0
	sameDistHigh := vendorFixture("B", "Twin High", models.VendorTypeStationary, 28.7050, 77.1035,
		models.Item{Name: "Banana", PricePerUnit: 55, Unit: "kg"})
	sameDistHigh.Rating = 4.9
	sameDistLow := vendorFixture("C", "Twin Low", models.VendorTypeStationary, 28.7050, 77.1035,
		models.Item{Name: "Banana", PricePerUnit: 50, Unit: "kg"})
	sameDistLow.Rating = 3.9

	svc, _ := newTestService(t, sameDistLow, near, sameDistHigh)

	results, err := svc.Search(context.Background(), "banana", center, 5.0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "A", results[0].Vendor.ID)
	assert.Equal(t, "B", results[1].Vendor.ID)
	assert.Equal(t, "C", results[2].Vendor.ID)
	assert.Equal(t, 60.0, results[0].TotalPrice)
	assert.True(t, results[0].Highlighted)
}

func TestSearchEmptyIsNoMatchNotError(t *testing.T) {
	svc, _ := newTestService(t,
		vendorFixture("A", "Rajesh", models.VendorTypeStationary, 28.7042, 77.1026,
			models.Item{Name: "Mango", PricePerUnit: 80, Unit: "kg"}),
	)
	results, err := svc.Search(context.Background(), "durian", center, 5.0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNearbyRadius(t *testing.T) {
	svc, _ := newTestService(t,
		vendorFixture("A", "Near", models.VendorTypeStationary, 28.7045, 77.1030,
			models.Item{Name: "Mango", PricePerUnit: 80, Unit: "kg"}),
		vendorFixture("B", "Far Away", models.VendorTypeStationary, 29.5, 78.2,
			models.Item{Name: "Mango", PricePerUnit: 80, Unit: "kg"}),
	)

	results, err := svc.Nearby(context.Background(), center, 2.0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Vendor.ID)
}

func TestLeaderboardSortsByRating(t *testing.T) {
	low := vendorFixture("A", "Low", models.VendorTypeStationary, 28.7042, 77.1026)
	low.Rating = 3.1
	high := vendorFixture("B", "High", models.VendorTypeMoving, 28.7045, 77.1030)
	high.Rating = 4.9
	mid := vendorFixture("C", "Mid", models.VendorTypeStationary, 28.7048, 77.1028)
	mid.Rating = 4.2

	svc, _ := newTestService(t, low, high, mid)

	results, err := svc.Leaderboard(context.Background(), center, 5.0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "B", results[0].Vendor.ID)
	assert.Equal(t, "C", results[1].Vendor.ID)
	assert.Equal(t, "A", results[2].Vendor.ID)
}

func TestBrowseEndToEndScenario(t *testing.T) {
	// Vendor A stationary at the center selling Mango, vendor B moving
	// nearby selling Mango and Onion. Moving filter within 2 km must
	// return exactly B.
	a := vendorFixture("A", "Vendor A", models.VendorTypeStationary, 28.7041, 77.1025,
		models.Item{Name: "Mango", PricePerUnit: 80, Unit: "kg"})
	b := vendorFixture("B", "Vendor B", models.VendorTypeMoving, 28.7045, 77.1030,
		models.Item{Name: "Mango", PricePerUnit: 80, Unit: "kg"},
		models.Item{Name: "Onion", PricePerUnit: 30, Unit: "kg"})
	svc, _ := newTestService(t, a, b)

	results, err := svc.Browse(context.Background(), center, models.MatchFilters{
		MaxDistanceKm: 2,
		VendorType:    models.VendorTypeMoving,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "B", results[0].Vendor.ID)
}
