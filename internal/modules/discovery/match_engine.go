package discovery

import (
	"sort"
	"strings"

	"vendee/internal/models"
	"vendee/pkg/geo"
)

// EngineInterface scores and ranks vendors against a customer request.
type EngineInterface interface {
	Rank(vendors []*models.Vendor, center models.Coordinate, filters models.MatchFilters) []models.MatchResult
	FindMatching(vendors []*models.Vendor, wanted []string, center models.Coordinate, vendorType string) []models.MatchResult
}

type engine struct{}

func NewEngine() EngineInterface {
	return &engine{}
}

// Rank filters and sorts vendors. Filters are AND-combined; the price-range
// filter passes a vendor when any single item falls inside the range, not
// only the requested ones. Zero results is a valid outcome, not an error.
func (e *engine) Rank(vendors []*models.Vendor, center models.Coordinate, filters models.MatchFilters) []models.MatchResult {
	query := strings.ToLower(strings.TrimSpace(filters.Query))

	results := []models.MatchResult{}
	for _, v := range vendors {
		if v.Status != models.VendorStatusActive {
			continue
		}
		d := geo.DistanceKm(center.Latitude, center.Longitude, v.Location.Latitude, v.Location.Longitude)

		if query != "" && !matchesQuery(v, query) {
			continue
		}
		if filters.MaxDistanceKm > 0 && d > filters.MaxDistanceKm {
			continue
		}
		if filters.VendorType != "" && filters.VendorType != models.VendorTypeAll && v.Type != filters.VendorType {
			continue
		}
		if filters.PriceMax > 0 && !anyItemInRange(v.Items, filters.PriceMin, filters.PriceMax) {
			continue
		}

		results = append(results, models.MatchResult{
			Vendor:      v,
			DistanceKm:  geo.Round2(d),
			Highlighted: query != "" && anyItemMatches(v.Items, query),
		})
	}

	// Stable sorts so equal keys keep catalog insertion order.
	switch filters.SortBy {
	case models.SortByPrice:
		sort.SliceStable(results, func(i, j int) bool {
			return meanItemPrice(results[i].Vendor) < meanItemPrice(results[j].Vendor)
		})
	case models.SortByDistance:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceKm < results[j].DistanceKm
		})
	}

	return results
}

// FindMatching returns the top three vendors carrying at least one of the
// wanted items. TotalPrice sums the per-unit price of each matched item;
// requested quantities do not weigh in at this stage. The score rewards
// proximity and penalizes missing items, lower being better.
func (e *engine) FindMatching(vendors []*models.Vendor, wanted []string, center models.Coordinate, vendorType string) []models.MatchResult {
	results := []models.MatchResult{}
	for _, v := range vendors {
		if v.Status != models.VendorStatusActive {
			continue
		}
		if vendorType != "" && vendorType != models.VendorTypeAll && v.Type != vendorType {
			continue
		}

		matched := []models.Item{}
		totalPrice := 0.0
		for _, want := range wanted {
			for _, it := range v.Items {
				if strings.EqualFold(it.Name, want) {
					matched = append(matched, it)
					totalPrice += it.PricePerUnit
					break
				}
			}
		}
		if len(matched) == 0 {
			continue
		}

		d := geo.DistanceKm(center.Latitude, center.Longitude, v.Location.Latitude, v.Location.Longitude)
		score := d*0.5 + float64(len(wanted)-len(matched))*2

		results = append(results, models.MatchResult{
			Vendor:       v,
			DistanceKm:   geo.Round2(d),
			MatchedItems: matched,
			TotalPrice:   totalPrice,
			Score:        score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	if len(results) > 3 {
		results = results[:3]
	}
	return results
}

func matchesQuery(v *models.Vendor, q string) bool {
	if strings.Contains(strings.ToLower(v.Name), q) {
		return true
	}
	return anyItemMatches(v.Items, q)
}

func anyItemMatches(items []models.Item, q string) bool {
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			return true
		}
	}
	return false
}

func anyItemInRange(items []models.Item, min, max float64) bool {
	for _, it := range items {
		if it.PricePerUnit >= min && it.PricePerUnit <= max {
			return true
		}
	}
	return false
}

// meanItemPrice is the price sort key: the arithmetic mean over all of a
// vendor's items, not the minimum and not a basket total.
func meanItemPrice(v *models.Vendor) float64 {
	if len(v.Items) == 0 {
		return 0
	}
	sum := 0.0
	for _, it := range v.Items {
		sum += it.PricePerUnit
	}
	return sum / float64(len(v.Items))
}
