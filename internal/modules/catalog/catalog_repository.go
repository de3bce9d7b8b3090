package catalog

import (
	"strings"
	"sync"
	"time"

	"vendee/internal/models"
	"vendee/pkg/geo"
)

// RepositoryInterface is the in-memory vendor store exposed to services.
// All state lives in session memory; there is no persistence behind it.
type RepositoryInterface interface {
	List() []*models.Vendor
	ListNear(center models.Coordinate, radiusKm float64) []*models.Vendor
	Search(query string) []*models.Vendor
	FindByID(vendorID string) (*models.Vendor, error)
	Insert(v *models.Vendor) error
	ReplaceInventory(vendorID string, items []models.Item) error
	UpdateStatus(vendorID string, req models.VendorStatusUpdateRequest) error
	UpdateRating(vendorID string, rating float64) (*models.Vendor, error)
	UpdateItemPrice(vendorID, itemName string, price float64) error
}

// repository keeps vendors in insertion order so ranking ties stay stable.
// Reads hand out deep copies; callers never observe later mutations.
type repository struct {
	mu      sync.RWMutex
	vendors []*models.Vendor
	byID    map[string]*models.Vendor
}

func NewRepository() RepositoryInterface {
	return &repository{byID: make(map[string]*models.Vendor)}
}

// NewSeededRepository returns a repository preloaded with the demo vendor
// set used throughout the marketplace walkthrough.
func NewSeededRepository() RepositoryInterface {
	r := &repository{byID: make(map[string]*models.Vendor)}
	for _, v := range seedVendors() {
		_ = r.Insert(v)
	}
	return r
}

func (r *repository) List() []*models.Vendor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		out = append(out, cloneVendor(v))
	}
	return out
}

// ListNear returns active vendors within radiusKm of center, inclusive of
// the boundary, ordered nearest first.
func (r *repository) ListNear(center models.Coordinate, radiusKm float64) []*models.Vendor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type withDist struct {
		v *models.Vendor
		d float64
	}
	near := []withDist{}
	for _, v := range r.vendors {
		if v.Status != models.VendorStatusActive {
			continue
		}
		d := geo.DistanceKm(center.Latitude, center.Longitude, v.Location.Latitude, v.Location.Longitude)
		if d <= radiusKm {
			near = append(near, withDist{cloneVendor(v), d})
		}
	}
	// Insertion sort keeps equal distances in catalog order.
	for i := 1; i < len(near); i++ {
		for j := i; j > 0 && near[j].d < near[j-1].d; j-- {
			near[j], near[j-1] = near[j-1], near[j]
		}
	}
	out := make([]*models.Vendor, len(near))
	for i, n := range near {
		out[i] = n.v
	}
	return out
}

// Search matches the query as a case-folded substring of the vendor name or
// any item name. An empty query matches every vendor.
func (r *repository) Search(query string) []*models.Vendor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := []*models.Vendor{}
	for _, v := range r.vendors {
		if q == "" || vendorMatches(v, q) {
			out = append(out, cloneVendor(v))
		}
	}
	return out
}

func vendorMatches(v *models.Vendor, q string) bool {
	if strings.Contains(strings.ToLower(v.Name), q) {
		return true
	}
	for _, it := range v.Items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			return true
		}
	}
	return false
}

func (r *repository) FindByID(vendorID string) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byID[vendorID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return cloneVendor(v), nil
}

func (r *repository) Insert(v *models.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[v.ID]; ok {
		return models.ErrValidation
	}
	cp := cloneVendor(v)
	r.vendors = append(r.vendors, cp)
	r.byID[cp.ID] = cp
	return nil
}

// ReplaceInventory swaps the vendor's item list wholesale.
func (r *repository) ReplaceInventory(vendorID string, items []models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[vendorID]
	if !ok {
		return models.ErrNotFound
	}
	v.Items = append([]models.Item(nil), items...)
	v.LastActive = time.Now()
	return nil
}

func (r *repository) UpdateStatus(vendorID string, req models.VendorStatusUpdateRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[vendorID]
	if !ok {
		return models.ErrNotFound
	}
	if req.Status != "" {
		v.Status = req.Status
	}
	if req.Type != "" {
		v.Type = req.Type
	}
	if req.Location != nil {
		v.Location = *req.Location
	}
	v.LastActive = time.Now()
	return nil
}

// UpdateRating folds one new rating into the running average, rounded to a
// single decimal.
func (r *repository) UpdateRating(vendorID string, rating float64) (*models.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[vendorID]
	if !ok {
		return nil, models.ErrNotFound
	}
	newCount := v.TotalRatings + 1
	avg := (v.Rating*float64(v.TotalRatings) + rating) / float64(newCount)
	v.Rating = float64(int(avg*10+0.5)) / 10
	v.TotalRatings = newCount
	return cloneVendor(v), nil
}

func (r *repository) UpdateItemPrice(vendorID, itemName string, price float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[vendorID]
	if !ok {
		return models.ErrNotFound
	}
	for i := range v.Items {
		if strings.EqualFold(v.Items[i].Name, itemName) {
			v.Items[i].PricePerUnit = price
			return nil
		}
	}
	return models.ErrNotFound
}

func cloneVendor(v *models.Vendor) *models.Vendor {
	cp := *v
	cp.Items = append([]models.Item(nil), v.Items...)
	return &cp
}
