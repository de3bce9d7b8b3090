package models

import "time"

// Vendor type constants.
const (
	VendorTypeMoving     = "moving"
	VendorTypeStationary = "stationary"
)

// Vendor status constants.
const (
	VendorStatusActive = "active"
	VendorStatusClosed = "closed"
)

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Item is a single inventory line owned by a vendor. Inventory is replaced
// wholesale on update; only the price may be edited in place.
type Item struct {
	Name         string  `json:"name"`
	PricePerUnit float64 `json:"price_per_unit"`
	Unit         string  `json:"unit"`
	Quantity     string  `json:"quantity"`
	// Confidence is provenance metadata from image-based detection.
	// It never participates in matching.
	Confidence float64 `json:"confidence,omitempty"`
}

// Vendor represents a street vendor in the catalog. Vendors are created at
// catalog load and never deleted within a session.
type Vendor struct {
	ID           string     `json:"vendor_id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Type         string     `json:"type"`
	Location     Coordinate `json:"location"`
	LocationDesc string     `json:"location_description,omitempty"`
	Rating       float64    `json:"rating"`
	TotalRatings int        `json:"total_ratings"`
	Status       string     `json:"status"`
	Items        []Item     `json:"items"`
	LastActive   time.Time  `json:"last_active,omitempty"`
}

// OnboardVendorRequest registers a new vendor.
type OnboardVendorRequest struct {
	Name     string     `json:"name" validate:"required"`
	Phone    string     `json:"phone" validate:"required"`
	Type     string     `json:"type" validate:"required,oneof=moving stationary"`
	Location Coordinate `json:"location"`
}

// InventoryUpdateRequest replaces a vendor's inventory wholesale.
type InventoryUpdateRequest struct {
	VendorID string `json:"vendor_id" validate:"required"`
	Items    []Item `json:"items" validate:"required,dive"`
}

// VendorStatusUpdateRequest toggles a vendor open or closed and, for moving
// vendors, reports a new position.
type VendorStatusUpdateRequest struct {
	VendorID string      `json:"vendor_id" validate:"required"`
	Status   string      `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
	Type     string      `json:"type,omitempty" validate:"omitempty,oneof=moving stationary"`
	Location *Coordinate `json:"location,omitempty"`
}

// ItemPriceUpdateRequest edits the price of one inventory item in place.
// Orders already placed keep the price they were confirmed at.
type ItemPriceUpdateRequest struct {
	VendorID string  `json:"vendor_id" validate:"required"`
	ItemName string  `json:"item_name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// RateVendorRequest records a customer rating between 1 and 5 stars.
type RateVendorRequest struct {
	VendorID string  `json:"vendor_id" validate:"required"`
	Rating   float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment  string  `json:"comment,omitempty"`
}

// DemandSuggestion is an item vendors are advised to stock because
// customers asked for it and nobody had it.
type DemandSuggestion struct {
	ItemName      string    `json:"item_name"`
	TotalRequests int       `json:"total_requests"`
	LastRequested time.Time `json:"last_requested"`
}
