package models

import "time"

// OrderStatus is one stage of an order's scripted progression.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderAccepted   OrderStatus = "accepted"
	OrderPreparing  OrderStatus = "preparing"
	OrderDelivering OrderStatus = "delivering"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// OrderLine is one purchased item with its quantity. UnitPrice is captured
// at selection time; later price edits by the vendor do not touch it.
type OrderLine struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit,omitempty"`
}

// Order is a confirmed vendor selection. It lives only for the viewing
// session; closing the tracking view discards it.
type Order struct {
	ID             string      `json:"id"`
	VendorID       string      `json:"vendor_id"`
	VendorName     string      `json:"vendor_name"`
	Lines          []OrderLine `json:"items"`
	Total          float64     `json:"total"`
	Destination    Coordinate  `json:"destination"`
	Status         OrderStatus `json:"status"`
	StatusMessage  string      `json:"status_message"`
	VendorPosition *Coordinate `json:"vendor_position,omitempty"`
	EtaMinutes     int         `json:"eta_minutes,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// PlaceOrderRequest confirms a vendor selection.
type PlaceOrderRequest struct {
	VendorID    string          `json:"vendor_id" validate:"required"`
	Items       []RequestedItem `json:"items" validate:"required,min=1,dive"`
	Destination Coordinate      `json:"destination"`
}

// MovingVendorRequest asks a moving vendor to come deliver.
type MovingVendorRequest struct {
	VendorID string          `json:"vendor_id" validate:"required"`
	Items    []RequestedItem `json:"items" validate:"required,min=1,dive"`
	Location Coordinate      `json:"customer_location"`
}

// MovingVendorResponse is the vendor-agent answer to a delivery request.
// Callers must check Success before reading any other field.
type MovingVendorResponse struct {
	Success               bool     `json:"success"`
	VendorAccepted        bool     `json:"vendor_accepted"`
	VendorName            string   `json:"vendor_name,omitempty"`
	Phone                 string   `json:"phone,omitempty"`
	EstimatedDeliveryTime string   `json:"estimated_delivery_time,omitempty"`
	DistanceKm            float64  `json:"distance,omitempty"`
	Message               string   `json:"message,omitempty"`
	Error                 string   `json:"error,omitempty"`
	Suggestions           []string `json:"suggestions,omitempty"`
}
