package models

// Vendor type filter accepting everything.
const VendorTypeAll = "all"

// Sort orders supported by the match engine.
const (
	SortByDistance = "distance"
	SortByPrice    = "price"
)

// Scenario tags produced by the request interpreter. The tag tells the
// caller which scripted flow the request belongs to.
const (
	ScenarioBananaVendors   = "banana_vendors"
	ScenarioMultiItemPlan   = "multi_item_plan"
	ScenarioMealChecklist   = "meal_checklist"
	ScenarioCheapestNearby  = "cheapest_nearby"
	ScenarioDeliveryVendors = "delivery_vendors"
	ScenarioClarify         = "clarify"
)

// RequestedItem is one line of a structured customer request.
type RequestedItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// CustomerRequest is an ephemeral discovery query. Either RequestText or
// Items is set; it is constructed per query and never persisted.
type CustomerRequest struct {
	RequestText       string          `json:"request_text,omitempty"`
	Items             []RequestedItem `json:"items,omitempty"`
	Location          Coordinate      `json:"customer_location"`
	DeliveryRequested bool            `json:"delivery_requested,omitempty"`
}

// Intent is the structured interpretation of a free-text request.
type Intent struct {
	WantedItemKeywords []string        `json:"wanted_items"`
	Quantities         []RequestedItem `json:"quantities,omitempty"`
	DeliveryRequested  bool            `json:"delivery_requested"`
	ScenarioTag        string          `json:"scenario"`
	Suggestions        []string        `json:"suggestions,omitempty"`
}

// MatchFilters narrow a ranking pass. All filters are optional and
// AND-combined. The price range passes a vendor when any of its items
// falls inside it.
type MatchFilters struct {
	Query         string
	MaxDistanceKm float64
	VendorType    string
	PriceMin      float64
	PriceMax      float64
	SortBy        string
}

// MatchResult is a ranked read-only view over a catalog vendor. It is
// recomputed on every query and never cached across catalog mutations.
type MatchResult struct {
	Vendor       *Vendor `json:"vendor"`
	DistanceKm   float64 `json:"distance"`
	MatchedItems []Item  `json:"matching_items,omitempty"`
	TotalPrice   float64 `json:"total_price,omitempty"`
	Score        float64 `json:"match_score,omitempty"`
	Highlighted  bool    `json:"highlighted,omitempty"`
}

// SmartBuyRequest is the wire form of a free-text discovery call.
type SmartBuyRequest struct {
	RequestText string     `json:"request_text" validate:"required"`
	Location    Coordinate `json:"customer_location"`
}

// Recommendations groups matches by vendor type the way the chat flow
// presents them.
type Recommendations struct {
	StationaryVendors []MatchResult `json:"stationary_vendors"`
	MovingVendors     []MatchResult `json:"moving_vendors"`
}

// ChecklistItem is one ingredient of a compound-meal plan. Optional
// ingredients round the dish out but can be skipped.
type ChecklistItem struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// SmartBuyResponse is the envelope returned by the smartbuy endpoint.
type SmartBuyResponse struct {
	Success         bool             `json:"success"`
	Intent          *Intent          `json:"request,omitempty"`
	Recommendations *Recommendations `json:"recommendations,omitempty"`
	Checklist       []ChecklistItem  `json:"checklist,omitempty"`
	Message         string           `json:"message,omitempty"`
	Error           string           `json:"error,omitempty"`
	Suggestions     []string         `json:"suggestions,omitempty"`
}
