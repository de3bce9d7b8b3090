package orders

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"vendee/internal/models"
	"vendee/internal/modules/catalog"

	"github.com/google/uuid"
)

// ServiceInterface is the order-side surface exposed to handlers.
type ServiceInterface interface {
	PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID string) error
	RequestMovingVendor(ctx context.Context, req models.MovingVendorRequest) (*models.MovingVendorResponse, error)
}

// Service owns the active orders of the session. Orders live only in
// memory; a cancelled or delivered order stays queryable until the
// process exits but is never persisted.
type Service struct {
	repo    catalog.RepositoryInterface
	gateway GatewayInterface
	sched   Scheduler
	timings Timings

	mu     sync.RWMutex
	active map[string]*Lifecycle
}

func NewService(repo catalog.RepositoryInterface, gateway GatewayInterface, sched Scheduler, timings Timings) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
		sched:   sched,
		timings: timings,
		active:  make(map[string]*Lifecycle),
	}
}

// PlaceOrder confirms a vendor selection, prices the basket at the
// vendor's current prices and starts the simulated fulfilment flow.
// Prices are captured now; later edits by the vendor do not change the
// order's total.
func (s *Service) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.Order, error) {
	vendor, err := s.repo.FindByID(req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("service.PlaceOrder: %w", err)
	}

	lines := make([]models.OrderLine, 0, len(req.Items))
	total := 0.0
	for _, want := range req.Items {
		item, ok := findItem(vendor.Items, want.Name)
		if !ok {
			return nil, fmt.Errorf("service.PlaceOrder: %q not sold by vendor %s: %w", want.Name, vendor.ID, models.ErrValidation)
		}
		if want.Quantity <= 0 {
			return nil, fmt.Errorf("service.PlaceOrder: invalid quantity for %q: %w", want.Name, models.ErrValidation)
		}
		lines = append(lines, models.OrderLine{
			Name:      item.Name,
			UnitPrice: item.PricePerUnit,
			Quantity:  want.Quantity,
			Unit:      item.Unit,
		})
		total += item.PricePerUnit * want.Quantity
	}

	destination := req.Destination
	if destination.Latitude == 0 && destination.Longitude == 0 {
		return nil, fmt.Errorf("service.PlaceOrder: missing destination: %w", models.ErrValidation)
	}

	order := &models.Order{
		ID:            "O-" + uuid.NewString()[:8],
		VendorID:      vendor.ID,
		VendorName:    vendor.Name,
		Lines:         lines,
		Total:         total,
		Destination:   destination,
		Status:        models.OrderPending,
		StatusMessage: "Waiting for vendor to accept your order...",
		CreatedAt:     time.Now(),
	}

	lc := NewLifecycle(order, vendor.Location, s.sched, s.timings)

	s.mu.Lock()
	s.active[order.ID] = lc
	s.mu.Unlock()

	lc.Start()

	snapshot := lc.Order()
	return &snapshot, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	s.mu.RLock()
	lc, ok := s.active[orderID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("service.GetOrder: %w", models.ErrNotFound)
	}
	snapshot := lc.Order()
	return &snapshot, nil
}

// CancelOrder aborts a running order. Closing the tracking view maps to
// this call; it stops every pending timer for the order.
func (s *Service) CancelOrder(ctx context.Context, orderID string) error {
	s.mu.RLock()
	lc, ok := s.active[orderID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("service.CancelOrder: %w", models.ErrNotFound)
	}
	if err := lc.Cancel(); err != nil {
		return fmt.Errorf("service.CancelOrder: %w", err)
	}
	return nil
}

// Subscribe attaches an observer to a running order's lifecycle.
func (s *Service) Subscribe(orderID string, fn func(Update)) error {
	s.mu.RLock()
	lc, ok := s.active[orderID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("service.Subscribe: %w", models.ErrNotFound)
	}
	lc.Subscribe(fn)
	return nil
}

// RequestMovingVendor forwards a delivery request to the vendor through
// the gateway. The vendor must exist and be of the moving type.
func (s *Service) RequestMovingVendor(ctx context.Context, req models.MovingVendorRequest) (*models.MovingVendorResponse, error) {
	vendor, err := s.repo.FindByID(req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("service.RequestMovingVendor: %w", err)
	}
	if vendor.Type != models.VendorTypeMoving {
		return nil, fmt.Errorf("service.RequestMovingVendor: vendor %s is not a moving vendor: %w", vendor.ID, models.ErrValidation)
	}

	resp, err := s.gateway.RequestDelivery(ctx, vendor, req)
	if err != nil {
		return nil, fmt.Errorf("service.RequestMovingVendor: %w", err)
	}
	return resp, nil
}

func findItem(items []models.Item, name string) (models.Item, bool) {
	for _, it := range items {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return models.Item{}, false
}
