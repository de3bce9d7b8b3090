package catalog

import (
	"context"
	"fmt"
	"time"

	"vendee/internal/models"

	"github.com/google/uuid"
)

// ServiceInterface exposes the vendor-side catalog operations to handlers.
type ServiceInterface interface {
	OnboardVendor(ctx context.Context, req models.OnboardVendorRequest) (*models.Vendor, error)
	GetVendor(ctx context.Context, vendorID string) (*models.Vendor, error)
	UpdateInventory(ctx context.Context, req models.InventoryUpdateRequest) (*models.Vendor, error)
	UpdateItemPrice(ctx context.Context, req models.ItemPriceUpdateRequest) (*models.Vendor, error)
	UpdateStatus(ctx context.Context, req models.VendorStatusUpdateRequest) error
	RateVendor(ctx context.Context, req models.RateVendorRequest) (*models.Vendor, error)
	DemandSuggestions(ctx context.Context, vendorID string) ([]models.DemandSuggestion, error)
}

type service struct {
	repo   RepositoryInterface
	demand DemandTrackerInterface
}

func NewService(repo RepositoryInterface, demand DemandTrackerInterface) ServiceInterface {
	return &service{repo: repo, demand: demand}
}

// OnboardVendor registers a new vendor with a generated ID, no rating yet
// and an empty inventory.
func (s *service) OnboardVendor(ctx context.Context, req models.OnboardVendorRequest) (*models.Vendor, error) {
	v := &models.Vendor{
		ID:         "V-" + uuid.NewString()[:8],
		Name:       req.Name,
		Phone:      req.Phone,
		Type:       req.Type,
		Location:   req.Location,
		Status:     models.VendorStatusActive,
		Items:      []models.Item{},
		LastActive: time.Now(),
	}
	if err := s.repo.Insert(v); err != nil {
		return nil, fmt.Errorf("service.OnboardVendor: %w", err)
	}
	return v, nil
}

func (s *service) GetVendor(ctx context.Context, vendorID string) (*models.Vendor, error) {
	v, err := s.repo.FindByID(vendorID)
	if err != nil {
		return nil, fmt.Errorf("service.GetVendor: %w", err)
	}
	return v, nil
}

// UpdateInventory swaps the vendor's items wholesale and returns the fresh
// record. There is no partial-edit path.
func (s *service) UpdateInventory(ctx context.Context, req models.InventoryUpdateRequest) (*models.Vendor, error) {
	if err := s.repo.ReplaceInventory(req.VendorID, req.Items); err != nil {
		return nil, fmt.Errorf("service.UpdateInventory: %w", err)
	}
	return s.repo.FindByID(req.VendorID)
}

// UpdateItemPrice edits one item's price in place. Orders placed before
// the edit keep the price captured at confirmation.
func (s *service) UpdateItemPrice(ctx context.Context, req models.ItemPriceUpdateRequest) (*models.Vendor, error) {
	if err := s.repo.UpdateItemPrice(req.VendorID, req.ItemName, req.Price); err != nil {
		return nil, fmt.Errorf("service.UpdateItemPrice: %w", err)
	}
	return s.repo.FindByID(req.VendorID)
}

func (s *service) UpdateStatus(ctx context.Context, req models.VendorStatusUpdateRequest) error {
	if err := s.repo.UpdateStatus(req.VendorID, req); err != nil {
		return fmt.Errorf("service.UpdateStatus: %w", err)
	}
	return nil
}

func (s *service) RateVendor(ctx context.Context, req models.RateVendorRequest) (*models.Vendor, error) {
	v, err := s.repo.UpdateRating(req.VendorID, req.Rating)
	if err != nil {
		return nil, fmt.Errorf("service.RateVendor: %w", err)
	}
	return v, nil
}

// DemandSuggestions returns the top unmet-demand items. The vendor must
// exist; the suggestions themselves are marketplace-wide.
func (s *service) DemandSuggestions(ctx context.Context, vendorID string) ([]models.DemandSuggestion, error) {
	if _, err := s.repo.FindByID(vendorID); err != nil {
		return nil, fmt.Errorf("service.DemandSuggestions: %w", err)
	}
	return s.demand.TopSuggestions(3), nil
}
