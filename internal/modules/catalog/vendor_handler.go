package catalog

import (
	"errors"
	"net/http"

	"vendee/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler exposes the vendor-side catalog routes.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/onboard", h.OnboardVendor)
	g.POST("/inventory/update", h.UpdateInventory)
	g.POST("/price/update", h.UpdateItemPrice)
	g.POST("/status/update", h.UpdateStatus)
	g.GET("/:vendorId/demand-suggestions", h.DemandSuggestions)
}

// RegisterCustomerRoutes mounts the read-side vendor routes on the
// customer group.
func (h *Handler) RegisterCustomerRoutes(g *echo.Group) {
	g.GET("/vendors/:vendorId", h.GetVendor)
	g.POST("/rate-vendor", h.RateVendor)
}

func (h *Handler) GetVendor(c echo.Context) error {
	vendorID := c.Param("vendorId")
	vendor, err := h.svc.GetVendor(c.Request().Context(), vendorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor not found"})
		}
		c.Logger().Error("Handler.GetVendor: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to fetch vendor"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"vendor":  vendor,
	})
}

func (h *Handler) RateVendor(c echo.Context) error {
	var req models.RateVendorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Rating must be between 1.0 and 5.0"})
	}

	vendor, err := h.svc.RateVendor(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor not found"})
		}
		c.Logger().Error("Handler.RateVendor: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to rate vendor"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":       true,
		"message":       "Vendor rated successfully",
		"vendor_id":     vendor.ID,
		"new_rating":    vendor.Rating,
		"total_ratings": vendor.TotalRatings,
	})
}

func (h *Handler) OnboardVendor(c echo.Context) error {
	var req models.OnboardVendorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	vendor, err := h.svc.OnboardVendor(c.Request().Context(), req)
	if err != nil {
		c.Logger().Error("Handler.OnboardVendor: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to onboard vendor"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"vendor":  vendor,
		"message": "Vendor onboarded successfully",
	})
}

func (h *Handler) UpdateInventory(c echo.Context) error {
	var req models.InventoryUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	vendor, err := h.svc.UpdateInventory(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor not found"})
		}
		c.Logger().Error("Handler.UpdateInventory: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update inventory"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"vendor":      vendor,
		"total_items": len(vendor.Items),
	})
}

func (h *Handler) UpdateItemPrice(c echo.Context) error {
	var req models.ItemPriceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	vendor, err := h.svc.UpdateItemPrice(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor or item not found"})
		}
		c.Logger().Error("Handler.UpdateItemPrice: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update price"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"vendor":  vendor,
	})
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req models.VendorStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	if err := h.svc.UpdateStatus(c.Request().Context(), req); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor not found"})
		}
		c.Logger().Error("Handler.UpdateStatus: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update status"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DemandSuggestions(c echo.Context) error {
	vendorID := c.Param("vendorId")
	suggestions, err := h.svc.DemandSuggestions(c.Request().Context(), vendorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor not found"})
		}
		c.Logger().Error("Handler.DemandSuggestions: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to fetch demand suggestions"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"suggestions": suggestions,
	})
}
