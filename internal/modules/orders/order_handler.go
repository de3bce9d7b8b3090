package orders

import (
	"errors"
	"net/http"
	"time"

	"vendee/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler exposes the order and moving-vendor routes.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/request-moving-vendor", h.RequestMovingVendor)
	g.POST("/orders", h.PlaceOrder)
	g.GET("/orders/:orderId", h.GetOrder)
	g.POST("/orders/:orderId/cancel", h.CancelOrder)
}

func (h *Handler) PlaceOrder(c echo.Context) error {
	var req models.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	order, err := h.svc.PlaceOrder(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor not found"})
		case errors.Is(err, models.ErrValidation):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid order request"})
		}
		c.Logger().Error("Handler.PlaceOrder: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to place order"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

func (h *Handler) GetOrder(c echo.Context) error {
	order, err := h.svc.GetOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		}
		c.Logger().Error("Handler.GetOrder: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to fetch order"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

func (h *Handler) CancelOrder(c echo.Context) error {
	err := h.svc.CancelOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		case errors.Is(err, models.ErrOrderTerminal):
			return c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Order already finished"})
		}
		c.Logger().Error("Handler.CancelOrder: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to cancel order"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RequestMovingVendor(c echo.Context) error {
	var req models.MovingVendorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	resp, err := h.svc.RequestMovingVendor(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Vendor not found"})
		case errors.Is(err, models.ErrValidation):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Vendor is not a moving vendor"})
		case errors.Is(err, models.ErrNetwork), errors.Is(err, models.ErrBadPayload):
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{Message: "Vendor agent is unreachable"})
		}
		c.Logger().Error("Handler.RequestMovingVendor: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Moving vendor request failed"})
	}

	if !resp.Success {
		// Agent refused the request; pass its explanation through without
		// an error banner.
		return c.JSON(http.StatusOK, resp)
	}

	out := map[string]interface{}{
		"success":         true,
		"vendor_accepted": resp.VendorAccepted,
		"message":         resp.Message,
		"requested_at":    time.Now().Format(time.RFC3339),
	}
	if resp.VendorAccepted {
		out["vendor_name"] = resp.VendorName
		out["phone"] = resp.Phone
		out["estimated_delivery_time"] = resp.EstimatedDeliveryTime
		out["distance"] = resp.DistanceKm
	}
	return c.JSON(http.StatusOK, out)
}
