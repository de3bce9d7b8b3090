package discovery

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"vendee/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler exposes the customer discovery routes.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/smartbuy", h.SmartBuy)
	g.GET("/search", h.Search)
	g.GET("/vendors/nearby", h.Nearby)
	g.GET("/browse", h.Browse)
	g.GET("/leaderboard", h.Leaderboard)
}

func (h *Handler) SmartBuy(c echo.Context) error {
	var req models.SmartBuyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	resp, err := h.svc.SmartBuy(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "A customer location is required"})
		}
		c.Logger().Error("Handler.SmartBuy: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "SmartBuy processing failed"})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Search(c echo.Context) error {
	center, err := coordFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "latitude and longitude are required"})
	}
	radius := floatParam(c, "radius_km", 0)
	query := c.QueryParam("query")

	results, err := h.svc.Search(c.Request().Context(), query, center, radius)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "latitude and longitude are required"})
		}
		c.Logger().Error("Handler.Search: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Vendor search failed"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":          true,
		"query":            query,
		"matching_vendors": results,
		"total_matches":    len(results),
		"search_location":  center,
		"searched_at":      time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) Nearby(c echo.Context) error {
	center, err := coordFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "latitude and longitude are required"})
	}
	radius := floatParam(c, "radius_km", 0)

	results, err := h.svc.Nearby(c.Request().Context(), center, radius)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "latitude and longitude are required"})
		}
		c.Logger().Error("Handler.Nearby: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Nearby vendor lookup failed"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":           true,
		"vendors":           results,
		"total_vendors":     len(results),
		"customer_location": center,
	})
}

// Browse runs the structured filter pipeline: max distance, vendor type,
// price range and sort order as query parameters.
func (h *Handler) Browse(c echo.Context) error {
	center, err := coordFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "latitude and longitude are required"})
	}

	filters := models.MatchFilters{
		Query:         c.QueryParam("query"),
		MaxDistanceKm: floatParam(c, "max_distance_km", 0),
		VendorType:    c.QueryParam("vendor_type"),
		PriceMin:      floatParam(c, "price_min", 0),
		PriceMax:      floatParam(c, "price_max", 0),
		SortBy:        c.QueryParam("sort_by"),
	}

	results, err := h.svc.Browse(c.Request().Context(), center, filters)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "latitude and longitude are required"})
		}
		c.Logger().Error("Handler.Browse: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Vendor browse failed"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"vendors": results,
		"total":   len(results),
	})
}

func (h *Handler) Leaderboard(c echo.Context) error {
	center, err := coordFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "latitude and longitude are required"})
	}
	radius := floatParam(c, "radius_km", 5.0)

	results, err := h.svc.Leaderboard(c.Request().Context(), center, radius)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "latitude and longitude are required"})
		}
		c.Logger().Error("Handler.Leaderboard: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Leaderboard generation failed"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"leaderboard": results,
		"radius_km":   radius,
	})
}

func coordFromQuery(c echo.Context) (models.Coordinate, error) {
	lat, errLat := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if errLat != nil || errLng != nil {
		return models.Coordinate{}, models.ErrValidation
	}
	return models.Coordinate{Latitude: lat, Longitude: lng}, nil
}

func floatParam(c echo.Context, name string, def float64) float64 {
	if s := c.QueryParam(name); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return def
}
