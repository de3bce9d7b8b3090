package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"vendee/internal/models"
	"vendee/internal/modules/catalog"
	"vendee/pkg/geo"
)

// ServiceInterface is the customer-facing discovery surface.
type ServiceInterface interface {
	SmartBuy(ctx context.Context, req models.SmartBuyRequest) (*models.SmartBuyResponse, error)
	Search(ctx context.Context, query string, center models.Coordinate, radiusKm float64) ([]models.MatchResult, error)
	Nearby(ctx context.Context, center models.Coordinate, radiusKm float64) ([]models.MatchResult, error)
	Browse(ctx context.Context, center models.Coordinate, filters models.MatchFilters) ([]models.MatchResult, error)
	Leaderboard(ctx context.Context, center models.Coordinate, radiusKm float64) ([]models.MatchResult, error)
}

type service struct {
	repo            catalog.RepositoryInterface
	engine          EngineInterface
	interp          InterpreterInterface
	demand          catalog.DemandTrackerInterface
	defaultRadiusKm float64
}

func NewService(repo catalog.RepositoryInterface, engine EngineInterface, interp InterpreterInterface, demand catalog.DemandTrackerInterface, defaultRadiusKm float64) ServiceInterface {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = 2.0
	}
	return &service{
		repo:            repo,
		engine:          engine,
		interp:          interp,
		demand:          demand,
		defaultRadiusKm: defaultRadiusKm,
	}
}

// SmartBuy interprets a free-text request, matches vendors across both
// types and groups the recommendations the way the chat flow presents
// them. A request the interpreter cannot place returns success=false with
// example prompts; a valid request with no vendors is a normal empty
// result and feeds the unmet-demand tracker.
func (s *service) SmartBuy(ctx context.Context, req models.SmartBuyRequest) (*models.SmartBuyResponse, error) {
	if err := validateLocation(req.Location); err != nil {
		return nil, fmt.Errorf("service.SmartBuy: %w", err)
	}

	intent := s.interp.Interpret(req.RequestText)

	if intent.ScenarioTag == models.ScenarioClarify && len(intent.WantedItemKeywords) == 0 {
		return &models.SmartBuyResponse{
			Success:     false,
			Error:       "I couldn't identify any items in your request. Could you be more specific?",
			Suggestions: intent.Suggestions,
		}, nil
	}

	all := s.engine.FindMatching(s.repo.List(), intent.WantedItemKeywords, req.Location, models.VendorTypeAll)

	stationary := []models.MatchResult{}
	moving := []models.MatchResult{}
	for _, m := range all {
		if m.Vendor.Type == models.VendorTypeMoving {
			moving = append(moving, m)
		} else {
			stationary = append(stationary, m)
		}
	}

	// Delivery requests get an extra moving option; pickup requests see
	// at most one.
	movingLimit := 1
	if intent.DeliveryRequested {
		movingLimit = 2
	}
	moving = capResults(moving, movingLimit)
	stationary = capResults(stationary, 2)

	if len(stationary) == 0 && len(moving) == 0 && len(intent.WantedItemKeywords) > 0 {
		s.demand.Record(intent.WantedItemKeywords, req.Location)
	}

	return &models.SmartBuyResponse{
		Success: true,
		Intent:  &intent,
		Recommendations: &models.Recommendations{
			StationaryVendors: stationary,
			MovingVendors:     moving,
		},
		Checklist: Checklist(intent.ScenarioTag),
		Message:   composeMessage(intent, stationary, moving),
	}, nil
}

// Search finds vendors within radius whose name or items match the query,
// closest first, best rated breaking distance ties.
func (s *service) Search(ctx context.Context, query string, center models.Coordinate, radiusKm float64) ([]models.MatchResult, error) {
	if err := validateLocation(center); err != nil {
		return nil, fmt.Errorf("service.Search: %w", err)
	}
	if radiusKm <= 0 {
		radiusKm = s.defaultRadiusKm
	}

	q := strings.ToLower(strings.TrimSpace(query))
	results := []models.MatchResult{}
	for _, v := range s.repo.Search(query) {
		if v.Status != models.VendorStatusActive {
			continue
		}
		d := geo.DistanceKm(center.Latitude, center.Longitude, v.Location.Latitude, v.Location.Longitude)
		if d > radiusKm {
			continue
		}

		matched := []models.Item{}
		total := 0.0
		for _, it := range v.Items {
			if q != "" && strings.Contains(strings.ToLower(it.Name), q) {
				matched = append(matched, it)
				total += it.PricePerUnit
			}
		}
		results = append(results, models.MatchResult{
			Vendor:       v,
			DistanceKm:   geo.Round2(d),
			MatchedItems: matched,
			TotalPrice:   total,
			Highlighted:  len(matched) > 0,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Vendor.Rating > results[j].Vendor.Rating
	})
	return results, nil
}

// Nearby lists active vendors within the radius, nearest first.
func (s *service) Nearby(ctx context.Context, center models.Coordinate, radiusKm float64) ([]models.MatchResult, error) {
	if err := validateLocation(center); err != nil {
		return nil, fmt.Errorf("service.Nearby: %w", err)
	}
	if radiusKm <= 0 {
		radiusKm = s.defaultRadiusKm
	}

	results := []models.MatchResult{}
	for _, v := range s.repo.ListNear(center, radiusKm) {
		d := geo.DistanceKm(center.Latitude, center.Longitude, v.Location.Latitude, v.Location.Longitude)
		results = append(results, models.MatchResult{Vendor: v, DistanceKm: geo.Round2(d)})
	}
	return results, nil
}

// Browse runs the full filter-and-sort pipeline over the catalog.
func (s *service) Browse(ctx context.Context, center models.Coordinate, filters models.MatchFilters) ([]models.MatchResult, error) {
	if err := validateLocation(center); err != nil {
		return nil, fmt.Errorf("service.Browse: %w", err)
	}
	return s.engine.Rank(s.repo.List(), center, filters), nil
}

// Leaderboard ranks nearby vendors by rating, best first, top ten.
func (s *service) Leaderboard(ctx context.Context, center models.Coordinate, radiusKm float64) ([]models.MatchResult, error) {
	results, err := s.Nearby(ctx, center, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("service.Leaderboard: %w", err)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Vendor.Rating > results[j].Vendor.Rating
	})
	if len(results) > 10 {
		results = results[:10]
	}
	return results, nil
}

// validateLocation rejects requests with no usable coordinate. The null
// island origin counts as missing for this marketplace.
func validateLocation(c models.Coordinate) error {
	if c.Latitude == 0 && c.Longitude == 0 {
		return models.ErrValidation
	}
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return models.ErrValidation
	}
	return nil
}

func capResults(in []models.MatchResult, n int) []models.MatchResult {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func composeMessage(intent models.Intent, stationary, moving []models.MatchResult) string {
	if intent.ScenarioTag == models.ScenarioMealChecklist {
		return "Great choice! You'll need several ingredients for that. Here's what's typically required; tick off what you already have and I'll find vendors for the rest."
	}

	items := strings.Join(intent.WantedItemKeywords, ", ")
	if len(stationary) == 0 && len(moving) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find any vendors selling %s in your area.", items)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found vendors for your request: %s\n\n", items)
	if len(stationary) > 0 {
		b.WriteString("Stationary vendors:\n")
		writeVendorLines(&b, stationary)
	}
	if len(moving) > 0 && intent.DeliveryRequested {
		b.WriteString("Moving vendors (delivery available):\n")
		writeVendorLines(&b, moving)
	}
	return b.String()
}

func writeVendorLines(b *strings.Builder, results []models.MatchResult) {
	for i, m := range results {
		names := make([]string, len(m.MatchedItems))
		for j, it := range m.MatchedItems {
			names[j] = it.Name
		}
		fmt.Fprintf(b, "%d. %s - %.2fkm away, rating %.1f\n   Items: %s\n   Total: ₹%.0f\n\n",
			i+1, m.Vendor.Name, m.DistanceKm, m.Vendor.Rating, strings.Join(names, ", "), m.TotalPrice)
	}
}
