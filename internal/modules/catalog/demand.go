package catalog

import (
	"sort"
	"sync"
	"time"

	"vendee/internal/models"
)

// DemandTrackerInterface records items customers asked for that no vendor
// could supply, so vendors can restock against real demand.
type DemandTrackerInterface interface {
	Record(itemNames []string, location models.Coordinate)
	TopSuggestions(limit int) []models.DemandSuggestion
}

type demandEntry struct {
	itemName      string
	totalRequests int
	lastRequested time.Time
	locations     map[models.Coordinate]int
}

type demandTracker struct {
	mu      sync.Mutex
	entries map[string]*demandEntry
	now     func() time.Time
}

func NewDemandTracker() DemandTrackerInterface {
	return &demandTracker{entries: make(map[string]*demandEntry), now: time.Now}
}

func (t *demandTracker) Record(itemNames []string, location models.Coordinate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, name := range itemNames {
		e, ok := t.entries[name]
		if !ok {
			e = &demandEntry{itemName: name, locations: make(map[models.Coordinate]int)}
			t.entries[name] = e
		}
		e.totalRequests++
		e.lastRequested = t.now()
		e.locations[location]++
	}
}

// TopSuggestions returns the most requested unmet items, busiest first.
func (t *demandTracker) TopSuggestions(limit int) []models.DemandSuggestion {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.DemandSuggestion, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, models.DemandSuggestion{
			ItemName:      e.itemName,
			TotalRequests: e.totalRequests,
			LastRequested: e.lastRequested,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalRequests != out[j].TotalRequests {
			return out[i].TotalRequests > out[j].TotalRequests
		}
		return out[i].ItemName < out[j].ItemName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
