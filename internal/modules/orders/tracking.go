package orders

import (
	"math"

	"vendee/internal/models"
)

// defaultStepDegrees is the per-tick movement in raw coordinate degrees.
const defaultStepDegrees = 0.0001

// Tracker produces the synthetic position of a delivering vendor. Movement
// is linear interpolation in raw lat/lng degree space, not geodesic; the
// map this feeds treats the route as a straight line, and the
// approximation is part of the contract.
type Tracker struct {
	pos     models.Coordinate
	dest    models.Coordinate
	step    float64
	arrived bool
}

func NewTracker(start, dest models.Coordinate) *Tracker {
	return &Tracker{pos: start, dest: dest, step: defaultStepDegrees}
}

// Tick advances one step toward the destination and reports the new
// position. When the remaining distance drops under the step threshold the
// tracker snaps to the destination exactly and every further tick is a
// no-op.
func (t *Tracker) Tick() (models.Coordinate, bool) {
	if t.arrived {
		return t.pos, true
	}

	latDiff := t.dest.Latitude - t.pos.Latitude
	lngDiff := t.dest.Longitude - t.pos.Longitude
	dist := math.Sqrt(latDiff*latDiff + lngDiff*lngDiff)

	if dist < t.step {
		t.pos = t.dest
		t.arrived = true
		return t.pos, true
	}

	t.pos.Latitude += latDiff / dist * t.step
	t.pos.Longitude += lngDiff / dist * t.step
	return t.pos, false
}

// Position returns the current position without advancing.
func (t *Tracker) Position() models.Coordinate {
	return t.pos
}

// Arrived reports whether the tracker reached the destination.
func (t *Tracker) Arrived() bool {
	return t.arrived
}
