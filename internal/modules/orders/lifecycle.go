package orders

import (
	"math/rand"
	"sync"
	"time"

	"vendee/internal/models"
)

// Timings are the dwell times of the scripted order flow.
type Timings struct {
	Accept   time.Duration // pending -> accepted
	Prepare  time.Duration // accepted -> preparing
	Dispatch time.Duration // preparing -> delivering
	Tracking time.Duration // delivering -> first tracking tick
	Tick     time.Duration // interval between tracking ticks
}

// DefaultTimings matches the demo walkthrough.
func DefaultTimings() Timings {
	return Timings{
		Accept:   3 * time.Second,
		Prepare:  2 * time.Second,
		Dispatch: 2 * time.Second,
		Tracking: 1 * time.Second,
		Tick:     2 * time.Second,
	}
}

// startOffsetDegrees displaces the vendor's registered coordinate so the
// simulated courier has somewhere to move from.
const startOffsetDegrees = 0.001

// Update is what subscribers receive on every transition and tracking
// tick.
type Update struct {
	OrderID        string
	Status         models.OrderStatus
	Message        string
	VendorPosition *models.Coordinate
	EtaMinutes     int
}

var statusMessages = map[models.OrderStatus]string{
	models.OrderPending:    "Waiting for vendor to accept your order...",
	models.OrderAccepted:   "Vendor accepted your order!",
	models.OrderPreparing:  "Vendor is preparing your order...",
	models.OrderDelivering: "Your order is on the way!",
	models.OrderDelivered:  "Your order has arrived. Enjoy!",
	models.OrderCancelled:  "Order cancelled.",
}

// validNext encodes the one-directional order progression. Cancellation is
// handled separately and is legal from any non-terminal state.
var validNext = map[models.OrderStatus]models.OrderStatus{
	models.OrderPending:    models.OrderAccepted,
	models.OrderAccepted:   models.OrderPreparing,
	models.OrderPreparing:  models.OrderDelivering,
	models.OrderDelivering: models.OrderDelivered,
}

// Lifecycle drives one order through pending, accepted, preparing,
// delivering and delivered on a timer chain, then feeds tracking ticks
// until the simulated vendor reaches the destination. All of its timers
// die with it: once cancelled, no callback ever fires again.
type Lifecycle struct {
	mu       sync.Mutex
	order    *models.Order
	vendor   models.Coordinate
	sched    Scheduler
	timings  Timings
	tracker  *Tracker
	subs     []func(Update)
	cancels  []CancelFunc
	disposed bool
	etaFn    func() int
}

func NewLifecycle(order *models.Order, vendorLocation models.Coordinate, sched Scheduler, timings Timings) *Lifecycle {
	return &Lifecycle{
		order:   order,
		vendor:  vendorLocation,
		sched:   sched,
		timings: timings,
		etaFn:   func() int { return rand.Intn(11) + 5 }, // 5..15 minutes
	}
}

// Subscribe registers an observer for transitions and tracking ticks.
// Observers run on the timer goroutine and must not block.
func (l *Lifecycle) Subscribe(fn func(Update)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, fn)
}

// Start arms the first timer. The order must be pending.
func (l *Lifecycle) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.schedule(l.timings.Accept, func() { l.advance(models.OrderAccepted) })
}

// Order returns a snapshot of the order's current state.
func (l *Lifecycle) Order() models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := *l.order
	cp.Lines = append([]models.OrderLine(nil), l.order.Lines...)
	if l.order.VendorPosition != nil {
		pos := *l.order.VendorPosition
		cp.VendorPosition = &pos
	}
	return cp
}

// Cancel aborts the order from any non-terminal state, stops every pending
// timer and guarantees no further callback runs.
func (l *Lifecycle) Cancel() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.order.Status.Terminal() {
		return models.ErrOrderTerminal
	}
	l.dispose()
	l.order.Status = models.OrderCancelled
	l.order.StatusMessage = statusMessages[models.OrderCancelled]
	l.emit(Update{OrderID: l.order.ID, Status: models.OrderCancelled, Message: l.order.StatusMessage})
	return nil
}

// advance moves to the next lifecycle state and arms the follow-up timer.
func (l *Lifecycle) advance(next models.OrderStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.disposed {
		return
	}
	if validNext[l.order.Status] != next {
		return
	}

	l.order.Status = next
	l.order.StatusMessage = statusMessages[next]
	update := Update{OrderID: l.order.ID, Status: next, Message: l.order.StatusMessage}

	switch next {
	case models.OrderAccepted:
		l.schedule(l.timings.Prepare, func() { l.advance(models.OrderPreparing) })
	case models.OrderPreparing:
		l.schedule(l.timings.Dispatch, func() { l.advance(models.OrderDelivering) })
	case models.OrderDelivering:
		start := models.Coordinate{
			Latitude:  l.vendor.Latitude + startOffsetDegrees,
			Longitude: l.vendor.Longitude + startOffsetDegrees,
		}
		l.tracker = NewTracker(start, l.order.Destination)
		l.order.VendorPosition = &start
		l.order.EtaMinutes = l.etaFn()
		update.VendorPosition = &start
		update.EtaMinutes = l.order.EtaMinutes
		l.schedule(l.timings.Tracking, l.tick)
	case models.OrderDelivered:
		l.dispose()
	}

	l.emit(update)
}

// tick advances the tracking simulation one step.
func (l *Lifecycle) tick() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.disposed || l.order.Status != models.OrderDelivering {
		return
	}

	pos, arrived := l.tracker.Tick()
	l.order.VendorPosition = &pos

	if arrived {
		// Release the lock path through advance by inlining the final
		// transition; the mutex is not reentrant.
		l.order.Status = models.OrderDelivered
		l.order.StatusMessage = statusMessages[models.OrderDelivered]
		l.dispose()
		l.emit(Update{
			OrderID:        l.order.ID,
			Status:         models.OrderDelivered,
			Message:        l.order.StatusMessage,
			VendorPosition: &pos,
		})
		return
	}

	l.emit(Update{
		OrderID:        l.order.ID,
		Status:         models.OrderDelivering,
		Message:        l.order.StatusMessage,
		VendorPosition: &pos,
		EtaMinutes:     l.order.EtaMinutes,
	})
	l.schedule(l.timings.Tick, l.tick)
}

// schedule arms a timer and remembers its cancel handle. Callers hold the
// mutex.
func (l *Lifecycle) schedule(d time.Duration, f func()) {
	if l.disposed {
		return
	}
	l.cancels = append(l.cancels, l.sched.AfterFunc(d, f))
}

// dispose stops every pending timer. Callers hold the mutex.
func (l *Lifecycle) dispose() {
	for _, cancel := range l.cancels {
		cancel()
	}
	l.cancels = nil
	l.disposed = true
}

// emit notifies subscribers. Callers hold the mutex; observers must not
// call back into the lifecycle.
func (l *Lifecycle) emit(u Update) {
	for _, fn := range l.subs {
		fn(u)
	}
}
