package ports

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

// DefaultTickInterval is how often live telemetry is recomputed
const DefaultTickInterval = 5 * time.Second

// ErrSchedulerStopped is returned when a handle is used after Stop
var ErrSchedulerStopped = errors.New("scheduler stopped")

// Simulator produces the next state of the sensors and the field unit
type Simulator interface {
	Fluctuate(sensor domain.SensorRecord) domain.SensorRecord
	AdvanceStatus(status domain.SystemStatus) domain.SystemStatus
}

// Scheduler drives periodic telemetry updates
type Scheduler struct {
	sim      Simulator
	interval time.Duration
}

// NewScheduler creates a scheduler; a non-positive interval means DefaultTickInterval
func NewScheduler(sim Simulator, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{
		sim:      sim,
		interval: interval,
	}
}

// Interval returns the tick period
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// SensorUpdate rewrites the sensor set between ticks
type SensorUpdate func(sensors []domain.SensorRecord) ([]domain.SensorRecord, error)

type updateRequest struct {
	fn    SensorUpdate
	reply chan error
}

// Handle controls a running update loop
type Handle struct {
	cancel   context.CancelFunc
	done     chan struct{}
	updates  chan updateRequest
	stopOnce sync.Once
}

// Start launches the update loop from the given initial state.
// Every tick evolves each sensor and the system status from the previously
// published values, then calls onSensors and onStatus in that order from the
// loop goroutine. The loop runs until Stop is called on the returned handle.
func (s *Scheduler) Start(
	sensors []domain.SensorRecord,
	status domain.SystemStatus,
	onSensors func([]domain.SensorRecord),
	onStatus func(domain.SystemStatus),
) *Handle {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{
		cancel:  cancel,
		done:    make(chan struct{}),
		updates: make(chan updateRequest),
	}

	l := &loop{
		sim:       s.sim,
		interval:  s.interval,
		sensors:   domain.CloneSensors(sensors),
		status:    status,
		onSensors: onSensors,
		onStatus:  onStatus,
	}
	go l.run(ctx, h)

	return h
}

// Stop cancels the loop and waits for it to exit. Safe to call more than once.
func (h *Handle) Stop() {
	h.stopOnce.Do(h.cancel)
	<-h.done
}

// Done is closed once the loop has exited
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Update applies fn to the current sensors on the loop goroutine and
// publishes the result immediately. A non-nil error from fn leaves the state
// untouched and is returned to the caller.
func (h *Handle) Update(ctx context.Context, fn SensorUpdate) error {
	req := updateRequest{fn: fn, reply: make(chan error, 1)}

	select {
	case h.updates <- req:
	case <-h.done:
		return ErrSchedulerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	// The loop always answers an accepted request before checking for
	// cancellation again.
	return <-req.reply
}

type loop struct {
	sim       Simulator
	interval  time.Duration
	sensors   []domain.SensorRecord
	status    domain.SystemStatus
	onSensors func([]domain.SensorRecord)
	onStatus  func(domain.SystemStatus)
}

func (l *loop) run(ctx context.Context, h *Handle) {
	defer close(h.done)

	log.Info().
		Dur("interval", l.interval).
		Int("sensors", len(l.sensors)).
		Msg("starting telemetry scheduler")

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.tick()

		case req := <-h.updates:
			next, err := req.fn(domain.CloneSensors(l.sensors))
			if err == nil {
				l.sensors = next
				l.publish()
			}
			req.reply <- err

		case <-ctx.Done():
			log.Info().Msg("stopping telemetry scheduler")
			return
		}
	}
}

// tick recomputes every sensor and the unit status, then publishes both
func (l *loop) tick() {
	next := make([]domain.SensorRecord, len(l.sensors))
	for i, sensor := range l.sensors {
		next[i] = l.sim.Fluctuate(sensor)
	}
	l.sensors = next
	l.status = l.sim.AdvanceStatus(l.status)

	log.Debug().
		Float64("battery", l.status.BatteryLevel).
		Float64("signal", l.status.SignalStrength).
		Bool("online", l.status.IsOnline).
		Msg("telemetry tick")

	l.publish()
}

func (l *loop) publish() {
	if l.onSensors != nil {
		l.onSensors(domain.CloneSensors(l.sensors))
	}
	if l.onStatus != nil {
		l.onStatus(l.status)
	}
}
