package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/ports"
)

// Engine is the simulation the monitor drives
type Engine interface {
	ports.Simulator
	GenerateHistory(sensor domain.SensorRecord, hours, intervalMinutes int) ([]domain.HistoryPoint, error)
	GenerateRange(sensor domain.SensorRecord, r domain.TimeRange) ([]domain.HistoryPoint, error)
}

// Snapshot is one consistent view of the sensors and the unit status
type Snapshot struct {
	Sequence uint64                `json:"sequence"`
	Sensors  []domain.SensorRecord `json:"sensors"`
	Status   domain.SystemStatus   `json:"status"`
}

// Monitor owns live telemetry state.
// Readers always see a sensors/status pair from the same tick.
type Monitor struct {
	engine    Engine
	scheduler *ports.Scheduler
	newID     func() string
	now       func() time.Time

	mu      sync.RWMutex
	snap    Snapshot
	notify  map[string]bool
	handle  *ports.Handle
	pending []domain.SensorRecord

	subMu  sync.Mutex
	subs   map[int]chan Snapshot
	nextID int
}

// Option configures a Monitor
type Option func(*Monitor)

// WithInterval overrides the tick period
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		m.scheduler = ports.NewScheduler(m.engine, d)
	}
}

// WithIDGenerator replaces uuid-based notification IDs
func WithIDGenerator(newID func() string) Option {
	return func(m *Monitor) {
		m.newID = newID
	}
}

// WithClock replaces time.Now for notification timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		m.now = now
	}
}

// New creates a monitor seeded with the given state. Notifications start
// enabled for every sensor.
func New(engine Engine, sensors []domain.SensorRecord, status domain.SystemStatus, opts ...Option) *Monitor {
	m := &Monitor{
		engine:    engine,
		scheduler: ports.NewScheduler(engine, ports.DefaultTickInterval),
		newID:     uuid.NewString,
		now:       time.Now,
		snap: Snapshot{
			Sensors: domain.CloneSensors(sensors),
			Status:  status,
		},
		notify: make(map[string]bool, len(sensors)),
		subs:   make(map[int]chan Snapshot),
	}
	for _, s := range sensors {
		m.notify[s.ID] = true
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start begins periodic updates. Calling Start on a running monitor is a no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle != nil {
		return
	}
	m.handle = m.scheduler.Start(m.snap.Sensors, m.snap.Status, m.stageSensors, m.commitStatus)
	log.Info().Dur("interval", m.scheduler.Interval()).Msg("monitor started")
}

// Stop halts periodic updates and closes every subscription
func (m *Monitor) Stop() {
	m.mu.Lock()
	h := m.handle
	m.handle = nil
	m.mu.Unlock()

	if h != nil {
		h.Stop()
		log.Info().Msg("monitor stopped")
	}

	m.subMu.Lock()
	for id, ch := range m.subs {
		close(ch)
		delete(m.subs, id)
	}
	m.subMu.Unlock()
}

// stageSensors holds a tick's sensors until the matching status arrives.
// Only the scheduler goroutine calls it.
func (m *Monitor) stageSensors(sensors []domain.SensorRecord) {
	m.pending = sensors
}

// commitStatus swaps in the staged sensors together with the new status
func (m *Monitor) commitStatus(status domain.SystemStatus) {
	m.mu.Lock()
	if m.pending != nil {
		m.snap.Sensors = m.pending
		m.pending = nil
	}
	m.snap.Status = status
	m.snap.Sequence++
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.broadcast(snap)
}

func (m *Monitor) snapshotLocked() Snapshot {
	return Snapshot{
		Sequence: m.snap.Sequence,
		Sensors:  domain.CloneSensors(m.snap.Sensors),
		Status:   m.snap.Status,
	}
}

// Snapshot returns the current state
func (m *Monitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Sensor returns one sensor by ID
func (m *Monitor) Sensor(id string) (domain.SensorRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.snap.Sensors {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.SensorRecord{}, fmt.Errorf("%w: %s", domain.ErrSensorNotFound, id)
}

// Summary grades the current sensor set
func (m *Monitor) Summary() domain.Summary {
	return domain.Summarize(m.Snapshot().Sensors)
}

// Alert returns the critical banner, if any sensor is poor
func (m *Monitor) Alert() (domain.Alert, bool) {
	return domain.CriticalAlert(m.Snapshot().Sensors)
}

// Notifications lists warnings and critical notices for sensors whose
// notifications are enabled
func (m *Monitor) Notifications() []domain.Notification {
	m.mu.RLock()
	var sensors []domain.SensorRecord
	for _, s := range m.snap.Sensors {
		if m.notify[s.ID] {
			sensors = append(sensors, s)
		}
	}
	m.mu.RUnlock()

	return domain.BuildNotifications(sensors, m.now(), m.newID)
}

// SetNotificationsEnabled toggles notifications for a sensor
func (m *Monitor) SetNotificationsEnabled(sensorID string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notify[sensorID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrSensorNotFound, sensorID)
	}
	m.notify[sensorID] = enabled

	log.Info().Str("sensor_id", sensorID).Bool("enabled", enabled).Msg("notification setting updated")
	return nil
}

// NotificationsEnabled reports the notification setting for a sensor
func (m *Monitor) NotificationsEnabled(sensorID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	enabled, ok := m.notify[sensorID]
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrSensorNotFound, sensorID)
	}
	return enabled, nil
}

// UpdateThresholds replaces a sensor's thresholds and reclassifies its
// current reading right away
func (m *Monitor) UpdateThresholds(ctx context.Context, sensorID string, t domain.Thresholds) (domain.SensorRecord, error) {
	if err := t.Validate(); err != nil {
		return domain.SensorRecord{}, err
	}

	var updated domain.SensorRecord
	apply := func(sensors []domain.SensorRecord) ([]domain.SensorRecord, error) {
		for i := range sensors {
			if sensors[i].ID == sensorID {
				sensors[i] = sensors[i].WithThresholds(t)
				updated = sensors[i]
				return sensors, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrSensorNotFound, sensorID)
	}

	m.mu.Lock()
	h := m.handle
	if h == nil {
		next, err := apply(domain.CloneSensors(m.snap.Sensors))
		if err != nil {
			m.mu.Unlock()
			return domain.SensorRecord{}, err
		}
		m.snap.Sensors = next
		m.snap.Sequence++
		snap := m.snapshotLocked()
		m.mu.Unlock()

		m.broadcast(snap)
	} else {
		m.mu.Unlock()

		// The scheduler owns the sensors while running; route the change
		// through it so ticks never overwrite it.
		if err := h.Update(ctx, apply); err != nil {
			return domain.SensorRecord{}, err
		}
	}

	log.Info().
		Str("sensor_id", sensorID).
		Float64("good_min", t.Good.Min).
		Float64("good_max", t.Good.Max).
		Float64("moderate_min", t.Moderate.Min).
		Float64("moderate_max", t.Moderate.Max).
		Str("status", string(updated.Reading.Status)).
		Msg("thresholds updated")

	return updated, nil
}

// History synthesizes a trend series for a named window
func (m *Monitor) History(sensorID string, r domain.TimeRange) ([]domain.HistoryPoint, error) {
	sensor, err := m.Sensor(sensorID)
	if err != nil {
		return nil, err
	}
	return m.engine.GenerateRange(sensor, r)
}

// HistoryWindow synthesizes a trend series anchored on the sensor's current value
func (m *Monitor) HistoryWindow(sensorID string, hours, intervalMinutes int) ([]domain.HistoryPoint, error) {
	sensor, err := m.Sensor(sensorID)
	if err != nil {
		return nil, err
	}
	return m.engine.GenerateHistory(sensor, hours, intervalMinutes)
}

// Subscribe returns a channel receiving every new snapshot and a cancel
// function. A subscriber that falls behind misses snapshots rather than
// stalling the update loop.
func (m *Monitor) Subscribe(buffer int) (<-chan Snapshot, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Snapshot, buffer)

	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = ch
	m.subMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.subMu.Lock()
			defer m.subMu.Unlock()
			if c, ok := m.subs[id]; ok {
				close(c)
				delete(m.subs, id)
			}
		})
	}
	return ch, cancel
}

func (m *Monitor) broadcast(snap Snapshot) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for id, ch := range m.subs {
		select {
		case ch <- snap:
		default:
			log.Debug().Int("subscriber", id).Uint64("sequence", snap.Sequence).Msg("subscriber behind, snapshot dropped")
		}
	}
}
