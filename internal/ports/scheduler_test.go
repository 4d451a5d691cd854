package ports

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

// stepSimulator adds one to every reading and drains one battery point per tick
type stepSimulator struct{}

func (stepSimulator) Fluctuate(s domain.SensorRecord) domain.SensorRecord {
	return s.WithValue(s.Reading.Value+1, time.Now())
}

func (stepSimulator) AdvanceStatus(st domain.SystemStatus) domain.SystemStatus {
	st.BatteryLevel--
	st.LastUpdate = time.Now()
	return st
}

type published struct {
	sensors []domain.SensorRecord
	status  domain.SystemStatus
}

// recorder collects published pairs and checks callback ordering
type recorder struct {
	mu      sync.Mutex
	pending []domain.SensorRecord
	pairs   []published
	ch      chan published
	misuse  bool
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan published, 64)}
}

func (r *recorder) onSensors(s []domain.SensorRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending != nil {
		r.misuse = true
	}
	r.pending = s
}

func (r *recorder) onStatus(st domain.SystemStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		r.misuse = true
	}
	p := published{sensors: r.pending, status: st}
	r.pending = nil
	r.pairs = append(r.pairs, p)
	select {
	case r.ch <- p:
	default:
	}
}

func (r *recorder) next(t *testing.T) published {
	t.Helper()
	select {
	case p := <-r.ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for publish")
	}
	return published{}
}

func seedSensors() []domain.SensorRecord {
	return domain.DefaultSensors(time.Now())
}

func TestScheduler_TicksEvolveFromPreviousState(t *testing.T) {
	sched := NewScheduler(stepSimulator{}, 10*time.Millisecond)
	rec := newRecorder()

	initial := seedSensors()
	status := domain.DefaultSystemStatus(time.Now())

	h := sched.Start(initial, status, rec.onSensors, rec.onStatus)
	defer h.Stop()

	first := rec.next(t)
	second := rec.next(t)

	if got := first.sensors[0].Reading.Value; math.Abs(got-(initial[0].Reading.Value+1)) > 1e-9 {
		t.Errorf("first tick pH = %v, want %v", got, initial[0].Reading.Value+1)
	}
	if got := second.sensors[0].Reading.Value; math.Abs(got-(initial[0].Reading.Value+2)) > 1e-9 {
		t.Errorf("second tick pH = %v, want %v", got, initial[0].Reading.Value+2)
	}
	if second.status.BatteryLevel != status.BatteryLevel-2 {
		t.Errorf("second tick battery = %v, want %v", second.status.BatteryLevel, status.BatteryLevel-2)
	}
	if initial[0].Reading.Value != 7.2 {
		t.Error("scheduler must not mutate the caller's slice")
	}
}

func TestScheduler_PublishesSensorsBeforeStatus(t *testing.T) {
	sched := NewScheduler(stepSimulator{}, 5*time.Millisecond)
	rec := newRecorder()

	h := sched.Start(seedSensors(), domain.DefaultSystemStatus(time.Now()), rec.onSensors, rec.onStatus)
	for i := 0; i < 5; i++ {
		rec.next(t)
	}
	h.Stop()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.misuse {
		t.Error("onSensors and onStatus were not called as a pair")
	}
}

func TestScheduler_StopHaltsPublishing(t *testing.T) {
	sched := NewScheduler(stepSimulator{}, 5*time.Millisecond)
	rec := newRecorder()

	h := sched.Start(seedSensors(), domain.DefaultSystemStatus(time.Now()), rec.onSensors, rec.onStatus)
	rec.next(t)
	h.Stop()
	h.Stop() // idempotent

	select {
	case <-h.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}

	rec.mu.Lock()
	count := len(rec.pairs)
	rec.mu.Unlock()

	time.Sleep(30 * time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.pairs) != count {
		t.Errorf("published %d more times after Stop", len(rec.pairs)-count)
	}
}

func TestHandle_Update(t *testing.T) {
	sched := NewScheduler(stepSimulator{}, time.Hour)
	rec := newRecorder()

	h := sched.Start(seedSensors(), domain.DefaultSystemStatus(time.Now()), rec.onSensors, rec.onStatus)
	defer h.Stop()

	ctx := context.Background()
	err := h.Update(ctx, func(sensors []domain.SensorRecord) ([]domain.SensorRecord, error) {
		sensors[0] = sensors[0].WithValue(3, time.Now())
		return sensors, nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	p := rec.next(t)
	if p.sensors[0].Reading.Value != 3 {
		t.Errorf("published pH = %v, want 3", p.sensors[0].Reading.Value)
	}
	if p.sensors[0].Reading.Status != domain.StatusPoor {
		t.Errorf("published status = %v, want poor", p.sensors[0].Reading.Status)
	}

	boom := errors.New("boom")
	err = h.Update(ctx, func(sensors []domain.SensorRecord) ([]domain.SensorRecord, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected update error to propagate, got %v", err)
	}
}

func TestHandle_UpdateAfterStop(t *testing.T) {
	sched := NewScheduler(stepSimulator{}, time.Hour)
	h := sched.Start(seedSensors(), domain.DefaultSystemStatus(time.Now()), nil, nil)
	h.Stop()

	err := h.Update(context.Background(), func(s []domain.SensorRecord) ([]domain.SensorRecord, error) {
		return s, nil
	})
	if !errors.Is(err, ErrSchedulerStopped) {
		t.Errorf("expected ErrSchedulerStopped, got %v", err)
	}
}

func TestNewScheduler_DefaultInterval(t *testing.T) {
	if got := NewScheduler(stepSimulator{}, 0).Interval(); got != DefaultTickInterval {
		t.Errorf("Interval() = %v, want %v", got, DefaultTickInterval)
	}
}
