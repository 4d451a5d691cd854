package simulation

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/adapters/mock"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(values ...float64) *Engine {
	return NewEngine(mock.NewSequenceSource(values...), WithClock(func() time.Time { return fixedNow }))
}

func phSensor(value float64) domain.SensorRecord {
	s := domain.DefaultSensors(fixedNow.Add(-time.Hour))[0]
	return s.WithValue(value, s.Timestamp)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNext_ExactDelta(t *testing.T) {
	tests := []struct {
		name   string
		random float64
		value  float64
		want   float64
	}{
		{name: "upward", random: 0.75, value: 7.0, want: 7.35},
		{name: "downward", random: 0.25, value: 7.0, want: 6.65},
		{name: "no change", random: 0.5, value: 7.0, want: 7.0},
		{name: "most negative", random: 0, value: 8.0, want: 7.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.random)
			sensor := phSensor(tt.value)

			got := e.Next(sensor.Reading, domain.KindPH, sensor.Thresholds)
			if !approx(got.Value, tt.want) {
				t.Errorf("value = %v, want %v", got.Value, tt.want)
			}
			if got.Unit != "pH" {
				t.Errorf("unit = %q, want pH", got.Unit)
			}
			if got.Status != sensor.Thresholds.Classify(got.Value) {
				t.Errorf("status %v doesn't match classification of %v", got.Status, got.Value)
			}
		})
	}
}

func TestFluctuate_PHStaysInScale(t *testing.T) {
	e := NewEngine(mock.NewRandomSource(42))
	sensor := phSensor(7.0)

	for i := 0; i < 10000; i++ {
		sensor = e.Fluctuate(sensor)
		if v := sensor.Reading.Value; v < 0 || v > 14 {
			t.Fatalf("iteration %d: pH %v left [0,14]", i, v)
		}
	}
}

func TestFluctuate_ClampsAtScaleEdge(t *testing.T) {
	e := newTestEngine(0.999999)
	sensor := phSensor(13.9)

	got := e.Fluctuate(sensor)
	if got.Reading.Value != 14 {
		t.Errorf("value = %v, want clamped to 14", got.Reading.Value)
	}
	if got.Reading.Status != domain.StatusPoor {
		t.Errorf("status = %v, want poor", got.Reading.Status)
	}
	if !got.Timestamp.Equal(fixedNow) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, fixedNow)
	}
	if sensor.Reading.Value != 13.9 {
		t.Error("Fluctuate must not mutate its argument")
	}
}

func TestFluctuate_NonNegativeKinds(t *testing.T) {
	e := NewEngine(mock.NewRandomSource(7))

	for _, sensor := range domain.DefaultSensors(fixedNow)[1:] {
		for i := 0; i < 2000; i++ {
			sensor = e.Fluctuate(sensor)
			if sensor.Reading.Value < 0 {
				t.Fatalf("%s went negative: %v", sensor.ID, sensor.Reading.Value)
			}
		}
	}
}

func TestAdvanceStatus_Exact(t *testing.T) {
	// drain 0.5*0.5, signal +(0.75*2-1)*5, online roll 0.5
	e := newTestEngine(0.5, 0.75, 0.5)
	start := domain.DefaultSystemStatus(fixedNow.Add(-time.Minute))

	got := e.AdvanceStatus(start)
	if !approx(got.BatteryLevel, 77.75) {
		t.Errorf("battery = %v, want 77.75", got.BatteryLevel)
	}
	if !approx(got.SignalStrength, 87.5) {
		t.Errorf("signal = %v, want 87.5", got.SignalStrength)
	}
	if !got.IsOnline {
		t.Error("expected online")
	}
	if !got.LastUpdate.Equal(fixedNow) {
		t.Errorf("last update = %v, want %v", got.LastUpdate, fixedNow)
	}
}

func TestAdvanceStatus_OfflineRoll(t *testing.T) {
	e := newTestEngine(0.1, 0.5, 0.01)
	got := e.AdvanceStatus(domain.DefaultSystemStatus(fixedNow))
	if got.IsOnline {
		t.Error("expected offline for a roll below 0.02")
	}

	// not sticky: the next roll brings it back
	e = newTestEngine(0.1, 0.5, 0.9)
	if back := e.AdvanceStatus(got); !back.IsOnline {
		t.Error("expected online after an offline tick")
	}
}

func TestAdvanceStatus_Bounds(t *testing.T) {
	e := NewEngine(mock.NewRandomSource(1))

	starts := []domain.SystemStatus{
		{BatteryLevel: 0.1, SignalStrength: 0},
		{BatteryLevel: 50, SignalStrength: 2},
		{BatteryLevel: 100, SignalStrength: 99},
		{BatteryLevel: 78, SignalStrength: 85},
	}

	for _, status := range starts {
		for i := 0; i < 1000; i++ {
			next := e.AdvanceStatus(status)
			if next.BatteryLevel > status.BatteryLevel {
				t.Fatalf("battery rose from %v to %v", status.BatteryLevel, next.BatteryLevel)
			}
			if next.BatteryLevel < 0 {
				t.Fatalf("battery below zero: %v", next.BatteryLevel)
			}
			if next.SignalStrength < 0 || next.SignalStrength > 100 {
				t.Fatalf("signal out of range: %v", next.SignalStrength)
			}
			status = next
		}
	}
}

func TestGenerateHistory_Shape(t *testing.T) {
	e := NewEngine(mock.NewRandomSource(3), WithClock(func() time.Time { return fixedNow }))
	sensor := domain.DefaultSensors(fixedNow)[2] // tds 180

	points, err := e.GenerateHistory(sensor, 4, 30)
	if err != nil {
		t.Fatalf("GenerateHistory failed: %v", err)
	}
	if len(points) != 9 {
		t.Fatalf("expected 9 points, got %d", len(points))
	}

	if !points[0].Time.Equal(fixedNow.Add(-4 * time.Hour)) {
		t.Errorf("first point at %v, want %v", points[0].Time, fixedNow.Add(-4*time.Hour))
	}
	if !points[len(points)-1].Time.Equal(fixedNow) {
		t.Errorf("last point at %v, want %v", points[len(points)-1].Time, fixedNow)
	}

	for i, p := range points {
		if i > 0 && !p.Time.After(points[i-1].Time) {
			t.Errorf("point %d not after point %d", i, i-1)
		}
		if p.Value < 0 {
			t.Errorf("point %d negative: %v", i, p.Value)
		}
		if p.Value < 180*0.8-1e-9 || p.Value > 180*1.2+1e-9 {
			t.Errorf("point %d value %v outside ±20%% of 180", i, p.Value)
		}
		if p.Status != sensor.Thresholds.Classify(p.Value) {
			t.Errorf("point %d status %v doesn't match its value", i, p.Status)
		}
	}
}

func TestGenerateHistory_AnchoredToCurrentValue(t *testing.T) {
	// the same random draws applied to every point give the same offset,
	// showing values don't accumulate like a walk
	e := newTestEngine(0.75)
	sensor := phSensor(7.0)

	points, err := e.GenerateHistory(sensor, 2, 60)
	if err != nil {
		t.Fatalf("GenerateHistory failed: %v", err)
	}
	for i, p := range points {
		if !approx(p.Value, 7.7) {
			t.Errorf("point %d = %v, want 7.7", i, p.Value)
		}
	}
}

func TestGenerateHistory_Counts(t *testing.T) {
	e := NewEngine(mock.NewRandomSource(5))
	sensor := phSensor(7.0)

	tests := []struct {
		hours, interval, want int
	}{
		{hours: 24, interval: 60, want: 25},
		{hours: 168, interval: 240, want: 43},
		{hours: 720, interval: 720, want: 61},
		{hours: 1, interval: 45, want: 2},
		{hours: 0, interval: 30, want: 1},
	}

	for _, tt := range tests {
		points, err := e.GenerateHistory(sensor, tt.hours, tt.interval)
		if err != nil {
			t.Fatalf("GenerateHistory(%d, %d) failed: %v", tt.hours, tt.interval, err)
		}
		if len(points) != tt.want {
			t.Errorf("GenerateHistory(%d, %d) = %d points, want %d", tt.hours, tt.interval, len(points), tt.want)
		}
	}
}

func TestGenerateHistory_InvalidWindow(t *testing.T) {
	e := newTestEngine()
	sensor := phSensor(7.0)

	tests := []struct {
		name            string
		hours, interval int
	}{
		{name: "zero interval", hours: 4, interval: 0},
		{name: "negative interval", hours: 4, interval: -30},
		{name: "negative hours", hours: -1, interval: 30},
		{name: "one point over the cap", hours: MaxHistoryPoints, interval: 60},
		{name: "day at one minute", hours: 34, interval: 1},
		{name: "huge window", hours: 10_000_000, interval: 1},
		{name: "max int32 hours", hours: math.MaxInt32, interval: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := e.GenerateHistory(sensor, tt.hours, tt.interval)
			if !errors.Is(err, domain.ErrInvalidHistoryWindow) {
				t.Errorf("GenerateHistory(%d, %d): expected ErrInvalidHistoryWindow, got %v", tt.hours, tt.interval, err)
			}
			if points != nil {
				t.Errorf("expected no points, got %d", len(points))
			}
		})
	}
}

func TestGenerateHistory_AtCap(t *testing.T) {
	e := newTestEngine()

	points, err := e.GenerateHistory(phSensor(7.0), MaxHistoryPoints-1, 60)
	if err != nil {
		t.Fatalf("GenerateHistory failed: %v", err)
	}
	if len(points) != MaxHistoryPoints {
		t.Errorf("expected %d points, got %d", MaxHistoryPoints, len(points))
	}
}

func TestGenerateHistory_ClampsAtZero(t *testing.T) {
	e := newTestEngine(0)
	sensor := domain.DefaultSensors(fixedNow)[1].WithValue(0, fixedNow) // turbidity at zero

	points, err := e.GenerateHistory(sensor, 1, 60)
	if err != nil {
		t.Fatalf("GenerateHistory failed: %v", err)
	}
	for _, p := range points {
		if p.Value != 0 {
			t.Errorf("value = %v, want 0", p.Value)
		}
	}
}

func TestGenerateRange(t *testing.T) {
	e := newTestEngine()
	sensor := phSensor(7.0)

	tests := []struct {
		r    domain.TimeRange
		want int
		span time.Duration
	}{
		{r: domain.RangeDay, want: 25, span: 24 * time.Hour},
		{r: domain.RangeWeek, want: 43, span: 168 * time.Hour},
		{r: domain.RangeMonth, want: 61, span: 720 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			points, err := e.GenerateRange(sensor, tt.r)
			if err != nil {
				t.Fatalf("GenerateRange failed: %v", err)
			}
			if len(points) != tt.want {
				t.Fatalf("got %d points, want %d", len(points), tt.want)
			}
			if got := points[len(points)-1].Time.Sub(points[0].Time); got != tt.span {
				t.Errorf("span = %v, want %v", got, tt.span)
			}
		})
	}
}
