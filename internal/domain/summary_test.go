package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"
)

func withStatus(id, name string, status Status) SensorRecord {
	return SensorRecord{ID: id, Name: name, Reading: SensorReading{Status: status}}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		sensors     []SensorRecord
		wantOverall Status
		wantMessage string
	}{
		{
			name:        "all good",
			sensors:     []SensorRecord{withStatus("a", "A", StatusGood), withStatus("b", "B", StatusGood)},
			wantOverall: StatusGood,
			wantMessage: "Water quality is good",
		},
		{
			name:        "one moderate",
			sensors:     []SensorRecord{withStatus("a", "A", StatusGood), withStatus("b", "B", StatusModerate)},
			wantOverall: StatusModerate,
			wantMessage: "Water quality needs attention",
		},
		{
			name:        "poor wins",
			sensors:     []SensorRecord{withStatus("a", "A", StatusModerate), withStatus("b", "B", StatusPoor)},
			wantOverall: StatusPoor,
			wantMessage: "Water quality is critical",
		},
		{
			name:        "empty",
			wantOverall: StatusGood,
			wantMessage: "Water quality is good",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.sensors)
			if s.Overall != tt.wantOverall {
				t.Errorf("Overall = %v, want %v", s.Overall, tt.wantOverall)
			}
			if s.Message() != tt.wantMessage {
				t.Errorf("Message() = %q, want %q", s.Message(), tt.wantMessage)
			}
			if s.Good+s.Moderate+s.Poor != len(tt.sensors) {
				t.Errorf("counts %+v don't add up to %d", s, len(tt.sensors))
			}
		})
	}
}

func TestBuildNotifications(t *testing.T) {
	sensors := []SensorRecord{
		withStatus("ph", "pH Level", StatusGood),
		withStatus("tds", "Total Dissolved Solids", StatusModerate),
		withStatus("oxygen", "Dissolved Oxygen", StatusPoor),
		withStatus("x", "Unknown", StatusUnknown),
	}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	n := 0
	newID := func() string { n++; return fmt.Sprintf("n%d", n) }

	got := BuildNotifications(sensors, at, newID)
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}

	if got[0].Severity != SeverityWarning || got[0].Message != "Total Dissolved Solids level is outside optimal range" {
		t.Errorf("unexpected warning: %+v", got[0])
	}
	if got[1].Severity != SeverityCritical || got[1].Message != "Dissolved Oxygen level is critical" {
		t.Errorf("unexpected critical: %+v", got[1])
	}
	if got[0].ID == got[1].ID {
		t.Error("notification IDs must be distinct")
	}
	if !got[1].Time.Equal(at) {
		t.Errorf("time = %v, want %v", got[1].Time, at)
	}
}

func TestCriticalAlert(t *testing.T) {
	if _, ok := CriticalAlert([]SensorRecord{withStatus("ph", "pH Level", StatusModerate)}); ok {
		t.Error("no alert expected without poor sensors")
	}

	one, ok := CriticalAlert([]SensorRecord{withStatus("ph", "pH Level", StatusPoor)})
	if !ok {
		t.Fatal("expected alert")
	}
	if one.Title != "Critical Alert" || one.Message != "pH Level is at critical levels" {
		t.Errorf("unexpected alert: %+v", one)
	}

	two, _ := CriticalAlert([]SensorRecord{
		withStatus("ph", "pH Level", StatusPoor),
		withStatus("tds", "TDS", StatusPoor),
	})
	if two.Title != "Critical Alerts" || two.Message != "pH Level, TDS are at critical levels" {
		t.Errorf("unexpected alert: %+v", two)
	}
	if len(two.SensorIDs) != 2 {
		t.Errorf("expected 2 sensor ids, got %v", two.SensorIDs)
	}
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		in        string
		want      TimeRange
		wantHours int
		wantStep  int
		wantErr   bool
	}{
		{in: "", want: RangeDay, wantHours: 24, wantStep: 60},
		{in: "day", want: RangeDay, wantHours: 24, wantStep: 60},
		{in: "Week", want: RangeWeek, wantHours: 168, wantStep: 240},
		{in: "month", want: RangeMonth, wantHours: 720, wantStep: 720},
		{in: "year", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeRange(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTimeRange) {
					t.Errorf("expected ErrUnknownTimeRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			hours, step := got.Window()
			if got != tt.want || hours != tt.wantHours || step != tt.wantStep {
				t.Errorf("got %v (%d, %d), want %v (%d, %d)", got, hours, step, tt.want, tt.wantHours, tt.wantStep)
			}
		})
	}
}

func TestCalculateStatistics(t *testing.T) {
	points := []HistoryPoint{{Value: 300}, {Value: 600}, {Value: 450}}

	stats := CalculateStatistics(points)
	if stats.Average != 450 || stats.Min != 300 || stats.Max != 600 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if math.Abs(stats.ChartMin-270) > 1e-9 || math.Abs(stats.ChartMax-660) > 1e-9 {
		t.Errorf("unexpected chart bounds: %+v", stats)
	}

	if empty := CalculateStatistics(nil); empty != (HistoryStats{}) {
		t.Errorf("expected zero stats, got %+v", empty)
	}
}

func TestDevice_Matches(t *testing.T) {
	d := DefaultDevices()[1] // Outlet Turbidity Sensor, Outlet Pipe

	for _, term := range []string{"", "outlet", "TURBIDITY", "pipe"} {
		if !d.Matches(term) {
			t.Errorf("expected %q to match", term)
		}
	}
	if d.Matches("aerator") {
		t.Error("did not expect aerator to match")
	}
}
