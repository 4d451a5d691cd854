package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HTTP_PORT", "TICK_INTERVAL", "LOG_LEVEL", "JWT_SECRET", "REBOOT_DELAY", "TLS_CERT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.GRPCPort != "50051" || cfg.HTTPPort != "8080" {
		t.Errorf("unexpected ports: %s, %s", cfg.GRPCPort, cfg.HTTPPort)
	}
	if cfg.TickInterval != 5*time.Second {
		t.Errorf("TickInterval = %v, want 5s", cfg.TickInterval)
	}
	if cfg.RebootDelay != 3*time.Second {
		t.Errorf("RebootDelay = %v, want 3s", cfg.RebootDelay)
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.JWTSecret != DevJWTSecret {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.TLSEnabled() {
		t.Error("TLS must be off without a certificate")
	}
}

func TestLoad_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(Config) bool
	}{
		{name: "tick", key: "TICK_INTERVAL", value: "250ms", check: func(c Config) bool { return c.TickInterval == 250*time.Millisecond }},
		{name: "bad tick", key: "TICK_INTERVAL", value: "soon", check: func(c Config) bool { return c.TickInterval == 5*time.Second }},
		{name: "negative tick", key: "TICK_INTERVAL", value: "-1s", check: func(c Config) bool { return c.TickInterval == 5*time.Second }},
		{name: "level", key: "LOG_LEVEL", value: "debug", check: func(c Config) bool { return c.LogLevel == zerolog.DebugLevel }},
		{name: "bad level", key: "LOG_LEVEL", value: "loud", check: func(c Config) bool { return c.LogLevel == zerolog.InfoLevel }},
		{name: "seed", key: "RANDOM_SEED", value: "42", check: func(c Config) bool { return c.RandomSeed == 42 }},
		{name: "bad seed", key: "RANDOM_SEED", value: "x", check: func(c Config) bool { return c.RandomSeed == 0 }},
		{name: "tls", key: "TLS_CERT", value: "/certs/server.crt", check: func(c Config) bool { return c.TLSEnabled() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if cfg := Load(); !tt.check(cfg) {
				t.Errorf("%s=%q not applied: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

const seedYAML = `
sensors:
  - id: ph
    name: pH Level
    unit: pH
    value: 4.2
    thresholds:
      good: {min: 6.5, max: 8.0}
      moderate: {min: 5.0, max: 9.0}
  - id: inlet-turbidity
    name: Inlet Turbidity
    kind: turbidity
    unit: NTU
    value: 7
    thresholds:
      good: {min: 0, max: 5}
      moderate: {min: 5, max: 10}
system:
  battery_level: 40
  signal_strength: 30
  is_online: false
devices:
  - name: Inlet Sensor
    type: Turbidity
    status: online
    battery: 90
    last_maintenance: 2024-03-01
    firmware_version: 3.2.1
    location: Inlet
`

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed([]byte(seedYAML))
	if err != nil {
		t.Fatalf("ParseSeed failed: %v", err)
	}

	now := time.Now()
	sensors, err := seed.SensorRecords(now)
	if err != nil {
		t.Fatalf("SensorRecords failed: %v", err)
	}
	if len(sensors) != 2 {
		t.Fatalf("expected 2 sensors, got %d", len(sensors))
	}
	if sensors[0].Kind != domain.KindPH || sensors[0].Reading.Status != domain.StatusPoor {
		t.Errorf("unexpected pH sensor: %+v", sensors[0])
	}
	if sensors[1].Kind != domain.KindTurbidity || sensors[1].Reading.Status != domain.StatusModerate {
		t.Errorf("unexpected turbidity sensor: %+v", sensors[1])
	}

	status := seed.SystemStatus(now)
	if status.BatteryLevel != 40 || status.IsOnline {
		t.Errorf("unexpected status: %+v", status)
	}

	devices := seed.DeviceList()
	if len(devices) != 1 || devices[0].ID != "device-001" {
		t.Fatalf("unexpected devices: %+v", devices)
	}
	if got := devices[0].LastMaintenance.Format(time.DateOnly); got != "2024-03-01" {
		t.Errorf("maintenance date = %s", got)
	}
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "inverted range",
			yaml: "sensors:\n  - id: ph\n    name: pH\n    thresholds:\n      good: {min: 8, max: 6}\n      moderate: {min: 5, max: 9}\n",
			want: domain.ErrInvalidThresholds,
		},
		{
			name: "duplicate sensor",
			yaml: "sensors:\n  - {id: ph, name: a}\n  - {id: ph, name: b}\n",
			want: domain.ErrInvalidSensor,
		},
		{
			name: "duplicate device",
			yaml: "devices:\n  - {id: device-001, name: a, type: b, status: online, location: c}\n  - {id: device-001, name: d, type: e, status: online, location: f}\n",
			want: domain.ErrInvalidDevice,
		},
		{name: "missing name", yaml: "sensors:\n  - {id: ph}\n"},
		{name: "unknown kind", yaml: "sensors:\n  - {id: ph, name: pH, kind: chlorine}\n"},
		{name: "battery out of range", yaml: "system:\n  battery_level: 140\n"},
		{name: "device without location", yaml: "devices:\n  - {name: a, type: b, status: online}\n"},
		{name: "bad device status", yaml: "devices:\n  - {name: a, type: b, status: exploded, location: c}\n"},
		{name: "not yaml", yaml: "sensors: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseSeed_DeviceIDs(t *testing.T) {
	doc := "devices:\n" +
		"  - {name: a, type: t, status: online, location: l}\n" +
		"  - {id: device-001, name: b, type: t, status: online, location: l}\n" +
		"  - {name: c, type: t, status: offline, location: l}\n"

	seed, err := ParseSeed([]byte(doc))
	if err != nil {
		t.Fatalf("ParseSeed failed: %v", err)
	}

	want := []string{"device-002", "device-001", "device-003"}
	devices := seed.DeviceList()
	if len(devices) != len(want) {
		t.Fatalf("expected %d devices, got %d", len(want), len(devices))
	}
	for i, d := range devices {
		if d.ID != want[i] {
			t.Errorf("device %d: id = %q, want %q", i, d.ID, want[i])
		}
	}
}

func TestSeed_EmptySectionsUseBaseline(t *testing.T) {
	var seed *Seed
	now := time.Now()

	sensors, err := seed.SensorRecords(now)
	if err != nil || len(sensors) != 5 {
		t.Errorf("expected 5 baseline sensors, got %d (%v)", len(sensors), err)
	}
	if seed.SystemStatus(now).BatteryLevel != 78 {
		t.Error("expected baseline system status")
	}
	if len(seed.DeviceList()) != 4 {
		t.Error("expected baseline devices")
	}
}

func TestLoadSeed_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(seedYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	seed, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed failed: %v", err)
	}
	if len(seed.Sensors) != 2 {
		t.Errorf("expected 2 sensors, got %d", len(seed.Sensors))
	}

	if _, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
