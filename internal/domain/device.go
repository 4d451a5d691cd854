package domain

import (
	"fmt"
	"strings"
	"time"
)

// DeviceStatus is the operational state of a field device
type DeviceStatus string

const (
	DeviceOnline      DeviceStatus = "online"
	DeviceOffline     DeviceStatus = "offline"
	DeviceMaintenance DeviceStatus = "maintenance"
	DeviceRebooting   DeviceStatus = "rebooting"
)

// Text returns the badge label for the status
func (s DeviceStatus) Text() string {
	switch s {
	case DeviceOnline:
		return "Online"
	case DeviceOffline:
		return "Offline"
	case DeviceMaintenance:
		return "Maintenance"
	case DeviceRebooting:
		return "Rebooting"
	default:
		return "Unknown"
	}
}

// DefaultFirmwareVersion is installed on newly registered devices
const DefaultFirmwareVersion = "3.2.1"

// Device is a registered sensor unit in the fleet
type Device struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name" validate:"required"`
	Type            string       `json:"type" yaml:"type" validate:"required"`
	Status          DeviceStatus `json:"status" yaml:"status" validate:"required,oneof=online offline maintenance rebooting"`
	Battery         int          `json:"battery" yaml:"battery" validate:"gte=0,lte=100"`
	LastMaintenance time.Time    `json:"last_maintenance" yaml:"last_maintenance"`
	FirmwareVersion string       `json:"firmware_version" yaml:"firmware_version"`
	Location        string       `json:"location" yaml:"location" validate:"required"`
}

// Matches reports whether term appears in the name, type or location, ignoring case
func (d Device) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), term) ||
		strings.Contains(strings.ToLower(d.Type), term) ||
		strings.Contains(strings.ToLower(d.Location), term)
}

// NewDevice is the input for registering a device
type NewDevice struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// DeviceID formats the sequential fleet identifier, e.g. device-005
func DeviceID(n int) string {
	return fmt.Sprintf("device-%03d", n)
}

// DefaultDevices returns the baseline fleet
func DefaultDevices() []Device {
	date := func(s string) time.Time {
		t, _ := time.Parse(time.DateOnly, s)
		return t
	}

	return []Device{
		{
			ID: DeviceID(1), Name: "Main Water Tank Sensor", Type: "pH & Temperature",
			Status: DeviceOnline, Battery: 87, LastMaintenance: date("2023-12-10"),
			FirmwareVersion: "3.2.1", Location: "Water Tank 1",
		},
		{
			ID: DeviceID(2), Name: "Outlet Turbidity Sensor", Type: "Turbidity",
			Status: DeviceOnline, Battery: 92, LastMaintenance: date("2024-01-15"),
			FirmwareVersion: "3.1.7", Location: "Outlet Pipe",
		},
		{
			ID: DeviceID(3), Name: "Oxygen Level Monitor", Type: "Dissolved Oxygen",
			Status: DeviceOffline, Battery: 23, LastMaintenance: date("2023-11-05"),
			FirmwareVersion: "3.0.9", Location: "Aerator Tank",
		},
		{
			ID: DeviceID(4), Name: "Secondary Tank Sensor", Type: "pH & Temperature",
			Status: DeviceMaintenance, Battery: 65, LastMaintenance: date("2024-02-20"),
			FirmwareVersion: "3.2.0", Location: "Water Tank 2",
		},
	}
}
