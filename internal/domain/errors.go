package domain

import "errors"

var (
	// ErrInvalidThresholds indicates a threshold range is unordered or not finite
	ErrInvalidThresholds = errors.New("invalid thresholds")

	// ErrSensorNotFound indicates requested sensor doesn't exist
	ErrSensorNotFound = errors.New("sensor not found")

	// ErrInvalidSensor indicates a sensor record is missing required fields
	ErrInvalidSensor = errors.New("invalid sensor")

	// ErrInvalidHistoryWindow indicates a history request can't produce a series
	ErrInvalidHistoryWindow = errors.New("invalid history window")

	// ErrUnknownTimeRange indicates a time range name isn't day, week or month
	ErrUnknownTimeRange = errors.New("unknown time range")

	// ErrDeviceNotFound indicates requested device doesn't exist
	ErrDeviceNotFound = errors.New("device not found")

	// ErrInvalidDevice indicates device input failed validation
	ErrInvalidDevice = errors.New("invalid device")

	// ErrDeviceBusy indicates the device is already rebooting
	ErrDeviceBusy = errors.New("device is rebooting")

	// ErrInvalidCredentials indicates login failure
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidPassword indicates a password can't be stored for an account
	ErrInvalidPassword = errors.New("invalid password")

	// ErrSessionNotFound indicates the session expired or was logged out
	ErrSessionNotFound = errors.New("session not found")
)
