package domain

import (
	"context"
)

// DeviceRepository defines operations for storing/retrieving fleet devices
// This is a PORT - adapters implement it
type DeviceRepository interface {
	// SaveDevice inserts or replaces a device.
	// A device without an ID gets the next sequential device-NNN identifier.
	SaveDevice(ctx context.Context, device *Device) error

	// GetDevice retrieves a specific device by ID
	GetDevice(ctx context.Context, id string) (*Device, error)

	// ListDevices returns every device ordered by ID
	ListDevices(ctx context.Context) ([]*Device, error)
}

// SessionStore keeps login sessions until logout or expiry
// This is a PORT - adapters implement it
type SessionStore interface {
	// PutSession stores a session until its ExpiresAt
	PutSession(ctx context.Context, session *Session) error

	// GetSession returns ErrSessionNotFound once the session is gone
	GetSession(ctx context.Context, id string) (*Session, error)

	// DeleteSession removes a session; removing a missing one is not an error
	DeleteSession(ctx context.Context, id string) error
}
