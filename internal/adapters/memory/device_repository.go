package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

// DeviceRepository implements domain.DeviceRepository with in-memory storage
type DeviceRepository struct {
	mu      sync.RWMutex
	devices map[string]domain.Device
}

// NewDeviceRepository creates a repository holding the given devices
func NewDeviceRepository(seed ...domain.Device) *DeviceRepository {
	r := &DeviceRepository{
		devices: make(map[string]domain.Device, len(seed)),
	}
	for _, d := range seed {
		r.devices[d.ID] = d
	}
	return r
}

// SaveDevice stores a copy of the device, assigning the next ID when unset
func (r *DeviceRepository) SaveDevice(ctx context.Context, device *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Assign ID if not set
	if device.ID == "" {
		n := len(r.devices) + 1
		for {
			id := domain.DeviceID(n)
			if _, taken := r.devices[id]; !taken {
				device.ID = id
				break
			}
			n++
		}
	}

	r.devices[device.ID] = *device
	return nil
}

// GetDevice retrieves a device by ID
func (r *DeviceRepository) GetDevice(ctx context.Context, id string) (*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	device, exists := r.devices[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, id)
	}

	return &device, nil
}

// ListDevices returns all devices sorted by ID
func (r *DeviceRepository) ListDevices(ctx context.Context) ([]*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*domain.Device, 0, len(r.devices))
	for _, device := range r.devices {
		d := device
		results = append(results, &d)
	}

	// Sort by ID
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})

	return results, nil
}
