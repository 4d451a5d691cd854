package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
)

// DefaultRebootDelay is how long a simulated reboot takes
const DefaultRebootDelay = 3 * time.Second

// Service manages the device fleet
type Service struct {
	repo        domain.DeviceRepository
	validate    *validator.Validate
	rebootDelay time.Duration
	now         func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewService creates a fleet service; a non-positive delay means DefaultRebootDelay
func NewService(repo domain.DeviceRepository, rebootDelay time.Duration) *Service {
	if rebootDelay <= 0 {
		rebootDelay = DefaultRebootDelay
	}
	return &Service{
		repo:        repo,
		validate:    validator.New(),
		rebootDelay: rebootDelay,
		now:         time.Now,
		timers:      make(map[string]*time.Timer),
	}
}

// List returns devices whose name, type or location contains search
func (s *Service) List(ctx context.Context, search string) ([]domain.Device, error) {
	devices, err := s.repo.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	out := make([]domain.Device, 0, len(devices))
	for _, d := range devices {
		if d.Matches(search) {
			out = append(out, *d)
		}
	}
	return out, nil
}

// Get returns a single device
func (s *Service) Get(ctx context.Context, id string) (domain.Device, error) {
	d, err := s.repo.GetDevice(ctx, id)
	if err != nil {
		return domain.Device{}, err
	}
	return *d, nil
}

// Add registers a new device: online, fully charged, current firmware,
// maintained today
func (s *Service) Add(ctx context.Context, req domain.NewDevice) (domain.Device, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.TrimSpace(req.Type)
	req.Location = strings.TrimSpace(req.Location)

	if err := s.validate.Struct(req); err != nil {
		return domain.Device{}, fmt.Errorf("%w: %s", domain.ErrInvalidDevice, describe(err))
	}

	device := domain.Device{
		Name:            req.Name,
		Type:            req.Type,
		Status:          domain.DeviceOnline,
		Battery:         100,
		LastMaintenance: s.now().UTC().Truncate(24 * time.Hour),
		FirmwareVersion: domain.DefaultFirmwareVersion,
		Location:        req.Location,
	}
	if err := s.repo.SaveDevice(ctx, &device); err != nil {
		return domain.Device{}, fmt.Errorf("save device: %w", err)
	}

	log.Info().Str("device_id", device.ID).Str("name", device.Name).Msg("device added")
	return device, nil
}

// Reboot puts a device into the rebooting state; it comes back online after
// the reboot delay
func (s *Service) Reboot(ctx context.Context, id string) (domain.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.Device{}, errors.New("fleet service closed")
	}

	device, err := s.repo.GetDevice(ctx, id)
	if err != nil {
		return domain.Device{}, err
	}
	if device.Status == domain.DeviceRebooting {
		return domain.Device{}, fmt.Errorf("%w: %s", domain.ErrDeviceBusy, id)
	}

	device.Status = domain.DeviceRebooting
	if err := s.repo.SaveDevice(ctx, device); err != nil {
		return domain.Device{}, fmt.Errorf("save device: %w", err)
	}

	s.timers[id] = time.AfterFunc(s.rebootDelay, func() { s.finishReboot(id) })

	log.Info().Str("device_id", id).Dur("delay", s.rebootDelay).Msg("device rebooting")
	return *device, nil
}

func (s *Service) finishReboot(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.timers, id)
	if s.closed {
		return
	}

	ctx := context.Background()
	device, err := s.repo.GetDevice(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("device_id", id).Msg("failed to load rebooting device")
		return
	}
	device.Status = domain.DeviceOnline
	if err := s.repo.SaveDevice(ctx, device); err != nil {
		log.Error().Err(err).Str("device_id", id).Msg("failed to complete reboot")
		return
	}

	log.Info().Str("device_id", id).Msg("device reboot complete")
}

// Close cancels pending reboot completions
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// describe flattens validator errors into "name is required, ..." text
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(msgs, ", ")
}
