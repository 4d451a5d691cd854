package grpc

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/auth"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/monitor"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/ports"
	"github.com/n25shubhamhibare/aqua-lora-watch/pkg/pb"
)

// SensorMonitor is the live telemetry the handler serves
type SensorMonitor interface {
	Snapshot() monitor.Snapshot
	Sensor(id string) (domain.SensorRecord, error)
	Notifications() []domain.Notification
	NotificationsEnabled(sensorID string) (bool, error)
	SetNotificationsEnabled(sensorID string, enabled bool) error
	UpdateThresholds(ctx context.Context, sensorID string, t domain.Thresholds) (domain.SensorRecord, error)
	History(sensorID string, r domain.TimeRange) ([]domain.HistoryPoint, error)
	HistoryWindow(sensorID string, hours, intervalMinutes int) ([]domain.HistoryPoint, error)
	Subscribe(buffer int) (<-chan monitor.Snapshot, func())
}

// DeviceFleet is the device management the handler serves
type DeviceFleet interface {
	List(ctx context.Context, search string) ([]domain.Device, error)
	Add(ctx context.Context, req domain.NewDevice) (domain.Device, error)
	Reboot(ctx context.Context, id string) (domain.Device, error)
}

// WaterServiceHandler implements the gRPC WaterService
type WaterServiceHandler struct {
	pb.UnimplementedWaterServiceServer
	auth    auth.Authenticator
	monitor SensorMonitor
	fleet   DeviceFleet
}

// NewWaterServiceHandler creates a new gRPC handler
func NewWaterServiceHandler(authn auth.Authenticator, mon SensorMonitor, fleet DeviceFleet) *WaterServiceHandler {
	return &WaterServiceHandler{
		auth:    authn,
		monitor: mon,
		fleet:   fleet,
	}
}

// Login exchanges credentials for a session token
func (h *WaterServiceHandler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	log.Info().Str("email", req.Email).Msg("Login called")

	session, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err, "login failed")
	}

	return &pb.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
		User:      convertUser(session.User),
	}, nil
}

// Logout ends the caller's session
func (h *WaterServiceHandler) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	log.Info().Msg("Logout called")

	if err := h.auth.Logout(ctx, tokenFromContext(ctx)); err != nil {
		return nil, toStatus(err, "logout failed")
	}
	return &pb.LogoutResponse{}, nil
}

// CurrentUser returns the caller's account
func (h *WaterServiceHandler) CurrentUser(ctx context.Context, req *pb.CurrentUserRequest) (*pb.CurrentUserResponse, error) {
	user, ok := userFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "not logged in")
	}
	return &pb.CurrentUserResponse{User: convertUser(user)}, nil
}

// ListSensors returns every sensor with the unit status, summary and alert
func (h *WaterServiceHandler) ListSensors(ctx context.Context, req *pb.ListSensorsRequest) (*pb.ListSensorsResponse, error) {
	log.Debug().Msg("ListSensors called")

	snap := h.monitor.Snapshot()
	summary := domain.Summarize(snap.Sensors)

	resp := &pb.ListSensorsResponse{
		Sensors: h.convertSensors(snap.Sensors),
		Status:  convertStatus(snap.Status),
		Summary: &pb.Summary{
			Good:     int32(summary.Good),
			Moderate: int32(summary.Moderate),
			Poor:     int32(summary.Poor),
			Overall:  string(summary.Overall),
			Message:  summary.Message(),
		},
	}
	if alert, ok := domain.CriticalAlert(snap.Sensors); ok {
		resp.Alert = &pb.Alert{Title: alert.Title, Message: alert.Message, SensorIds: alert.SensorIDs}
	}
	return resp, nil
}

// GetSensor returns one sensor
func (h *WaterServiceHandler) GetSensor(ctx context.Context, req *pb.GetSensorRequest) (*pb.GetSensorResponse, error) {
	log.Debug().Str("sensor_id", req.SensorId).Msg("GetSensor called")

	sensor, err := h.monitor.Sensor(req.SensorId)
	if err != nil {
		return nil, toStatus(err, "failed to get sensor")
	}
	return &pb.GetSensorResponse{Sensor: h.convertSensor(sensor)}, nil
}

// GetHistory returns a synthetic trend series with statistics
func (h *WaterServiceHandler) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	log.Info().
		Str("sensor_id", req.SensorId).
		Str("range", req.Range).
		Int32("hours", req.Hours).
		Msg("GetHistory called")

	var (
		points []domain.HistoryPoint
		label  string
		err    error
	)
	if req.Hours > 0 {
		points, err = h.monitor.HistoryWindow(req.SensorId, int(req.Hours), int(req.IntervalMinutes))
	} else {
		r, perr := domain.ParseTimeRange(req.Range)
		if perr != nil {
			return nil, toStatus(perr, "invalid range")
		}
		label = r.Label()
		points, err = h.monitor.History(req.SensorId, r)
	}
	if err != nil {
		return nil, toStatus(err, "failed to generate history")
	}

	sensor, err := h.monitor.Sensor(req.SensorId)
	if err != nil {
		return nil, toStatus(err, "failed to get sensor")
	}

	pbPoints := make([]*pb.HistoryPoint, len(points))
	for i, p := range points {
		pbPoints[i] = &pb.HistoryPoint{
			Timestamp: p.Time.Unix(),
			Value:     p.Value,
			Status:    string(p.Status),
		}
	}

	stats := domain.CalculateStatistics(points)

	return &pb.GetHistoryResponse{
		Points:   pbPoints,
		Label:    label,
		Color:    sensor.Kind.Color(),
		Average:  stats.Average,
		Min:      stats.Min,
		Max:      stats.Max,
		ChartMin: stats.ChartMin,
		ChartMax: stats.ChartMax,
	}, nil
}

// UpdateThresholds replaces a sensor's thresholds
func (h *WaterServiceHandler) UpdateThresholds(ctx context.Context, req *pb.UpdateThresholdsRequest) (*pb.UpdateThresholdsResponse, error) {
	log.Info().Str("sensor_id", req.SensorId).Msg("UpdateThresholds called")

	if req.GetThresholds().GetGood() == nil || req.GetThresholds().GetModerate() == nil {
		return nil, status.Error(codes.InvalidArgument, "thresholds must include good and moderate ranges")
	}
	good, moderate := req.Thresholds.Good, req.Thresholds.Moderate
	t := domain.Thresholds{
		Good:     domain.ThresholdRange{Min: good.Min, Max: good.Max},
		Moderate: domain.ThresholdRange{Min: moderate.Min, Max: moderate.Max},
	}
	sensor, err := h.monitor.UpdateThresholds(ctx, req.SensorId, t)
	if err != nil {
		return nil, toStatus(err, "failed to update thresholds")
	}
	return &pb.UpdateThresholdsResponse{Sensor: h.convertSensor(sensor)}, nil
}

// SetNotifications toggles notifications for a sensor
func (h *WaterServiceHandler) SetNotifications(ctx context.Context, req *pb.SetNotificationsRequest) (*pb.SetNotificationsResponse, error) {
	log.Info().Str("sensor_id", req.SensorId).Bool("enabled", req.Enabled).Msg("SetNotifications called")

	if err := h.monitor.SetNotificationsEnabled(req.SensorId, req.Enabled); err != nil {
		return nil, toStatus(err, "failed to update notifications")
	}
	return &pb.SetNotificationsResponse{SensorId: req.SensorId, Enabled: req.Enabled}, nil
}

// ListNotifications returns the current warnings and critical notices
func (h *WaterServiceHandler) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	notes := h.monitor.Notifications()

	out := make([]*pb.Notification, len(notes))
	for i, n := range notes {
		out[i] = &pb.Notification{
			Id:        n.ID,
			SensorId:  n.SensorID,
			Sensor:    n.Sensor,
			Message:   n.Message,
			Timestamp: n.Time.Unix(),
			Severity:  string(n.Severity),
		}
	}
	return &pb.ListNotificationsResponse{Notifications: out}, nil
}

// ListDevices returns devices matching the search term
func (h *WaterServiceHandler) ListDevices(ctx context.Context, req *pb.ListDevicesRequest) (*pb.ListDevicesResponse, error) {
	log.Debug().Str("search", req.Search).Msg("ListDevices called")

	devices, err := h.fleet.List(ctx, req.Search)
	if err != nil {
		return nil, toStatus(err, "failed to list devices")
	}

	out := make([]*pb.Device, len(devices))
	for i, d := range devices {
		out[i] = convertDevice(d)
	}
	return &pb.ListDevicesResponse{Devices: out}, nil
}

// AddDevice registers a device
func (h *WaterServiceHandler) AddDevice(ctx context.Context, req *pb.AddDeviceRequest) (*pb.AddDeviceResponse, error) {
	log.Info().Str("name", req.Name).Msg("AddDevice called")

	device, err := h.fleet.Add(ctx, domain.NewDevice{Name: req.Name, Type: req.Type, Location: req.Location})
	if err != nil {
		return nil, toStatus(err, "failed to add device")
	}
	return &pb.AddDeviceResponse{Device: convertDevice(device)}, nil
}

// RebootDevice starts a device reboot
func (h *WaterServiceHandler) RebootDevice(ctx context.Context, req *pb.RebootDeviceRequest) (*pb.RebootDeviceResponse, error) {
	log.Info().Str("device_id", req.DeviceId).Msg("RebootDevice called")

	device, err := h.fleet.Reboot(ctx, req.DeviceId)
	if err != nil {
		return nil, toStatus(err, "failed to reboot device")
	}
	return &pb.RebootDeviceResponse{Device: convertDevice(device)}, nil
}

// WatchSnapshots streams the current snapshot and then every tick until
// the client goes away or the monitor stops
func (h *WaterServiceHandler) WatchSnapshots(req *pb.WatchSnapshotsRequest, stream grpc.ServerStreamingServer[pb.Snapshot]) error {
	ctx := stream.Context()
	log.Info().Msg("WatchSnapshots called")

	updates, cancel := h.monitor.Subscribe(4)
	defer cancel()

	current := h.monitor.Snapshot()
	if err := stream.Send(h.convertSnapshot(current)); err != nil {
		return err
	}
	last := current.Sequence

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			if snap.Sequence <= last {
				continue
			}
			if err := stream.Send(h.convertSnapshot(snap)); err != nil {
				log.Debug().Err(err).Msg("snapshot stream closed")
				return err
			}
			last = snap.Sequence
		}
	}
}

// toStatus maps domain errors onto gRPC status codes
func toStatus(err error, msg string) error {
	var code codes.Code
	switch {
	case errors.Is(err, domain.ErrSensorNotFound), errors.Is(err, domain.ErrDeviceNotFound):
		code = codes.NotFound
	case errors.Is(err, domain.ErrInvalidThresholds),
		errors.Is(err, domain.ErrInvalidSensor),
		errors.Is(err, domain.ErrInvalidHistoryWindow),
		errors.Is(err, domain.ErrUnknownTimeRange),
		errors.Is(err, domain.ErrInvalidDevice):
		code = codes.InvalidArgument
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrSessionNotFound):
		code = codes.Unauthenticated
	case errors.Is(err, domain.ErrDeviceBusy):
		code = codes.FailedPrecondition
	case errors.Is(err, ports.ErrSchedulerStopped):
		code = codes.Unavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		log.Error().Err(err).Msg(msg)
		return status.Error(codes.Internal, msg)
	}

	log.Warn().Err(err).Str("code", code.String()).Msg(msg)
	return status.Error(code, err.Error())
}
