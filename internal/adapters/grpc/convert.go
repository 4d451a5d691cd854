package grpc

import (
	"time"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/monitor"
	"github.com/n25shubhamhibare/aqua-lora-watch/pkg/pb"
)

func (h *WaterServiceHandler) convertSnapshot(s monitor.Snapshot) *pb.Snapshot {
	return &pb.Snapshot{
		Sequence: s.Sequence,
		Sensors:  h.convertSensors(s.Sensors),
		Status:   convertStatus(s.Status),
	}
}

func (h *WaterServiceHandler) convertSensors(sensors []domain.SensorRecord) []*pb.Sensor {
	out := make([]*pb.Sensor, len(sensors))
	for i, s := range sensors {
		out[i] = h.convertSensor(s)
	}
	return out
}

// convertSensor converts a domain record, adding display fields
func (h *WaterServiceHandler) convertSensor(s domain.SensorRecord) *pb.Sensor {
	enabled, err := h.monitor.NotificationsEnabled(s.ID)
	if err != nil {
		enabled = false
	}

	precision := 1
	if s.Kind == domain.KindTDS || s.Kind == domain.KindConductivity {
		precision = 0
	}

	return &pb.Sensor{
		Id:         s.ID,
		Kind:       string(s.Kind),
		Name:       s.Name,
		Value:      s.Reading.Value,
		Unit:       s.Reading.Unit,
		Display:    domain.FormatValue(s.Reading.Value, s.Reading.Unit, precision),
		Status:     string(s.Reading.Status),
		StatusText: s.Reading.Status.Text(),
		Thresholds: &pb.Thresholds{
			Good:     &pb.Range{Min: s.Thresholds.Good.Min, Max: s.Thresholds.Good.Max},
			Moderate: &pb.Range{Min: s.Thresholds.Moderate.Min, Max: s.Thresholds.Moderate.Max},
		},
		GaugePercent:         s.GaugePercent(),
		Color:                s.Kind.Color(),
		Timestamp:            s.Timestamp.Unix(),
		NotificationsEnabled: enabled,
	}
}

func convertStatus(s domain.SystemStatus) *pb.SystemStatus {
	return &pb.SystemStatus{
		BatteryLevel:   s.BatteryLevel,
		BatteryBand:    string(s.BatteryBand()),
		SignalStrength: s.SignalStrength,
		SignalBand:     string(s.SignalBand()),
		LastUpdate:     s.LastUpdate.Unix(),
		IsOnline:       s.IsOnline,
		State:          s.StateText(),
	}
}

func convertUser(u domain.User) *pb.User {
	return &pb.User{
		Id:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func convertDevice(d domain.Device) *pb.Device {
	var maintained string
	if !d.LastMaintenance.IsZero() {
		maintained = d.LastMaintenance.Format(time.DateOnly)
	}
	return &pb.Device{
		Id:              d.ID,
		Name:            d.Name,
		Type:            d.Type,
		Status:          string(d.Status),
		StatusText:      d.Status.Text(),
		Battery:         int32(d.Battery),
		LastMaintenance: maintained,
		FirmwareVersion: d.FirmwareVersion,
		Location:        d.Location,
	}
}
