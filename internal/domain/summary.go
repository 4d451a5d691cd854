package domain

import (
	"strings"
	"time"
)

// Summary counts sensors per status and derives the overall water quality
type Summary struct {
	Good     int    `json:"good"`
	Moderate int    `json:"moderate"`
	Poor     int    `json:"poor"`
	Overall  Status `json:"overall"`
}

// Summarize grades the whole sensor set: any poor sensor makes it poor,
// otherwise any moderate sensor makes it moderate
func Summarize(sensors []SensorRecord) Summary {
	var s Summary
	for _, sensor := range sensors {
		switch sensor.Reading.Status {
		case StatusGood:
			s.Good++
		case StatusModerate:
			s.Moderate++
		case StatusPoor:
			s.Poor++
		}
	}

	switch {
	case s.Poor > 0:
		s.Overall = StatusPoor
	case s.Moderate > 0:
		s.Overall = StatusModerate
	default:
		s.Overall = StatusGood
	}
	return s
}

// Message is the headline for the summary card
func (s Summary) Message() string {
	switch s.Overall {
	case StatusPoor:
		return "Water quality is critical"
	case StatusModerate:
		return "Water quality needs attention"
	default:
		return "Water quality is good"
	}
}

// Severity ranks a notification
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Notification tells the operator a sensor left its optimal range
type Notification struct {
	ID       string    `json:"id"`
	SensorID string    `json:"sensor_id"`
	Sensor   string    `json:"sensor"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
	Severity Severity  `json:"severity"`
}

// BuildNotifications emits a warning per moderate sensor and a critical
// notification per poor sensor, in sensor order
func BuildNotifications(sensors []SensorRecord, at time.Time, newID func() string) []Notification {
	var out []Notification
	for _, sensor := range sensors {
		var n Notification
		switch sensor.Reading.Status {
		case StatusModerate:
			n = Notification{
				Message:  sensor.Name + " level is outside optimal range",
				Severity: SeverityWarning,
			}
		case StatusPoor:
			n = Notification{
				Message:  sensor.Name + " level is critical",
				Severity: SeverityCritical,
			}
		default:
			continue
		}
		n.ID = newID()
		n.SensorID = sensor.ID
		n.Sensor = sensor.Name
		n.Time = at
		out = append(out, n)
	}
	return out
}

// Alert is the banner raised while any sensor is poor
type Alert struct {
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	SensorIDs []string `json:"sensor_ids"`
}

// CriticalAlert builds the banner for poor sensors; ok is false when none are poor
func CriticalAlert(sensors []SensorRecord) (alert Alert, ok bool) {
	var names []string
	for _, sensor := range sensors {
		if sensor.Reading.Status == StatusPoor {
			names = append(names, sensor.Name)
			alert.SensorIDs = append(alert.SensorIDs, sensor.ID)
		}
	}
	if len(names) == 0 {
		return Alert{}, false
	}

	if len(names) > 1 {
		alert.Title = "Critical Alerts"
		alert.Message = strings.Join(names, ", ") + " are at critical levels"
	} else {
		alert.Title = "Critical Alert"
		alert.Message = names[0] + " is at critical levels"
	}
	return alert, true
}
