package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/auth"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/domain"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/monitor"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

// SnapshotMessage is the JSON frame sent on every tick
type SnapshotMessage struct {
	Sequence uint64                `json:"sequence"`
	Sensors  []domain.SensorRecord `json:"sensors"`
	Status   domain.SystemStatus   `json:"status"`
	Summary  domain.Summary        `json:"summary"`
}

func newSnapshotMessage(s monitor.Snapshot) SnapshotMessage {
	return SnapshotMessage{
		Sequence: s.Sequence,
		Sensors:  s.Sensors,
		Status:   s.Status,
		Summary:  domain.Summarize(s.Sensors),
	}
}

// SnapshotServer upgrades dashboard connections and streams snapshots
type SnapshotServer struct {
	source   SnapshotSource
	auth     auth.Authenticator
	upgrader websocket.Upgrader
}

// NewSnapshotServer builds the WebSocket endpoint
func NewSnapshotServer(source SnapshotSource, authn auth.Authenticator) *SnapshotServer {
	return &SnapshotServer{
		source: source,
		auth:   authn,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWS is the HTTP handler for /ws. Browsers cannot set headers on
// WebSocket requests, so the token may also come as ?token=.
func (s *SnapshotServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		if scheme, rest, ok := strings.Cut(r.Header.Get("Authorization"), " "); ok && strings.EqualFold(scheme, "bearer") {
			token = strings.TrimSpace(rest)
		}
	}
	if token == "" {
		http.Error(w, "token is required", http.StatusUnauthorized)
		return
	}
	user, err := s.auth.CurrentUser(r.Context(), token)
	if err != nil {
		http.Error(w, "invalid or expired session", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	log.Info().Str("user_id", user.ID).Str("remote", r.RemoteAddr).Msg("dashboard connected")
	s.serve(conn)
	log.Info().Str("user_id", user.ID).Msg("dashboard disconnected")
}

func (s *SnapshotServer) serve(conn *websocket.Conn) {
	defer conn.Close()

	updates, cancel := s.source.Subscribe(4)
	defer cancel()

	// the read loop only handles control frames and notices the peer leaving
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadDeadline(time.Now().Add(pongTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongTimeout))
		})
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	current := s.source.Snapshot()
	if err := s.write(conn, current); err != nil {
		return
	}
	last := current.Sequence

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case snap, ok := <-updates:
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "monitor stopped"),
					time.Now().Add(writeTimeout))
				return
			}
			if snap.Sequence <= last {
				continue
			}
			if err := s.write(conn, snap); err != nil {
				return
			}
			last = snap.Sequence
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

func (s *SnapshotServer) write(conn *websocket.Conn, snap monitor.Snapshot) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(newSnapshotMessage(snap)); err != nil {
		log.Debug().Err(err).Msg("websocket write failed")
		return err
	}
	return nil
}
