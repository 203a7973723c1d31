package socket

import (
	"mingle_server/models"

	"github.com/charmbracelet/log"
	socketio "github.com/googollee/go-socket.io"
)

// Hub owns the socket.io server behind the live dashboard. Admin consoles
// join a per-event room and receive every freshly computed stats snapshot.
type Hub struct {
	server *socketio.Server
	log    *log.Logger
}

func eventRoom(eventID string) string {
	return "event:" + eventID
}

// NewHub initializes the socket.io server and its event handlers.
func NewHub(logger *log.Logger) *Hub {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		logger.Debug("Socket connected", "id", s.ID())
		return nil
	})

	server.OnEvent("/", "joinEvent", func(s socketio.Conn, eventID string) {
		if eventID == "" {
			logger.Warn("Invalid eventId in joinEvent request", "id", s.ID())
			return
		}
		logger.Debug("Socket joined event room", "id", s.ID(), "eventId", eventID)
		s.Join(eventRoom(eventID))
	})

	server.OnEvent("/", "leaveEvent", func(s socketio.Conn, eventID string) {
		s.Leave(eventRoom(eventID))
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		logger.Error("Socket error", "err", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		logger.Debug("Socket disconnected", "id", s.ID(), "reason", reason)
	})

	return &Hub{server: server, log: logger}
}

// Server exposes the underlying socket.io server for mounting and serving.
func (h *Hub) Server() *socketio.Server {
	return h.server
}

// BroadcastStats pushes a snapshot to every dashboard watching the event.
func (h *Hub) BroadcastStats(eventID string, stats models.StatsSnapshot) {
	h.server.BroadcastToRoom("/", eventRoom(eventID), "stats", stats)
}
