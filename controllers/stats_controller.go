package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"mingle_server/models"
	"mingle_server/services"

	"github.com/charmbracelet/log"
)

// StatsProvider is what the controller needs from the stats layer.
type StatsProvider interface {
	GetEventStats(ctx context.Context, eventID, password string) (*models.StatsSnapshot, string, error)
}

// StatsBroadcaster pushes a fresh snapshot to the event's live dashboard
// room. May be nil when no realtime server is mounted.
type StatsBroadcaster interface {
	BroadcastStats(eventID string, stats models.StatsSnapshot)
}

// StatsController serves the analytics dashboard endpoint.
type StatsController struct {
	Stats     StatsProvider
	Broadcast StatsBroadcaster
	Log       *log.Logger
}

func NewStatsController(stats StatsProvider, broadcast StatsBroadcaster, logger *log.Logger) *StatsController {
	return &StatsController{Stats: stats, Broadcast: broadcast, Log: logger}
}

// HandleGetStats authenticates the event credentials and returns the
// computed snapshot: 400 on missing input, 404 on unknown event, 401 on a
// password mismatch, 500 on anything unexpected.
func (c *StatsController) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	var request struct {
		EventID  string `json:"eventId"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.EventID == "" || request.Password == "" {
		http.Error(w, `{"error": "Event ID and password are required"}`, http.StatusBadRequest)
		return
	}

	stats, eventName, err := c.Stats.GetEventStats(r.Context(), request.EventID, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			http.Error(w, `{"error": "Event not found"}`, http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidPassword):
			http.Error(w, `{"error": "Invalid password"}`, http.StatusUnauthorized)
		default:
			c.Log.Error("Failed to compute event stats", "eventId", request.EventID, "err", err)
			http.Error(w, `{"error": "Failed to fetch stats"}`, http.StatusInternalServerError)
		}
		return
	}

	if c.Broadcast != nil {
		c.Broadcast.BroadcastStats(request.EventID, *stats)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"stats":     stats,
		"eventName": eventName,
	})
}
