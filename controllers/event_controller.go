package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"mingle_server/models"
	"mingle_server/services"

	"github.com/charmbracelet/log"
)

// EventController serves the admin console's event management endpoints.
type EventController struct {
	Events *services.EventService
	Log    *log.Logger
}

func NewEventController(events *services.EventService, logger *log.Logger) *EventController {
	return &EventController{Events: events, Log: logger}
}

// HandleCreateEvent creates a new event record. The password is decoded from
// a dedicated request shape because the Event model never serializes it.
func (c *EventController) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var request struct {
		EventID  string `json:"eventId"`
		Name     string `json:"name"`
		Password string `json:"password"`
		Venue    string `json:"venue"`
		StartsAt string `json:"startsAt"`
		EndsAt   string `json:"endsAt"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.Name == "" || request.Password == "" {
		http.Error(w, `{"error": "Event name and password are required"}`, http.StatusBadRequest)
		return
	}

	event := models.Event{
		EventID:  request.EventID,
		Name:     request.Name,
		Password: request.Password,
		Venue:    request.Venue,
		StartsAt: request.StartsAt,
		EndsAt:   request.EndsAt,
	}

	created, err := c.Events.CreateEvent(r.Context(), event)
	if err != nil {
		c.Log.Error("Failed to create event", "err", err)
		http.Error(w, `{"error": "Failed to create event"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Event created successfully",
		"event":   created,
	})
}

// HandleGetEvent authenticates and returns a single event.
func (c *EventController) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
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

	event, err := c.Events.Authenticate(r.Context(), request.EventID, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			http.Error(w, `{"error": "Event not found"}`, http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidPassword):
			http.Error(w, `{"error": "Invalid password"}`, http.StatusUnauthorized)
		default:
			c.Log.Error("Failed to fetch event", "eventId", request.EventID, "err", err)
			http.Error(w, `{"error": "Failed to fetch event"}`, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event)
}

// HandleListEvents returns every event for the admin console.
func (c *EventController) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.ListEvents(r.Context())
	if err != nil {
		c.Log.Error("Failed to list events", "err", err)
		http.Error(w, `{"error": "Failed to list events"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}
