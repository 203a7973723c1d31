package controllers

import (
	"encoding/json"
	"net/http"

	"mingle_server/models"
	"mingle_server/services"

	"github.com/charmbracelet/log"
)

// InteractionController serves like and message recording.
type InteractionController struct {
	Interactions *services.InteractionService
	Log          *log.Logger
}

func NewInteractionController(interactions *services.InteractionService, logger *log.Logger) *InteractionController {
	return &InteractionController{Interactions: interactions, Log: logger}
}

// HandleLike records a directed like and reports whether it formed a match.
func (c *InteractionController) HandleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		EventID       string `json:"eventId"`
		FromProfileID string `json:"fromProfileId"`
		ToProfileID   string `json:"toProfileId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.EventID == "" || request.FromProfileID == "" || request.ToProfileID == "" ||
		request.FromProfileID == request.ToProfileID {
		http.Error(w, `{"error": "eventId and two distinct profile ids are required"}`, http.StatusBadRequest)
		return
	}

	isMutual, err := c.Interactions.RecordLike(r.Context(), request.EventID, request.FromProfileID, request.ToProfileID)
	if err != nil {
		c.Log.Error("Failed to record like", "eventId", request.EventID, "err", err)
		http.Error(w, `{"error": "Failed to record like"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  "Like recorded",
		"isMutual": isMutual,
	})
}

// HandleMessage stores a message between two profiles.
func (c *InteractionController) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if message.EventID == "" || message.FromProfileID == "" || message.ToProfileID == "" {
		http.Error(w, `{"error": "eventId, fromProfileId and toProfileId are required"}`, http.StatusBadRequest)
		return
	}

	stored, err := c.Interactions.RecordMessage(r.Context(), message)
	if err != nil {
		c.Log.Error("Failed to record message", "eventId", message.EventID, "err", err)
		http.Error(w, `{"error": "Failed to record message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Message recorded",
		"data":    stored,
	})
}
