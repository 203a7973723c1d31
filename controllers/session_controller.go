package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"mingle_server/models"

	"github.com/charmbracelet/log"
)

// SessionManager is the lifecycle surface the controller drives. Callers are
// expected to follow clear → verify → retry-or-force; the endpoints expose
// each step so the client owns that protocol.
type SessionManager interface {
	JoinEvent(ctx context.Context, deviceID, eventID, profileID string) (*models.SessionState, error)
	ClearSession(ctx context.Context, deviceID string, reason models.CleanupReason) error
	VerifySessionCleared(ctx context.Context, deviceID string) (*models.VerifyResult, error)
	ForceCleanupAll(ctx context.Context, deviceID string) error
	SetCachedImage(ctx context.Context, deviceID, uri string) error
}

// SessionController serves the device session lifecycle endpoints.
type SessionController struct {
	Sessions SessionManager
	Log      *log.Logger
}

func NewSessionController(sessions SessionManager, logger *log.Logger) *SessionController {
	return &SessionController{Sessions: sessions, Log: logger}
}

// HandleJoin creates a session for the device, tearing down any previous one.
func (c *SessionController) HandleJoin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		DeviceID  string `json:"deviceId"`
		EventID   string `json:"eventId"`
		ProfileID string `json:"profileId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.DeviceID == "" || request.EventID == "" || request.ProfileID == "" {
		http.Error(w, `{"error": "deviceId, eventId and profileId are required"}`, http.StatusBadRequest)
		return
	}

	session, err := c.Sessions.JoinEvent(r.Context(), request.DeviceID, request.EventID, request.ProfileID)
	if err != nil {
		c.Log.Error("Failed to join event", "deviceId", request.DeviceID, "err", err)
		http.Error(w, `{"error": "Failed to create session"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

// HandleClear removes the device's session state from storage.
func (c *SessionController) HandleClear(w http.ResponseWriter, r *http.Request) {
	var request struct {
		DeviceID string `json:"deviceId"`
		Reason   string `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.DeviceID == "" {
		http.Error(w, `{"error": "deviceId is required"}`, http.StatusBadRequest)
		return
	}

	if err := c.Sessions.ClearSession(r.Context(), request.DeviceID, models.CleanupReason(request.Reason)); err != nil {
		c.Log.Error("Failed to clear session", "deviceId", request.DeviceID, "err", err)
		http.Error(w, `{"error": "Failed to clear session"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Session cleared"})
}

// HandleVerify reports whether any session keys remain for the device.
func (c *SessionController) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var request struct {
		DeviceID string `json:"deviceId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.DeviceID == "" {
		http.Error(w, `{"error": "deviceId is required"}`, http.StatusBadRequest)
		return
	}

	result, err := c.Sessions.VerifySessionCleared(r.Context(), request.DeviceID)
	if err != nil {
		c.Log.Error("Failed to verify session cleanup", "deviceId", request.DeviceID, "err", err)
		http.Error(w, `{"error": "Failed to verify session"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleForceCleanup runs the last-resort cleanup path.
func (c *SessionController) HandleForceCleanup(w http.ResponseWriter, r *http.Request) {
	var request struct {
		DeviceID string `json:"deviceId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.DeviceID == "" {
		http.Error(w, `{"error": "deviceId is required"}`, http.StatusBadRequest)
		return
	}

	if err := c.Sessions.ForceCleanupAll(r.Context(), request.DeviceID); err != nil {
		c.Log.Error("Force cleanup failed", "deviceId", request.DeviceID, "err", err)
		http.Error(w, `{"error": "Failed to force cleanup"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "All session data removed"})
}

// HandleSetImage records the resolved profile-image URI for the session.
func (c *SessionController) HandleSetImage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		DeviceID string `json:"deviceId"`
		URI      string `json:"uri"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.DeviceID == "" || request.URI == "" {
		http.Error(w, `{"error": "deviceId and uri are required"}`, http.StatusBadRequest)
		return
	}

	if err := c.Sessions.SetCachedImage(r.Context(), request.DeviceID, request.URI); err != nil {
		c.Log.Error("Failed to record cached image", "deviceId", request.DeviceID, "err", err)
		http.Error(w, `{"error": "Failed to record cached image"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Cached image recorded"})
}
