package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"mingle_server/models"
	"mingle_server/services"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// ProfileController serves event-scoped profile CRUD and the discovery list.
type ProfileController struct {
	Profiles     *services.ProfileService
	Interactions *services.InteractionService
	Log          *log.Logger
}

func NewProfileController(profiles *services.ProfileService, interactions *services.InteractionService, logger *log.Logger) *ProfileController {
	return &ProfileController{Profiles: profiles, Interactions: interactions, Log: logger}
}

// HandleCreateProfile creates a temporary profile for an event.
func (c *ProfileController) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if profile.EventID == "" {
		http.Error(w, `{"error": "eventId is required"}`, http.StatusBadRequest)
		return
	}

	created, err := c.Profiles.CreateProfile(r.Context(), profile)
	if err != nil {
		c.Log.Error("Failed to create profile", "err", err)
		http.Error(w, `{"error": "Failed to create profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Profile created successfully",
		"profile": created,
	})
}

// HandleGetProfile fetches a single profile by id.
func (c *ProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profileId"]

	profile, err := c.Profiles.GetProfile(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		c.Log.Error("Failed to fetch profile", "profileId", profileID, "err", err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleGetProfilesByEvent returns the discovery cards for an event.
func (c *ProfileController) HandleGetProfilesByEvent(w http.ResponseWriter, r *http.Request) {
	var request struct {
		EventID string `json:"eventId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.EventID == "" {
		http.Error(w, `{"error": "eventId is required"}`, http.StatusBadRequest)
		return
	}

	previews, err := c.Profiles.GetProfilePreviews(r.Context(), request.EventID)
	if err != nil {
		c.Log.Error("Failed to fetch profiles", "eventId", request.EventID, "err", err)
		http.Error(w, `{"error": "Failed to fetch profiles"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(previews)
}

// HandleDeleteProfile removes a profile and purges its outgoing likes. The
// caller then runs the session clear/verify protocol on its own device.
func (c *ProfileController) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ProfileID string `json:"profileId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.ProfileID == "" {
		http.Error(w, `{"error": "profileId is required"}`, http.StatusBadRequest)
		return
	}

	if err := c.Profiles.DeleteProfile(r.Context(), request.ProfileID); err != nil {
		c.Log.Error("Failed to delete profile", "profileId", request.ProfileID, "err", err)
		http.Error(w, `{"error": "Failed to delete profile"}`, http.StatusInternalServerError)
		return
	}

	if err := c.Interactions.PurgeProfileLikes(r.Context(), request.ProfileID); err != nil {
		// The profile itself is gone; report the partial failure and let the
		// caller retry the purge.
		c.Log.Error("Failed to purge likes after profile delete", "profileId", request.ProfileID, "err", err)
		http.Error(w, `{"error": "Profile deleted but likes purge failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Profile deleted successfully"})
}
