package services

import (
	"context"
	"fmt"

	"mingle_server/models"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// sessionKeySuffixes is the single enumerable source of truth for the
// per-device storage surface. Clear, verify, and force-cleanup all walk this
// list, so a key added here is automatically covered by every path.
var sessionKeySuffixes = []string{
	"sessionId",
	"eventId",
	"profileId",
	"cachedImage",
}

// SessionService owns the device-local session fingerprint: which profile
// the device currently holds in which event. Operations are expected to be
// invoked sequentially per device; the caller protocol (clear, then verify,
// then retry or force-cleanup) is the concurrency discipline.
type SessionService struct {
	Store KeyValueStore
	Cache *ImageCache
	Log   *log.Logger
}

func deviceKey(deviceID, suffix string) string {
	return fmt.Sprintf("device:%s:%s", deviceID, suffix)
}

// GetSession reads the current session state for a device, or nil when the
// device holds none.
func (s *SessionService) GetSession(ctx context.Context, deviceID string) (*models.SessionState, error) {
	sessionID, ok, err := s.Store.Get(ctx, deviceKey(deviceID, "sessionId"))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	eventID, _, err := s.Store.Get(ctx, deviceKey(deviceID, "eventId"))
	if err != nil {
		return nil, err
	}
	profileID, _, err := s.Store.Get(ctx, deviceKey(deviceID, "profileId"))
	if err != nil {
		return nil, err
	}
	imageURI, _, err := s.Store.Get(ctx, deviceKey(deviceID, "cachedImage"))
	if err != nil {
		return nil, err
	}

	return &models.SessionState{
		SessionID:      sessionID,
		EventID:        eventID,
		ProfileID:      profileID,
		CachedImageURI: imageURI,
	}, nil
}

// JoinEvent creates a new session for the device. A device may hold one
// session at a time; any session data still present, whole or residual, is
// forced through the full teardown path before the new one is written.
func (s *SessionService) JoinEvent(ctx context.Context, deviceID, eventID, profileID string) (*models.SessionState, error) {
	// Gate on the full key set, not just sessionId: a partial cleanup can
	// leave dependent keys (a cached image, a stale profile id) behind after
	// the session id itself is gone, and those must never survive into the
	// new session.
	check, err := s.VerifySessionCleared(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to read existing session state: %w", err)
	}

	if !check.IsCleared {
		s.Log.Warn("Joining with residual session data, tearing down first",
			"deviceId", deviceID, "remaining", len(check.RemainingData), "newEventId", eventID)

		if err := s.ClearSession(ctx, deviceID, models.CleanupRecovery); err != nil {
			return nil, err
		}
		result, err := s.VerifySessionCleared(ctx, deviceID)
		if err != nil {
			return nil, err
		}
		if !result.IsCleared {
			if err := s.ForceCleanupAll(ctx, deviceID); err != nil {
				return nil, err
			}
		}
	}

	session := &models.SessionState{
		SessionID: uuid.New().String(),
		EventID:   eventID,
		ProfileID: profileID,
	}

	writes := map[string]string{
		"sessionId": session.SessionID,
		"eventId":   session.EventID,
		"profileId": session.ProfileID,
	}
	for suffix, value := range writes {
		if err := s.Store.Set(ctx, deviceKey(deviceID, suffix), value); err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}
	}

	s.Log.Info("Session created", "deviceId", deviceID, "eventId", eventID, "sessionId", session.SessionID)
	return session, nil
}

// SetCachedImage records the resolved profile-image URI both in durable
// device storage and in the shared process cache.
func (s *SessionService) SetCachedImage(ctx context.Context, deviceID, uri string) error {
	sessionID, ok, err := s.Store.Get(ctx, deviceKey(deviceID, "sessionId"))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no active session for device '%s'", deviceID)
	}

	if err := s.Store.Set(ctx, deviceKey(deviceID, "cachedImage"), uri); err != nil {
		return fmt.Errorf("failed to persist cached image: %w", err)
	}
	s.Cache.SetImageURI(sessionID, uri)
	return nil
}

// ClearSession removes the session and its dependent cached artifacts from
// durable storage. Safe to call when no session exists. The reason is
// recorded for diagnostics only; every reason performs the identical cleanup.
func (s *SessionService) ClearSession(ctx context.Context, deviceID string, reason models.CleanupReason) error {
	s.Log.Info("Clearing session", "deviceId", deviceID, "reason", reason)

	keys := make([]string, 0, len(sessionKeySuffixes))
	for _, suffix := range sessionKeySuffixes {
		keys = append(keys, deviceKey(deviceID, suffix))
	}
	if err := s.Store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.Cache.ClearCache()
	return nil
}

// VerifySessionCleared re-reads every key the clear path targets and reports
// any that still hold a value. Read-only; callers use the result to decide
// between retrying ClearSession and escalating to ForceCleanupAll.
func (s *SessionService) VerifySessionCleared(ctx context.Context, deviceID string) (*models.VerifyResult, error) {
	result := &models.VerifyResult{
		IsCleared:     true,
		RemainingData: map[string]string{},
	}

	for _, suffix := range sessionKeySuffixes {
		key := deviceKey(deviceID, suffix)
		value, ok, err := s.Store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to verify key '%s': %w", key, err)
		}
		if ok {
			result.IsCleared = false
			result.RemainingData[key] = value
		}
	}

	if !result.IsCleared {
		s.Log.Warn("Session not fully cleared", "deviceId", deviceID, "remaining", len(result.RemainingData))
	}
	return result, nil
}

// ForceCleanupAll is the last-resort recovery path: it removes every known
// session key unconditionally and empties the image cache. Idempotent, and
// it only ever removes data, so repeated calls converge on the same fully
// cleared state.
func (s *SessionService) ForceCleanupAll(ctx context.Context, deviceID string) error {
	s.Log.Warn("Force cleanup requested", "deviceId", deviceID)

	for _, suffix := range sessionKeySuffixes {
		if err := s.Store.Delete(ctx, deviceKey(deviceID, suffix)); err != nil {
			return fmt.Errorf("failed to force-delete key '%s': %w", suffix, err)
		}
	}

	s.Cache.ClearCache()
	return nil
}
