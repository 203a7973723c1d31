package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mingle_server/logger"
	"mingle_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionManager struct {
	joined      *models.SessionState
	clearReason models.CleanupReason
	verify      *models.VerifyResult
	forceCalls  int
	err         error
}

func (s *stubSessionManager) JoinEvent(_ context.Context, deviceID, eventID, profileID string) (*models.SessionState, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.joined = &models.SessionState{SessionID: "sess-1", EventID: eventID, ProfileID: profileID}
	return s.joined, nil
}

func (s *stubSessionManager) ClearSession(_ context.Context, _ string, reason models.CleanupReason) error {
	s.clearReason = reason
	return s.err
}

func (s *stubSessionManager) VerifySessionCleared(_ context.Context, _ string) (*models.VerifyResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.verify, nil
}

func (s *stubSessionManager) ForceCleanupAll(_ context.Context, _ string) error {
	s.forceCalls++
	return s.err
}

func (s *stubSessionManager) SetCachedImage(_ context.Context, _, _ string) error {
	return s.err
}

func post(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func newTestSessionController(stub *stubSessionManager) *SessionController {
	return NewSessionController(stub, logger.NewWithSink(io.Discard, "error"))
}

func TestHandleJoinValidation(t *testing.T) {
	controller := newTestSessionController(&stubSessionManager{})

	w := post(t, controller.HandleJoin, "/api/session/join", `{"deviceId":"d1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleJoinCreatesSession(t *testing.T) {
	stub := &stubSessionManager{}
	controller := newTestSessionController(stub)

	w := post(t, controller.HandleJoin, "/api/session/join",
		`{"deviceId":"d1","eventId":"e1","profileId":"p1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var session models.SessionState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "e1", session.EventID)
	assert.Equal(t, "p1", session.ProfileID)
}

func TestHandleClearPassesReasonThrough(t *testing.T) {
	stub := &stubSessionManager{}
	controller := newTestSessionController(stub)

	w := post(t, controller.HandleClear, "/api/session/clear",
		`{"deviceId":"d1","reason":"profile_deleted"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.CleanupProfileDeleted, stub.clearReason)
}

func TestHandleVerifyReportsRemainingData(t *testing.T) {
	stub := &stubSessionManager{
		verify: &models.VerifyResult{
			IsCleared:     false,
			RemainingData: map[string]string{"device:d1:eventId": "e1"},
		},
	}
	controller := newTestSessionController(stub)

	w := post(t, controller.HandleVerify, "/api/session/verify", `{"deviceId":"d1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result models.VerifyResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.IsCleared)
	assert.Equal(t, "e1", result.RemainingData["device:d1:eventId"])
}

func TestHandleForceCleanup(t *testing.T) {
	stub := &stubSessionManager{}
	controller := newTestSessionController(stub)

	w := post(t, controller.HandleForceCleanup, "/api/session/force-cleanup", `{"deviceId":"d1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.forceCalls)
}

func TestHandleForceCleanupRequiresDeviceID(t *testing.T) {
	controller := newTestSessionController(&stubSessionManager{})

	w := post(t, controller.HandleForceCleanup, "/api/session/force-cleanup", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSetImageFailure(t *testing.T) {
	controller := newTestSessionController(&stubSessionManager{err: io.ErrUnexpectedEOF})

	w := post(t, controller.HandleSetImage, "/api/session/image",
		`{"deviceId":"d1","uri":"https://cdn.example/img.jpg"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
