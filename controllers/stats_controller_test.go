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
	"mingle_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsProvider struct {
	snapshot  models.StatsSnapshot
	eventName string
	err       error
}

func (s *stubStatsProvider) GetEventStats(_ context.Context, _, _ string) (*models.StatsSnapshot, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return &s.snapshot, s.eventName, nil
}

type recordingBroadcaster struct {
	eventID string
	calls   int
}

func (b *recordingBroadcaster) BroadcastStats(eventID string, _ models.StatsSnapshot) {
	b.eventID = eventID
	b.calls++
}

func postStats(t *testing.T, controller *StatsController, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/stats/get", strings.NewReader(body))
	w := httptest.NewRecorder()
	controller.HandleGetStats(w, req)
	return w
}

func TestHandleGetStatsStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"missing body", "{", nil, http.StatusBadRequest},
		{"missing event id", `{"password":"pw"}`, nil, http.StatusBadRequest},
		{"missing password", `{"eventId":"e1"}`, nil, http.StatusBadRequest},
		{"unknown event", `{"eventId":"e1","password":"pw"}`, services.ErrEventNotFound, http.StatusNotFound},
		{"bad password", `{"eventId":"e1","password":"pw"}`, services.ErrInvalidPassword, http.StatusUnauthorized},
		{"internal failure", `{"eventId":"e1","password":"pw"}`, io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewStatsController(&stubStatsProvider{err: tt.err}, nil, logger.NewWithSink(io.Discard, "error"))
			w := postStats(t, controller, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleGetStatsSuccess(t *testing.T) {
	provider := &stubStatsProvider{
		snapshot: models.StatsSnapshot{
			TotalProfiles:  2,
			ActiveUsers:    2,
			TotalMatches:   1,
			EngagementRate: 100,
		},
		eventName: "Spring Mixer",
	}
	broadcast := &recordingBroadcaster{}
	controller := NewStatsController(provider, broadcast, logger.NewWithSink(io.Discard, "error"))

	w := postStats(t, controller, `{"eventId":"e1","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Stats     models.StatsSnapshot `json:"stats"`
		EventName string               `json:"eventName"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Spring Mixer", response.EventName)
	assert.Equal(t, 1, response.Stats.TotalMatches)
	assert.InDelta(t, 100.0, response.Stats.EngagementRate, 1e-9)

	assert.Equal(t, 1, broadcast.calls)
	assert.Equal(t, "e1", broadcast.eventID)
}

func TestHandleGetStatsWithoutBroadcaster(t *testing.T) {
	controller := NewStatsController(&stubStatsProvider{eventName: "x"}, nil, logger.NewWithSink(io.Discard, "error"))
	w := postStats(t, controller, `{"eventId":"e1","password":"pw"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
