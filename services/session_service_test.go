package services

import (
	"context"
	"io"
	"testing"

	"mingle_server/logger"
	"mingle_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService() *SessionService {
	return &SessionService{
		Store: NewMemoryStore(),
		Cache: NewImageCache(),
		Log:   logger.NewWithSink(io.Discard, "error"),
	}
}

func TestClearSessionThenVerifyIsCleared(t *testing.T) {
	ctx := context.Background()
	s := newSessionService()

	_, err := s.JoinEvent(ctx, "device-1", "event-1", "profile-1")
	require.NoError(t, err)

	err = s.ClearSession(ctx, "device-1", models.CleanupProfileDeleted)
	require.NoError(t, err)

	result, err := s.VerifySessionCleared(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, result.IsCleared)
	assert.Empty(t, result.RemainingData)
}

func TestClearSessionWithoutSessionIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newSessionService()

	assert.NoError(t, s.ClearSession(ctx, "device-1", models.CleanupEventLeft))

	result, err := s.VerifySessionCleared(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, result.IsCleared)
}

func TestVerifyReportsRemainingKeys(t *testing.T) {
	ctx := context.Background()
	s := newSessionService()

	_, err := s.JoinEvent(ctx, "device-1", "event-1", "profile-1")
	require.NoError(t, err)

	result, err := s.VerifySessionCleared(ctx, "device-1")
	require.NoError(t, err)
	assert.False(t, result.IsCleared)
	assert.Contains(t, result.RemainingData, "device:device-1:sessionId")
	assert.Equal(t, "event-1", result.RemainingData["device:device-1:eventId"])
}

func TestVerifyDoesNotMutateState(t *testing.T) {
	ctx := context.Background()
	s := newSessionService()

	_, err := s.JoinEvent(ctx, "device-1", "event-1", "profile-1")
	require.NoError(t, err)

	_, err = s.VerifySessionCleared(ctx, "device-1")
	require.NoError(t, err)

	session, err := s.GetSession(ctx, "device-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "event-1", session.EventID)
}

func TestForceCleanupAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newSessionService()

	_, err := s.JoinEvent(ctx, "device-1", "event-1", "profile-1")
	require.NoError(t, err)

	require.NoError(t, s.ForceCleanupAll(ctx, "device-1"))
	require.NoError(t, s.ForceCleanupAll(ctx, "device-1"))

	result, err := s.VerifySessionCleared(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, result.IsCleared)

	session, err := s.GetSession(ctx, "device-1")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestJoinWhileActiveTearsDownOldSession(t *testing.T) {
	ctx := context.Background()
	s := newSessionService()

	first, err := s.JoinEvent(ctx, "device-1", "event-1", "profile-1")
	require.NoError(t, err)

	second, err := s.JoinEvent(ctx, "device-1", "event-2", "profile-2")
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	session, err := s.GetSession(ctx, "device-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "event-2", session.EventID)
	assert.Equal(t, "profile-2", session.ProfileID)
}

func TestJoinAfterPartialClearSweepsResidualKeys(t *testing.T) {
	ctx := context.Background()
	s := newSessionService()

	_, err := s.JoinEvent(ctx, "device-1", "event-old", "profile-old")
	require.NoError(t, err)
	require.NoError(t, s.SetCachedImage(ctx, "device-1", "uri-old-profile"))

	// A partial cleanup that lost only the session id leaves dependent keys
	// behind; the next join must still run the full teardown.
	require.NoError(t, s.Store.Delete(ctx, "device:device-1:sessionId"))

	_, err = s.JoinEvent(ctx, "device-1", "event-new", "profile-new")
	require.NoError(t, err)

	session, err := s.GetSession(ctx, "device-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "event-new", session.EventID)
	assert.Equal(t, "profile-new", session.ProfileID)
	assert.Empty(t, session.CachedImageURI)
}

func TestSetCachedImagePersistsAndSharesURI(t *testing.T) {
	ctx := context.Background()
	s := newSessionService()

	session, err := s.JoinEvent(ctx, "device-1", "event-1", "profile-1")
	require.NoError(t, err)

	require.NoError(t, s.SetCachedImage(ctx, "device-1", "https://cdn.example/img.jpg"))

	// Durable copy
	loaded, err := s.GetSession(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/img.jpg", loaded.CachedImageURI)

	// Shared process cache, visible to any other consumer of the instance
	assert.Equal(t, "https://cdn.example/img.jpg", s.Cache.GetImageURI(session.SessionID))

	// Teardown drops both
	require.NoError(t, s.ClearSession(ctx, "device-1", models.CleanupEventLeft))
	assert.Empty(t, s.Cache.GetImageURI(session.SessionID))
}

func TestSetCachedImageWithoutSessionFails(t *testing.T) {
	ctx := context.Background()
	s := newSessionService()

	err := s.SetCachedImage(ctx, "device-1", "uri")
	assert.Error(t, err)
}
