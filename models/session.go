package models

// SessionState is the per-device record of "the profile I currently hold in
// the event I am in". It lives in the device key-value store, never in
// DynamoDB, and must leave zero residual keys after cleanup.
type SessionState struct {
	SessionID      string `json:"sessionId"`
	EventID        string `json:"eventId"`
	ProfileID      string `json:"profileId"`
	CachedImageURI string `json:"cachedImageUri,omitempty"`
}

// CleanupReason is recorded for diagnostics only; every reason performs the
// identical cleanup. Kept as a named type so variants can diverge later
// without touching call sites.
type CleanupReason string

const (
	CleanupProfileDeleted CleanupReason = "profile_deleted"
	CleanupEventLeft      CleanupReason = "event_left"
	CleanupEventEnded     CleanupReason = "event_ended"
	CleanupRecovery       CleanupReason = "recovery"
)

// VerifyResult reports what a post-cleanup verification pass observed.
// RemainingData maps each storage key that still held a value to that value.
type VerifyResult struct {
	IsCleared     bool              `json:"isCleared"`
	RemainingData map[string]string `json:"remainingData"`
}
