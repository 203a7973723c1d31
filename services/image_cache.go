package services

import "sync"

// ImageCache maps an opaque per-event-participation identifier to its
// resolved profile-image URI so the discovery list and the detail view never
// presign the same image twice within a process lifetime. The device's own
// session uses its session id as the key; the discovery path uses the viewed
// profile's id, which is that profile's participation identifier. Entries
// are additive-only until ClearCache; there is no eviction because the scope
// is one event session.
type ImageCache struct {
	mu   sync.RWMutex
	uris map[string]string
}

func NewImageCache() *ImageCache {
	return &ImageCache{uris: make(map[string]string)}
}

// SetImageURI records the resolved URI for a session. Last write wins; both
// writers store the same resolved URI for a given session, so this is safe.
func (c *ImageCache) SetImageURI(sessionID, uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uris[sessionID] = uri
}

// GetImageURI returns the cached URI for a session, or "" when none exists.
func (c *ImageCache) GetImageURI(sessionID string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uris[sessionID]
}

// ClearCache drops every entry. Called during session teardown so a stale
// image cannot leak into a later session that reuses a session-id slot.
func (c *ImageCache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uris = make(map[string]string)
}
