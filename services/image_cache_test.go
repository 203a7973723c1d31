package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageCacheSharedBetweenConsumers(t *testing.T) {
	cache := NewImageCache()

	// Discovery list writes, detail view reads the same instance.
	cache.SetImageURI("s1", "uri-a")
	assert.Equal(t, "uri-a", cache.GetImageURI("s1"))

	cache.ClearCache()
	assert.Empty(t, cache.GetImageURI("s1"))
}

func TestImageCacheLastWriteWins(t *testing.T) {
	cache := NewImageCache()

	cache.SetImageURI("s1", "uri-a")
	cache.SetImageURI("s1", "uri-b")
	assert.Equal(t, "uri-b", cache.GetImageURI("s1"))
}

func TestImageCacheMissReturnsEmpty(t *testing.T) {
	cache := NewImageCache()
	assert.Empty(t, cache.GetImageURI("unknown"))
}

func TestResolveProfileImageHitsCache(t *testing.T) {
	cache := NewImageCache()
	cache.SetImageURI("p1", "uri-cached")

	// No S3 client wired: a presign attempt would panic, so a hit proves the
	// cache short-circuits the resolution.
	s := &S3Service{Cache: cache}
	uri, err := s.ResolveProfileImage("p1", "photo-key")
	assert.NoError(t, err)
	assert.Equal(t, "uri-cached", uri)
}

func TestResolveProfileImageWithoutPhotoKey(t *testing.T) {
	s := &S3Service{Cache: NewImageCache()}

	uri, err := s.ResolveProfileImage("p1", "")
	assert.NoError(t, err)
	assert.Empty(t, uri)
}
