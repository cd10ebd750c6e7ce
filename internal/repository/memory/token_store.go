package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// RevokedTokenStore remembers access-token ids invalidated by logout
// until they would have expired on their own.
type RevokedTokenStore struct {
	cache *cache.Cache
}

func NewRevokedTokenStore(defaultTTL time.Duration) *RevokedTokenStore {
	return &RevokedTokenStore{
		cache: cache.New(defaultTTL, 10*time.Minute),
	}
}

func (s *RevokedTokenStore) Revoke(tokenId string, until time.Time) {
	ttl := time.Until(until)
	if ttl <= 0 {
		return
	}
	s.cache.Set(tokenId, struct{}{}, ttl)
}

func (s *RevokedTokenStore) IsRevoked(tokenId string) bool {
	_, found := s.cache.Get(tokenId)
	return found
}
