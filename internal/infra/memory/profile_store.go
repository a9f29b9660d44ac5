package memory

import (
	"context"
	"sync"

	"codescore-service/internal/domain"
)

// ProfileStore keeps player profiles in process memory. Suitable for demos
// and tests; production deployments pair the service with the Redis store.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{profiles: make(map[string]domain.Profile)}
}

func (s *ProfileStore) Load(_ context.Context, playerID string) (domain.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[playerID]
	if !ok {
		return domain.Profile{}, false, nil
	}
	profile.MonstersOwned = append([]string(nil), profile.MonstersOwned...)
	return profile, true, nil
}

func (s *ProfileStore) Save(_ context.Context, playerID string, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.MonstersOwned = append([]string(nil), profile.MonstersOwned...)
	s.profiles[playerID] = profile
	return nil
}
