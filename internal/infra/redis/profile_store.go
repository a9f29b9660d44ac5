package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codescore-service/internal/domain"
)

// ProfileStore persists player profiles as JSON values in Redis so coins and
// cosmetics survive process restarts. A zero TTL keeps profiles forever.
type ProfileStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProfileStore(client *redis.Client, ttl time.Duration) *ProfileStore {
	return &ProfileStore{client: client, ttl: ttl}
}

func (s *ProfileStore) Load(ctx context.Context, playerID string) (domain.Profile, bool, error) {
	raw, err := s.client.Get(ctx, s.key(playerID)).Bytes()
	if err == redis.Nil {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("load profile: %w", err)
	}
	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return domain.Profile{}, false, fmt.Errorf("unmarshal profile: %w", err)
	}
	return profile, true, nil
}

func (s *ProfileStore) Save(ctx context.Context, playerID string, profile domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, s.key(playerID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) key(playerID string) string {
	return "arcade:profile:" + playerID
}
