package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const revokedPrefix = "auth:revoked:"

// RevocationStore keeps revoked token ids as keys that expire together with
// the token.
type RevocationStore struct {
	client goredis.Cmdable
	now    func() time.Time
}

func NewRevocationStore(client goredis.Cmdable) *RevocationStore {
	return &RevocationStore{client: client, now: time.Now}
}

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err()
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
