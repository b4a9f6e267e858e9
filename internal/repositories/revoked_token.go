package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/tweet-board/internal/logger"
)

// RevokedTokenRepository keeps logged-out token IDs in Redis until they would have expired anyway
type RevokedTokenRepository struct {
	client redis.Cmdable
}

func NewRevokedTokenRepository(client redis.Cmdable) *RevokedTokenRepository {
	return &RevokedTokenRepository{client: client}
}

func revokedTokenKey(jti string) string {
	return fmt.Sprintf("revoked_token:%s", jti)
}

// Revoke marks the token ID as revoked for ttl
func (r *RevokedTokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := revokedTokenKey(jti)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("revoke token",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token ID was revoked
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	key := revokedTokenKey(jti)
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("check revoked token", "key", key, "error", err)
		return false, err
	}
	return n > 0, nil
}
