package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	signingKey  []byte
	redisClient *redis.Client
	nowFunc     func() time.Time
}

func NewLoginChecker(signingKey []byte, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		signingKey:  signingKey,
		redisClient: redisClient,
		nowFunc:     time.Now,
	}
}

// Authenticate checks the token signature and expiry first,
// then that its session was not ended in the meantime.
func (c *LoginChecker) Authenticate(ctx context.Context, token string) (int, error) {
	claims, err := parseToken(token, c.signingKey, c.nowFunc)
	if err != nil {
		return 0, err
	}

	storedUserID, err := c.redisClient.Get(ctx, sessionKeyPrefix+claims.ID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("%w: session ended", ErrInvalidToken)
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	if storedUserID != claims.Subject {
		return 0, fmt.Errorf("%w: session user mismatch", ErrInvalidToken)
	}

	userID, err := strconv.Atoi(storedUserID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return userID, nil
}
