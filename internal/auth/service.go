package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fitplanner/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitplanner-session||"
	sessionsSetKey   = "fitplanner-sessions"
	tokenIssuer      = "fitplanner"
	sessionIDLength  = 32
)

var ErrInvalidToken = errors.New("invalid session token")

// Service issues signed session tokens and keeps the sessions in redis,
// so a token stops working on logout even before it expires.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	signingKey  []byte
	// ability to inject random string generator func for session ids (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	signingKey []byte,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		signingKey:     signingKey,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login opens a new session for the user and returns its token.
func (as *Service) Login(ctx context.Context, userID int, createdAt time.Time) (string, error) {
	sessionID, err := as.RandStringFunc(sessionIDLength)
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.Itoa(userID),
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(createdAt),
		ExpiresAt: jwt.NewNumericDate(createdAt.Add(as.ttl)),
	}).SignedString(as.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	sessionKey := sessionKeyPrefix + sessionID
	if err := as.redisClient.Set(ctx, sessionKey, userID, as.ttl).Err(); err != nil {
		return "", err
	}

	// add session to the set of sessions
	if err := as.redisClient.SAdd(ctx, sessionsSetKey, sessionID).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout ends the session behind the token.
func (as *Service) Logout(ctx context.Context, token string) error {
	claims, err := parseToken(token, as.signingKey, time.Now)
	if err != nil {
		return err
	}

	deleted, err := as.redisClient.Del(ctx, sessionKeyPrefix+claims.ID).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrInvalidToken
	}

	if err := as.redisClient.SRem(ctx, sessionsSetKey, claims.ID).Err(); err != nil {
		return err
	}

	return nil
}

// ScanAndClean removes the ids of expired sessions from the sessions set.
// The session keys themselves expire in redis.
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionIDs, err := as.redisClient.SMembers(ctx, sessionsSetKey).Result()
	if err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionIDs) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionIDs))
	cleaned := 0
	for _, sessionID := range sessionIDs {
		exists, err := as.redisClient.Exists(ctx, sessionKeyPrefix+sessionID).Result()
		if err != nil {
			log.Errorf("=> auth service, scan and clean session %s: %s", sessionID, err)
			continue
		}
		if exists > 0 {
			continue
		}

		if err := as.redisClient.SRem(ctx, sessionsSetKey, sessionID).Err(); err != nil {
			log.Errorf("=> auth service, clean session %s: %s", sessionID, err)
			continue
		}
		cleaned++
	}

	log.Debugf("=> auth service, scan and clean done, cleaned %d sessions", cleaned)
}

func parseToken(token string, signingKey []byte, now func() time.Time) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing session claims", ErrInvalidToken)
	}

	return claims, nil
}
