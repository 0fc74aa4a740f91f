package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/medialogapp/medialog-server/internal/server"
)

const sessionKeyPrefix = "session:"

// SessionService issues opaque session tokens backed by Redis. Tokens
// map to the owning user id and expire after the configured TTL.
//
// Redis is optional at runtime: when it is unreachable, Create returns
// an empty token and login still succeeds without a session.
type SessionService struct {
	server *server.Server
	redis  *redis.Client
	log    *zerolog.Logger
	ttl    time.Duration
}

func NewSessionService(s *server.Server) *SessionService {
	return &SessionService{
		server: s,
		redis:  s.Redis,
		log:    s.Logger,
		ttl:    time.Duration(s.Config.Auth.SessionTTLHours) * time.Hour,
	}
}

// Create stores a fresh token for the user and returns it. A storage
// failure is logged and reported as an empty token, not an error.
func (s *SessionService) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	key := sessionKeyPrefix + token

	if err := s.redis.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Msg("failed to store session, continuing without one")
		return "", nil
	}

	return token, nil
}

// Lookup resolves a token to the owning user id. An unknown or expired
// token returns (0, nil).
func (s *SessionService) Lookup(ctx context.Context, token string) (int64, error) {
	val, err := s.redis.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "lookup session")
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", val, err)
	}

	return userID, nil
}

// Revoke deletes a token. Revoking an unknown token is not an error.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return errors.Wrap(err, "revoke session")
	}
	return nil
}
