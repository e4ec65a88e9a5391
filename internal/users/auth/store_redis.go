// Copyright (c) 2026 Avironin. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/avironin/insight-api/internal/platform/apperr"
	"github.com/avironin/insight-api/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository on Redis. Session
// lifetime is enforced by key TTL, so expired refresh tokens vanish without
// a cleanup job.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func (repository *RedisSessionRepository) Set(context context.Context, tokenHash string, accountID uuid.UUID, ttl time.Duration) error {
	if err := repository.client.Set(context, sessionKey(tokenHash), accountID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisSessionRepository) Get(context context.Context, tokenHash string) (uuid.UUID, error) {
	value, err := repository.client.Get(context, sessionKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return uuid.Nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	accountID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("redis_session_parse_failed: %w", err)
	}
	return accountID, nil
}

func (repository *RedisSessionRepository) Delete(context context.Context, tokenHash string) error {
	if err := repository.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
