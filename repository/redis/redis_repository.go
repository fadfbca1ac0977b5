package redis

import (
	"context"
	"encoding/json"
	"time"

	redisclient "github.com/afribrok/marketplace-bff/cmd/redis"
	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	goredis "github.com/redis/go-redis/v9"
)

// Repository stores the signed-in user per session, the server-side twin of
// the browser's afribrok-auth-user local storage entry.
type Repository interface {
	SetAuthUser(ctx context.Context, sessionID string, user *model.AuthUser, ttl time.Duration) error
	GetAuthUser(ctx context.Context, sessionID string) (*model.AuthUser, error)
	DeleteAuthUser(ctx context.Context, sessionID string) error
}

type redis struct {
	// *redis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetAuthUser stores the user as JSON with time-to-live
func (r *redis) SetAuthUser(ctx context.Context, sessionID string, user *model.AuthUser, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	body, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return client.Set(ctx, constant.AuthUserKeyPrefix+sessionID, body, ttl).Err()
}

// GetAuthUser returns nil, nil when the session does not exist
func (r *redis) GetAuthUser(ctx context.Context, sessionID string) (*model.AuthUser, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, constant.AuthUserKeyPrefix+sessionID).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user model.AuthUser
	if err := json.Unmarshal(val, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteAuthUser removes a session
func (r *redis) DeleteAuthUser(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, constant.AuthUserKeyPrefix+sessionID).Err()
}
