package redisclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/afribrok/marketplace-bff/cmd/config"
	"github.com/redis/go-redis/v9"
)

// ErrNotInitialized is returned by Ping before New has succeeded.
var ErrNotInitialized = errors.New("session store not initialized")

var client *redis.Client

// New connects the session store client. The connection is verified once so a
// misconfigured store fails at startup instead of on the first login.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	rc := cfg.Redis
	addr := fmt.Sprintf("%s:%d", rc.Host, rc.Port)
	c := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    rc.Password,
		DB:          rc.DB,
		PoolSize:    rc.PoolSize,
		DialTimeout: rc.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), rc.DialTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("session store unreachable at %s: %w", addr, err)
	}

	client = c
	return nil
}

// Get returns the shared client, nil until New succeeds.
func Get() *redis.Client {
	return client
}

// Ping is used by the internal health route.
func Ping(ctx context.Context) error {
	if client == nil {
		return ErrNotInitialized
	}
	return client.Ping(ctx).Err()
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
