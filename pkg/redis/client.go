// Package redis wraps go-redis for the migration lock.
package redis

import (
	"context"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

type Client struct {
	rdb    *redis.Client
	logger ectologger.Logger
}

// NewClient builds a client without dialing. Connectivity is checked by Ping
// during startup.
func NewClient(cfg Config, logger ectologger.Logger) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	return &Client{
		rdb:    rdb,
		logger: logger,
	}
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return err
	}
	c.logger.WithContext(ctx).Debugf("Redis reachable at %s", c.rdb.Options().Addr)
	return nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
