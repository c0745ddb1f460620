// Package store はValkeyへのデータアクセスを提供する。
package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/automactic/gatekeeper/internal/config"
)

// ValkeyClient はValkeyへの接続を保持するクライアント。
type ValkeyClient struct {
	client *redis.Client
}

// NewValkeyClient は新しいValkeyClientを生成し、疎通を確認する。
func NewValkeyClient(cfg *config.Config) (*ValkeyClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPass,
		DB:           0,
		DialTimeout:  config.ValkeyConnectTimeout,
		ReadTimeout:  config.ValkeyCommandTimeout,
		WriteTimeout: config.ValkeyCommandTimeout,
		PoolSize:     config.ValkeyPoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), config.ValkeyConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return &ValkeyClient{client: client}, nil
}

// Close は接続を閉じる。
func (v *ValkeyClient) Close() error {
	return v.client.Close()
}

// Client は内部のredisクライアントを返す。
func (v *ValkeyClient) Client() *redis.Client {
	return v.client
}
