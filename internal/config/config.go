// Package config は環境変数から設定を読み込む。
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はGatekeeperの設定を保持する。
type Config struct {
	// Valkey接続設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS"`

	// NACデバイスレジストリAPI設定
	NacHost         string `envconfig:"NAC_HOST" required:"true"`
	NacClientID     string `envconfig:"NAC_CLIENT_ID" required:"true"`
	NacClientSecret string `envconfig:"NAC_CLIENT_SECRET" required:"true"`
	NacTLSVerify    bool   `envconfig:"NAC_TLS_VERIFY" default:"false"`

	// サーバー設定
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskMAC bool   `envconfig:"LOG_MASK_MAC" default:"true"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`

	// ゲストコード設定（未設定の場合はゲストコード機能が無効になる）
	GuestCodeSecret string `envconfig:"GUEST_CODE_SECRET"`
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// RedisAddr はValkey接続アドレスを "host:port" 形式で返す。
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

// NacBaseURL はNAC APIのベースURLを返す。
// NacHostにスキームが含まれない場合はhttpsを補う。
func (c *Config) NacBaseURL() string {
	host := strings.TrimRight(strings.TrimSpace(c.NacHost), "/")
	if strings.Contains(host, "://") {
		return host + "/api"
	}
	return "https://" + host + "/api"
}

// validate は設定値のバリデーションを行う。
func (c *Config) validate() error {
	if strings.TrimSpace(c.NacHost) == "" {
		return fmt.Errorf("NAC_HOST must not be empty")
	}
	return nil
}
