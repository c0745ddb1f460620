// Package main はGatekeeper（キャプティブポータル登録コア）のエントリーポイント。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/automactic/gatekeeper/internal/config"
	"github.com/automactic/gatekeeper/internal/guestcode"
	"github.com/automactic/gatekeeper/internal/handler"
	"github.com/automactic/gatekeeper/internal/nac"
	"github.com/automactic/gatekeeper/internal/policy"
	"github.com/automactic/gatekeeper/internal/ratelimit"
	"github.com/automactic/gatekeeper/internal/register"
	"github.com/automactic/gatekeeper/internal/server"
	"github.com/automactic/gatekeeper/internal/store"
)

func main() {
	// 1. 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化
	initLogger(cfg)

	slog.Info("starting gatekeeper",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		"nac_host", cfg.NacHost,
	)

	// 3. Valkey接続
	valkeyClient, err := store.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("failed to connect to Valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("connected to Valkey", "addr", cfg.RedisAddr())

	// 4. 依存オブジェクト生成
	policyStore := store.NewPolicyStore(valkeyClient)
	ledger := store.NewHistoryLedger(valkeyClient)
	ipGate := store.NewIPGate(valkeyClient)

	resolver := policy.NewResolver(policyStore)
	limiter := ratelimit.NewLimiter(ledger, ipGate, resolver)
	nacClient := nac.NewClient(cfg)
	registrar := register.NewRegistrar(limiter, resolver, nacClient, ledger, cfg.LogMaskMAC)

	var rotator *guestcode.Rotator
	if cfg.GuestCodeSecret != "" {
		rotator = guestcode.NewRotator(cfg.GuestCodeSecret, config.GuestCodeDigits, config.GuestCodeInterval)
	} else {
		slog.Warn("guest code secret not set, guest code endpoint disabled")
	}

	// ハンドラー
	h := handler.New(registrar, resolver, limiter, ledger, rotator, cfg)

	// 5. サーバー起動
	srv := server.New(cfg, h)

	// 6. Graceful Shutdown設定
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// 7. シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

// initLogger はロガーを初期化する。
func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	h := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(h).With("app", "gatekeeper")
	slog.SetDefault(logger)
}
