package nac

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/automactic/gatekeeper/internal/config"
)

// Client はNACデバイスレジストリのAPIクライアント。
// トークンキャッシュを内包し、複数ゴルーチンから安全に使える。
type Client struct {
	http         *resty.Client
	cb           *gobreaker.CircuitBreaker
	clientID     string
	clientSecret string

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

// NewClient は新しいClientを生成する。
func NewClient(cfg *config.Config) *Client {
	hc := resty.New().
		SetBaseURL(cfg.NacBaseURL()).
		SetTimeout(config.NacRequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if !cfg.NacTLSVerify {
		hc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.CBFailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				"event_id", "NAC_CB_STATE_CHANGED",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &Client{
		http:         hc,
		cb:           gobreaker.NewCircuitBreaker(cbSettings),
		clientID:     cfg.NacClientID,
		clientSecret: cfg.NacClientSecret,
	}
}

// GetToken は有効なBearerトークンを返す。
// キャッシュが有効期限内であればそれを返し、期限切れの場合のみ
// client_credentialsグラントで再取得する。更新はsingle-flightで行われ、
// 並行呼び出しは進行中の更新の完了を待つ。
func (c *Client) GetToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}
	return c.refreshTokenLocked(ctx)
}

// refreshTokenLocked はトークンを再取得する。c.muを保持して呼ぶこと。
func (c *Client) refreshTokenLocked(ctx context.Context) (string, error) {
	var tr tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
		}).
		SetResult(&tr).
		Post("/oauth")
	if err != nil {
		return "", &AuthError{Detail: fmt.Sprintf("token request: %v", err)}
	}
	if resp.IsError() {
		return "", &AuthError{Detail: fmt.Sprintf("status %d: %s", resp.StatusCode(), parseDetail(resp.Body()))}
	}
	if tr.AccessToken == "" {
		return "", &AuthError{Detail: "empty access_token in token response"}
	}
	c.token = tr.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - config.TokenSafetyMargin)
	slog.Debug("obtained new nac api token", "expires_in", tr.ExpiresIn)
	return c.token, nil
}

// invalidate は認可に失敗したトークンを破棄する。
// 他のゴルーチンが既に更新済みの場合は何もしない。
func (c *Client) invalidate(stale string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == stale {
		c.token = ""
	}
}

// attempt は認証付きリクエストを1回実行する。
// 5xxと接続エラーのみCircuit Breakerの失敗として数える。
func (c *Client) attempt(ctx context.Context, method, path string, params map[string]string, body any) (*resty.Response, string, error) {
	token, err := c.GetToken(ctx)
	if err != nil {
		return nil, "", err
	}
	result, err := c.cb.Execute(func() (interface{}, error) {
		req := c.http.R().SetContext(ctx).SetAuthToken(token)
		if params != nil {
			req.SetQueryParams(params)
		}
		if body != nil {
			req.SetBody(body)
		}
		resp, err := req.Execute(method, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return nil, &APIError{StatusCode: resp.StatusCode(), Detail: parseDetail(resp.Body())}
		}
		return resp, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, "", ErrCircuitOpen
		}
		return nil, "", err
	}
	return result.(*resty.Response), token, nil
}

// do は認証付きリクエストを実行し、成功時のレスポンスボディを返す。
// 401/403応答はトークンを強制更新して1回だけ再試行する。再試行後も
// 認可に失敗した場合はAuthErrorを返し、それ以上の更新は行わない。
func (c *Client) do(ctx context.Context, method, path string, params map[string]string, body any) ([]byte, error) {
	resp, token, err := c.attempt(ctx, method, path, params, body)
	if err != nil {
		return nil, err
	}
	if authRejected(resp) {
		slog.Info("nac api token rejected, refreshing once",
			"event_id", "NAC_TOKEN_REFRESH",
			"status", resp.StatusCode(),
			"path", path)
		c.invalidate(token)
		resp, _, err = c.attempt(ctx, method, path, params, body)
		if err != nil {
			return nil, err
		}
		if authRejected(resp) {
			return nil, &AuthError{
				Detail: fmt.Sprintf("status %d after token refresh: %s", resp.StatusCode(), parseDetail(resp.Body())),
			}
		}
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Detail: parseDetail(resp.Body())}
	}
	return resp.Body(), nil
}

func authRejected(resp *resty.Response) bool {
	return resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden
}

// parseDetail はエラーレスポンスから説明文を取り出す。
func parseDetail(body []byte) string {
	var d struct {
		Detail string `json:"detail"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(body, &d); err == nil {
		if d.Detail != "" {
			return d.Detail
		}
		if d.Title != "" {
			return d.Title
		}
	}
	return string(body)
}
