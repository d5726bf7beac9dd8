package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"lop/dpboard/internal/app/domains/entity/etshipment"
	"lop/dpboard/internal/app/pkg/metrics"
)

// Client 仓库数据源客户端（可选后端）
// 与 Tinybird 同样的 {"data":[...]} 信封，token 走 query string
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option 客户端可选配置
type Option func(*Client)

// WithHTTPClient 注入自定义 HTTP 客户端（测试用）
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient 创建仓库数据源客户端
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Shipments 拉取仓库侧货件记录
func (c *Client) Shipments(ctx context.Context) ([]*etshipment.Shipment, error) {
	shipments, err := c.fetch(ctx)
	metrics.ObserveUpstream("warehouse", err)
	if err != nil {
		return nil, err
	}
	return shipments, nil
}

func (c *Client) fetch(ctx context.Context) ([]*etshipment.Shipment, error) {
	u, err := url.Parse(c.baseURL + "/shipments")
	if err != nil {
		return nil, fmt.Errorf("parse warehouse url failed: %w", err)
	}

	q := u.Query()
	q.Set("token", c.token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build warehouse request failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("warehouse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("warehouse returned status %d: %s", resp.StatusCode, string(body))
	}

	var env struct {
		Data []*etshipment.Shipment `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode warehouse envelope failed: %w", err)
	}

	if env.Data == nil {
		return []*etshipment.Shipment{}, nil
	}

	return env.Data, nil
}
