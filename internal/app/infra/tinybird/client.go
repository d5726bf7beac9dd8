package tinybird

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lop/dpboard/internal/app/domains/entity/etproduct"
	"lop/dpboard/internal/app/domains/entity/etshipment"
	"lop/dpboard/internal/app/pkg/metrics"
)

// 数据管道名称
const (
	pipeProducts  = "product_details_data"
	pipeShipments = "inbound_shipments_data"
)

// Client Tinybird 分析数据源客户端
// 认证通过 query string 携带 token，每次请求全量拉取
type Client struct {
	baseURL    string
	token      string
	limit      int
	companyURL string
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

// NewClient 创建 Tinybird 客户端
func NewClient(baseURL, token string, limit int, companyURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		limit:      limit,
		companyURL: companyURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope 上游响应结构 {"data": [...]}
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Products 拉取产品记录
func (c *Client) Products(ctx context.Context) ([]*etproduct.Product, error) {
	raw, err := c.fetch(ctx, pipeProducts)
	metrics.ObserveUpstream("tinybird", err)
	if err != nil {
		return nil, err
	}

	var products []*etproduct.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode products failed: %w", err)
	}
	return products, nil
}

// Shipments 拉取货件记录
func (c *Client) Shipments(ctx context.Context) ([]*etshipment.Shipment, error) {
	raw, err := c.fetch(ctx, pipeShipments)
	metrics.ObserveUpstream("tinybird", err)
	if err != nil {
		return nil, err
	}

	var shipments []*etshipment.Shipment
	if err := json.Unmarshal(raw, &shipments); err != nil {
		return nil, fmt.Errorf("decode shipments failed: %w", err)
	}
	return shipments, nil
}

// fetch 调用指定数据管道，返回 data 数组的原始 JSON
func (c *Client) fetch(ctx context.Context, pipe string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s.json", c.baseURL, pipe)

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse tinybird url failed: %w", err)
	}

	q := u.Query()
	q.Set("token", c.token)
	q.Set("limit", strconv.Itoa(c.limit))
	if c.companyURL != "" {
		q.Set("company_url", c.companyURL)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build tinybird request failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tinybird request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tinybird returned status %d: %s", resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode tinybird envelope failed: %w", err)
	}

	if env.Data == nil {
		// 空结果按空数组处理
		return json.RawMessage("[]"), nil
	}

	return env.Data, nil
}
