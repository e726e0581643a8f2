// Package catalogclient is a typed HTTP client for the food catalog API.
package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/tuanvumaihuynh/food-catalog/internal/model"
	"github.com/tuanvumaihuynh/food-catalog/pkg/correlationid"
)

const (
	DefaultBaseURL   = "http://localhost:3001"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "food-catalog-client"

	// maxBodySize bounds how much of a response body is read.
	maxBodySize = 8 << 20
)

// Option configures a Client.
type Option func(*Client)

// Client calls the four catalog endpoints.
type Client struct {
	baseURL    *url.URL
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if u, err := url.Parse(strings.TrimRight(baseURL, "/")); err == nil {
			c.baseURL = u
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying client. WithTimeout still applies.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	base, _ := url.Parse(DefaultBaseURL)

	c := &Client{
		baseURL:   base,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}

	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) ListPreviewFoods(ctx context.Context) ([]model.FoodPreview, error) {
	var foods []model.FoodPreview
	if err := c.get(ctx, "/api/foods/preview", nil, &foods); err != nil {
		return nil, fmt.Errorf("list preview foods: %w", err)
	}
	return foods, nil
}

func (c *Client) ListTableFoods(ctx context.Context) ([]model.Food, error) {
	var foods []model.Food
	if err := c.get(ctx, "/api/foods/table", nil, &foods); err != nil {
		return nil, fmt.Errorf("list table foods: %w", err)
	}
	return foods, nil
}

func (c *Client) SearchFoods(ctx context.Context, term string) ([]model.FoodPreview, error) {
	var foods []model.FoodPreview
	if err := c.get(ctx, "/api/foods/search", url.Values{"q": {term}}, &foods); err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	return foods, nil
}

func (c *Client) GetFood(ctx context.Context, code string) (model.FoodNutrients, error) {
	var food model.FoodNutrients
	if err := c.get(ctx, "/api/food/"+url.PathEscape(code), nil, &food); err != nil {
		return model.FoodNutrients{}, fmt.Errorf("get food: %w", err)
	}
	return food, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// path is already escaped.
	target := c.baseURL.String() + path
	if query != nil {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if id, ok := correlationid.FromContext(ctx); ok {
		req.Header.Set(correlationid.Header, id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	return nil
}

// Error is returned for non-2xx responses.
type Error struct {
	StatusCode int
	// Message is the server's "error" field, or the status text when the
	// body carries none.
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

func newError(status int, body []byte) *Error {
	var payload struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(status)
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &Error{StatusCode: status, Message: msg}
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
