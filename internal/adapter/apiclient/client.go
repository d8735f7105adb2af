package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/YelzhanWeb/foodorder/internal/domain"
)

// ErrNotFound is returned for 404 responses
var ErrNotFound = errors.New("resource not found")

// APIError is a non-2xx response from the food API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("food api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("food api returned status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client talks JSON to the food API. Calls carry the caller's context and
// otherwise rely on the http.Client timeout.
type Client struct {
	BaseURL string
	Client  *http.Client
	Headers map[string]string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
		Headers: map[string]string{},
	}
}

func (c *Client) Call(ctx context.Context, method, endpoint string, body interface{}) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(bodyJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for key, value := range c.Headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) GetFood(ctx context.Context, id int) (*domain.Item, error) {
	resp, err := c.Call(ctx, http.MethodGet, fmt.Sprintf("/foods/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var item domain.Item
	if err := UnmarshalBody(resp, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetFavorite(ctx context.Context, id int) (*domain.Favorite, error) {
	resp, err := c.Call(ctx, http.MethodGet, fmt.Sprintf("/favorites/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var favorite domain.Favorite
	if err := UnmarshalBody(resp, &favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (c *Client) AddFavorite(ctx context.Context, favorite domain.Favorite) error {
	_, err := c.Call(ctx, http.MethodPost, "/favorites", favorite)
	return err
}

func (c *Client) RemoveFavorite(ctx context.Context, id int) error {
	_, err := c.Call(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", id), nil)
	return err
}

func (c *Client) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	resp, err := c.Call(ctx, http.MethodPost, "/orders", order)
	if err != nil {
		return nil, err
	}

	var created domain.Order
	if err := UnmarshalBody(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	resp, err := c.Call(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}

	var orders []domain.Order
	if err := UnmarshalBody(resp, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func UnmarshalBody(resp *Response, target interface{}) error {
	if len(resp.Body) == 0 {
		return fmt.Errorf("empty response body")
	}

	if err := json.Unmarshal(resp.Body, target); err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
