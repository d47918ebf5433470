// Package api is the typed HTTP client for the storefront's public and
// admin endpoints. It owns the error taxonomy the rest of the SDK maps
// user-facing behavior onto.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/foodcourt/storefront/storefront/session"
)

// DefaultTimeout bounds every request when the config does not say otherwise
const DefaultTimeout = 15 * time.Second

// Config configures a Client
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Identity *session.Identity
	Logger   *zap.Logger
}

// Client is the typed API client. All methods take a context; none retry.
type Client struct {
	baseURL  string
	http     *http.Client
	identity *session.Identity
	logger   *zap.Logger
}

// NewClient creates a Client from config, applying defaults for zero values
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		identity: cfg.Identity,
		logger:   logger,
	}
}

// CuisinesWithFood fetches the public menu grouped by cuisine
func (c *Client) CuisinesWithFood(ctx context.Context) ([]Cuisine, error) {
	var out struct {
		Data []Cuisine `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cuisines-with-food", nil, &out, false); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GuestCart fetches the server-held cart lines for a token
func (c *Client) GuestCart(ctx context.Context, token string) ([]CartItem, error) {
	var out struct {
		CartItems []CartItem `json:"cart_items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cart/guest/"+token, nil, &out, false); err != nil {
		return nil, err
	}
	return out.CartItems, nil
}

// UpdateGuestCart sends the full desired state of one cart line
func (c *Client) UpdateGuestCart(ctx context.Context, req UpdateCartRequest) error {
	return c.do(ctx, http.MethodPost, "/api/cart/guest/add", req, nil, false)
}

// PlaceOrder submits a checkout
func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderPlaced, error) {
	var out OrderPlaced
	if err := c.do(ctx, http.MethodPost, "/api/place-order", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates an admin and stores the bearer token
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &out, false); err != nil {
		return nil, err
	}
	if c.identity != nil {
		if err := c.identity.SetAuthToken(out.Token); err != nil {
			return nil, fmt.Errorf("store auth token: %w", err)
		}
	}
	return &out, nil
}

// Register creates an admin account and stores the returned bearer token
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &out, false); err != nil {
		return nil, err
	}
	if c.identity != nil {
		if err := c.identity.SetAuthToken(out.Token); err != nil {
			return nil, fmt.Errorf("store auth token: %w", err)
		}
	}
	return &out, nil
}

// Logout revokes the current token server-side and always forgets it locally
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil, true)
	if c.identity != nil {
		if clearErr := c.identity.ClearAuthToken(); clearErr != nil && err == nil {
			err = clearErr
		}
	}
	return err
}

// Dashboard fetches the admin dashboard summary
func (c *Client) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var out struct {
		Data DashboardStats `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &out, true); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListFoods fetches all food items for the admin console
func (c *Client) ListFoods(ctx context.Context) ([]FoodItem, error) {
	var out struct {
		Data []FoodItem `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/food", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateFood creates a food item
func (c *Client) CreateFood(ctx context.Context, req FoodInput) (*FoodItem, error) {
	var out FoodItem
	if err := c.do(ctx, http.MethodPost, "/api/food", req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFood overwrites a food item
func (c *Client) UpdateFood(ctx context.Context, id uint, req FoodInput) (*FoodItem, error) {
	var out FoodItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/food/%d", id), req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFood removes a food item
func (c *Client) DeleteFood(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/food/%d", id), nil, nil, true)
}

// ToggleFoodStatus flips a food item between active and inactive
func (c *Client) ToggleFoodStatus(ctx context.Context, id uint) (*FoodItem, error) {
	var out FoodItem
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/food/%d/toggle-status", id), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCuisines fetches all cuisines for the admin console
func (c *Client) ListCuisines(ctx context.Context) ([]CuisineSummary, error) {
	var out struct {
		Data []CuisineSummary `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cuisin", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateCuisine creates a cuisine
func (c *Client) CreateCuisine(ctx context.Context, req CreateCuisineRequest) (*CuisineSummary, error) {
	var out CuisineSummary
	if err := c.do(ctx, http.MethodPost, "/api/cuisin", req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request. Non-2xx responses decode into an APIError; a 401
// on an authenticated call also clears the stored bearer token so the caller
// falls back to the login screen.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated && c.identity != nil {
		if token := c.identity.AuthToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("op", op), zap.Error(err))
		return &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		if jsonErr := json.Unmarshal(data, &payload); jsonErr == nil {
			apiErr.Message = payload.Message
			apiErr.Errors = payload.Errors
		}
		if resp.StatusCode == http.StatusUnauthorized && authenticated && c.identity != nil {
			if clearErr := c.identity.ClearAuthToken(); clearErr != nil {
				c.logger.Warn("failed to clear auth token", zap.Error(clearErr))
			}
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}
