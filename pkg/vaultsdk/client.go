package vaultsdk

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client talks to a passvault server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Livez reports whether the server process is up.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz reports whether the server can reach its database.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// The helpers below back every resource method.

func list[T any](ctx context.Context, c *Client, collection string) ([]T, error) {
	var out []T
	if err := c.doJSON(ctx, http.MethodGet, collection, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func get[T any](ctx context.Context, c *Client, collection string, id int64) (*T, error) {
	return fetch[T](ctx, c, itemPath(collection, id))
}

func fetch[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var out T
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func create[T any](ctx context.Context, c *Client, collection string, req any) (*T, error) {
	var out T
	if err := c.doJSON(ctx, http.MethodPost, collection, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func update[T any](ctx context.Context, c *Client, collection string, id int64, req any) (*T, error) {
	var out T
	if err := c.doJSON(ctx, http.MethodPut, itemPath(collection, id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func remove(ctx context.Context, c *Client, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusOK)
}

func itemPath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}
