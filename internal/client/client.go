// Package client is a typed HTTP client for the expense REST API.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/baharkarakas/expense-tracker/internal/models"
)

const DefaultBaseURL = "http://localhost:3001/api"

// APIError is a non-2xx response. Message is the server's "error" field,
// or the HTTP status text when the body carried none.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ExpenseRequest is the create/update body.
type ExpenseRequest struct {
	ItemName string        `json:"item_name"`
	Amount   models.Amount `json:"amount"`
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	if err := c.do(ctx, http.MethodGet, "/expenses", nil, &out); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return out, nil
}

func (c *Client) CreateExpense(ctx context.Context, req ExpenseRequest) (models.Expense, error) {
	var out models.Expense
	if err := c.do(ctx, http.MethodPost, "/expenses", req, &out); err != nil {
		return models.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateExpense(ctx context.Context, id int64, req ExpenseRequest) (models.Expense, error) {
	var out models.Expense
	if err := c.do(ctx, http.MethodPut, "/expenses/"+strconv.FormatInt(id, 10), req, &out); err != nil {
		return models.Expense{}, fmt.Errorf("update expense %d: %w", id, err)
	}
	return out, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/expenses/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	return nil
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return Health{}, fmt.Errorf("health: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	ae := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil && body.Error != "" {
		ae.Message = body.Error
		ae.Code = body.Code
	}
	return ae
}
