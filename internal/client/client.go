// ABOUTME: HTTP client for the availability calculator API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

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

	"github.com/cyan1/Availability/internal/models"
)

// Client is the API client for a running availcalc server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is returned when the server answers with a non-200 status
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("backend error: %s: %s", e.Message, e.Details)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// Health calls GET /api/v1/health
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var health models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Calculate calls POST /api/v1/availability
func (c *Client) Calculate(ctx context.Context, req models.CalculationRequest) (*models.CalculationResponse, error) {
	var resp models.CalculationResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/availability", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Sweep calls POST /api/v1/sweep
func (c *Client) Sweep(ctx context.Context, req models.SweepRequest) (*models.SweepResponse, error) {
	var resp models.SweepResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/sweep", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Batch calls POST /api/v1/batch
func (c *Client) Batch(ctx context.Context, reqs []models.CalculationRequest) (*models.BatchResponse, error) {
	var resp models.BatchResponse
	body := models.BatchRequest{Configurations: reqs}
	if err := c.do(ctx, http.MethodPost, "/api/v1/batch", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Recommend calls POST /api/v1/recommend
func (c *Client) Recommend(ctx context.Context, req models.RecommendRequest) (*models.RecommendResponse, error) {
	var resp models.RecommendResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/recommend", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts transport errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("request canceled")
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error, Details: errResp.Details}
}
