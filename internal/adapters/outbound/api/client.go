// Package api implements the outbound HTTP adapter for the phishing
// detection backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/phishguard/phishguard/internal/domain"
)

// Client talks to the detection backend and implements domain.DetectionAPI.
// Each call carries its own timeout; failures are mapped onto the client
// error taxonomy in internal/domain/errors.go.
type Client struct {
	baseURL string
	http    *http.Client
	cfg     domain.ClientConfig
}

func New(cfg domain.ClientConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{},
		cfg:     cfg,
	}
}

// Health probes GET /health. Any failure, timeout or unexpected body counts
// as unhealthy rather than an error.
func (c *Client) Health(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false
	}
	return body.Status == "ok"
}

func (c *Client) Detect(ctx context.Context, rawURL string) (*domain.DetectionResponse, error) {
	var out domain.DetectionResponse
	payload := map[string]string{"url": rawURL}
	if err := c.postJSON(ctx, "/detect", c.cfg.DetectTimeout, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BatchDetect(ctx context.Context, urls []string) ([]domain.DetectionResponse, error) {
	var out domain.BatchResult
	payload := map[string][]string{"urls": urls}
	if err := c.postJSON(ctx, "/batch_detect", c.cfg.Timeout, payload, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Statistics reads GET /statistics, falling back to /statistics_v2 when the
// primary endpoint fails for any reason.
func (c *Client) Statistics(ctx context.Context) (*domain.Statistics, error) {
	var out domain.Statistics
	if err := c.getJSON(ctx, "/statistics", nil, &out); err == nil {
		return &out, nil
	}
	out = domain.Statistics{}
	if err := c.getJSON(ctx, "/statistics_v2", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitReport(ctx context.Context, sub domain.ReportSubmission) (*domain.ReportAck, error) {
	var out domain.ReportAck
	if err := c.postJSON(ctx, "/report", c.cfg.Timeout, sub, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Reports(ctx context.Context, page, limit int) (*domain.ReportPage, error) {
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	var out domain.ReportPage
	if err := c.getJSON(ctx, "/reports", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchHistory(ctx context.Context, page, limit int, filter string) (*domain.HistoryPage, error) {
	query := url.Values{
		"page":   {strconv.Itoa(page)},
		"limit":  {strconv.Itoa(limit)},
		"filter": {filter},
	}
	var out domain.HistoryPage
	if err := c.getJSON(ctx, "/search_history", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, timeout time.Duration, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	return c.do(req, out)
}

// do executes the request and maps failures onto the error taxonomy:
// transport failure, structured {error} body, plain 5xx, empty success body.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServerUnreachable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if msg := structuredError(data); msg != "" {
			return &domain.APIError{Status: resp.StatusCode, Message: msg}
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w (status %d)", domain.ErrServerFailure, resp.StatusCode)
		}
		return &domain.APIError{Status: resp.StatusCode, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return domain.ErrEmptyResponse
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func structuredError(data []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Error
}
