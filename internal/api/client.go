// Package api talks JSON to the coach service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-coach-client/internal/domain/coach"
	"github.com/preston-bernstein/nba-coach-client/internal/logging"
	"github.com/preston-bernstein/nba-coach-client/internal/metrics"
)

// Config controls how the client reaches the coach service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client issues one JSON request per call against a fixed base URL. It never retries.
type Client struct {
	http      *resty.Client
	baseURL   string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	requestID func() string
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := normalizeBaseURL(cfg.BaseURL)

	rc := resty.NewWithClient(resolveHTTPClient(cfg.HTTPClient)).
		SetBaseURL(baseURL).
		SetTimeout(resolveTimeout(cfg.Timeout)).
		SetRetryCount(0).
		SetHeader("Content-Type", contentTypeJSON).
		SetHeader("Accept", contentTypeJSON)

	return &Client{
		http:      rc,
		baseURL:   baseURL,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		requestID: uuid.NewString,
	}
}

// BaseURL returns the normalised service origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call sends body as JSON to path and returns the parsed reply whatever its status.
// An error is returned only when no JSON reply could be obtained.
func (c *Client) Call(ctx context.Context, method, path string, body any) (Response, error) {
	reqID := c.requestID()
	req := c.http.R().
		SetContext(ctx).
		SetHeader(headerRequestID, reqID)
	if body != nil {
		req.SetBody(body)
	}

	logging.Debug(c.logger, "calling coach service",
		logging.FieldMethod, method,
		logging.FieldPath, path,
		logging.FieldRequestID, reqID,
	)

	start := time.Now()
	resp, err := req.Execute(method, path)
	duration := time.Since(start)
	if err != nil {
		netErr := &NetworkError{Method: method, Path: path, Err: err}
		c.finish(method, path, reqID, 0, duration, netErr)
		return Response{}, netErr
	}

	status := resp.StatusCode()
	payload, err := decodePayload(resp.Body())
	if err != nil {
		netErr := &NetworkError{Method: method, Path: path, StatusCode: status, Err: err}
		c.finish(method, path, reqID, status, duration, netErr)
		return Response{}, netErr
	}

	out := Response{
		OK:         resp.IsSuccess(),
		StatusCode: status,
		RequestID:  reqID,
		Payload:    payload,
	}
	var callErr error
	if !out.OK {
		callErr = errors.New(http.StatusText(status))
	}
	c.finish(method, path, reqID, status, duration, callErr)
	return out, nil
}

// Ingest asks the service to load recent games for a team/season.
func (c *Client) Ingest(ctx context.Context, req coach.IngestRequest) (coach.IngestResponse, error) {
	var out coach.IngestResponse
	err := c.do(ctx, http.MethodPost, PathIngest, OpIngest, req, &out)
	return out, err
}

// Recommend asks the service for a rotation against an opponent.
func (c *Client) Recommend(ctx context.Context, req coach.RecommendRequest) (coach.RecommendResponse, error) {
	var out coach.RecommendResponse
	err := c.do(ctx, http.MethodPost, PathRecommend, OpRecommend, req, &out)
	return out, err
}

// Health reports whether the service is up and how many documents it holds.
func (c *Client) Health(ctx context.Context) (coach.HealthResponse, error) {
	var out coach.HealthResponse
	err := c.do(ctx, http.MethodGet, PathHealth, OpHealth, nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path, op string, body any, dest any) error {
	resp, err := c.Call(ctx, method, path, body)
	if err != nil {
		return err
	}
	if failure := failureFrom(op, resp); failure != nil {
		return failure
	}
	if err := json.Unmarshal(resp.Payload, dest); err != nil {
		return &NetworkError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

func (c *Client) finish(method, path, reqID string, status int, duration time.Duration, err error) {
	c.metrics.RecordCall(method, path, status, duration, err)

	args := []any{
		logging.FieldMethod, method,
		logging.FieldPath, path,
		logging.FieldStatusCode, status,
		logging.FieldRequestID, reqID,
		logging.FieldDurationMS, duration.Milliseconds(),
	}
	if err != nil {
		logging.Warn(c.logger, "coach service call failed", append(args, "error", err)...)
		return
	}
	logging.Info(c.logger, "coach service call completed", args...)
}

// decodePayload validates the body as JSON. An empty body stands for an empty object.
func decodePayload(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(trimmed) {
		return nil, errors.New("response is not valid JSON: " + snippet(trimmed))
	}
	return json.RawMessage(trimmed), nil
}

// failureFrom turns a non-2xx reply into an Error. Any 2xx is a success, whatever its body holds.
func failureFrom(op string, resp Response) error {
	if resp.OK {
		return nil
	}
	var body failureBody
	// Non-object payloads have no detail; the fallback message applies.
	_ = json.Unmarshal(resp.Payload, &body)
	return &Error{Op: op, StatusCode: resp.StatusCode, Detail: detailText(body.Detail)}
}

func detailText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	// FastAPI validation errors send a list; show it as compact JSON.
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

func snippet(b []byte) string {
	const limit = 120
	s := strings.TrimSpace(string(b))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
