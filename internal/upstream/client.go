package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/tickethub/internal/config"
	"github.com/spec-kit/tickethub/internal/observability"
)

// Task is the raw todo record as returned by the upstream API.
type Task struct {
	ID        int    `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// User is the raw user record as returned by the upstream API.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type tasksEnvelope struct {
	Todos []Task `json:"todos"`
	Total int    `json:"total"`
}

type usersEnvelope struct {
	Users []User `json:"users"`
}

// Client fetches JSON collections from the upstream todo service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// New connects a Client to the upstream API using the provided configuration.
func New(cfg config.UpstreamConfig, logger *zap.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger,
		metrics:    metrics,
	}
}

// FetchTasks retrieves the full upstream task collection.
func (c *Client) FetchTasks(ctx context.Context) ([]Task, error) {
	body, err := c.get(ctx, "/todos")
	if err != nil {
		return nil, fmt.Errorf("fetch todos: %w", err)
	}

	var envelope tasksEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("fetch todos: decode: %w", err)
	}
	return envelope.Todos, nil
}

// FetchTask retrieves a single task by id. The raw response body is returned
// alongside the decoded record so callers can republish it verbatim.
func (c *Client) FetchTask(ctx context.Context, id int) (*Task, json.RawMessage, error) {
	body, err := c.get(ctx, "/todos/"+strconv.Itoa(id))
	if err != nil {
		return nil, nil, fmt.Errorf("fetch todo %d: %w", id, err)
	}

	var task Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, nil, fmt.Errorf("fetch todo %d: decode: %w", id, err)
	}
	return &task, json.RawMessage(body), nil
}

// FetchUsers retrieves the full upstream user collection.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	body, err := c.get(ctx, "/users")
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	var envelope usersEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("fetch users: decode: %w", err)
	}
	return envelope.Users, nil
}

// Ping probes upstream reachability for readiness checks.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/todos/1", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 500 {
		return &StatusError{Status: resp.StatusCode}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstream(path, false)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.metrics.RecordUpstream(path, false)
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordUpstream(path, false)
		c.logger.Warn("unexpected upstream status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, &StatusError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordUpstream(path, false)
		return nil, fmt.Errorf("read body: %w", err)
	}

	c.metrics.RecordUpstream(path, true)
	return body, nil
}
