package classroom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domerrors "github.com/averyhall/classroom-finder-go/internal/errors"
	"github.com/averyhall/classroom-finder-go/internal/metrics"
)

// classroomsEndpoint is the inventory query path appended to the base URL.
const classroomsEndpoint = "/api/classrooms"

// Client queries the backend inventory service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	metrics    *metrics.Metrics
}

// NewClient creates a backend inventory client. The base URL is injected
// rather than read from ambient process state so tests can point it at a
// local server.
func NewClient(baseURL string, timeout time.Duration, maxRetries int, m *metrics.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxRetries: maxRetries,
		metrics:    m,
	}
}

// queryResponse is the backend's envelope.
type queryResponse struct {
	Data []Record `json:"data"`
}

// Query runs an inventory search with the given pre-mapped parameters.
// Returns ErrEmptyResult (wrapped) when the backend matched nothing and
// ErrUpstreamFailure for transport errors, non-2xx statuses, and malformed
// bodies.
func (c *Client) Query(ctx context.Context, params map[string]string) ([]Record, error) {
	wrap := domerrors.NewWrapper("classroom", "query")

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	endpoint := c.baseURL + classroomsEndpoint + "?" + values.Encode()

	start := time.Now()
	body, err := c.getWithRetry(ctx, endpoint)
	if c.metrics != nil {
		c.metrics.BackendDurationSeconds.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.countBackend("error")
		return nil, wrap.Wrap(fmt.Errorf("%w: %w", domerrors.ErrUpstreamFailure, err),
			"Error searching classrooms. Please try again later.")
	}

	var decoded queryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		c.countBackend("error")
		return nil, wrap.Wrap(fmt.Errorf("%w: decode response: %w", domerrors.ErrUpstreamFailure, err),
			"Error searching classrooms. Please try again later.")
	}
	if decoded.Data == nil {
		c.countBackend("error")
		return nil, wrap.Wrap(fmt.Errorf("%w: response missing data field", domerrors.ErrUpstreamFailure),
			"Error searching classrooms. Please try again later.")
	}

	if len(decoded.Data) == 0 {
		c.countBackend("empty")
		return nil, wrap.Wrap(domerrors.ErrEmptyResult,
			"No classrooms found matching your criteria. Try relaxing some constraints.")
	}

	c.countBackend("success")
	return decoded.Data, nil
}

func (c *Client) countBackend(status string) {
	if c.metrics != nil {
		c.metrics.BackendRequestsTotal.WithLabelValues(status).Inc()
	}
}

// getWithRetry performs a GET, retrying transient statuses (429, 5xx) with
// exponential backoff. Client errors are returned immediately.
func (c *Client) getWithRetry(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error
	backoff := 500 * time.Millisecond

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		body, retryable, err := c.getOnce(ctx, endpoint)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, endpoint string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read response: %w", err)
	}
	return body, false, nil
}
