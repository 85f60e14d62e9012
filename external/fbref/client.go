// Package fbref downloads published table exports (player and standing CSVs) over HTTP for the importer.
package fbref

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-football/internal/platform/logging"
	"github.com/riskibarqy/fantasy-football/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-football/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultMaxExportSize = 16 << 20

var (
	errTransient = crerr.New("table export transient failure")
	// ErrExportTooLarge is returned instead of a truncated body, which would parse as a short table.
	ErrExportTooLarge = crerr.New("table export exceeds size limit")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// Backoff is the base wait between attempts; attempt n waits n*Backoff.
	Backoff time.Duration
	// MaxExportSize caps the body in bytes. Zero means 16 MiB.
	MaxExportSize int64
}

type Client struct {
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
	maxSize    int64
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	maxSize := cfg.MaxExportSize
	if maxSize <= 0 {
		maxSize = defaultMaxExportSize
	}

	return &Client{
		httpClient: httpClient,
		maxSize:    maxSize,
		maxRetries: maxRetries,
		backoff:    backoff,
		logger:     logger,
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}
}

// IsRemote reports whether source should be fetched with a Client rather than opened from disk.
func IsRemote(source string) bool {
	parsed, err := url.Parse(strings.TrimSpace(source))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// Fetch downloads one export. Connection errors, 429 and 5xx are retried; other statuses fail at once.
func (c *Client) Fetch(ctx context.Context, source string) ([]byte, error) {
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "table export circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: table export host is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err := c.executeRequest(ctx, source)
	if c.breaker != nil {
		if err != nil && stderrors.Is(err, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, source string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "text/csv")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, c.maxSize+1))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				if int64(len(raw)) > c.maxSize {
					return nil, fmt.Errorf("%w: limit=%d bytes", ErrExportTooLarge, c.maxSize)
				}
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: export status=%d", errTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("export status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "table export request failed", "url", redactURL(source), "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// redactURL drops credentials and the query string, which may carry access tokens.
func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "invalid-url"
	}
	parsed.User = nil
	parsed.RawQuery = ""
	return parsed.String()
}
