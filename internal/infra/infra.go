// Package infra provides shared HTTP infrastructure for the API providers.
package infra

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// DefaultTimeout bounds every upstream request. The pricing APIs are
// third-party; a hung request must not hang the whole process.
const DefaultTimeout = 10 * time.Second

// HTTPClient is the pre-configured client shared by all providers.
// Proxy settings are honoured via the default transport.
var HTTPClient = &http.Client{
	Timeout: DefaultTimeout,
}

// SetTimeout overrides the shared client timeout (from config).
func SetTimeout(d time.Duration) {
	if d > 0 {
		HTTPClient.Timeout = d
	}
}

var debug bool

// SetDebug enables per-request logging. Off by default.
func SetDebug(on bool) { debug = on }

// ErrHTTP wraps a non-2xx response with status code and a body excerpt.
type ErrHTTP struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, e.Status, e.Body)
}

// DoGet performs a GET request with the given URL and headers, returning the
// response body. The caller is responsible for closing the returned
// ReadCloser. Transport failures and timeouts come back wrapped; status
// codes >= 400 come back as *ErrHTTP.
func DoGet(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if debug {
		log.Printf("GET %s", url)
	}
	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("HTTP GET %s: %w", url, err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, resp.StatusCode, &ErrHTTP{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	return resp.Body, resp.StatusCode, nil
}
