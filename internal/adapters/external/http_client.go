// Package external provides adapters for upstream services.
// These adapters implement ports for geocoding, climate data, language models and caching.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

const defaultUpstreamTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes a 200 response into target.
// Every failure is an ExternalAPIError naming the upstream.
func getJSON(ctx context.Context, client HTTPClient, endpoint, upstream string, logger ports.Logger, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to build %s request", upstream), redactURLError(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to call %s", upstream), redactURLError(err))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body", ports.F("upstream", upstream), ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return errors.NewExternalAPIError(fmt.Sprintf("%s returned status %d", upstream, resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewExternalAPIError(fmt.Sprintf("failed to decode %s response", upstream), err)
	}
	return nil
}

// redactURLError drops the query string from a transport error, since it carries API keys
func redactURLError(err error) error {
	var urlErr *url.Error
	if !stderrors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL), Err: urlErr.Err}
}

func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}
	parsed.RawQuery = ""
	parsed.User = nil
	parsed.Fragment = ""
	return parsed.String()
}
