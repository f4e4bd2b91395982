// Package probe checks whether a generated webserver answers on a URL.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gippityErrors "github.com/harunnryd/gippity/internal/errors"
)

const DefaultTimeout = 10 * time.Second

// StatusCode issues a GET to url and returns the response status code.
// Any non-transport outcome, including 4xx and 5xx, is a successful probe.
func StatusCode(ctx context.Context, client *http.Client, url string) (int, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return 0, gippityErrors.InvalidInput("url is required")
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, gippityErrors.WrapWithCategory(err, "build probe request", gippityErrors.ErrInvalidInput)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, gippityErrors.WrapWithCategory(err, fmt.Sprintf("GET %s", url), gippityErrors.ErrTransport)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	return resp.StatusCode, nil
}
