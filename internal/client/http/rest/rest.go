// Package rest is a small JSON-over-HTTP agent for the catalog backend.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/you-humble/storefront/internal/model"
	"github.com/you-humble/storefront/platform/logger"
)

// maxErrorPayload caps how much of an error body is kept.
const maxErrorPayload = 64 << 10

type Client struct {
	base *url.URL
	http *http.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	const op = "rest.New"

	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: base url %q must be absolute", op, baseURL)
	}

	return &Client{
		base: u,
		http: &http.Client{Timeout: timeout},
	}, nil
}

// Get calls path relative to the base URL and decodes the JSON body into
// out. Non-2xx answers come back as *model.RequestError with the body kept
// as payload. The response headers are returned on success.
func (c *Client) Get(ctx context.Context, op, path string, query url.Values, out any) (http.Header, error) {
	u := c.base.ResolveReference(&url.URL{Path: strings.TrimLeft(path, "/")})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &model.RequestError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn(ctx, "backend call failed",
			logger.String("op", op),
			logger.String("url", u.String()),
			logger.ErrorF(err),
		)
		return nil, &model.RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	logger.Debug(ctx, "backend call",
		logger.String("op", op),
		logger.String("url", u.String()),
		logger.Int("status", resp.StatusCode),
		logger.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorPayload))
		return nil, &model.RequestError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Payload:    payload,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, &model.RequestError{
				Op:         op,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("decode body: %w", err),
			}
		}
	}

	return resp.Header, nil
}
