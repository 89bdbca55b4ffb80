// Package events reads the public event list that the remote-refresh
// examples display. The source is a single unauthenticated GET endpoint
// answering with a JSON array of objects carrying at least a Name field.
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/nutshell/internal/ctxlog"
	"github.com/vk/nutshell/internal/unit"
	"resty.dev/v3"
)

// DefaultURL is the event source used by the talk.
const DefaultURL = "https://events.surabayajs.org"

// Client fetches the event list. It is safe for concurrent use.
type Client struct {
	url  string
	http *resty.Client
}

// NewClient creates a client for url. A zero timeout leaves requests
// unbounded, so a hung source keeps the unit loading.
func NewClient(url string, timeout time.Duration) *Client {
	c := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{url: url, http: c}
}

// Fetch implements unit.Fetcher. Every failure is reported as a
// *unit.FetchError.
func (c *Client) Fetch(ctx context.Context) (unit.DataSet, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Fetching events.", "url", c.url)

	var ds unit.DataSet
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&ds).
		SetForceResponseContentType("application/json").
		Get(c.url)
	if err != nil {
		return nil, &unit.FetchError{URL: c.url, Err: err}
	}
	if resp.IsError() {
		return nil, &unit.FetchError{URL: c.url, Status: resp.StatusCode(), Err: errors.New(resp.Status())}
	}
	if ds == nil {
		return nil, &unit.FetchError{URL: c.url, Status: resp.StatusCode(), Err: fmt.Errorf("response is not a JSON event list")}
	}

	logger.Debug("Fetched events.", "url", c.url, "count", len(ds))
	return ds, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}
