// Package quote fetches latest market prices from the Yahoo Finance chart
// endpoint. It implements the two-number contract the core expects: latest
// price and previous close per ticker.
package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/cenkalti/backoff/v4"
)

// DefaultBaseURL is the public Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches quotes over HTTP with a small retry budget. The zero value
// is not usable; use New.
type Client struct {
	base   string
	client *http.Client
}

// New returns a client for the given base URL, defaulting to Yahoo's public
// host when empty.
func New(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base:   base,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Latest returns the latest traded price and the previous close for ticker.
// Transient failures are retried a few times with exponential backoff; a 4xx
// status or an unparseable body fails immediately.
func (c *Client) Latest(ctx context.Context, ticker string) (price, previousClose float64, err error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.base, url.PathEscape(ticker))

	var jobj any
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	err = backoff.Retry(func() error { return c.jwget(addr, &jobj) }, policy)
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("error retrieving %q: %w", ticker, err)
	}

	price, err = jfloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return math.NaN(), math.NaN(), fmt.Errorf("error parsing %q: %w", ticker, err)
	}
	// Yahoo exposes the previous close under either name depending on the
	// instrument; a missing close is tolerable, a missing price is not.
	previousClose, err = jfloat(jobj, "$.chart.result[0].meta.regularMarketPreviousClose")
	if err != nil {
		previousClose, err = jfloat(jobj, "$.chart.result[0].meta.chartPreviousClose")
	}
	if err != nil {
		previousClose = 0
	}
	return price, previousClose, nil
}

// jwget GETs addr and unmarshals the JSON body into data.
func (c *Client) jwget(addr string, data any) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	// Yahoo rejects requests without a browser-ish user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; pfc/1.0)")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return backoff.Permanent(fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status))
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return backoff.Permanent(err)
	}
	return nil
}

// jfloat extracts a float64 at path from a decoded JSON document.
func jfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("%q: %w", path, err)
	}
	// jsonpath sometimes wraps a single answer in a list; keep the first.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("%q: not a number: %v", path, jval)
	}
	return val, nil
}
