// Package routing implements the RouteEstimator port against an external
// driving-ETA provider with a directions-style JSON API. The client is
// bounded by its HTTP timeout; any failure, including an empty result, is
// reported to the caller, who treats it as routing being unavailable.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"aquaflow/internal/core/domain/model/kernel"
	"aquaflow/internal/pkg/errs"
)

// Client calls the external directions provider to estimate driving time
// between two street addresses.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a routing client. baseURL points at the provider's
// directions endpoint; timeout bounds every estimate call.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		return nil, errs.NewValueIsInvalidError("timeout")
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// directionsResponse mirrors the provider's JSON shape. Only the duration of
// the first leg of the first route is consumed.
type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Duration struct {
				Value int64 `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// EstimateTravelTime requests a driving-mode ETA from origin to destination
// leaving at departAt. The returned duration is in whole seconds, as
// delivered by the provider.
func (c *Client) EstimateTravelTime(ctx context.Context, origin, destination kernel.Address, departAt time.Time) (time.Duration, error) {
	if err := origin.Validate(); err != nil {
		return 0, err
	}
	if err := destination.Validate(); err != nil {
		return 0, err
	}

	query := url.Values{}
	query.Set("origin", origin.String())
	query.Set("destination", destination.String())
	query.Set("mode", "driving")
	query.Set("departure_time", strconv.FormatInt(departAt.Unix(), 10))
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("directions provider returned status %d", resp.StatusCode)
	}

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		return 0, fmt.Errorf("decode directions response: %w", err)
	}

	if len(directions.Routes) == 0 || len(directions.Routes[0].Legs) == 0 {
		return 0, fmt.Errorf("directions provider returned no route (status %q)", directions.Status)
	}

	seconds := directions.Routes[0].Legs[0].Duration.Value
	if seconds <= 0 {
		return 0, fmt.Errorf("directions provider returned invalid duration %d", seconds)
	}

	return time.Duration(seconds) * time.Second, nil
}
