// Package nationalize is a client for the nationalize.io name-nationality API.
package nationalize

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abstract-333/name-origin-api/internal/nameorigin/models"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/providers"
)

const (
	ProviderID     = "nationalize"
	DefaultBaseURL = "https://api.nationalize.io"

	maxBodyBytes = 1 << 20
)

type response struct {
	Count   int    `json:"count"`
	Name    string `json:"name"`
	Country []struct {
		CountryID   string  `json:"country_id"`
		Probability float64 `json:"probability"`
	} `json:"country"`
}

// Client implements providers.NameOriginProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client. Its Timeout applies per request.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns the provider's candidates in provider order. No match,
// including the 400/404/204 answers nationalize gives for names it rejects,
// is an empty result.
func (c *Client) Resolve(ctx context.Context, name models.Name) ([]models.Candidate, error) {
	endpoint := c.baseURL + "/?" + url.Values{"name": {name.String()}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorInternal, ProviderID, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.FromTransport(ProviderID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent, http.StatusBadRequest, http.StatusNotFound:
		return []models.Candidate{}, nil
	default:
		return nil, providers.FromStatus(ProviderID, resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID, "decode response", err)
	}
	return toCandidates(name, body)
}

func toCandidates(name models.Name, body response) ([]models.Candidate, error) {
	count, err := models.NewCountOfRequests(body.Count)
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID, "invalid count", err)
	}
	out := make([]models.Candidate, 0, len(body.Country))
	for _, entry := range body.Country {
		code, err := models.NormalizeCountryCode(entry.CountryID)
		if err != nil {
			return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID, "invalid country id", err)
		}
		p, err := models.NewProbability(entry.Probability)
		if err != nil {
			return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID,
				fmt.Sprintf("invalid probability for %s", code), err)
		}
		out = append(out, models.Candidate{
			Name:            name,
			CountryCode:     code,
			Probability:     p,
			CountOfRequests: count,
		})
	}
	return out, nil
}
