// Package restcountries is a client for the REST Countries v3.1 API.
package restcountries

import (
	"bytes"
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
	"github.com/abstract-333/name-origin-api/pkg/platform/sentinel"
	"github.com/abstract-333/name-origin-api/pkg/requestcontext"
)

const (
	ProviderID     = "restcountries"
	DefaultBaseURL = "https://restcountries.com/v3.1"

	maxBodyBytes = 8 << 20
)

// /all refuses requests without a field projection (at most 10 fields).
var listFields = strings.Join([]string{
	"cca2", "name", "region", "subregion", "independent",
	"capital", "capitalInfo", "flags", "coatOfArms", "borders",
}, ",")

type country struct {
	CCA2 string `json:"cca2"`
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Region      string   `json:"region"`
	Subregion   string   `json:"subregion"`
	Independent *bool    `json:"independent"`
	Capital     []string `json:"capital"`
	CapitalInfo struct {
		LatLng []float64 `json:"latlng"`
	} `json:"capitalInfo"`
	Flags struct {
		PNG string  `json:"png"`
		SVG string  `json:"svg"`
		Alt *string `json:"alt"`
	} `json:"flags"`
	CoatOfArms struct {
		PNG *string `json:"png"`
		SVG *string `json:"svg"`
	} `json:"coatOfArms"`
	Borders []string `json:"borders"`
}

// Client implements providers.CountryProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

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

// ResolveByCode fetches one country. An unknown code, reported upstream as
// 404 or an empty array, returns sentinel.ErrNotFound.
func (c *Client) ResolveByCode(ctx context.Context, code string) (*models.Country, error) {
	body, found, err := c.get(ctx, "/alpha/"+url.PathEscape(code))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("country %s: %w", code, sentinel.ErrNotFound)
	}

	entries, err := decodeCountries(body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("country %s: %w", code, sentinel.ErrNotFound)
	}
	return toModel(entries[0], requestcontext.Now(ctx))
}

// ListAll fetches every country the API knows.
func (c *Client) ListAll(ctx context.Context) ([]*models.Country, error) {
	body, found, err := c.get(ctx, "/all?"+url.Values{"fields": {listFields}}.Encode())
	if err != nil {
		return nil, err
	}
	if !found {
		return []*models.Country{}, nil
	}

	entries, err := decodeCountries(body)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	out := make([]*models.Country, 0, len(entries))
	for _, entry := range entries {
		m, err := toModel(entry, now)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, false, providers.NewProviderError(providers.ErrorInternal, ProviderID, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, providers.FromTransport(ProviderID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, false, nil
	default:
		return nil, false, providers.FromStatus(ProviderID, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, false, providers.FromTransport(ProviderID, err)
	}
	return body, true, nil
}

// decodeCountries accepts either an array or, as the API returns when a
// field projection is applied to a single lookup, a bare object.
func decodeCountries(body []byte) ([]country, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '{' {
		var one country
		if err := json.Unmarshal(body, &one); err != nil {
			return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID, "decode response", err)
		}
		return []country{one}, nil
	}
	var many []country
	if err := json.Unmarshal(body, &many); err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID, "decode response", err)
	}
	return many, nil
}

func toModel(c country, now time.Time) (*models.Country, error) {
	var latlng *models.LatLng
	if len(c.CapitalInfo.LatLng) == 2 {
		latlng = &models.LatLng{Lat: c.CapitalInfo.LatLng[0], Lng: c.CapitalInfo.LatLng[1]}
	}
	m, err := models.NewCountry(models.Country{
		Code:          c.CCA2,
		CommonName:    c.Name.Common,
		OfficialName:  c.Name.Official,
		Region:        c.Region,
		SubRegion:     c.Subregion,
		Independent:   c.Independent,
		Capitals:      c.Capital,
		CapitalLatLng: latlng,
		FlagPNG:       c.Flags.PNG,
		FlagSVG:       c.Flags.SVG,
		FlagAlt:       c.Flags.Alt,
		CoatOfArmsPNG: c.CoatOfArms.PNG,
		CoatOfArmsSVG: c.CoatOfArms.SVG,
		Borders:       c.Borders,
	}, now)
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, ProviderID,
			fmt.Sprintf("invalid country %q", c.CCA2), err)
	}
	return m, nil
}
