package geocoding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/citylifes/internal/geo"
)

const DefaultGoogleURL = "https://maps.googleapis.com"

// ErrNoAPIKey is returned by NewGoogle when no key is configured.
var ErrNoAPIKey = errors.New("google maps api key not configured")

// Google queries the Google Maps Geocoding API.
type Google struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGoogle(baseURL, apiKey string, client *http.Client) (*Google, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultGoogleURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Google{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, client: client}, nil
}

func (g *Google) Name() string { return "google" }

type googleComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type googleResult struct {
	FormattedAddress  string            `json:"formatted_address"`
	AddressComponents []googleComponent `json:"address_components"`
}

type googleResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Results      []googleResult `json:"results"`
}

func (r googleResult) component(kind string) string {
	for _, c := range r.AddressComponents {
		if slices.Contains(c.Types, kind) {
			return c.LongName
		}
	}
	return ""
}

func (g *Google) Reverse(ctx context.Context, lat, lng float64) (*geo.GeocodeResult, error) {
	q := url.Values{
		"latlng": {strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)},
		"key":    {g.apiKey},
	}

	var resp googleResponse
	if err := getJSON(ctx, g.client, g.baseURL+"/maps/api/geocode/json?"+q.Encode(), nil, &resp); err != nil {
		// the request URL carries the key; keep it out of the error
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("google: %w", err)
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, fmt.Errorf("google: status %s: %s", resp.Status, resp.ErrorMessage)
	}

	if len(resp.Results) == 0 {
		return nil, nil
	}

	r := resp.Results[0]
	return &geo.GeocodeResult{
		City:             firstNonEmpty(r.component("locality"), r.component("administrative_area_level_2")),
		Area:             firstNonEmpty(r.component("sublocality"), r.component("neighborhood")),
		PostalCode:       r.component("postal_code"),
		Region:           r.component("administrative_area_level_1"),
		FormattedAddress: r.FormattedAddress,
	}, nil
}
