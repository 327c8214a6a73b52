package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/citylifes/internal/geo"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	defaultUserAgent    = "Citylifes App"
)

// Nominatim queries an OpenStreetMap Nominatim instance.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatim(baseURL string, client *http.Client) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Nominatim{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: defaultUserAgent,
		client:    client,
	}
}

func (n *Nominatim) Name() string { return "nominatim" }

type nominatimAddress struct {
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	Municipality  string `json:"municipality"`
	County        string `json:"county"`
	Suburb        string `json:"suburb"`
	Neighbourhood string `json:"neighbourhood"`
	Hamlet        string `json:"hamlet"`
	Locality      string `json:"locality"`
	Postcode      string `json:"postcode"`
	State         string `json:"state"`
}

type nominatimResponse struct {
	DisplayName string            `json:"display_name"`
	Address     *nominatimAddress `json:"address"`
}

func (n *Nominatim) Reverse(ctx context.Context, lat, lng float64) (*geo.GeocodeResult, error) {
	q := url.Values{
		"format":         {"json"},
		"lat":            {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(lng, 'f', -1, 64)},
		"addressdetails": {"1"},
	}

	var resp nominatimResponse
	err := getJSON(ctx, n.client, n.baseURL+"/reverse?"+q.Encode(), http.Header{"User-Agent": {n.userAgent}}, &resp)
	if err != nil {
		return nil, fmt.Errorf("nominatim: %w", err)
	}

	// points at sea come back as {"error": "Unable to geocode"}
	if resp.Address == nil {
		return nil, nil
	}

	a := resp.Address
	return &geo.GeocodeResult{
		City:             firstNonEmpty(a.City, a.Town, a.Village, a.Municipality, a.County),
		Area:             firstNonEmpty(a.Suburb, a.Neighbourhood, a.Hamlet, a.Locality),
		PostalCode:       a.Postcode,
		Region:           a.State,
		FormattedAddress: resp.DisplayName,
	}, nil
}
