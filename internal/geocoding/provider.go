// Package geocoding turns coordinates into addresses using external
// reverse-geocoding services, with a quantized cache in front of them.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/citylifes/internal/geo"
)

// maxResponseBytes caps how much of a provider response is read.
const maxResponseBytes = 1 << 20

// Provider resolves a coordinate to an address. A nil result with a nil
// error means the provider has no address for the point.
type Provider interface {
	Name() string
	Reverse(ctx context.Context, lat, lng float64) (*geo.GeocodeResult, error)
}

// getJSON performs a GET and decodes a 200 response body into out.
func getJSON(ctx context.Context, client *http.Client, rawURL string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxResponseBytes)

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, body)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
