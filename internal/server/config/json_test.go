package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc":   "www.example:9000",
		"database_dsn":         "postgres://db/citylifes",
		"secret_key":           "my_secret_key",
		"s3_root_user":         "user",
		"s3_root_password":     "password",
		"s3_bucket":            "bucket",
		"s3_region":            "region",
		"s3_base_endpoint":     "base_endpoint",
		"nats_url":             "nats://127.0.0.1:4222",
		"event_subject_prefix": "staging",
		"nominatim_url":        "http://nominatim.local",
		"google_maps_url":      "http://google.local",
		"google_maps_api_key":  "maps-key",
		"geocode_timeout":      "5s",
		"geocode_cache_size":   100,
		"geocode_cache_ttl":    "1h",
		"sponsored_ordering":   "newest_first",
		"legacy_message_keys":  false,
		"log_format":           "zerolog",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := defaults()
		parseJson(cfg)

		assert.Equal(t, &Config{
			EndpointAddrGRPC:   "www.example:9000",
			DatabaseDSN:        "postgres://db/citylifes",
			SecretKey:          "my_secret_key",
			S3RootUser:         "user",
			S3RootPassword:     "password",
			S3Bucket:           "bucket",
			S3Region:           "region",
			S3BaseEndpoint:     "base_endpoint",
			NATSURL:            "nats://127.0.0.1:4222",
			EventSubjectPrefix: "staging",
			NominatimURL:       "http://nominatim.local",
			GoogleMapsURL:      "http://google.local",
			GoogleMapsAPIKey:   "maps-key",
			GeocodeTimeout:     5 * time.Second,
			GeocodeCacheSize:   100,
			GeocodeCacheTTL:    time.Hour,
			SponsoredOrdering:  "newest_first",
			LegacyMessageKeys:  false,
			LogFormat:          "zerolog",
		}, cfg)
	})

	t.Run("missing keys keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"secret_key":         "rotated",
			"geocode_cache_size": 0,
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := defaults()
		parseJson(cfg)

		want := defaults()
		want.SecretKey = "rotated"
		want.GeocodeCacheSize = 0
		assert.Equal(t, want, cfg)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := defaults()
		parseJson(cfg)

		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
