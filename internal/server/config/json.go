package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/citylifes/internal/flagx"
	"github.com/dmitrijs2005/citylifes/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations accept "10s" style
// strings or integer nanoseconds. Pointer fields distinguish "absent" from
// an explicit zero.
type JsonConfig struct {
	EndpointAddrGRPC   string          `json:"endpoint_addr_grpc"`
	DatabaseDSN        string          `json:"database_dsn"`
	SecretKey          string          `json:"secret_key"`
	S3RootUser         string          `json:"s3_root_user"`
	S3RootPassword     string          `json:"s3_root_password"`
	S3Bucket           string          `json:"s3_bucket"`
	S3Region           string          `json:"s3_region"`
	S3BaseEndpoint     string          `json:"s3_base_endpoint"`
	NATSURL            *string         `json:"nats_url"`
	EventSubjectPrefix string          `json:"event_subject_prefix"`
	NominatimURL       string          `json:"nominatim_url"`
	GoogleMapsURL      string          `json:"google_maps_url"`
	GoogleMapsAPIKey   *string         `json:"google_maps_api_key"`
	GeocodeTimeout     *timex.Duration `json:"geocode_timeout"`
	GeocodeCacheSize   *int            `json:"geocode_cache_size"`
	GeocodeCacheTTL    *timex.Duration `json:"geocode_cache_ttl"`
	SponsoredOrdering  string          `json:"sponsored_ordering"`
	LegacyMessageKeys  *bool           `json:"legacy_message_keys"`
	LogFormat          string          `json:"log_format"`
}

// parseJson loads configuration values from the file named by -c or
// -config into config. Keys missing from the file leave the current value
// untouched. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.EventSubjectPrefix, c.EventSubjectPrefix)
	setString(&config.NominatimURL, c.NominatimURL)
	setString(&config.GoogleMapsURL, c.GoogleMapsURL)
	setString(&config.SponsoredOrdering, c.SponsoredOrdering)
	setString(&config.LogFormat, c.LogFormat)

	if c.NATSURL != nil {
		config.NATSURL = *c.NATSURL
	}
	if c.GoogleMapsAPIKey != nil {
		config.GoogleMapsAPIKey = *c.GoogleMapsAPIKey
	}
	if c.GeocodeTimeout != nil {
		config.GeocodeTimeout = c.GeocodeTimeout.Duration
	}
	if c.GeocodeCacheSize != nil {
		config.GeocodeCacheSize = *c.GeocodeCacheSize
	}
	if c.GeocodeCacheTTL != nil {
		config.GeocodeCacheTTL = c.GeocodeCacheTTL.Duration
	}
	if c.LegacyMessageKeys != nil {
		config.LegacyMessageKeys = *c.LegacyMessageKeys
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
