package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
				"-n", "nats://nats:4222", "-k", "key", "-t", "4", "-o", "newest_first", "-m=false", "-l", "text",
			},
			expected: func() *Config {
				c := defaults()
				c.EndpointAddrGRPC = "127.0.0.1:9090"
				c.DatabaseDSN = "db"
				c.SecretKey = "secret"
				c.S3RootUser = "user"
				c.S3RootPassword = "password"
				c.S3Bucket = "bucket"
				c.S3Region = "us-west-1"
				c.S3BaseEndpoint = "http://endpoint"
				c.NATSURL = "nats://nats:4222"
				c.GoogleMapsAPIKey = "key"
				c.GeocodeTimeout = 4 * time.Second
				c.SponsoredOrdering = "newest_first"
				c.LegacyMessageKeys = false
				c.LogFormat = "text"
				return c
			}(),
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"cmd", "-z", "zzz", "-c", "cfg.json"},
			expected: defaults(),
		},
		{
			name:        "bad int",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := defaults()

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
