package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/citylifes/internal/flagx"
)

var serverFlags = []string{"-a", "-d", "-s", "-u", "-p", "-b", "-g", "-e", "-n", "-k", "-t", "-o", "-m", "-l"}

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-n string   NATS URL
//	-k string   Google Maps API key
//	-t int      geocode timeout, seconds
//	-o string   sponsored ordering (auto, newest_first)
//	-m bool     accept legacy message keys (use -m=false to disable)
//	-l string   log format (json, text, zerolog)
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.NATSURL, "n", config.NATSURL, "NATS URL")
	fs.StringVar(&config.GoogleMapsAPIKey, "k", config.GoogleMapsAPIKey, "Google Maps API key")
	geocodeTimeout := fs.Int("t", int(config.GeocodeTimeout.Seconds()), "geocode timeout (in seconds)")
	fs.StringVar(&config.SponsoredOrdering, "o", config.SponsoredOrdering, "sponsored ordering")
	fs.BoolVar(&config.LegacyMessageKeys, "m", config.LegacyMessageKeys, "accept legacy message keys")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.GeocodeTimeout = time.Duration(*geocodeTimeout) * time.Second
}
