package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/citylifes/internal/flagx"
)

// Flags is the list of flags parseFlags consumes. The CLI uses it to tell
// flags apart from its sub-command arguments.
var Flags = []string{"-a", "-t", "-r"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-t string   access token
//	-r int      request timeout in seconds
//
// os.Args is filtered with flagx.FilterArgs first, so sub-command arguments
// do not reach the flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], Flags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "access token")
	requestTimeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
