package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/citylifes/internal/client/client"
	"github.com/dmitrijs2005/citylifes/internal/client/config"
)

// ErrUsage is returned for unknown commands and malformed arguments.
var ErrUsage = errors.New("usage error")

type App struct {
	config *config.Config
	api    client.Client
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c)
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: apiClient, out: os.Stdout}, nil
}

// Run executes the command named by args[0] and closes the connection.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.api.Close()

	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	if args[0] == "help" {
		a.usage()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintln(a.out, "Unknown command:", args[0])
		a.usage()
		return ErrUsage
	}

	if len(args)-1 < cmd.minArgs {
		fmt.Fprintf(a.out, "Usage: %s %s\n", args[0], cmd.usage)
		return ErrUsage
	}

	result, err := cmd.run(ctx, a, args[1:])
	if err != nil {
		return err
	}
	return a.print(result)
}

func (a *App) print(v any) error {
	if v == nil {
		return nil
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
