package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/citylifes/internal/client/cli"
	"github.com/dmitrijs2005/citylifes/internal/client/config"
	"github.com/dmitrijs2005/citylifes/internal/flagx"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	args := flagx.Positional(os.Args[1:], append([]string{"-c", "-config"}, config.Flags...))
	if err := app.Run(context.Background(), args); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		log.Fatalf("%v", err)
	}
}
