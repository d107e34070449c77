package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/findash/internal/buildinfo"
	"github.com/dmitrijs2005/findash/internal/client/cli"
	"github.com/dmitrijs2005/findash/internal/client/config"
	"github.com/dmitrijs2005/findash/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
