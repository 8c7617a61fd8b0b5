package main

import (
	"context"
	"log"
	"os"

	"github.com/docuseek/docuseek/internal/buildinfo"
	"github.com/docuseek/docuseek/internal/client/cli"
	"github.com/docuseek/docuseek/internal/client/config"
	"github.com/docuseek/docuseek/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
