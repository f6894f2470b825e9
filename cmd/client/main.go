package main

import (
	"context"
	"log"
	"os"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/buildinfo"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/cli"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
