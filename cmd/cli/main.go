package main

import (
	"context"
	"log"
	"os"

	"github.com/XVDel0Saint/fameconnect/internal/buildinfo"
	"github.com/XVDel0Saint/fameconnect/internal/client/cli"
	"github.com/XVDel0Saint/fameconnect/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
