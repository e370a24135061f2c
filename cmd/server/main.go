package main

import (
	"context"
	"log"
	"os"

	"github.com/XVDel0Saint/fameconnect/internal/buildinfo"
	"github.com/XVDel0Saint/fameconnect/internal/server"
	"github.com/XVDel0Saint/fameconnect/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
