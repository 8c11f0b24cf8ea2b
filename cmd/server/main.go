package main

import (
	"context"
	"log"
	"os"

	"tripvault/internal/buildinfo"
	"tripvault/internal/server"
	"tripvault/internal/server/config"
)

func main() {
	buildinfo.Print(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
