package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/quickjot/quickjot/internal/server"
	"github.com/quickjot/quickjot/internal/server/config"
)

func main() {

	// Optional .env overlay for local development.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
