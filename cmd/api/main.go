package main

import (
	"log"

	"github.com/shekharkalshetti/interview-pal-backend/internal/bootstrap"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/config"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
