package main

import (
	"log"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/bootstrap"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/config"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/server"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
