// Command server runs the awards election HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) with environment
// variable overrides; see internal/config.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/pixelaward/goty-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
