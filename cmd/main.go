// Package main is the entry point for the container-order-service application.
//
// @title           Container Order Service API
// @version         1.0.0
// @description     API for composing export orders into shipping containers.
//
//	Buyers fill one or more containers with product boxes. Every change is checked
//	against the volume and weight ceilings of the container's capacity class and
//	the thermal class of the product.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/container-order-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Orders
// @tag.description Order sessions, payload preview and submission
//
// @tag.name        Containers
// @tag.description Opening, retyping and deleting containers
//
// @tag.name        Items
// @tag.description Adding, adjusting and removing line items
//
// @tag.name        Capacity
// @tag.description Loaded capacity table
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/container-order-service/docs" // swagger docs

	"github.com/guttosm/container-order-service/config"
	"github.com/guttosm/container-order-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := app.NewServer(application.Router, cfg.Server)
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server error")
	}
}
