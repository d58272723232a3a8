package app

import (
	"github.com/guttosm/container-order-service/config"
	"github.com/guttosm/container-order-service/internal/logger"
	"github.com/rs/zerolog/log"
)

// InitializeLogger configures the global logger from cfg.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
	log.Debug().Str("level", logger.ParseLevel(cfg.Level).String()).Msg("Logger initialized")
}
