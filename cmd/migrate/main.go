// Command migrate applies pending database migrations and exits.
//
// The API binary migrates on startup as well; this command exists for
// running migrations out of band, for example from CI before a deploy.
package main

import (
	"context"
	"os"
	"time"

	"github.com/haleview/clinic-api/internal/config"
	"github.com/haleview/clinic-api/internal/database"
	"github.com/haleview/clinic-api/internal/logger"

	"github.com/rs/zerolog"
)

const migrateTimeout = 60 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}
}
