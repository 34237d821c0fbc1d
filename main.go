// @title Sofreh Salawat API
// @version 1.0
// @description Backend for collective salawat campaigns.

// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"sofreh_salawat_backend/internal/app"
	"sofreh_salawat_backend/internal/config"
	"sofreh_salawat_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if cfg.MigrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
