package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sportsmate/sportsmate-api/internal/api"
	"github.com/sportsmate/sportsmate-api/internal/config"
	"github.com/sportsmate/sportsmate-api/internal/db"
	"github.com/sportsmate/sportsmate-api/internal/logger"
)

const defaultConfigPath = "cmd/app/config.yml"

func Start() {
	conf, err := config.Load(defaultConfigPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init(conf.API.Environment)
	if err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	gormDB, err := openDB(conf)
	if err != nil {
		zap.L().Fatal("failed to open database", zap.Error(err))
	}

	srv := api.NewServer(conf, gormDB)

	addr := ":" + conf.API.Port
	zap.L().Info("starting server", zap.String("addr", addr), zap.String("environment", conf.API.Environment))

	if err = srv.Router.Run(addr); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}

// openDB prefers DATABASE_URL when present, the shape hosting platforms
// provide, and falls back to the structured postgres config.
func openDB(conf *config.AppConfig) (*gorm.DB, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return db.OpenPostgresWithURL(url)
	}

	return db.OpenPostgres(conf.Postgres)
}
