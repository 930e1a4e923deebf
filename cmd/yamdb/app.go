package main

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/config"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/i18n"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/logging"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/persistence/gormdb"
)

// app agrupa o que todos os comandos precisam
type app struct {
	cfg    *config.Config
	logger ports.Logger
	db     *gorm.DB
}

func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := gormdb.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// loadTranslations usa I18N_LOCALES_DIR quando definido, senão os catálogos embutidos
func loadTranslations(cfg *config.Config) (*i18n.Service, error) {
	if dir := cfg.I18n.LocalesDir; dir != "" {
		return i18n.NewService(dir, cfg.I18n.DefaultLanguage)
	}
	return i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
}
