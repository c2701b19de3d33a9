package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopadmin/internal/models"
)

const sqlitePrefix = "sqlite:"

// Open connects to the database named by dsn and migrates the schema.
// "sqlite:<path>" selects SQLite (sqlite::memory: for a throwaway database);
// anything else is handed to the postgres driver.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty DSN")
	}

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	if path, ok := strings.CutPrefix(dsn, sqlitePrefix); ok {
		db, err = gorm.Open(sqlite.Open(path), cfg)
		if err == nil {
			// one connection, so :memory: is one database and writes never contend
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.SetMaxOpenConns(1)
			}
		}
	} else {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
