package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/tinct/internal/models"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = "file::memory:"

// Catalog is the color resource store behind explicit widget overrides.
type Catalog struct {
	db *gorm.DB
}

// Open sets up the database connection and runs migrations
func Open(dbPath string) (*Catalog, error) {
	if dbPath != MemoryPath {
		// Ensure the directory exists
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		// gorm hands back the handle even when initialization fails
		closeDB(db)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if dbPath == MemoryPath {
		// every pooled connection would otherwise get its own empty database
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	c := &Catalog{db: db}
	if err := c.runMigrations(); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return c, nil
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// runMigrations creates/updates the database schema
func (c *Catalog) runMigrations() error {
	return c.db.AutoMigrate(&models.ColorResource{})
}

// Close closes the database connection
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
