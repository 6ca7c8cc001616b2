// Package db implements the domain repositories on top of GORM. Postgres is
// the production engine; a local sqlite file serves as the fallback when no
// DATABASE_URL is configured, and in-memory sqlite backs the tests.
package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the relational store. A non-empty databaseURL selects
// postgres, otherwise the sqlite file at sqlitePath is used. TranslateError
// lets unique-key collisions surface as gorm.ErrDuplicatedKey on both
// engines.
func Connect(databaseURL, sqlitePath string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), cfg)
	}
	return gorm.Open(sqlite.Open(sqlitePath+"?_fk=1"), cfg)
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&CategoryModel{},
		&UserModel{},
		&MemoModel{},
		&InvoiceModel{},
	)
}

// DefaultCategories is the reference data seeded once at startup.
var DefaultCategories = []string{"Wholesale", "Designer", "Individual", "Other"}

// SeedCategories inserts the default categories that are not present yet.
// Existing rows are left untouched, so the call is safe on every boot.
func SeedCategories(conn *gorm.DB) error {
	for _, name := range DefaultCategories {
		var count int64
		if err := conn.Model(&CategoryModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := conn.Create(&CategoryModel{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
