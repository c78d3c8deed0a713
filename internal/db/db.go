package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adstradigital/adinvoice-sub000/internal/models"
)

// ConnectAndMigrate opens the database and applies the GORM migrations.
// A postgres DSN gets a short retry loop so the service survives the
// database starting after it; anything else is treated as a sqlite path.
func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	if isPostgres(dsn) {
		for i := 0; i < 5; i++ {
			db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err == nil {
				break
			}
			log.Warn().Err(err).Int("attempt", i+1).Msg("database connection failed, retrying")
			time.Sleep(2 * time.Second)
		}
	} else {
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.CompanyProfile{},
		&models.ClientCompany{},
		&models.ProductService{},
		&models.Proposal{},
		&models.ProposalItem{},
		&models.Template{},
	); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
