package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vaice/internal/model"
)

// NormalizeDSN rewrites legacy postgres:// scheme URLs to postgresql://.
// Some hosting providers hand out the short scheme, which not every client
// accepts.
func NormalizeDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
	}
	return dsn
}

// NewPostgres returns a connected GORM DB instance.
func NewPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(NormalizeDSN(dsn)), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all models. Teams go first so
// the hero foreign key has something to reference.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Team{},
		&model.User{},
		&model.Hero{},
	)
}
