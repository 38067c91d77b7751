package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the Postgres instance behind dsn. TranslateError is on
// so unique-constraint violations surface as gorm.ErrDuplicatedKey and
// can be mapped to ErrDuplicateVote without driver-specific error codes.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema and seeds the current_team
// singleton row. FK constraints with ON DELETE CASCADE own referential
// integrity; the application never deletes dependents explicitly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Nomination{},
		&Team{},
		&JudgeScore{},
		&SpectatorScore{},
		&CurrentTeam{},
		&JudgeAuth{},
		&AdminAuth{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	seed := CurrentTeam{ID: 1}
	if err := db.FirstOrCreate(&seed, CurrentTeam{ID: 1}).Error; err != nil {
		return fmt.Errorf("failed to seed current_team row: %w", err)
	}
	return nil
}
