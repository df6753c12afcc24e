package database

import (
	"log"

	"jobboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and migrates the schema. AutoMigrate
// is idempotent, so running it on every startup is safe. TranslateError lets
// callers detect unique violations as gorm.ErrDuplicatedKey instead of
// driver-specific error codes.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&models.User{},
		&models.JobSeekerProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
