package store

import (
	"testing"
	"time"

	"jobboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database per test. A single connection
// keeps the :memory: database alive and makes the foreign-key pragma stick.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.JobSeekerProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user, err := NewUserStore(db).Create("Test "+role, email, "hash", role)
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedJob(t *testing.T, db *gorm.DB, employerID uint, f JobFields) *models.Job {
	t.Helper()
	job, err := NewJobStore(db).Create(employerID, f)
	if err != nil {
		t.Fatalf("seed job %q: %v", f.Title, err)
	}
	return job
}

// backdateJob pushes a job's creation time into the past so ordering
// assertions do not depend on sub-second timestamp resolution.
func backdateJob(t *testing.T, db *gorm.DB, jobID uint, age time.Duration) {
	t.Helper()
	err := db.Model(&models.Job{}).Where("id = ?", jobID).
		UpdateColumn("created_at", time.Now().Add(-age)).Error
	if err != nil {
		t.Fatalf("backdate job %d: %v", jobID, err)
	}
}
