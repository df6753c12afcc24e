package database

import (
	"os"
	"path/filepath"
	"testing"

	"jobboard/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sampleDump = `{
  "users": [
    {"id": 1, "name": "Alice", "email": "alice@example.com", "password_hash": "h1", "role": "JOB_SEEKER", "created_at": "2024-01-01T10:00:00Z"},
    {"id": 2, "name": "Bob", "email": "bob@example.com", "password_hash": "h2", "role": "EMPLOYER", "created_at": "2024-01-02T10:00:00Z"}
  ],
  "jobSeekerProfiles": [
    {"id": 1, "user_id": 1, "headline": "Gopher", "skills": "Go", "created_at": "2024-01-01T11:00:00Z", "updated_at": "2024-01-01T11:00:00Z"}
  ],
  "employerProfiles": [
    {"id": 1, "user_id": 2, "company_name": "Acme", "created_at": "2024-01-02T11:00:00Z", "updated_at": "2024-01-02T11:00:00Z"}
  ],
  "jobs": [
    {"id": 1, "employer_id": 2, "title": "Backend Engineer", "description": "Go services", "views": 7, "created_at": "2024-01-03T10:00:00Z", "updated_at": "2024-01-03T10:00:00Z"}
  ],
  "applications": [
    {"id": 1, "job_id": 1, "seeker_id": 1, "status": "REVIEWING", "cover_letter": "hi", "created_at": "2024-01-04T10:00:00Z", "updated_at": "2024-01-04T10:00:00Z"}
  ]
}`

func legacyTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
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

func TestImportLegacyData(t *testing.T) {
	db := legacyTestDB(t)
	path := filepath.Join(t.TempDir(), "data.json")
	assert.NoError(t, os.WriteFile(path, []byte(sampleDump), 0o644))

	assert.NoError(t, ImportLegacyData(db, path))

	var users, jobs, apps int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Job{}).Count(&jobs)
	db.Model(&models.Application{}).Count(&apps)
	assert.EqualValues(t, 2, users)
	assert.EqualValues(t, 1, jobs)
	assert.EqualValues(t, 1, apps)

	var job models.Job
	assert.NoError(t, db.First(&job, 1).Error)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.EqualValues(t, 7, job.Views)

	var app models.Application
	assert.NoError(t, db.First(&app, 1).Error)
	assert.Equal(t, "REVIEWING", app.Status)

	// The dump is marked consumed.
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(path + ".backup")
	assert.NoError(t, err)
}

func TestImportLegacyData_MissingFileIsNoop(t *testing.T) {
	db := legacyTestDB(t)
	assert.NoError(t, ImportLegacyData(db, filepath.Join(t.TempDir(), "absent.json")))

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Zero(t, users)
}

func TestImportLegacyData_ConflictingRowsSkipped(t *testing.T) {
	db := legacyTestDB(t)

	// Simulate a user that already migrated.
	assert.NoError(t, db.Create(&models.User{
		ID: 1, Name: "Existing Alice", Email: "alice@example.com",
		PasswordHash: "h0", Role: models.RoleJobSeeker,
	}).Error)

	path := filepath.Join(t.TempDir(), "data.json")
	assert.NoError(t, os.WriteFile(path, []byte(sampleDump), 0o644))
	assert.NoError(t, ImportLegacyData(db, path))

	// The existing row wins; the rest of the dump still lands.
	var alice models.User
	assert.NoError(t, db.First(&alice, 1).Error)
	assert.Equal(t, "Existing Alice", alice.Name)

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.EqualValues(t, 2, users)
}

func TestImportLegacyData_BadJSON(t *testing.T) {
	db := legacyTestDB(t)
	path := filepath.Join(t.TempDir(), "data.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Error(t, ImportLegacyData(db, path))

	// A failed import leaves the dump in place for a later retry.
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
