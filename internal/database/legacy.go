package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"jobboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// legacyDump mirrors the flat-file export this service replaced: one JSON
// document with a list per table, column names matching the schema.
type legacyDump struct {
	Users             []legacyUser        `json:"users"`
	JobSeekerProfiles []legacySeekerProf  `json:"jobSeekerProfiles"`
	EmployerProfiles  []legacyEmployerPro `json:"employerProfiles"`
	Jobs              []legacyJob         `json:"jobs"`
	Applications      []legacyApplication `json:"applications"`
}

type legacyUser struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
}

type legacySeekerProf struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	Headline   string `json:"headline"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Location   string `json:"location"`
	ResumePath string `json:"resume_path"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type legacyEmployerPro struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type legacyJob struct {
	ID              uint   `json:"id"`
	EmployerID      uint   `json:"employer_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	SalaryRange     string `json:"salary_range"`
	Tags            string `json:"tags"`
	Views           uint   `json:"views"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type legacyApplication struct {
	ID          uint   `json:"id"`
	JobID       uint   `json:"job_id"`
	SeekerID    uint   `json:"seeker_id"`
	Status      string `json:"status"`
	CoverLetter string `json:"cover_letter"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ImportLegacyData performs the one-time import of a legacy JSON dump into
// the relational store. Rows that collide with existing data are skipped, so
// a partially imported dump can be retried. On success the source file is
// renamed to <path>.backup and the import never runs again.
//
// The caller logs and ignores any returned error: a broken dump must not
// stop the server from starting.
func ImportLegacyData(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read legacy dump: %w", err)
	}

	var dump legacyDump
	if err := json.Unmarshal(raw, &dump); err != nil {
		return fmt.Errorf("parse legacy dump: %w", err)
	}

	// Fresh clause chain per row: a finished gorm statement must not be
	// reused.
	insertIgnore := func(value interface{}) *gorm.DB {
		return db.Clauses(clause.OnConflict{DoNothing: true}).Create(value)
	}

	imported := 0
	for _, u := range dump.Users {
		res := insertIgnore(&models.User{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Role:         u.Role,
			CreatedAt:    parseLegacyTime(u.CreatedAt),
		})
		if res.Error != nil {
			log.Printf("legacy import: skipping user %s: %v", u.Email, res.Error)
			continue
		}
		imported += int(res.RowsAffected)
	}
	log.Printf("legacy import: %d/%d users", imported, len(dump.Users))

	imported = 0
	for _, p := range dump.JobSeekerProfiles {
		res := insertIgnore(&models.JobSeekerProfile{
			ID:         p.ID,
			UserID:     p.UserID,
			Headline:   p.Headline,
			Skills:     p.Skills,
			Experience: p.Experience,
			Education:  p.Education,
			Location:   p.Location,
			ResumePath: p.ResumePath,
			CreatedAt:  parseLegacyTime(p.CreatedAt),
			UpdatedAt:  parseLegacyTime(p.UpdatedAt),
		})
		if res.Error != nil {
			log.Printf("legacy import: skipping seeker profile for user %d: %v", p.UserID, res.Error)
			continue
		}
		imported += int(res.RowsAffected)
	}
	log.Printf("legacy import: %d/%d seeker profiles", imported, len(dump.JobSeekerProfiles))

	imported = 0
	for _, p := range dump.EmployerProfiles {
		res := insertIgnore(&models.EmployerProfile{
			ID:          p.ID,
			UserID:      p.UserID,
			CompanyName: p.CompanyName,
			Website:     p.Website,
			Location:    p.Location,
			Description: p.Description,
			CreatedAt:   parseLegacyTime(p.CreatedAt),
			UpdatedAt:   parseLegacyTime(p.UpdatedAt),
		})
		if res.Error != nil {
			log.Printf("legacy import: skipping employer profile for user %d: %v", p.UserID, res.Error)
			continue
		}
		imported += int(res.RowsAffected)
	}
	log.Printf("legacy import: %d/%d employer profiles", imported, len(dump.EmployerProfiles))

	imported = 0
	for _, j := range dump.Jobs {
		res := insertIgnore(&models.Job{
			ID:              j.ID,
			EmployerID:      j.EmployerID,
			Title:           j.Title,
			Description:     j.Description,
			Location:        j.Location,
			JobType:         j.JobType,
			ExperienceLevel: j.ExperienceLevel,
			SalaryRange:     j.SalaryRange,
			Tags:            j.Tags,
			Views:           j.Views,
			CreatedAt:       parseLegacyTime(j.CreatedAt),
			UpdatedAt:       parseLegacyTime(j.UpdatedAt),
		})
		if res.Error != nil {
			log.Printf("legacy import: skipping job %d: %v", j.ID, res.Error)
			continue
		}
		imported += int(res.RowsAffected)
	}
	log.Printf("legacy import: %d/%d jobs", imported, len(dump.Jobs))

	imported = 0
	for _, a := range dump.Applications {
		status := a.Status
		if status == "" {
			status = models.StatusApplied
		}
		res := insertIgnore(&models.Application{
			ID:          a.ID,
			JobID:       a.JobID,
			SeekerID:    a.SeekerID,
			Status:      status,
			CoverLetter: a.CoverLetter,
			CreatedAt:   parseLegacyTime(a.CreatedAt),
			UpdatedAt:   parseLegacyTime(a.UpdatedAt),
		})
		if res.Error != nil {
			log.Printf("legacy import: skipping application %d: %v", a.ID, res.Error)
			continue
		}
		imported += int(res.RowsAffected)
	}
	log.Printf("legacy import: %d/%d applications", imported, len(dump.Applications))

	// Marking the dump consumed is what makes the import one-shot. Do it
	// only after every collection was processed.
	if err := os.Rename(path, path+".backup"); err != nil {
		return fmt.Errorf("rename legacy dump: %w", err)
	}
	log.Printf("legacy import complete, dump moved to %s.backup", path)
	return nil
}

// parseLegacyTime handles the RFC3339 timestamps the old export wrote.
// Anything unparseable falls back to the import time.
func parseLegacyTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Now()
}
