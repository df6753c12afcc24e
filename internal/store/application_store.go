package store

import (
	"errors"
	"time"

	"jobboard/internal/models"

	"gorm.io/gorm"
)

type ApplicationStore struct {
	DB *gorm.DB
}

func NewApplicationStore(db *gorm.DB) *ApplicationStore {
	return &ApplicationStore{DB: db}
}

// SeekerApplication is an application joined with the job it targets, for
// the seeker's dashboard.
type SeekerApplication struct {
	ID          uint      `json:"id"`
	JobID       uint      `json:"job_id"`
	SeekerID    uint      `json:"seeker_id"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"cover_letter"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	JobTitle    string    `json:"job_title"`
	JobLocation string    `json:"job_location"`
}

// JobApplicant is an application joined with the applicant's account and,
// when one exists, their seeker profile.
type JobApplicant struct {
	ID          uint      `json:"id"`
	JobID       uint      `json:"job_id"`
	SeekerID    uint      `json:"seeker_id"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"cover_letter"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	SeekerName  string    `json:"seeker_name"`
	SeekerEmail string    `json:"seeker_email"`
	Headline    string    `json:"headline"`
	Skills      string    `json:"skills"`
	ResumePath  string    `json:"resume_path"`
}

// Create records an application with the default APPLIED status. The
// pre-insert check answers the common duplicate case; the unique index on
// (job_id, seeker_id) catches the race where two submissions pass the check
// concurrently, and both paths report ErrAlreadyApplied.
func (s *ApplicationStore) Create(seekerID, jobID uint, coverLetter string) (*models.Application, error) {
	var count int64
	err := s.DB.Model(&models.Application{}).
		Where("job_id = ? AND seeker_id = ?", jobID, seekerID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyApplied
	}

	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		return nil, err
	}

	app := &models.Application{
		JobID:       jobID,
		SeekerID:    seekerID,
		Status:      models.StatusApplied,
		CoverLetter: coverLetter,
	}
	if err := s.DB.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return app, nil
}

// ListForSeeker returns the seeker's applications, newest first, each with
// the title and location of the job applied to.
func (s *ApplicationStore) ListForSeeker(seekerID uint) ([]SeekerApplication, error) {
	var apps []SeekerApplication
	err := s.DB.Model(&models.Application{}).
		Select("applications.*, jobs.title AS job_title, jobs.location AS job_location").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.seeker_id = ?", seekerID).
		Order("applications.created_at DESC").
		Scan(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ListForJob returns the applications for a job the caller owns, newest
// first. The seeker profile join is optional: applicants without a profile
// appear with empty profile fields.
func (s *ApplicationStore) ListForJob(jobID, employerID uint) ([]JobApplicant, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, ErrForbidden
	}

	var apps []JobApplicant
	err := s.DB.Model(&models.Application{}).
		Select(`applications.*, users.name AS seeker_name, users.email AS seeker_email,
			COALESCE(job_seeker_profiles.headline, '') AS headline,
			COALESCE(job_seeker_profiles.skills, '') AS skills,
			COALESCE(job_seeker_profiles.resume_path, '') AS resume_path`).
		Joins("JOIN users ON users.id = applications.seeker_id").
		Joins("LEFT JOIN job_seeker_profiles ON job_seeker_profiles.user_id = users.id").
		Where("applications.job_id = ?", jobID).
		Order("applications.created_at DESC").
		Scan(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus overwrites an application's status. Ownership is resolved
// through the job: only the employer who posted it may change the status.
func (s *ApplicationStore) UpdateStatus(applicationID, employerID uint, status string) (*models.Application, error) {
	var app models.Application
	if err := s.DB.First(&app, applicationID).Error; err != nil {
		return nil, err
	}

	var job models.Job
	if err := s.DB.First(&job, app.JobID).Error; err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, ErrForbidden
	}

	if err := s.DB.Model(&app).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &app, nil
}
