package store

import (
	"strings"
	"time"

	"jobboard/internal/models"

	"gorm.io/gorm"
)

type JobStore struct {
	DB *gorm.DB
}

func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{DB: db}
}

// JobFilters are all optional and combine with AND. Query and Location match
// by substring, JobType and ExperienceLevel exactly.
type JobFilters struct {
	Query           string
	Location        string
	JobType         string
	ExperienceLevel string
}

type JobFields struct {
	Title           string
	Description     string
	Location        string
	JobType         string
	ExperienceLevel string
	SalaryRange     string
	Tags            string
}

// JobUpdate carries the fields of an edit; nil means "leave unchanged".
type JobUpdate struct {
	Title           *string
	Description     *string
	Location        *string
	JobType         *string
	ExperienceLevel *string
	SalaryRange     *string
	Tags            *string
}

// JobWithStats is a job row annotated with its application count, for the
// employer dashboard.
type JobWithStats struct {
	ID              uint      `json:"id"`
	EmployerID      uint      `json:"employer_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	SalaryRange     string    `json:"salary_range"`
	Tags            string    `json:"tags"`
	Views           uint      `json:"views"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Applications    int64     `json:"applications"`
}

// Search returns jobs matching the filters, newest first. The free-text term
// is matched case-insensitively against title, description and tags; LOWER()
// keeps the behavior identical across Postgres and SQLite.
func (s *JobStore) Search(f JobFilters) ([]models.Job, error) {
	q := s.DB.Model(&models.Job{})

	if f.Query != "" {
		term := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?", term, term, term)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.JobType != "" {
		q = q.Where("job_type = ?", f.JobType)
	}
	if f.ExperienceLevel != "" {
		q = q.Where("experience_level = ?", f.ExperienceLevel)
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobStore) Create(employerID uint, f JobFields) (*models.Job, error) {
	job := &models.Job{
		EmployerID:      employerID,
		Title:           f.Title,
		Description:     f.Description,
		Location:        f.Location,
		JobType:         f.JobType,
		ExperienceLevel: f.ExperienceLevel,
		SalaryRange:     f.SalaryRange,
		Tags:            f.Tags,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobStore) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// IncrementViews bumps the view counter by exactly one and returns the
// updated job. UpdateColumn keeps updated_at untouched: a page view is not
// an edit.
func (s *JobStore) IncrementViews(id uint) (*models.Job, error) {
	res := s.DB.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(id)
}

// Update applies the provided fields to a job the caller owns. Existence is
// checked before ownership, so a missing job is always ErrNotFound.
func (s *JobStore) Update(id, employerID uint, u JobUpdate) (*models.Job, error) {
	job, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.Location != nil {
		updates["location"] = *u.Location
	}
	if u.JobType != nil {
		updates["job_type"] = *u.JobType
	}
	if u.ExperienceLevel != nil {
		updates["experience_level"] = *u.ExperienceLevel
	}
	if u.SalaryRange != nil {
		updates["salary_range"] = *u.SalaryRange
	}
	if u.Tags != nil {
		updates["tags"] = *u.Tags
	}
	if len(updates) == 0 {
		return job, nil
	}

	if err := s.DB.Model(job).Updates(updates).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a job the caller owns; its applications go with it via the
// cascading foreign key.
func (s *JobStore) Delete(id, employerID uint) error {
	job, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if job.EmployerID != employerID {
		return ErrForbidden
	}
	return s.DB.Delete(job).Error
}

// ListByEmployerWithStats returns the employer's jobs, newest first, each
// with its total application count.
func (s *JobStore) ListByEmployerWithStats(employerID uint) ([]JobWithStats, error) {
	var jobs []JobWithStats
	err := s.DB.Model(&models.Job{}).
		Select("jobs.*, COUNT(applications.id) AS applications").
		Joins("LEFT JOIN applications ON applications.job_id = jobs.id").
		Where("jobs.employer_id = ?", employerID).
		Group("jobs.id").
		Order("jobs.created_at DESC").
		Scan(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
