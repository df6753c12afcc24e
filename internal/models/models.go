package models

import "time"

// User roles. A user is exactly one of these for its whole lifetime.
const (
	RoleJobSeeker = "JOB_SEEKER"
	RoleEmployer  = "EMPLOYER"
)

// Application statuses. New applications always start as APPLIED.
const (
	StatusApplied   = "APPLIED"
	StatusReviewing = "REVIEWING"
	StatusAccepted  = "ACCEPTED"
	StatusRejected  = "REJECTED"
)

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Never serialized; login compares against it server-side only.
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type JobSeekerProfile struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User       User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Headline   string `json:"headline"`
	Skills     string `json:"skills"`
	Experience string `gorm:"type:text" json:"experience"`
	Education  string `gorm:"type:text" json:"education"`
	Location   string `json:"location"`
	// Path under /uploads, not file bytes. The file itself lives on disk.
	ResumePath string    `json:"resume_path"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type EmployerProfile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CompanyName string    `gorm:"not null" json:"company_name"`
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Job struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	EmployerID      uint   `gorm:"not null;index" json:"employer_id"`
	Employer        User   `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`
	Title           string `gorm:"not null" json:"title"`
	Description     string `gorm:"type:text;not null" json:"description"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	SalaryRange     string `json:"salary_range"`
	// Free text, comma separated. Searched by substring together with title
	// and description.
	Tags      string    `json:"tags"`
	Views     uint      `gorm:"not null;default:0" json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// One application per (job, seeker) pair, enforced at the schema level so
	// concurrent duplicate submissions cannot slip past the pre-insert check.
	JobID       uint      `gorm:"not null;uniqueIndex:idx_job_seeker" json:"job_id"`
	Job         Job       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SeekerID    uint      `gorm:"not null;uniqueIndex:idx_job_seeker" json:"seeker_id"`
	Seeker      User      `gorm:"foreignKey:SeekerID;constraint:OnDelete:CASCADE" json:"-"`
	Status      string    `gorm:"not null;default:'APPLIED'" json:"status"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidStatus reports whether s is one of the allowed application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusReviewing, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// ValidRole reports whether r is a known user role.
func ValidRole(r string) bool {
	return r == RoleJobSeeker || r == RoleEmployer
}
