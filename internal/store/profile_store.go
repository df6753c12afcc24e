package store

import (
	"errors"

	"jobboard/internal/models"

	"gorm.io/gorm"
)

type ProfileStore struct {
	DB *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{DB: db}
}

type SeekerProfileFields struct {
	Headline   string
	Skills     string
	Experience string
	Education  string
	Location   string
	// Empty means "keep whatever resume is already on file".
	ResumePath string
}

type EmployerProfileFields struct {
	CompanyName string
	Website     string
	Location    string
	Description string
}

func (s *ProfileStore) GetSeekerProfile(userID uint) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertSeekerProfile inserts the profile on first write and overwrites its
// fields afterwards. One row per user, guaranteed by the unique index on
// user_id.
func (s *ProfileStore) UpsertSeekerProfile(userID uint, f SeekerProfileFields) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	err := s.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.JobSeekerProfile{
			UserID:     userID,
			Headline:   f.Headline,
			Skills:     f.Skills,
			Experience: f.Experience,
			Education:  f.Education,
			Location:   f.Location,
			ResumePath: f.ResumePath,
		}
		if err := s.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"headline":   f.Headline,
		"skills":     f.Skills,
		"experience": f.Experience,
		"education":  f.Education,
		"location":   f.Location,
	}
	if f.ResumePath != "" {
		updates["resume_path"] = f.ResumePath
	}
	if err := s.DB.Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileStore) GetEmployerProfile(userID uint) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertEmployerProfile mirrors UpsertSeekerProfile for the employer side.
func (s *ProfileStore) UpsertEmployerProfile(userID uint, f EmployerProfileFields) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := s.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.EmployerProfile{
			UserID:      userID,
			CompanyName: f.CompanyName,
			Website:     f.Website,
			Location:    f.Location,
			Description: f.Description,
		}
		if err := s.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"company_name": f.CompanyName,
		"website":      f.Website,
		"location":     f.Location,
		"description":  f.Description,
	}
	if err := s.DB.Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
