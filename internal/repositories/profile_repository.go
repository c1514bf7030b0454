package repositories

import (
	"errors"

	"careerlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	// JobSeekerProfile operations
	CreateJobSeekerProfile(db *gorm.DB, profile *models.JobSeekerProfile) error
	FindJobSeekerProfileByUserID(db *gorm.DB, userID string) (*models.JobSeekerProfile, error)

	// RecruiterProfile operations
	CreateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error
	FindRecruiterProfileByUserID(db *gorm.DB, userID string) (*models.RecruiterProfile, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateJobSeekerProfile(db *gorm.DB, profile *models.JobSeekerProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindJobSeekerProfileByUserID(db *gorm.DB, userID string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) CreateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindRecruiterProfileByUserID(db *gorm.DB, userID string) (*models.RecruiterProfile, error) {
	var profile models.RecruiterProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
