package repositories

import (
	"errors"

	"jobdesk_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	CreateCandidateProfile(profile *models.CandidateProfile) error
	FindCandidateProfile(userID string) (*models.CandidateProfile, error)
	UpdateCandidateProfile(profile *models.CandidateProfile) error

	CreateEmployerProfile(profile *models.EmployerProfile) error
	FindEmployerProfile(userID string) (*models.EmployerProfile, error)
	UpdateEmployerProfile(profile *models.EmployerProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateCandidateProfile(profile *models.CandidateProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindCandidateProfile(userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCandidateProfile(profile *models.CandidateProfile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) CreateEmployerProfile(profile *models.EmployerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindEmployerProfile(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateEmployerProfile(profile *models.EmployerProfile) error {
	return r.db.Save(profile).Error
}
