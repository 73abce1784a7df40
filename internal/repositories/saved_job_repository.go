package repositories

import (
	"errors"

	"jobdesk_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedJobRepository interface {
	// Save идемпотентен: дубликат пары (candidate_id, job_id)
	// молча игнорируется на уровне хранилища (ON CONFLICT DO NOTHING).
	Save(savedJob *models.SavedJob) error
	// Delete безусловен: удаление несуществующей закладки - no-op
	Delete(candidateID, jobID string) error
	ListByCandidate(candidateID string) ([]models.SavedJob, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

func (r *SavedJobRepositoryImpl) Save(savedJob *models.SavedJob) error {
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(savedJob).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *SavedJobRepositoryImpl) Delete(candidateID, jobID string) error {
	return r.db.Delete(&models.SavedJob{},
		"candidate_id = ? AND job_id = ?", candidateID, jobID).Error
}

func (r *SavedJobRepositoryImpl) ListByCandidate(candidateID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	return saved, nil
}
