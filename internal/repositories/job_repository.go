package repositories

import (
	"errors"

	"jobdesk_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter - предикатный фильтр публичного списка вакансий
type JobFilter struct {
	Title    string
	Location string
	Page     int
	PageSize int
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindOwned(id, employerID string) (*models.Job, error)
	Update(job *models.Job) error
	// DeleteCascade удаляет вакансию вместе с ее откликами,
	// событиями таймлайна и закладками в одной транзакции.
	DeleteCascade(id string) error
	ListByEmployer(employerID string, page, pageSize int) ([]models.Job, int64, error)
	ListOpen(filter JobFilter) ([]models.Job, int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindOwned ищет вакансию в зоне владения работодателя.
// Чужая вакансия неотличима от несуществующей.
func (r *JobRepositoryImpl) FindOwned(id, employerID string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ? AND employer_id = ?", id, employerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TimelineEvent{},
			"application_id IN (?)",
			tx.Model(&models.Application{}).Select("id").Where("job_id = ?", id),
		).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Application{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.SavedJob{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, "id = ?", id).Error
	})
}

func (r *JobRepositoryImpl) ListByEmployer(employerID string, page, pageSize int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.Model(&models.Job{}).Where("employer_id = ?", employerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *JobRepositoryImpl) ListOpen(filter JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.Model(&models.Job{}).Where("status = ?", models.JobStatusOpen)
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}
