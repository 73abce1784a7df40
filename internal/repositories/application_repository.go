package repositories

import (
	"errors"
	"time"

	"jobdesk_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and candidate")
)

// AggregationRow - одна строка выборки для агрегации кандидатов:
// отклик + вакансия + атрибуты профиля кандидата.
type AggregationRow struct {
	ApplicationID   string
	JobID           string
	CandidateID     string
	CandidateName   string
	Status          models.ApplicationStatus
	CreatedAt       time.Time
	NextInterviewAt *time.Time
	Skills          datatypes.JSON
}

type ApplicationRepository interface {
	Create(app *models.Application) error

	// CreateWithEvent вставляет отклик и его первое событие аудита
	// в одной транзакции: неудавшаяся запись не оставляет строки.
	CreateWithEvent(app *models.Application, event *models.TimelineEvent) error

	Update(app *models.Application) error

	// FindByJobAndCandidate возвращает строку пары в любом статусе
	FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error)

	// Ownership-scoped выборки: промах и чужая сущность неразличимы
	FindOwnedByCandidate(id, candidateID string) (*models.Application, error)
	FindOwnedByEmployer(id, employerID string) (*models.Application, error)

	ListByCandidate(candidateID string, page, pageSize int) ([]models.Application, int64, error)
	StatsByCandidate(candidateID string) (map[models.ApplicationStatus]int64, error)
	ListByJob(jobID string) ([]models.Application, error)

	// UpdateStatusWithEvent фиксирует мутацию статуса и ее событие аудита
	// в одной транзакции: либо коммитятся оба, либо ни одного.
	UpdateStatusWithEvent(app *models.Application, event *models.TimelineEvent) error

	ListTimeline(applicationID string) ([]models.TimelineEvent, error)

	// AggregationRows отдает все строки (отклик x вакансия x профиль)
	// по вакансиям работодателя для сводки по кандидатам.
	AggregationRows(employerID string) ([]AggregationRow, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	err := r.db.Create(app).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Составной индекс (job_id, candidate_id) отсек второго конкурентного писателя
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) CreateWithEvent(app *models.Application, event *models.TimelineEvent) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		event.ApplicationID = app.ID
		return tx.Create(event).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) Update(app *models.Application) error {
	return r.db.Save(app).Error
}

func (r *ApplicationRepositoryImpl) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "job_id = ? AND candidate_id = ?", jobID, candidateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindOwnedByCandidate(id, candidateID string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Job").
		First(&app, "id = ? AND candidate_id = ?", id, candidateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindOwnedByEmployer ищет отклик через вакансии работодателя:
// владение транзитивно (работодатель -> его вакансии -> их отклики).
func (r *ApplicationRepositoryImpl) FindOwnedByEmployer(id, employerID string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Job").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.id = ? AND jobs.employer_id = ?", id, employerID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByCandidate(candidateID string, page, pageSize int) ([]models.Application, int64, error) {
	var apps []models.Application
	var total int64

	query := r.db.Model(&models.Application{}).Where("candidate_id = ?", candidateID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *ApplicationRepositoryImpl) StatsByCandidate(candidateID string) (map[models.ApplicationStatus]int64, error) {
	var rows []struct {
		Status models.ApplicationStatus
		Count  int64
	}
	err := r.db.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Where("candidate_id = ?", candidateID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[models.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		stats[row.Status] = row.Count
	}
	return stats, nil
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatusWithEvent(app *models.Application, event *models.TimelineEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(app).Error; err != nil {
			return err
		}
		return tx.Create(event).Error
	})
}

func (r *ApplicationRepositoryImpl) ListTimeline(applicationID string) ([]models.TimelineEvent, error) {
	var events []models.TimelineEvent
	err := r.db.Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *ApplicationRepositoryImpl) AggregationRows(employerID string) ([]AggregationRow, error) {
	var rows []AggregationRow
	err := r.db.Model(&models.Application{}).
		Select(`applications.id AS application_id,
			applications.job_id,
			applications.candidate_id,
			applications.status,
			applications.created_at,
			applications.next_interview_at,
			candidate_profiles.name AS candidate_name,
			candidate_profiles.skills`).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("LEFT JOIN candidate_profiles ON candidate_profiles.user_id = applications.candidate_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
