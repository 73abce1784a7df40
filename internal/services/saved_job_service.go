package services

import (
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/repositories"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"
)

type SavedJobService interface {
	// Save идемпотентно добавляет вакансию в закладки кандидата
	Save(candidateID, jobID string) error
	// Unsave убирает закладку; отсутствующая закладка - не ошибка
	Unsave(candidateID, jobID string) error
	List(candidateID string) ([]dto.SavedJobResponse, error)
}

type SavedJobServiceImpl struct {
	savedJobRepo repositories.SavedJobRepository
	jobRepo      repositories.JobRepository
}

func NewSavedJobService(savedJobRepo repositories.SavedJobRepository, jobRepo repositories.JobRepository) SavedJobService {
	return &SavedJobServiceImpl{
		savedJobRepo: savedJobRepo,
		jobRepo:      jobRepo,
	}
}

func (s *SavedJobServiceImpl) Save(candidateID, jobID string) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if job.Status == models.JobStatusDraft {
		return apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	if err := s.savedJobRepo.Save(&models.SavedJob{
		CandidateID: candidateID,
		JobID:       jobID,
	}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SavedJobServiceImpl) Unsave(candidateID, jobID string) error {
	if err := s.savedJobRepo.Delete(candidateID, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SavedJobServiceImpl) List(candidateID string) ([]dto.SavedJobResponse, error) {
	saved, err := s.savedJobRepo.ListByCandidate(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.SavedJobResponse, 0, len(saved))
	for i := range saved {
		item := dto.SavedJobResponse{
			JobID:   saved[i].JobID,
			SavedAt: saved[i].CreatedAt,
		}
		if saved[i].Job != nil {
			job := toJobResponse(saved[i].Job)
			item.Job = &job
		}
		out = append(out, item)
	}
	return out, nil
}
