package services

import (
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/repositories"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"
)

type JobService interface {
	Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetOwned(jobID, employerID string) (*dto.JobResponse, error)
	Update(jobID, employerID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	UpdateStatus(jobID, employerID string, req *dto.UpdateJobStatusRequest) (*dto.JobResponse, error)
	Delete(jobID, employerID string) error
	ListMy(employerID string, page, pageSize int) (*dto.JobListResponse, error)

	// Публичная витрина: только открытые вакансии
	Browse(req *dto.BrowseJobsRequest) (*dto.JobListResponse, error)
	GetPublic(jobID string) (*dto.JobResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		EmployerID:  employerID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Tags:        stringsJSON(req.Tags),
		Status:      models.JobStatusDraft,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) GetOwned(jobID, employerID string) (*dto.JobResponse, error) {
	job, err := s.findOwned(jobID, employerID)
	if err != nil {
		return nil, err
	}
	resp := toJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) Update(jobID, employerID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findOwned(jobID, employerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Tags != nil {
		job.Tags = stringsJSON(req.Tags)
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) UpdateStatus(jobID, employerID string, req *dto.UpdateJobStatusRequest) (*dto.JobResponse, error) {
	if !models.IsValidJobStatus(req.Status) {
		return nil, apperrors.ErrInvalidJobStatus
	}

	job, err := s.findOwned(jobID, employerID)
	if err != nil {
		return nil, err
	}

	job.Status = req.Status
	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) Delete(jobID, employerID string) error {
	job, err := s.findOwned(jobID, employerID)
	if err != nil {
		return err
	}
	if err := s.jobRepo.DeleteCascade(job.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) ListMy(employerID string, page, pageSize int) (*dto.JobListResponse, error) {
	jobs, total, err := s.jobRepo.ListByEmployer(employerID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobList(jobs, total, page, pageSize), nil
}

func (s *JobServiceImpl) Browse(req *dto.BrowseJobsRequest) (*dto.JobListResponse, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	jobs, total, err := s.jobRepo.ListOpen(repositories.JobFilter{
		Title:    req.Title,
		Location: req.Location,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobList(jobs, total, page, pageSize), nil
}

// GetPublic отдает вакансию анониму/кандидату. Черновики и закрытые
// вакансии наружу не видны, для клиента их просто нет.
func (s *JobServiceImpl) GetPublic(jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	resp := toJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) findOwned(jobID, employerID string) (*models.Job, error) {
	job, err := s.jobRepo.FindOwned(jobID, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func buildJobList(jobs []models.Job, total int64, page, pageSize int) *dto.JobListResponse {
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return &dto.JobListResponse{
		Jobs:     out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
