package services

import (
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/repositories"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"
)

type ApplicationService interface {
	// Apply создает отклик или реактивирует отозванный.
	// Инвариант: не более одной строки на пару (job, candidate).
	Apply(candidateID, jobID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)

	// Withdraw отзывает активный отклик кандидата
	Withdraw(applicationID, candidateID string) (*dto.ApplicationResponse, error)

	ListMy(candidateID string, page, pageSize int) (*dto.MyApplicationsResponse, error)
	ListForJob(jobID, employerID string) ([]dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo     repositories.ApplicationRepository
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

func (s *ApplicationServiceImpl) Apply(candidateID, jobID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	switch job.Status {
	case models.JobStatusOpen:
		// принимает отклики
	case models.JobStatusDraft:
		// черновик снаружи не существует
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	default:
		return nil, apperrors.ErrJobNotOpen
	}

	resumeURL := req.ResumeURL
	if resumeURL == "" {
		if profile, err := s.profileRepo.FindCandidateProfile(candidateID); err == nil {
			resumeURL = profile.ResumeURL
		}
	}

	existing, err := s.appRepo.FindByJobAndCandidate(jobID, candidateID)
	switch {
	case err == nil && existing.IsActive():
		return nil, apperrors.ErrAlreadyApplied

	case err == nil:
		// Отозванный отклик реактивируется на месте, дубликат не создается
		return s.reactivate(existing, candidateID, resumeURL, req.CoverLetter)

	case !apperrors.Is(err, repositories.ErrApplicationNotFound):
		return nil, apperrors.InternalError(err)
	}

	app := &models.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		Status:      models.ApplicationStatusApplied,
		Step:        models.StepApplicationReceived,
		ResumeURL:   resumeURL,
		CoverLetter: req.CoverLetter,
	}

	event := &models.TimelineEvent{
		Type:     models.TimelineEventStatusChanged,
		ToStatus: models.ApplicationStatusApplied,
		Message:  models.StepApplicationReceived,
		ActorID:  candidateID,
	}
	if err := s.appRepo.CreateWithEvent(app, event); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			// Конкурентный двойной сабмит: второго писателя отсек индекс
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationServiceImpl) reactivate(app *models.Application, candidateID, resumeURL, coverLetter string) (*dto.ApplicationResponse, error) {
	fromStatus := app.Status

	app.Status = models.ApplicationStatusApplied
	app.Step = models.StepApplicationResubmitted
	app.NextInterviewAt = nil
	if resumeURL != "" {
		app.ResumeURL = resumeURL
	}
	if coverLetter != "" {
		app.CoverLetter = coverLetter
	}

	event := &models.TimelineEvent{
		ApplicationID: app.ID,
		Type:          models.TimelineEventStatusChanged,
		FromStatus:    fromStatus,
		ToStatus:      models.ApplicationStatusApplied,
		Message:       models.StepApplicationResubmitted,
		ActorID:       candidateID,
	}

	if err := s.appRepo.UpdateStatusWithEvent(app, event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationServiceImpl) Withdraw(applicationID, candidateID string) (*dto.ApplicationResponse, error) {
	app, err := s.appRepo.FindOwnedByCandidate(applicationID, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNoActiveApplication
		}
		return nil, apperrors.InternalError(err)
	}

	if !app.IsActive() {
		return nil, apperrors.ErrNoActiveApplication
	}

	fromStatus := app.Status
	app.Status = models.ApplicationStatusWithdrawn
	app.Step = models.StepApplicationWithdrawn
	app.NextInterviewAt = nil

	event := &models.TimelineEvent{
		ApplicationID: app.ID,
		Type:          models.TimelineEventStatusChanged,
		FromStatus:    fromStatus,
		ToStatus:      models.ApplicationStatusWithdrawn,
		Message:       models.StepApplicationWithdrawn,
		ActorID:       candidateID,
	}

	if err := s.appRepo.UpdateStatusWithEvent(app, event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationServiceImpl) ListMy(candidateID string, page, pageSize int) (*dto.MyApplicationsResponse, error) {
	apps, total, err := s.appRepo.ListByCandidate(candidateID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rawStats, err := s.appRepo.StatsByCandidate(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Легаси-значения статусов схлопываются в канонические
	stats := make(map[string]int64, len(rawStats))
	for status, count := range rawStats {
		stats[string(models.NormalizeStatus(status))] += count
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationResponse(&apps[i]))
	}

	return &dto.MyApplicationsResponse{
		Applications: out,
		Stats:        stats,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

func (s *ApplicationServiceImpl) ListForJob(jobID, employerID string) ([]dto.ApplicationResponse, error) {
	// Доступ к откликам идет через владение вакансией
	if _, err := s.jobRepo.FindOwned(jobID, employerID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	apps, err := s.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationResponse(&apps[i]))
	}
	return out, nil
}
