package services

import (
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/repositories"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"
)

// PipelineService двигает отклики по воронке найма работодателя.
// Любая мутация статуса проходит здесь и всегда оставляет след в хронологии.
type PipelineService interface {
	// Transition меняет статус отклика. Статус и событие аудита
	// записываются атомарно: либо оба, либо ни одного.
	Transition(applicationID, employerID string, req *dto.TransitionRequest) (*dto.ApplicationResponse, error)

	// Timeline отдает хронологию отклика его участникам
	Timeline(applicationID, userID string, role models.UserRole) ([]dto.TimelineEventResponse, error)

	// Get отдает отклик работодателю, владеющему вакансией
	Get(applicationID, employerID string) (*dto.ApplicationResponse, error)
}

type PipelineServiceImpl struct {
	appRepo repositories.ApplicationRepository
}

func NewPipelineService(appRepo repositories.ApplicationRepository) PipelineService {
	return &PipelineServiceImpl{appRepo: appRepo}
}

func (s *PipelineServiceImpl) Transition(applicationID, employerID string, req *dto.TransitionRequest) (*dto.ApplicationResponse, error) {
	// Чужой отклик неотличим от несуществующего
	app, err := s.appRepo.FindOwnedByEmployer(applicationID, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	newStatus := models.NormalizeStatus(req.Status)
	if !models.IsValidApplicationStatus(newStatus) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	// Отзыв - прерогатива кандидата, у работодателя для этого есть rejected
	if newStatus == models.ApplicationStatusWithdrawn {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	if !app.IsActive() {
		return nil, apperrors.ErrNoActiveApplication
	}

	// Назначение интервью без времени не имеет смысла
	if newStatus == models.ApplicationStatusInterviewScheduled &&
		req.NextInterviewAt == nil && app.NextInterviewAt == nil {
		return nil, apperrors.ErrInterviewTimeRequired
	}

	fromStatus := app.Status

	app.Status = newStatus
	if req.Step != nil {
		app.Step = *req.Step
	}
	if req.NextInterviewAt != nil {
		app.NextInterviewAt = req.NextInterviewAt
	}

	eventType := models.TimelineEventStatusChanged
	if newStatus == models.ApplicationStatusInterviewScheduled || req.NextInterviewAt != nil {
		eventType = models.TimelineEventInterviewScheduled
	}

	event := &models.TimelineEvent{
		ApplicationID: app.ID,
		Type:          eventType,
		FromStatus:    fromStatus,
		ToStatus:      newStatus,
		Message:       req.Message,
		ActorID:       employerID,
	}

	if err := s.appRepo.UpdateStatusWithEvent(app, event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}

func (s *PipelineServiceImpl) Timeline(applicationID, userID string, role models.UserRole) ([]dto.TimelineEventResponse, error) {
	var err error
	switch role {
	case models.UserRoleEmployer:
		_, err = s.appRepo.FindOwnedByEmployer(applicationID, userID)
	case models.UserRoleCandidate:
		_, err = s.appRepo.FindOwnedByCandidate(applicationID, userID)
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	events, err := s.appRepo.ListTimeline(applicationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.TimelineEventResponse, 0, len(events))
	for i := range events {
		out = append(out, toTimelineEventResponse(&events[i]))
	}
	return out, nil
}

func (s *PipelineServiceImpl) Get(applicationID, employerID string) (*dto.ApplicationResponse, error) {
	app, err := s.appRepo.FindOwnedByEmployer(applicationID, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}
