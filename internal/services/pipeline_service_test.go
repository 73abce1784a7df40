package services

import (
	"testing"
	"time"

	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipelineFixture(t *testing.T) (PipelineService, *fakeApplicationRepo, *models.Application) {
	t.Helper()
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo(jobRepo)

	job := &models.Job{EmployerID: "employer-1", Title: "Backend", Status: models.JobStatusOpen}
	require.NoError(t, jobRepo.Create(job))

	app := &models.Application{
		JobID:       job.ID,
		CandidateID: "candidate-1",
		Status:      models.ApplicationStatusApplied,
	}
	require.NoError(t, appRepo.Create(app))

	return NewPipelineService(appRepo), appRepo, app
}

func TestTransition_UpdatesStatusAndRecordsEvent(t *testing.T) {
	svc, appRepo, app := newPipelineFixture(t)

	updated, err := svc.Transition(app.ID, "employer-1", &dto.TransitionRequest{
		Status:  models.ApplicationStatusShortlisted,
		Message: "looks promising",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusShortlisted, updated.Status)

	// Мутация статуса и ее событие аудита приходят вместе
	events := appRepo.eventsFor(app.ID)
	require.Len(t, events, 1)
	assert.Equal(t, models.TimelineEventStatusChanged, events[0].Type)
	assert.Equal(t, models.ApplicationStatusApplied, events[0].FromStatus)
	assert.Equal(t, models.ApplicationStatusShortlisted, events[0].ToStatus)
	assert.Equal(t, "looks promising", events[0].Message)
	assert.Equal(t, "employer-1", events[0].ActorID)
}

func TestTransition_ForeignApplicationLooksMissing(t *testing.T) {
	svc, appRepo, app := newPipelineFixture(t)

	_, err := svc.Transition(app.ID, "employer-2", &dto.TransitionRequest{
		Status: models.ApplicationStatusShortlisted,
	})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)

	// Чужая попытка не оставляет следов
	assert.Empty(t, appRepo.eventsFor(app.ID))
	assert.Equal(t, models.ApplicationStatusApplied, appRepo.apps[app.ID].Status)
}

func TestTransition_UnknownStatusRejected(t *testing.T) {
	svc, _, app := newPipelineFixture(t)

	_, err := svc.Transition(app.ID, "employer-1", &dto.TransitionRequest{
		Status: models.ApplicationStatus("on_hold"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)
}

func TestTransition_WithdrawnIsCandidateOnly(t *testing.T) {
	svc, _, app := newPipelineFixture(t)

	_, err := svc.Transition(app.ID, "employer-1", &dto.TransitionRequest{
		Status: models.ApplicationStatusWithdrawn,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)
}

func TestTransition_InterviewRequiresTime(t *testing.T) {
	svc, _, app := newPipelineFixture(t)

	_, err := svc.Transition(app.ID, "employer-1", &dto.TransitionRequest{
		Status: models.ApplicationStatusInterviewScheduled,
	})
	assert.ErrorIs(t, err, apperrors.ErrInterviewTimeRequired)
}

func TestTransition_LegacyStatusNormalized(t *testing.T) {
	svc, appRepo, app := newPipelineFixture(t)

	interviewAt := time.Now().Add(48 * time.Hour)
	updated, err := svc.Transition(app.ID, "employer-1", &dto.TransitionRequest{
		Status:          models.ApplicationStatus("interview"),
		NextInterviewAt: &interviewAt,
	})
	require.NoError(t, err)

	// Легаси-значение приведено к каноническому словарю
	assert.Equal(t, models.ApplicationStatusInterviewScheduled, updated.Status)
	require.NotNil(t, updated.NextInterviewAt)

	events := appRepo.eventsFor(app.ID)
	require.Len(t, events, 1)
	assert.Equal(t, models.TimelineEventInterviewScheduled, events[0].Type)
}

func TestTransition_WithdrawnApplicationNotMovable(t *testing.T) {
	svc, appRepo, app := newPipelineFixture(t)

	appRepo.apps[app.ID].Status = models.ApplicationStatusWithdrawn

	_, err := svc.Transition(app.ID, "employer-1", &dto.TransitionRequest{
		Status: models.ApplicationStatusRejected,
	})
	assert.ErrorIs(t, err, apperrors.ErrNoActiveApplication)
}

func TestTimeline_VisibleToBothSides(t *testing.T) {
	svc, _, app := newPipelineFixture(t)

	_, err := svc.Transition(app.ID, "employer-1", &dto.TransitionRequest{
		Status: models.ApplicationStatusShortlisted,
	})
	require.NoError(t, err)

	employerView, err := svc.Timeline(app.ID, "employer-1", models.UserRoleEmployer)
	require.NoError(t, err)
	assert.Len(t, employerView, 1)

	candidateView, err := svc.Timeline(app.ID, "candidate-1", models.UserRoleCandidate)
	require.NoError(t, err)
	assert.Len(t, candidateView, 1)
}

func TestTimeline_ForeignViewerGetsNotFound(t *testing.T) {
	svc, _, app := newPipelineFixture(t)

	_, err := svc.Timeline(app.ID, "candidate-2", models.UserRoleCandidate)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
