package services

import (
	"errors"
	"testing"

	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationFixture() (ApplicationService, *fakeApplicationRepo, *fakeJobRepo, *fakeProfileRepo) {
	jobRepo := newFakeJobRepo()
	appRepo := newFakeApplicationRepo(jobRepo)
	profileRepo := newFakeProfileRepo()
	svc := NewApplicationService(appRepo, jobRepo, profileRepo)
	return svc, appRepo, jobRepo, profileRepo
}

func openJob(t *testing.T, jobRepo *fakeJobRepo, employerID string) *models.Job {
	t.Helper()
	job := &models.Job{
		EmployerID: employerID,
		Title:      "Go developer",
		Status:     models.JobStatusOpen,
	}
	require.NoError(t, jobRepo.Create(job))
	return job
}

func TestApply_CreatesApplication(t *testing.T) {
	svc, appRepo, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")

	app, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{CoverLetter: "hi"})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.Equal(t, models.StepApplicationReceived, app.Step)
	assert.Equal(t, "hi", app.CoverLetter)

	// Подача отклика оставляет след в хронологии
	events := appRepo.eventsFor(app.ID)
	require.Len(t, events, 1)
	assert.Equal(t, models.TimelineEventStatusChanged, events[0].Type)
	assert.Equal(t, models.ApplicationStatusApplied, events[0].ToStatus)
}

func TestApply_SecondActiveApplicationRejected(t *testing.T) {
	svc, appRepo, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")

	_, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	// Строка осталась одна
	assert.Len(t, appRepo.apps, 1)
}

func TestApply_ReactivatesWithdrawnInPlace(t *testing.T) {
	svc, appRepo, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")

	first, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{ResumeURL: "/files/cv-v1.pdf"})
	require.NoError(t, err)

	_, err = svc.Withdraw(first.ID, "candidate-1")
	require.NoError(t, err)

	second, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{
		CoverLetter: "take two",
		ResumeURL:   "/files/cv-v2.pdf",
	})
	require.NoError(t, err)

	// Тот же ID: отозванный отклик реактивирован, а не продублирован
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.ApplicationStatusApplied, second.Status)
	assert.Equal(t, models.StepApplicationResubmitted, second.Step)
	assert.Equal(t, "/files/cv-v2.pdf", second.ResumeURL)
	assert.Len(t, appRepo.apps, 1)
}

func TestApply_FailedWriteLeavesNoRow(t *testing.T) {
	svc, appRepo, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")

	appRepo.eventErr = errors.New("connection reset")
	_, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	require.Error(t, err)

	// Сорвавшаяся запись не оставляет частичного состояния
	assert.Empty(t, appRepo.apps)
	assert.Empty(t, appRepo.events)

	// Повтор после восстановления проходит, а не упирается в конфликт
	appRepo.eventErr = nil
	app, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)
	assert.Len(t, appRepo.eventsFor(app.ID), 1)
}

func TestApply_ClosedJobRejected(t *testing.T) {
	svc, _, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")
	job.Status = models.JobStatusClosed

	_, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrJobNotOpen)
}

func TestApply_DraftJobLooksMissing(t *testing.T) {
	svc, _, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")
	job.Status = models.JobStatusDraft

	_, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestApply_ResumeFallsBackToProfile(t *testing.T) {
	svc, _, jobRepo, profileRepo := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")

	require.NoError(t, profileRepo.CreateCandidateProfile(&models.CandidateProfile{
		UserID:    "candidate-1",
		Name:      "Аида",
		ResumeURL: "/files/resumes/candidate-1/cv.pdf",
	}))

	app, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/files/resumes/candidate-1/cv.pdf", app.ResumeURL)
}

func TestWithdraw_SetsStatusAndStep(t *testing.T) {
	svc, appRepo, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")

	app, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	withdrawn, err := svc.Withdraw(app.ID, "candidate-1")
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusWithdrawn, withdrawn.Status)
	assert.Equal(t, models.StepApplicationWithdrawn, withdrawn.Step)

	events := appRepo.eventsFor(app.ID)
	require.Len(t, events, 2)
	assert.Equal(t, models.ApplicationStatusWithdrawn, events[1].ToStatus)
}

func TestWithdraw_TwiceFails(t *testing.T) {
	svc, _, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")

	app, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = svc.Withdraw(app.ID, "candidate-1")
	require.NoError(t, err)

	_, err = svc.Withdraw(app.ID, "candidate-1")
	assert.ErrorIs(t, err, apperrors.ErrNoActiveApplication)
}

func TestWithdraw_ForeignApplicationLooksMissing(t *testing.T) {
	svc, _, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")

	app, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	// Чужой кандидат получает тот же ответ, что и для несуществующего отклика
	_, err = svc.Withdraw(app.ID, "candidate-2")
	assert.ErrorIs(t, err, apperrors.ErrNoActiveApplication)
}

func TestListMy_NormalizesLegacyStatsKeys(t *testing.T) {
	svc, appRepo, jobRepo, _ := newApplicationFixture()
	job := openJob(t, jobRepo, "employer-1")
	job2 := openJob(t, jobRepo, "employer-1")

	_, err := svc.Apply("candidate-1", job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	// Строка со статусом старого словаря, оставшаяся от прежней системы
	require.NoError(t, appRepo.Create(&models.Application{
		JobID:       job2.ID,
		CandidateID: "candidate-1",
		Status:      models.ApplicationStatus("screening"),
	}))

	list, err := svc.ListMy("candidate-1", 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(1), list.Stats["applied"])
	assert.Equal(t, int64(1), list.Stats["shortlisted"])
	_, hasLegacy := list.Stats["screening"]
	assert.False(t, hasLegacy)
}
