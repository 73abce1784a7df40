package services

import (
	"testing"

	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobFixture() (JobService, *fakeJobRepo) {
	jobRepo := newFakeJobRepo()
	return NewJobService(jobRepo), jobRepo
}

func TestCreateJob_StartsAsDraft(t *testing.T) {
	svc, _ := newJobFixture()

	job, err := svc.Create("employer-1", &dto.CreateJobRequest{
		Title: "Go developer",
		Tags:  []string{"go", "postgres"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusDraft, job.Status)
	assert.Equal(t, []string{"go", "postgres"}, job.Tags)
}

func TestUpdateJob_ForeignJobLooksMissing(t *testing.T) {
	svc, _ := newJobFixture()

	job, err := svc.Create("employer-1", &dto.CreateJobRequest{Title: "Go developer"})
	require.NoError(t, err)

	newTitle := "Rust developer"
	_, err = svc.Update(job.ID, "employer-2", &dto.UpdateJobRequest{Title: &newTitle})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateJobStatus_UnknownStatus(t *testing.T) {
	svc, _ := newJobFixture()

	job, err := svc.Create("employer-1", &dto.CreateJobRequest{Title: "Go developer"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(job.ID, "employer-1", &dto.UpdateJobStatusRequest{
		Status: models.JobStatus("archived"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidJobStatus)
}

func TestGetPublic_DraftInvisible(t *testing.T) {
	svc, _ := newJobFixture()

	job, err := svc.Create("employer-1", &dto.CreateJobRequest{Title: "Go developer"})
	require.NoError(t, err)

	// Черновик наружу не отдается
	_, err = svc.GetPublic(job.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)

	// После публикации - отдается
	_, err = svc.UpdateStatus(job.ID, "employer-1", &dto.UpdateJobStatusRequest{Status: models.JobStatusOpen})
	require.NoError(t, err)

	got, err := svc.GetPublic(job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
}

func TestBrowse_OnlyOpenJobs(t *testing.T) {
	svc, _ := newJobFixture()

	draft, err := svc.Create("employer-1", &dto.CreateJobRequest{Title: "Draft"})
	require.NoError(t, err)
	open, err := svc.Create("employer-1", &dto.CreateJobRequest{Title: "Open"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(open.ID, "employer-1", &dto.UpdateJobStatusRequest{Status: models.JobStatusOpen})
	require.NoError(t, err)

	list, err := svc.Browse(&dto.BrowseJobsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Jobs, 1)
	assert.Equal(t, open.ID, list.Jobs[0].ID)
	assert.NotEqual(t, draft.ID, list.Jobs[0].ID)
}
