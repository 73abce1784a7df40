package services

import (
	"context"
	"strings"
	"testing"

	"jobdesk_backend/internal/config"
	"jobdesk_backend/internal/models"
	"jobdesk_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T) (UploadService, *fakeStorage, *fakeProfileRepo) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Upload.MaxResumeSize = 1024
	cfg.Upload.AllowedTypes = []string{"application/pdf"}
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = nil })

	store := newFakeStorage()
	profileRepo := newFakeProfileRepo()
	return NewUploadService(store, profileRepo), store, profileRepo
}

func TestIngestResume_SavesAndUpdatesProfile(t *testing.T) {
	svc, store, profileRepo := newUploadFixture(t)

	require.NoError(t, profileRepo.CreateCandidateProfile(&models.CandidateProfile{
		UserID: "candidate-1",
		Name:   "Данияр",
	}))

	body := "%PDF-1.7 fake"
	result, err := svc.IngestResume(context.Background(), "candidate-1", "cv.pdf", "application/pdf", int64(len(body)), strings.NewReader(body))
	require.NoError(t, err)

	assert.NotEmpty(t, result.URL)
	assert.Equal(t, "cv.pdf", result.FileName)

	// Файл лег под префикс кандидата
	require.Len(t, store.objects, 1)
	for key := range store.objects {
		assert.True(t, strings.HasPrefix(key, "resumes/candidate-1/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
	}

	// Свежее резюме стало резюме профиля
	profile, err := profileRepo.FindCandidateProfile("candidate-1")
	require.NoError(t, err)
	assert.Equal(t, result.URL, profile.ResumeURL)
}

func TestIngestResume_RejectsWrongMime(t *testing.T) {
	svc, store, _ := newUploadFixture(t)

	_, err := svc.IngestResume(context.Background(), "candidate-1", "cat.png", "image/png", 10, strings.NewReader("0123456789"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	assert.Empty(t, store.objects)
}

func TestIngestResume_RejectsOversize(t *testing.T) {
	svc, store, _ := newUploadFixture(t)

	big := strings.Repeat("a", 2048)
	_, err := svc.IngestResume(context.Background(), "candidate-1", "cv.pdf", "application/pdf", int64(len(big)), strings.NewReader(big))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Empty(t, store.objects)
}

func TestIngestResume_MimeParamsIgnored(t *testing.T) {
	svc, _, _ := newUploadFixture(t)

	body := "%PDF-1.7"
	_, err := svc.IngestResume(context.Background(), "candidate-1", "cv.pdf", "application/pdf; charset=binary", int64(len(body)), strings.NewReader(body))
	assert.NoError(t, err)
}
