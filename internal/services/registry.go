package services

import (
	"jobdesk_backend/internal/email"
	"jobdesk_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	ProfileService     ProfileService
	JobService         JobService
	ApplicationService ApplicationService
	PipelineService    PipelineService
	CandidateService   CandidateService
	SavedJobService    SavedJobService
	UploadService      UploadService
	EmailProvider      email.Provider
	Storage            storage.Storage
}
