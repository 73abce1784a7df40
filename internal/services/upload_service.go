package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jobdesk_backend/internal/config"
	"jobdesk_backend/internal/repositories"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/internal/storage"
	"jobdesk_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadService interface {
	// IngestResume валидирует и сохраняет файл резюме кандидата,
	// возвращает публичный URL и обновляет профиль.
	IngestResume(ctx context.Context, candidateID, fileName, contentType string, size int64, reader io.Reader) (*dto.UploadResponse, error)
}

type UploadServiceImpl struct {
	storage     storage.Storage
	profileRepo repositories.ProfileRepository
}

func NewUploadService(store storage.Storage, profileRepo repositories.ProfileRepository) UploadService {
	return &UploadServiceImpl{
		storage:     store,
		profileRepo: profileRepo,
	}
}

func (s *UploadServiceImpl) IngestResume(ctx context.Context, candidateID, fileName, contentType string, size int64, reader io.Reader) (*dto.UploadResponse, error) {
	cfg := config.GetConfig()

	if size <= 0 || size > cfg.Upload.MaxResumeSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !isAllowedType(contentType, cfg.Upload.AllowedTypes) {
		return nil, apperrors.ErrInvalidFileType
	}

	// Имя файла от клиента не используется в пути, только расширение
	ext := strings.ToLower(filepath.Ext(fileName))
	key := fmt.Sprintf("resumes/%s/%s%s", candidateID, uuid.NewString(), ext)

	if err := s.storage.Save(ctx, key, reader, size, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Свежее резюме становится резюме профиля по умолчанию
	profile, err := s.profileRepo.FindCandidateProfile(candidateID)
	if err == nil {
		profile.ResumeURL = url
		if err := s.profileRepo.UpdateCandidateProfile(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	} else if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{
		URL:      url,
		FileName: fileName,
		MimeType: contentType,
		Size:     size,
	}, nil
}

func isAllowedType(contentType string, allowed []string) bool {
	// Отрезаем параметры типа "; charset=..."
	mime := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	for _, t := range allowed {
		if strings.EqualFold(mime, t) {
			return true
		}
	}
	return false
}
