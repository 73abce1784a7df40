package services

import (
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/repositories"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"
)

type ProfileService interface {
	GetCandidateProfile(userID string) (*dto.CandidateProfileResponse, error)
	UpdateCandidateProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error)

	GetEmployerProfile(userID string) (*dto.EmployerProfileResponse, error)
	UpdateEmployerProfile(userID string, req *dto.UpdateEmployerProfileRequest) (*dto.EmployerProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetCandidateProfile(userID string) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindCandidateProfile(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return toCandidateProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateCandidateProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindCandidateProfile(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Skills != nil {
		profile.Skills = stringsJSON(req.Skills)
	}

	if err := s.profileRepo.UpdateCandidateProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toCandidateProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetEmployerProfile(userID string) (*dto.EmployerProfileResponse, error) {
	profile, err := s.profileRepo.FindEmployerProfile(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return toEmployerProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateEmployerProfile(userID string, req *dto.UpdateEmployerProfileRequest) (*dto.EmployerProfileResponse, error) {
	profile, err := s.profileRepo.FindEmployerProfile(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.City != nil {
		profile.City = *req.City
	}

	if err := s.profileRepo.UpdateEmployerProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toEmployerProfileResponse(profile), nil
}

func toCandidateProfileResponse(p *models.CandidateProfile) *dto.CandidateProfileResponse {
	return &dto.CandidateProfileResponse{
		UserID:    p.UserID,
		Name:      p.Name,
		Headline:  p.Headline,
		City:      p.City,
		Skills:    jsonStrings(p.Skills),
		ResumeURL: p.ResumeURL,
	}
}

func toEmployerProfileResponse(p *models.EmployerProfile) *dto.EmployerProfileResponse {
	return &dto.EmployerProfileResponse{
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Website:     p.Website,
		City:        p.City,
	}
}
