package handlers

import (
	"net/http"

	"jobdesk_backend/internal/middleware"
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/services"
	"jobdesk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes регистрирует маршруты профилей
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	candidate := rg.Group("/profile/candidate")
	candidate.Use(middleware.AuthMiddleware())
	candidate.Use(middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		candidate.GET("", h.GetCandidateProfile)
		candidate.PUT("", h.UpdateCandidateProfile)
	}

	employer := rg.Group("/profile/employer")
	employer.Use(middleware.AuthMiddleware())
	employer.Use(middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.GET("", h.GetEmployerProfile)
		employer.PUT("", h.UpdateEmployerProfile)
	}
}

func (h *ProfileHandler) GetCandidateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetCandidateProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateCandidateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCandidateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateCandidateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetEmployerProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetEmployerProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateEmployerProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateEmployerProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
