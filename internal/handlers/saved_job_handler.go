package handlers

import (
	"net/http"

	"jobdesk_backend/internal/middleware"
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	*BaseHandler
	savedJobService services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
	}
}

// RegisterRoutes регистрирует маршруты закладок кандидата
func (h *SavedJobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	saved := rg.Group("/saved-jobs")
	saved.Use(middleware.AuthMiddleware())
	saved.Use(middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		saved.PUT("/:jobId", h.Save)
		saved.DELETE("/:jobId", h.Unsave)
		saved.GET("", h.List)
	}
}

// Save идемпотентен: повторное сохранение той же вакансии - no-op
func (h *SavedJobHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.savedJobService.Save(userID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job saved"})
}

func (h *SavedJobHandler) Unsave(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.savedJobService.Unsave(userID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job removed from saved"})
}

func (h *SavedJobHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	saved, err := h.savedJobService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_jobs": saved})
}
