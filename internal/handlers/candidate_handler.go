package handlers

import (
	"net/http"

	"jobdesk_backend/internal/middleware"
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	*BaseHandler
	candidateService services.CandidateService
}

func NewCandidateHandler(base *BaseHandler, candidateService services.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:      base,
		candidateService: candidateService,
	}
}

// RegisterRoutes регистрирует маршруты сводки по кандидатам
func (h *CandidateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employer := rg.Group("/employer/candidates")
	employer.Use(middleware.AuthMiddleware())
	employer.Use(middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.GET("", h.Aggregate)
	}
}

// Aggregate - сводная воронка: один кандидат - одна строка,
// независимо от числа его откликов на вакансии работодателя.
func (h *CandidateHandler) Aggregate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	summary, err := h.candidateService.Aggregate(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
