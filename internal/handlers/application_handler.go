package handlers

import (
	"net/http"

	"jobdesk_backend/internal/middleware"
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/services"
	"jobdesk_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	pipelineService    services.PipelineService
}

func NewApplicationHandler(
	base *BaseHandler,
	applicationService services.ApplicationService,
	pipelineService services.PipelineService,
) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		pipelineService:    pipelineService,
	}
}

// RegisterRoutes регистрирует маршруты откликов
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Сторона кандидата
	candidate := rg.Group("/applications")
	candidate.Use(middleware.AuthMiddleware())
	candidate.Use(middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		candidate.POST("/jobs/:jobId", h.Apply)
		candidate.GET("/my", h.ListMy)
		candidate.POST("/:id/withdraw", h.Withdraw)
	}

	// Сторона работодателя: управление воронкой
	employer := rg.Group("/employer/applications")
	employer.Use(middleware.AuthMiddleware())
	employer.Use(middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.GET("/:id", h.GetForEmployer)
		employer.PATCH("/:id/status", h.Transition)
	}

	// Хронология видна обеим сторонам отклика
	timeline := rg.Group("/applications/:id/timeline")
	timeline.Use(middleware.AuthMiddleware())
	timeline.Use(middleware.RequireRoles(models.UserRoleCandidate, models.UserRoleEmployer))
	{
		timeline.GET("", h.Timeline)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(userID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListMy(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)

	list, err := h.applicationService.ListMy(userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	app, err := h.applicationService.Withdraw(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) GetForEmployer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	app, err := h.pipelineService.Get(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Transition(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.pipelineService.Transition(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Timeline(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	roleVal, _ := c.Get("role")
	role, _ := roleVal.(string)

	events, err := h.pipelineService.Timeline(c.Param("id"), userID, models.UserRole(role))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
