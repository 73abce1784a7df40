package validator

import (
	"jobdesk_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации.
func registerCustomRules(v *validator.Validate) {
	// appstatus — каноничный статус отклика (включая legacy-алиасы,
	// они нормализуются на границе).
	_ = v.RegisterValidation("appstatus", func(fl validator.FieldLevel) bool {
		return models.IsValidApplicationStatus(models.NormalizeStatus(models.ApplicationStatus(fl.Field().String())))
	})

	// jobstatus — статус вакансии.
	_ = v.RegisterValidation("jobstatus", func(fl validator.FieldLevel) bool {
		return models.IsValidJobStatus(models.JobStatus(fl.Field().String()))
	})

	// userrole — роль пользователя.
	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return models.IsValidUserRole(models.UserRole(fl.Field().String()))
	})
}
